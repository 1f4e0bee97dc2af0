package pagination

import "testing"

func TestNormalizeClampsInputs(t *testing.T) {
	n := Normalize(Params{Page: 0, PageSize: 0})
	if n.Page != 1 || n.PageSize != DefaultPageSize {
		t.Fatalf("unexpected normalization: %+v", n)
	}

	n = Normalize(Params{Page: 3, PageSize: 5000})
	if n.PageSize != MaxPageSize {
		t.Fatalf("expected page size capped at %d, got %d", MaxPageSize, n.PageSize)
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, PageSize: 10}).Offset(); got != 0 {
		t.Fatalf("expected offset 0 for first page, got %d", got)
	}
	if got := (Params{Page: 4, PageSize: 25}).Offset(); got != 75 {
		t.Fatalf("expected offset 75, got %d", got)
	}
}

func TestNewMetaLastPage(t *testing.T) {
	// 23 records, page size 10 -> 3 pages, remainder 3 on the last page.
	meta := NewMeta(Params{Page: 3, PageSize: 10}, 23)
	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", meta.TotalPages)
	}
	if meta.HasNext {
		t.Fatal("last page should not have a next page")
	}
	if !meta.HasPrev {
		t.Fatal("last page should have a previous page")
	}
}

func TestNewMetaEvenDivision(t *testing.T) {
	meta := NewMeta(Params{Page: 2, PageSize: 10}, 20)
	if meta.TotalPages != 2 || meta.HasNext {
		t.Fatalf("unexpected meta for even division: %+v", meta)
	}
}

func TestNewMetaBeyondEnd(t *testing.T) {
	meta := NewMeta(Params{Page: 9, PageSize: 10}, 23)
	if meta.Total != 23 || meta.TotalPages != 3 {
		t.Fatalf("beyond-the-end page must keep correct totals: %+v", meta)
	}
	if meta.HasNext {
		t.Fatal("beyond-the-end page has no next page")
	}
}

func TestNewMetaEmpty(t *testing.T) {
	meta := NewMeta(Params{Page: 1, PageSize: 10}, 0)
	if meta.TotalPages != 0 || meta.HasNext || meta.HasPrev {
		t.Fatalf("unexpected meta for empty set: %+v", meta)
	}
}
