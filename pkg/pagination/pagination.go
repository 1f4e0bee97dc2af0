package pagination

const (
	// DefaultPageSize is the standard page size when a limit is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows any listing query can request.
	MaxPageSize = 100
)

// Params holds offset pagination inputs from controllers or services.
// Pages are 1-indexed.
type Params struct {
	Page     int
	PageSize int
}

// Meta describes one page of a result set.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNextPage"`
	HasPrev    bool  `json:"hasPrevPage"`
}

// Normalize clamps the parameters into their allowed ranges.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized parameters.
func (p Params) Offset() int {
	n := Normalize(p)
	return (n.Page - 1) * n.PageSize
}

// NewMeta derives page metadata from the normalized parameters and a total
// row count. A page past the end still reports the correct totals.
func NewMeta(p Params, total int64) Meta {
	n := Normalize(p)
	totalPages := int((total + int64(n.PageSize) - 1) / int64(n.PageSize))
	return Meta{
		Page:       n.Page,
		PageSize:   n.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    n.Page < totalPages,
		HasPrev:    n.Page > 1 && total > 0,
	}
}
