package enums

import "fmt"

// Province describes the allowed values for the `province` column in registrations.
type Province string

const (
	ProvinceEasternCape  Province = "Eastern Cape"
	ProvinceFreeState    Province = "Free State"
	ProvinceGauteng      Province = "Gauteng"
	ProvinceKwaZuluNatal Province = "KwaZulu-Natal"
	ProvinceLimpopo      Province = "Limpopo"
	ProvinceMpumalanga   Province = "Mpumalanga"
	ProvinceNorthernCape Province = "Northern Cape"
	ProvinceNorthWest    Province = "North West"
	ProvinceWesternCape  Province = "Western Cape"
)

var validProvinces = []Province{
	ProvinceEasternCape,
	ProvinceFreeState,
	ProvinceGauteng,
	ProvinceKwaZuluNatal,
	ProvinceLimpopo,
	ProvinceMpumalanga,
	ProvinceNorthernCape,
	ProvinceNorthWest,
	ProvinceWesternCape,
}

// Provinces returns the canonical province list in display order.
func Provinces() []Province {
	out := make([]Province, len(validProvinces))
	copy(out, validProvinces)
	return out
}

// IsValid reports whether the value matches the canonical province enum.
func (p Province) IsValid() bool {
	for _, candidate := range validProvinces {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProvince converts the raw string to Province.
func ParseProvince(value string) (Province, error) {
	p := Province(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid province %q", value)
	}
	return p, nil
}
