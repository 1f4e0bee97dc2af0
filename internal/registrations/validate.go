package registrations

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shembeark/registrations-backend/pkg/enums"
	pkgerrors "github.com/shembeark/registrations-backend/pkg/errors"
)

const (
	maxNameLen    = 50
	maxAddressLen = 200
	maxSuburbLen  = 100
	maxTempleLen  = 100
)

var (
	// Local SA mobile format: 9 digits, no country code.
	cellphoneRe = regexp.MustCompile(`^[6-8][0-9]{8}$`)
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateInput checks every field of an already-normalized input and returns
// a validation error listing all failures, keyed by the JSON field name.
// Collecting the full set lets the form map each message onto its control.
func validateInput(in RegisterInput) *pkgerrors.Error {
	fields := map[string]string{}

	checkRequired(fields, "firstName", in.FirstName, maxNameLen, "first name")
	checkRequired(fields, "surname", in.Surname, maxNameLen, "surname")
	checkRequired(fields, "address", in.Address, maxAddressLen, "residential address")
	checkRequired(fields, "suburb", in.Suburb, maxSuburbLen, "suburb")
	checkRequired(fields, "temple", in.Temple, maxTempleLen, "temple name")

	switch {
	case in.Cellphone == "":
		fields["cellphone"] = "cellphone number is required"
	case !cellphoneRe.MatchString(in.Cellphone):
		fields["cellphone"] = "must be a valid South African cellphone number (9 digits starting with 6, 7, or 8)"
	}

	if in.Email != "" && !emailRe.MatchString(in.Email) {
		fields["email"] = "must be a valid email address"
	}

	switch {
	case in.Province == "":
		fields["province"] = "province is required"
	default:
		if _, err := enums.ParseProvince(in.Province); err != nil {
			fields["province"] = "must be one of: " + provinceOptions()
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
}

func provinceOptions() string {
	provinces := enums.Provinces()
	names := make([]string, len(provinces))
	for i, p := range provinces {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func checkRequired(fields map[string]string, key, value string, maxLen int, label string) {
	switch {
	case value == "":
		fields[key] = label + " is required"
	case utf8.RuneCountInString(value) > maxLen:
		fields[key] = label + " cannot exceed " + strconv.Itoa(maxLen) + " characters"
	}
}
