package registrations

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shembeark/registrations-backend/pkg/db/models"
	"github.com/shembeark/registrations-backend/pkg/enums"
)

// RegisterInput carries the fields the public form submits.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	Cellphone string `json:"cellphone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address"`
	Suburb    string `json:"suburb"`
	Province  string `json:"province"`
	Temple    string `json:"temple"`
}

// normalized trims every field, strips whitespace from the cellphone, and
// lowercases the email. Validation runs on the normalized form.
func (in RegisterInput) normalized() RegisterInput {
	return RegisterInput{
		FirstName: strings.TrimSpace(in.FirstName),
		Surname:   strings.TrimSpace(in.Surname),
		Cellphone: stripWhitespace(in.Cellphone),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Address:   strings.TrimSpace(in.Address),
		Suburb:    strings.TrimSpace(in.Suburb),
		Province:  strings.TrimSpace(in.Province),
		Temple:    strings.TrimSpace(in.Temple),
	}
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func (in RegisterInput) toModel(now time.Time) *models.Registration {
	reg := &models.Registration{
		ID:               uuid.New(),
		FirstName:        in.FirstName,
		Surname:          in.Surname,
		Cellphone:        in.Cellphone,
		Address:          in.Address,
		Suburb:           in.Suburb,
		Province:         enums.Province(in.Province),
		Temple:           in.Temple,
		RegistrationDate: now,
		IsActive:         true,
		EmailSent:        false,
	}
	if in.Email != "" {
		email := in.Email
		reg.Email = &email
	}
	return reg
}

// Summary is the minimal echo returned to the form after a successful insert.
type Summary struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"firstName"`
	Surname          string    `json:"surname"`
	Cellphone        string    `json:"cellphone"`
	Temple           string    `json:"temple"`
	RegistrationDate time.Time `json:"registrationDate"`
}

func summaryFromModel(reg *models.Registration) *Summary {
	return &Summary{
		ID:               reg.ID,
		FirstName:        reg.FirstName,
		Surname:          reg.Surname,
		Cellphone:        reg.Cellphone,
		Temple:           reg.Temple,
		RegistrationDate: reg.RegistrationDate,
	}
}
