package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shembeark/registrations-backend/pkg/enums"
)

// Registration stores one community member's internet-registration record.
// Cellphone carries a unique index; the insert is the authoritative dedup gate.
type Registration struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName        string         `gorm:"type:text;not null" json:"firstName"`
	Surname          string         `gorm:"type:text;not null" json:"surname"`
	Cellphone        string         `gorm:"type:text;not null;uniqueIndex:ux_registrations_cellphone" json:"cellphone"`
	Email            *string        `gorm:"type:text" json:"email,omitempty"`
	Address          string         `gorm:"type:text;not null" json:"address"`
	Suburb           string         `gorm:"type:text;not null" json:"suburb"`
	Province         enums.Province `gorm:"type:text;not null;index" json:"province"`
	Temple           string         `gorm:"type:text;not null;index" json:"temple"`
	RegistrationDate time.Time      `gorm:"type:timestamptz;not null;index:ix_registrations_unsent,priority:2" json:"registrationDate"`
	IsActive         bool           `gorm:"not null;default:true" json:"isActive"`
	EmailSent        bool           `gorm:"not null;default:false;index:ix_registrations_unsent,priority:1" json:"emailSent"`
	SentAt           *time.Time     `gorm:"type:timestamptz" json:"sentAt,omitempty"`
	CreatedAt        time.Time      `gorm:"type:timestamptz;default:now()" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"type:timestamptz;default:now()" json:"updatedAt"`
}
