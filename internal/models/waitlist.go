package models

import (
	"time"

	"github.com/akeren/vannie-landing/pkg/constants"
)

// WaitlistEntry maps the single row written per successful sign-up.
// CreatedAt is supplied by the caller at submission time.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	PhoneOS   *string   `gorm:"column:phone_os;size:16" json:"phone_os"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (WaitlistEntry) TableName() string {
	return constants.WaitlistTable
}
