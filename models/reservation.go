package models

import (
	"fmt"
	"time"
)

// ReservationStatus lifecycle: pending -> confirmed -> completed, with
// cancelled and no_show as admin-set terminal states.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
	ReservationNoShow    ReservationStatus = "no_show"
)

// ParseReservationStatus converts the serialized form into the typed tag.
// This is the only place strings become statuses.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted, ReservationNoShow:
		return ReservationStatus(s), nil
	}
	return "", fmt.Errorf("unknown reservation status: %q", s)
}

// Reservation is a table booking request from the website, reviewed by
// admins in the back office.
type Reservation struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	FirstName   string            `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string            `gorm:"type:varchar(100);not null" json:"last_name"`
	Email       string            `gorm:"type:varchar(180);not null" json:"email"`
	Phone       string            `gorm:"type:varchar(30);not null" json:"phone"`
	Date        time.Time         `gorm:"not null" json:"date"`
	Time        string            `gorm:"type:varchar(5);not null" json:"time"` // HH:MM
	Guests      int               `gorm:"not null" json:"guests"`
	Message     string            `gorm:"type:text" json:"message"`
	Status      ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ConfirmedAt *time.Time        `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null" json:"updated_at"`
}
