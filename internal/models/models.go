// Package models defines the records persisted by the Pickleball Venue API.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
//
// Each model maps to one logical collection of the document store:
//   - Court          -> "court"           (reference data, created out-of-band)
//   - Booking        -> "booking"         (one row per court/date/time slot)
//   - ContactMessage -> "contactmessage"  (write-only inbox)
//
// Table names are the collection names so the store gateway can address a
// collection by name without knowing which struct backs it.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection names. These are also the SQL table names.
const (
	CollectionCourt          = "court"
	CollectionBooking        = "booking"
	CollectionContactMessage = "contactmessage"
)

// Operating hours of the venue. Slots are one hour long, the first starts at
// OpeningHour and the last ends at ClosingHour.
const (
	OpeningHour = 7
	ClosingHour = 22
)

// TimeSlots returns the hourly slot labels for one day, in order:
// "07:00-08:00" through "21:00-22:00".
func TimeSlots() []string {
	slots := make([]string, 0, ClosingHour-OpeningHour)
	for h := OpeningHour; h < ClosingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return slots
}

// IsTimeSlot reports whether label is one of the canonical slot labels.
func IsTimeSlot(label string) bool {
	for _, s := range TimeSlots() {
		if s == label {
			return true
		}
	}
	return false
}

// Document is implemented by every persisted model. The store gateway uses it
// to report the generated identifier after an insert.
type Document interface {
	DocumentID() string
}

// Court is a playable court at the venue.
// Every descriptive column is nullable: rows seeded by operators may leave
// them out, and a NULL Indoor is read as an outdoor court.
type Court struct {
	ID        string  `gorm:"type:varchar(36);primaryKey"`
	Name      *string `gorm:"type:varchar(255)"`
	Surface   *string `gorm:"type:varchar(255)"`
	Indoor    *bool   `gorm:"type:boolean"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Court) TableName() string { return CollectionCourt }

func (c *Court) DocumentID() string { return c.ID }

func (c *Court) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Booking reserves one court for one hourly slot on one date.
// The composite unique index idx_booking_slot guarantees at most one booking
// per (booking_date, time_slot, court_id) even across processes.
type Booking struct {
	ID          string  `gorm:"type:varchar(36);primaryKey"`
	BookingDate string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_booking_slot"` // "YYYY-MM-DD"
	TimeSlot    string  `gorm:"type:varchar(11);not null;uniqueIndex:idx_booking_slot"` // "HH:00-HH:00"
	CourtID     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_booking_slot"`
	FullName    string  `gorm:"type:varchar(255);not null"`
	Email       string  `gorm:"type:varchar(255);not null"`
	Phone       *string `gorm:"type:varchar(64)"`
	Notes       *string `gorm:"type:text"`
	Players     int     `gorm:"not null;default:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Booking) TableName() string { return CollectionBooking }

func (b *Booking) DocumentID() string { return b.ID }

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ContactMessage is a message left through the venue's contact form.
type ContactMessage struct {
	ID        string  `gorm:"type:varchar(36);primaryKey"`
	FullName  string  `gorm:"type:varchar(255);not null"`
	Email     string  `gorm:"type:varchar(255);not null"`
	Subject   string  `gorm:"type:varchar(255);not null"`
	Message   string  `gorm:"type:text;not null"`
	Phone     *string `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContactMessage) TableName() string { return CollectionContactMessage }

func (m *ContactMessage) DocumentID() string { return m.ID }

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// AutoMigrate creates or updates the tables for all collections. Production
// deployments run the SQL files under migrations/ instead; this is used for
// sqlite (local runs and tests).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Court{},
		&Booking{},
		&ContactMessage{},
	)
}
