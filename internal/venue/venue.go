// Package venue implements the booking and availability operations of the
// pickleball venue: status report, court listing, slot availability, booking
// creation and contact messages. Each operation validates its input and then
// reads from or writes to the document store gateway.
//
// The package sits between the HTTP handlers and the store:
//
//	handlers (parse JSON, write responses)
//	   -> venue.Service (validate, apply business rules)
//	      -> store.Store (save and query raw documents)
//
// Keeping the rules here, rather than in the handlers, means they can be tested
// with a fake store and no HTTP server at all.
//
// --- Booking rule ---
// A court can only be booked once per date and hourly slot. That rule is guarded
// twice: an in-process lock (see package slotlock) serialises requests for the
// same slot, and the database carries a unique index on
// (booking_date, time_slot, court_id) so a second server process cannot slip a
// duplicate in either.
package venue

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/trentd187/pickleball-venue/internal/models"
	"github.com/trentd187/pickleball-venue/internal/slotlock"
	"github.com/trentd187/pickleball-venue/internal/store"
	"github.com/trentd187/pickleball-venue/internal/validation"
)

// ConflictMessage is shown to clients that try to book a taken slot.
const ConflictMessage = "This time slot is already booked."

// ErrConflict is returned by CreateBooking when the court is already booked
// for the requested date and time slot.
var ErrConflict = errors.New(ConflictMessage)

// defaultCourtName is shown for courts stored without a name.
const defaultCourtName = "Court"

// Court is the public view of a court.
// We use a dedicated response struct (instead of the raw store record) so the
// JSON always has the same three keys, whatever the stored document contains.
type Court struct {
	Name    string  `json:"name"`    // Display name; "Court" when the record has none
	Surface *string `json:"surface"` // Optional surface type; null if not set
	Indoor  bool    `json:"indoor"`  // false unless the record says otherwise
}

// SlotAvailability tells whether one hourly slot is taken.
type SlotAvailability struct {
	TimeSlot string `json:"time_slot"`
	Booked   bool   `json:"booked"`
}

// Availability is the answer to an availability query for one date.
// CourtID echoes the query; null means the check covered every court.
type Availability struct {
	Date    string             `json:"date"`
	CourtID *string            `json:"court_id"`
	Slots   []SlotAvailability `json:"slots"`
}

// Receipt acknowledges a stored booking or contact message.
type Receipt struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// Settings carries the deployment facts the status report exposes.
type Settings struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// Service composes validation and the store gateway into the venue operations.
// It holds no per-request state; the store handle and the slot locks are shared.
// One Service is created at startup and passed to every handler factory, the
// same way a *gorm.DB would be injected.
type Service struct {
	store    store.Store      // Where documents live; store.Unavailable in degraded mode
	settings Settings         // Deployment facts shown by the status report
	locks    *slotlock.Locker // One mutex per (date, slot, court) being booked right now
}

// New returns a Service backed by st. Pass store.Unavailable{} to run in
// degraded mode.
func New(st store.Store, settings Settings) *Service {
	return &Service{
		store:    st,
		settings: settings,
		locks:    slotlock.New(),
	}
}

// ListCourts returns every court. Listing is best-effort: a store failure is
// logged and reported as no courts.
func (s *Service) ListCourts(ctx context.Context) []Court {
	// An empty filter matches every document in the collection.
	docs, err := s.store.GetDocuments(ctx, models.CollectionCourt, store.Filter{})
	if err != nil {
		// The courts page should still render when the store is down, so the
		// error is logged for operators and the client just sees an empty list.
		log.Printf("list courts: %v", err)
		return []Court{}
	}

	// make([]Court, 0, n) starts with length 0 so the JSON is [] (never null)
	// even when there are no courts, and reserves room for n to avoid regrowing.
	courts := make([]Court, 0, len(docs))
	for _, doc := range docs {
		courts = append(courts, courtFromRecord(doc))
	}
	return courts
}

// courtFromRecord maps a raw court document to a Court, substituting
// defaults for absent fields.
func courtFromRecord(r store.Record) Court {
	c := Court{Name: defaultCourtName}
	// Each accessor returns (value, ok). ok is false when the key is missing or
	// holds an unexpected type, in which case the default above is kept.
	if name, ok := r.String("name"); ok {
		c.Name = name
	}
	if surface, ok := r.String("surface"); ok {
		c.Surface = &surface
	}
	if indoor, ok := r.Bool("indoor"); ok {
		c.Indoor = indoor
	}
	return c
}

// CheckAvailability lists the day's hourly slots and marks the booked ones.
// Without a court ID a slot counts as booked when any court has it booked.
func (s *Service) CheckAvailability(ctx context.Context, req *validation.AvailabilityRequest) (*Availability, error) {
	if err := validation.Availability(req); err != nil {
		return nil, err
	}

	// Only filter by court when the caller named one. Leaving court_id out of
	// the filter returns the bookings of every court for that day.
	filter := store.Filter{"booking_date": req.Date}
	if req.CourtID != nil && *req.CourtID != "" {
		filter["court_id"] = *req.CourtID
	}

	docs, err := s.store.GetDocuments(ctx, models.CollectionBooking, filter)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	// Collect the booked slot labels into a set. A missing map key reads as
	// false, so taken[label] below is true only for booked slots.
	taken := make(map[string]bool, len(docs))
	for _, doc := range docs {
		if slot, ok := doc.String("time_slot"); ok {
			taken[slot] = true
		}
	}

	labels := models.TimeSlots()
	slots := make([]SlotAvailability, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, SlotAvailability{TimeSlot: label, Booked: taken[label]})
	}

	return &Availability{
		Date:    req.Date,
		CourtID: req.CourtID,
		Slots:   slots,
	}, nil
}

// CreateBooking stores a booking unless the court is already booked for that
// date and slot, in which case it returns ErrConflict.
//
// In degraded mode nothing is checked or stored and a simulated receipt is
// returned, so double-booking protection only holds while the store is up.
func (s *Service) CreateBooking(ctx context.Context, req *validation.BookingRequest) (Receipt, error) {
	if err := validation.Booking(req); err != nil {
		return Receipt{}, err
	}

	if !s.store.Available() {
		return Receipt{OK: true, ID: store.SimulatedID}, nil
	}

	// validation.Booking guarantees CourtID is non-nil. It may still be "":
	// an empty court ID is a valid (if odd) court and is stored as given.
	courtID := *req.CourtID

	// Hold the slot's lock across the check and the insert. Without it two
	// requests for the same slot could both see "no booking" and both insert.
	// defer runs unlock() when this function returns, on every path.
	unlock := s.locks.Lock(slotlock.Key{
		Date:     req.BookingDate,
		TimeSlot: req.TimeSlot,
		CourtID:  courtID,
	})
	defer unlock()

	existing, err := s.store.GetDocuments(ctx, models.CollectionBooking, store.Filter{
		"booking_date": req.BookingDate,
		"time_slot":    req.TimeSlot,
		"court_id":     courtID,
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return Receipt{}, ErrConflict
	}

	doc := &models.Booking{
		BookingDate: req.BookingDate,
		TimeSlot:    req.TimeSlot,
		CourtID:     courtID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Notes:       req.Notes,
		Players:     *req.Players, // set to the default by validation.Booking when omitted
	}
	id, err := s.store.CreateDocument(ctx, models.CollectionBooking, doc)
	// errors.Is unwraps err looking for ErrDuplicate, so it matches even when
	// the store has wrapped it with more context.
	if errors.Is(err, store.ErrDuplicate) {
		// Another process took the slot between our check and insert.
		return Receipt{}, ErrConflict
	}
	if err != nil {
		return Receipt{}, fmt.Errorf("create booking: %w", err)
	}
	return Receipt{OK: true, ID: id}, nil
}

// SubmitContact stores a contact message. There is no uniqueness rule: the same
// person may write as often as they like. Unlike CreateBooking there is no
// degraded-mode shortcut here because store.Unavailable already answers writes
// with the simulated id.
func (s *Service) SubmitContact(ctx context.Context, req *validation.ContactRequest) (Receipt, error) {
	if err := validation.Contact(req); err != nil {
		return Receipt{}, err
	}

	doc := &models.ContactMessage{
		FullName: req.FullName,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Phone:    req.Phone,
	}
	id, err := s.store.CreateDocument(ctx, models.CollectionContactMessage, doc)
	if err != nil {
		return Receipt{}, fmt.Errorf("create contact message: %w", err)
	}
	return Receipt{OK: true, ID: id}, nil
}
