package store

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/trentd187/pickleball-venue/internal/database"
	"github.com/trentd187/pickleball-venue/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func booking(date, slot, court string) *models.Booking {
	return &models.Booking{
		BookingDate: date,
		TimeSlot:    slot,
		CourtID:     court,
		FullName:    "A B",
		Email:       "a@b.com",
		Players:     2,
	}
}

func TestGormStore_CreateAndFilter(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(openTestDB(t))

	id, err := s.CreateDocument(ctx, models.CollectionBooking, booking("2024-06-01", "07:00-08:00", "c1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" || id == SimulatedID {
		t.Fatalf("expected generated id, got %q", id)
	}
	if _, err := s.CreateDocument(ctx, models.CollectionBooking, booking("2024-06-01", "08:00-09:00", "c2")); err != nil {
		t.Fatalf("create second: %v", err)
	}

	all, err := s.GetDocuments(ctx, models.CollectionBooking, Filter{})
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(all))
	}

	matched, err := s.GetDocuments(ctx, models.CollectionBooking, Filter{
		"booking_date": "2024-06-01",
		"court_id":     "c1",
	})
	if err != nil {
		t.Fatalf("get filtered: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected 1 document, got %d", len(matched))
	}
	if got, _ := matched[0].String("id"); got != id {
		t.Fatalf("expected id %q, got %q", id, got)
	}
	if got, _ := matched[0].String("time_slot"); got != "07:00-08:00" {
		t.Fatalf("unexpected time_slot %q", got)
	}
}

func TestGormStore_DuplicateTriple(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(openTestDB(t))

	if _, err := s.CreateDocument(ctx, models.CollectionBooking, booking("2024-06-01", "07:00-08:00", "c1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := s.CreateDocument(ctx, models.CollectionBooking, booking("2024-06-01", "07:00-08:00", "c1"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	docs, err := s.GetDocuments(ctx, models.CollectionBooking, Filter{})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(docs))
	}
}

func TestGormStore_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(openTestDB(t))

	if _, err := s.GetDocuments(ctx, "booking; DROP TABLE booking", Filter{}); err == nil {
		t.Fatalf("expected error for invalid collection name")
	}
	if _, err := s.CreateDocument(ctx, models.CollectionBooking, map[string]any{"id": "x"}); err == nil {
		t.Fatalf("expected error for non-document value")
	}
}

func TestGormStore_Collections(t *testing.T) {
	s := NewGormStore(openTestDB(t))

	names, err := s.Collections(context.Background())
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	want := map[string]bool{
		models.CollectionCourt:          false,
		models.CollectionBooking:        false,
		models.CollectionContactMessage: false,
	}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Fatalf("expected collection %q in %v", n, names)
		}
	}
}

func TestUnavailable_DegradedMode(t *testing.T) {
	ctx := context.Background()
	var s Store = Unavailable{}

	if s.Available() {
		t.Fatalf("expected unavailable store")
	}
	id, err := s.CreateDocument(ctx, models.CollectionContactMessage, &models.ContactMessage{})
	if err != nil || id != SimulatedID {
		t.Fatalf("expected simulated id, got %q, %v", id, err)
	}
	docs, err := s.GetDocuments(ctx, models.CollectionBooking, Filter{"court_id": "c1"})
	if err != nil || len(docs) != 0 {
		t.Fatalf("expected no documents, got %v, %v", docs, err)
	}
	if docs == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestRecord_Accessors(t *testing.T) {
	r := Record{
		"name":    "Court A",
		"surface": []byte("acrylic"),
		"indoor":  int64(1),
		"lights":  false,
		"covered": float64(1),
		"nothing": nil,
	}

	if s, ok := r.String("name"); !ok || s != "Court A" {
		t.Fatalf("name: got %q, %v", s, ok)
	}
	if s, ok := r.String("surface"); !ok || s != "acrylic" {
		t.Fatalf("surface: got %q, %v", s, ok)
	}
	if _, ok := r.String("nothing"); ok {
		t.Fatalf("expected NULL to be absent")
	}
	if b, ok := r.Bool("indoor"); !ok || !b {
		t.Fatalf("indoor: got %v, %v", b, ok)
	}
	if b, ok := r.Bool("lights"); !ok || b {
		t.Fatalf("lights: got %v, %v", b, ok)
	}
	if b, ok := r.Bool("covered"); !ok || !b {
		t.Fatalf("covered: got %v, %v", b, ok)
	}
	if _, ok := r.Bool("missing"); ok {
		t.Fatalf("expected missing field to be absent")
	}
}
