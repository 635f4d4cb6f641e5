package validation

import (
	"encoding/json"
	"errors"
	"testing"
)

func validBooking() *BookingRequest {
	court := "c1"
	return &BookingRequest{
		BookingDate: "2024-06-01",
		TimeSlot:    "07:00-08:00",
		CourtID:     &court,
		FullName:    "A B",
		Email:       "a@b.com",
	}
}

func fieldReasons(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	out := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		out[f.Field] = f.Reason
	}
	return out
}

func TestBooking_OK_DefaultsPlayers(t *testing.T) {
	r := validBooking()
	if err := Booking(r); err != nil {
		t.Fatalf("expected valid booking, got %v", err)
	}
	if r.Players == nil || *r.Players != DefaultPlayers {
		t.Fatalf("expected players default %d, got %v", DefaultPlayers, r.Players)
	}
}

func TestBooking_KeepsExplicitPlayers(t *testing.T) {
	r := validBooking()
	four := 4
	r.Players = &four
	if err := Booking(r); err != nil {
		t.Fatalf("expected valid booking, got %v", err)
	}
	if *r.Players != 4 {
		t.Fatalf("expected players 4, got %d", *r.Players)
	}
}

func TestBooking_PlayersOutOfRange(t *testing.T) {
	for _, n := range []int{0, 5, -1} {
		r := validBooking()
		p := n
		r.Players = &p
		reasons := fieldReasons(t, Booking(r))
		if _, ok := reasons["players"]; !ok {
			t.Fatalf("players=%d: expected players error, got %v", n, reasons)
		}
	}
}

func TestBooking_ReportsEveryFailingField(t *testing.T) {
	r := &BookingRequest{
		BookingDate: "01/06/2024",
		TimeSlot:    "06:00-07:00",
		Email:       "not-an-email",
	}
	reasons := fieldReasons(t, Booking(r))

	for _, field := range []string{"booking_date", "time_slot", "court_id", "full_name", "email"} {
		if _, ok := reasons[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, reasons)
		}
	}
	if reasons["court_id"] != "field required" {
		t.Fatalf("unexpected court_id reason %q", reasons["court_id"])
	}
	if reasons["email"] != "value is not a valid email address" {
		t.Fatalf("unexpected email reason %q", reasons["email"])
	}
}

func TestBooking_CourtIDPresenceRequired(t *testing.T) {
	// An empty court_id is a value like any other.
	r := validBooking()
	empty := ""
	r.CourtID = &empty
	if err := Booking(r); err != nil {
		t.Fatalf("expected empty court_id to be accepted, got %v", err)
	}

	// A missing or null court_id decodes to nil and is rejected.
	for _, body := range []string{
		`{"booking_date":"2024-06-01","time_slot":"07:00-08:00","full_name":"A B","email":"a@b.com"}`,
		`{"booking_date":"2024-06-01","time_slot":"07:00-08:00","court_id":null,"full_name":"A B","email":"a@b.com"}`,
	} {
		var req BookingRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("decode %s: %v", body, err)
		}
		reasons := fieldReasons(t, Booking(&req))
		if reasons["court_id"] != "field required" || len(reasons) != 1 {
			t.Fatalf("%s: expected only court_id required, got %v", body, reasons)
		}
	}
}

func TestBooking_RejectsImpossibleDate(t *testing.T) {
	r := validBooking()
	r.BookingDate = "2024-02-30"
	reasons := fieldReasons(t, Booking(r))
	if _, ok := reasons["booking_date"]; !ok {
		t.Fatalf("expected booking_date error, got %v", reasons)
	}
}

func TestBooking_RejectsNonCanonicalSlot(t *testing.T) {
	for _, slot := range []string{"7:00-8:00", "22:00-23:00", "07:30-08:30", "07:00-09:00"} {
		r := validBooking()
		r.TimeSlot = slot
		reasons := fieldReasons(t, Booking(r))
		if _, ok := reasons["time_slot"]; !ok {
			t.Fatalf("slot %q: expected time_slot error, got %v", slot, reasons)
		}
	}
}

func TestContact_InvalidEmail(t *testing.T) {
	r := &ContactRequest{
		FullName: "A B",
		Email:    "a-at-b.com",
		Subject:  "Hello",
		Message:  "Do you rent paddles?",
	}
	err := Contact(r)
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	reasons := fieldReasons(t, err)
	if len(reasons) != 1 {
		t.Fatalf("expected only the email to fail, got %v", reasons)
	}
}

func TestAvailability_RequiresDate(t *testing.T) {
	reasons := fieldReasons(t, Availability(&AvailabilityRequest{}))
	if reasons["date"] != "field required" {
		t.Fatalf("expected date required, got %v", reasons)
	}

	if err := Availability(&AvailabilityRequest{Date: "2024-06-01"}); err != nil {
		t.Fatalf("expected valid query, got %v", err)
	}
}

func TestFromDecodeError_WrongType(t *testing.T) {
	var r BookingRequest
	err := json.Unmarshal([]byte(`{"players":"two"}`), &r)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	reasons := fieldReasons(t, FromDecodeError(err))
	if _, ok := reasons["players"]; !ok {
		t.Fatalf("expected players type error, got %v", reasons)
	}
}

func TestFromDecodeError_MalformedBody(t *testing.T) {
	var r BookingRequest
	err := json.Unmarshal([]byte(`{"players":`), &r)
	reasons := fieldReasons(t, FromDecodeError(err))
	if _, ok := reasons["body"]; !ok {
		t.Fatalf("expected body error, got %v", reasons)
	}
}
