// Package validation defines the inbound request shapes of the venue API and
// checks them before anything touches the store.
//
// Field constraints are declared as struct tags and enforced by
// go-playground/validator. Every failing field is reported, not only the first.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trentd187/pickleball-venue/internal/models"
)

// DefaultPlayers is used when a booking does not say how many people will play.
const DefaultPlayers = 2

// BookingRequest is the JSON body of POST /api/book.
// CourtID is a pointer so that a missing court_id (nil) can be told apart from
// an empty one (""): the key must be present, but any string value is accepted.
type BookingRequest struct {
	BookingDate string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string  `json:"time_slot" validate:"required,timeslot"`
	CourtID     *string `json:"court_id" validate:"required"`
	FullName    string  `json:"full_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	Notes       *string `json:"notes"`
	Players     *int    `json:"players" validate:"omitempty,min=1,max=4"`
}

// ContactRequest is the JSON body of POST /api/contact.
type ContactRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Subject  string  `json:"subject" validate:"required"`
	Message  string  `json:"message" validate:"required"`
	Phone    *string `json:"phone"`
}

// AvailabilityRequest is the JSON body of POST /api/availability.
// An absent or empty CourtID means "any court".
type AvailabilityRequest struct {
	Date    string  `json:"date" validate:"required,datetime=2006-01-02"`
	CourtID *string `json:"court_id"`
}

// FieldError describes one rejected field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is returned when a request fails validation. It lists every failing field.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is (or wraps) a *Error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so clients can match them to the body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return models.IsTimeSlot(fl.Field().String())
	})
	return v
}

// Booking validates r and fills in defaults for optional fields.
func Booking(r *BookingRequest) error {
	if err := check(r); err != nil {
		return err
	}
	if r.Players == nil {
		p := DefaultPlayers
		r.Players = &p
	}
	return nil
}

// Contact validates r.
func Contact(r *ContactRequest) error {
	return check(r)
}

// Availability validates r.
func Availability(r *AvailabilityRequest) error {
	return check(r)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:  fe.Field(),
			Reason: reason(fe),
		})
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "datetime":
		return "invalid date, expected YYYY-MM-DD"
	case "timeslot":
		slots := models.TimeSlots()
		return fmt.Sprintf("must be an hourly slot from %s to %s", slots[0], slots[len(slots)-1])
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// FromDecodeError converts a JSON decoding failure into a validation error when
// it points at a specific field (wrong type). Other decoding errors are
// reported against the whole body.
func FromDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &Error{Fields: []FieldError{{
			Field:  typeErr.Field,
			Reason: "wrong type, expected " + typeErr.Type.String(),
		}}}
	}
	return &Error{Fields: []FieldError{{
		Field:  "body",
		Reason: "invalid JSON: " + err.Error(),
	}}}
}
