// Package store is the document store gateway: records are created in and
// queried from named collections, filtered by exact field equality.
//
// Two implementations exist. GormStore talks to a real database. Unavailable is
// the null-object used when no store is configured or reachable: queries return
// nothing and inserts return SimulatedID without writing anything.
//
// Callers only ever see the Store interface, so the rest of the API does not
// need "if db == nil" checks everywhere. main.go picks the implementation once
// at startup and the venue service never asks which one it got, apart from
// calling Available() where degraded mode must behave differently.
package store

import (
	"context"
	"errors"
)

// SimulatedID is returned by inserts while the store is unavailable.
const SimulatedID = "dev-simulated"

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate document")

// Record is one raw document as returned by the store, keyed by field name.
// Absent or NULL fields are missing from the map or hold nil.
//
// Values arrive as whatever Go type the database driver chose (string, []byte,
// int64, bool...), so read them through the String and Bool helpers below
// instead of type-asserting at each call site.
type Record map[string]any

// Filter maps field names to the exact value they must hold.
// An empty filter matches every document in the collection.
type Filter map[string]any

// Store abstracts persistence behind create/query operations on collections.
// Any type with these four methods satisfies it; Go interfaces are implemented
// implicitly, which is what lets tests swap in small fakes.
type Store interface {
	// Available reports whether a live store backs this gateway. When it
	// returns false the store is in degraded mode.
	Available() bool
	// CreateDocument inserts doc into collection and returns its identifier.
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	// GetDocuments returns every document in collection matching filter.
	GetDocuments(ctx context.Context, collection string, filter Filter) ([]Record, error)
	// Collections lists the collection names present in the store.
	Collections(ctx context.Context) ([]string, error)
}

// Unavailable is the degraded-mode store. Every method succeeds without I/O.
type Unavailable struct{}

// Compile-time check that Unavailable implements Store. If a method is missing
// the build fails here instead of wherever the value is first used.
var _ Store = Unavailable{}

func (Unavailable) Available() bool { return false }

func (Unavailable) CreateDocument(context.Context, string, any) (string, error) {
	return SimulatedID, nil
}

func (Unavailable) GetDocuments(context.Context, string, Filter) ([]Record, error) {
	return []Record{}, nil
}

func (Unavailable) Collections(context.Context) ([]string, error) { return []string{}, nil }

// String returns the text value of field key. ok is false when the field is
// absent, NULL or not textual.
func (r Record) String(key string) (s string, ok bool) {
	// A type switch checks the dynamic type held in the map. Reading a missing
	// key yields nil, which falls through to default.
	switch v := r[key].(type) {
	case string:
		return v, true
	case []byte: // some drivers return TEXT columns as raw bytes
		return string(v), true
	default:
		return "", false
	}
}

// Bool returns the boolean value of field key. Drivers without a native
// boolean type hand back numbers, which are read as C-style truth values.
func (r Record) Bool(key string) (b bool, ok bool) {
	switch v := r[key].(type) {
	case bool:
		return v, true
	case int64:
		return v != 0, true
	case int:
		return v != 0, true
	case float64:
		return v != 0, true
	default:
		return false, false
	}
}
