package venue

import (
	"context"
	"fmt"
	"log"
)

// Status values shown by the diagnostic report. The emoji are part of the
// response text that the venue's admin page displays as-is.
const (
	statusRunning        = "✅ Running"
	statusNotAvailable   = "❌ Not Available"
	statusAvailable      = "✅ Available"
	statusWorking        = "✅ Connected & Working"
	statusConnected      = "Connected"
	statusNotConnected   = "Not Connected"
	statusSet            = "✅ Set"
	statusNotSet         = "❌ Not Set"
	maxStatusCollections = 10
	maxStatusErrorLength = 50
)

// Status is the diagnostic report of GET /test. Every field is a
// human-readable string; failures are described, never returned.
type Status struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Status checks the store and reports what it found. It never fails: store
// errors and panics become text in the Database field.
//
// st is a named result so the deferred recover below can still edit the
// report after a panic; whatever st holds at that point is what gets returned.
func (s *Service) Status(ctx context.Context) (st Status) {
	st = Status{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		DatabaseURL:      setOrNot(s.settings.DatabaseURLSet),
		DatabaseName:     setOrNot(s.settings.DatabaseNameSet),
		ConnectionStatus: statusNotConnected,
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("status check panicked: %v", r)
			st.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxStatusErrorLength)
		}
	}()

	// Degraded mode: there is nothing to connect to, so the defaults stand.
	if !s.store.Available() {
		return st
	}

	st.Database = statusAvailable
	st.ConnectionStatus = statusConnected

	names, err := s.store.Collections(ctx)
	if err != nil {
		log.Printf("status check: %v", err)
		st.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxStatusErrorLength)
		return st
	}

	if len(names) > maxStatusCollections {
		names = names[:maxStatusCollections]
	}
	st.Collections = names
	st.Database = statusWorking
	return st
}

func setOrNot(set bool) string {
	if set {
		return statusSet
	}
	return statusNotSet
}

// truncate shortens s to at most n runes.
// Converting to []rune first means a multi-byte character is never cut in half,
// which slicing the string by bytes could do.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
