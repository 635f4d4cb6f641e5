package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/trentd187/pickleball-venue/internal/models"
)

// collectionName restricts collection names to plain SQL identifiers.
// Table names cannot be bound as query parameters, so GORM splices them into
// the SQL text; only names matching this pattern are allowed through.
var collectionName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// GormStore is the live store gateway backed by a GORM connection.
// Each collection is a table; documents are rows.
// *gorm.DB is safe for concurrent use, so one GormStore serves every request.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore wraps an open connection. See database.Open for how it is made.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Available() bool { return true }

// CreateDocument inserts doc, which must be a pointer to a model implementing
// models.Document. The identifier is assigned by the model's BeforeCreate hook.
func (s *GormStore) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	if !collectionName.MatchString(collection) {
		return "", fmt.Errorf("invalid collection name %q", collection)
	}
	// The two-value type assertion does not panic on failure; ok is just false.
	d, ok := doc.(models.Document)
	if !ok {
		return "", fmt.Errorf("create %s: %T is not a document", collection, doc)
	}

	// WithContext ties the query to the request: if the client disconnects the
	// database call is cancelled too.
	err := s.db.WithContext(ctx).Table(collection).Create(doc).Error
	// gorm.ErrDuplicatedKey is only produced because the connection is opened
	// with TranslateError: true (see database.gormConfig). Without it each driver
	// would return its own unique-violation error type.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", ErrDuplicate
	}
	if err != nil {
		return "", fmt.Errorf("create %s: %w", collection, err)
	}
	return d.DocumentID(), nil
}

// GetDocuments runs an equality query over collection. Filter keys are column names.
func (s *GormStore) GetDocuments(ctx context.Context, collection string, filter Filter) ([]Record, error) {
	if !collectionName.MatchString(collection) {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}

	q := s.db.WithContext(ctx).Table(collection)
	if len(filter) > 0 {
		// A map condition becomes "col1 = ? AND col2 = ?" with the values bound
		// as parameters, so user input never ends up in the SQL text.
		q = q.Where(map[string]any(filter))
	}

	// Scanning into maps (instead of a model struct) keeps the gateway generic:
	// it can read any collection without knowing its columns.
	var rows []map[string]any
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Record(row))
	}
	return out, nil
}

// Collections lists the tables of the current database.
func (s *GormStore) Collections(ctx context.Context) ([]string, error) {
	tables, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return tables, nil
}
