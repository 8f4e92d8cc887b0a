package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// RangeSuffix marks a criteria key as an inclusive-bounds range filter,
// e.g. "date__range" with a Range{Start, End} value.
const RangeSuffix = "__range"

// Criteria maps column names to filter values. Plain keys become equality
// predicates; keys ending in RangeSuffix become BETWEEN predicates. All
// predicates are ANDed together.
type Criteria map[string]interface{}

// Range is the value carried by a RangeSuffix criteria key.
type Range struct {
	Start interface{}
	End   interface{}
}

// InvalidFilterError reports a criteria entry that references an unknown
// column or carries unusable range bounds. It is raised before any query
// executes.
type InvalidFilterError struct {
	Field  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter on %q: %s", e.Field, e.Reason)
}

// Repository is a generic data-access component for a single entity type.
// Entities compose a Repository instance instead of inheriting persistence
// behavior; the gorm handle is injected at construction.
type Repository[T any] struct {
	db      *gorm.DB
	columns map[string]bool
}

// NewRepository builds a Repository for T, deriving the set of queryable
// columns from the gorm schema so filter criteria can be validated before
// touching the database.
func NewRepository[T any](db *gorm.DB) (*Repository[T], error) {
	s, err := schema.Parse(new(T), &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	columns := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		if field.DBName != "" {
			columns[field.DBName] = true
		}
	}
	return &Repository[T]{db: db, columns: columns}, nil
}

type rangeFilter struct {
	column string
	start  interface{}
	end    interface{}
}

// Filter returns all rows of T matching the given criteria.
func (r *Repository[T]) Filter(ctx context.Context, criteria Criteria) ([]T, error) {
	ranges, equals, err := r.splitCriteria(criteria)
	if err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Model(new(T))
	for _, rf := range ranges {
		tx = tx.Where(fmt.Sprintf("%s BETWEEN ? AND ?", rf.column), rf.start, rf.end)
	}
	if len(equals) > 0 {
		tx = tx.Where(equals)
	}

	var results []T
	if err := tx.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to filter records: %w", err)
	}
	return results, nil
}

// Exists reports whether at least one row matches the criteria. Only
// strict equality criteria are accepted.
func (r *Repository[T]) Exists(ctx context.Context, criteria Criteria) (bool, error) {
	equals := make(map[string]interface{}, len(criteria))
	for key, value := range criteria {
		if strings.HasSuffix(key, RangeSuffix) {
			return false, &InvalidFilterError{Field: key, Reason: "range criteria are not supported by existence checks"}
		}
		if !r.columns[key] {
			return false, &InvalidFilterError{Field: key, Reason: "column does not exist"}
		}
		equals[key] = value
	}

	tx := r.db.WithContext(ctx).Model(new(T))
	if len(equals) > 0 {
		tx = tx.Where(equals)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts a single row.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetByID returns the row with the given primary key, or nil when absent.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &entity, nil
}

// Update persists all fields of the entity.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

// Delete removes the row with the given primary key.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// splitCriteria separates range criteria from equality criteria, validating
// every entry so a bad filter fails before the query is built. The input
// map is never mutated.
func (r *Repository[T]) splitCriteria(criteria Criteria) ([]rangeFilter, map[string]interface{}, error) {
	var ranges []rangeFilter
	equals := make(map[string]interface{})

	for key, value := range criteria {
		if !strings.HasSuffix(key, RangeSuffix) {
			if !r.columns[key] {
				return nil, nil, &InvalidFilterError{Field: key, Reason: "column does not exist"}
			}
			equals[key] = value
			continue
		}

		column := strings.TrimSuffix(key, RangeSuffix)
		if !r.columns[column] {
			return nil, nil, &InvalidFilterError{Field: column, Reason: "column does not exist"}
		}

		bounds, ok := value.(Range)
		if !ok {
			return nil, nil, &InvalidFilterError{Field: column, Reason: "range filter requires a Range value"}
		}
		if isEmptyBound(bounds.Start) || isEmptyBound(bounds.End) {
			return nil, nil, &InvalidFilterError{Field: column, Reason: "start and end values are required for range filter"}
		}

		ranges = append(ranges, rangeFilter{column: column, start: bounds.Start, end: bounds.End})
	}

	return ranges, equals, nil
}

func isEmptyBound(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case time.Time:
		return v.IsZero()
	default:
		return false
	}
}
