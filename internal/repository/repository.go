package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("record not found")

// Repository is the generic create/find-many/update/delete contract every
// resource handler works against.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id uint, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// GormRepository implements Repository over a shared *gorm.DB handle.
type GormRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// New returns a repository for T. Preloads name the associations loaded by
// FindAll.
func New[T any](db *gorm.DB, preloads ...string) *GormRepository[T] {
	return &GormRepository[T]{db: db, preloads: preloads}
}

// Create inserts entity and fills in its generated id. Associations set on
// entity are never written.
func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return fmt.Errorf("create %T: %w", entity, err)
	}
	return nil
}

// FindAll returns every row of the table, never nil.
func (r *GormRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	query := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		query = query.Preload(p)
	}

	rows := make([]T, 0)
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find %T: %w", rows, err)
	}
	return rows, nil
}

// Update replaces every column of row id with the values in entity, zero
// values included, then reloads the row into entity.
func (r *GormRepository[T]) Update(ctx context.Context, id uint, entity *T) error {
	db := r.db.WithContext(ctx)

	result := db.Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", clause.Associations).
		Updates(entity)
	if result.Error != nil {
		return fmt.Errorf("update %T %d: %w", entity, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update %T %d: %w", entity, id, ErrNotFound)
	}

	var updated T
	if err := db.First(&updated, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("reload %T %d: %w", entity, id, ErrNotFound)
		}
		return fmt.Errorf("reload %T %d: %w", entity, id, err)
	}
	*entity = updated
	return nil
}

// Delete removes row id for good.
func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("delete %T %d: %w", new(T), id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete %T %d: %w", new(T), id, ErrNotFound)
	}
	return nil
}
