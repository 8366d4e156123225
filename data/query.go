package data

import (
	"errors"

	"gorm.io/gorm"
)

type preload struct {
	association string
	args        []any
}

type gormQuery[T any] struct {
	db       *gorm.DB
	preloads []preload
}

func newGormQuery[T any](db *gorm.DB) Query[T] {
	var entity T
	return gormQuery[T]{db: db.Model(&entity).Session(&gorm.Session{})}
}

// chain keeps the receiver reusable: every builder call gets its own statement.
func (q gormQuery[T]) chain(db *gorm.DB) gormQuery[T] {
	return gormQuery[T]{db: db.Session(&gorm.Session{}), preloads: q.preloads}
}

func (q gormQuery[T]) Where(query any, args ...any) Query[T] {
	return q.chain(q.db.Where(query, args...))
}

func (q gormQuery[T]) Joins(query string, args ...any) Query[T] {
	return q.chain(q.db.Joins(query, args...))
}

func (q gormQuery[T]) Preload(association string, args ...any) Query[T] {
	next := q.chain(q.db)
	next.preloads = append(append([]preload(nil), q.preloads...), preload{association: association, args: args})
	return next
}

func (q gormQuery[T]) Order(value any) Query[T] {
	return q.chain(q.db.Order(value))
}

func (q gormQuery[T]) Limit(limit int) Query[T] {
	return q.chain(q.db.Limit(limit))
}

func (q gormQuery[T]) withPreloads() *gorm.DB {
	db := q.db
	for _, p := range q.preloads {
		db = db.Preload(p.association, p.args...)
	}
	return db
}

func (q gormQuery[T]) Find() ([]T, error) {
	var entities []T
	if err := q.withPreloads().Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (q gormQuery[T]) First() (T, error) {
	var entity T
	if err := q.withPreloads().First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, NotFoundError
		}
		return entity, err
	}
	return entity, nil
}

func (q gormQuery[T]) Count() (int64, error) {
	var count int64
	if err := q.db.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
