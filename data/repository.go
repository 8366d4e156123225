package data

import "context"

// Repository is the CRUD contract shared by every entity type.
// Writes are staged and only reach the store when the owning ChangeSet is flushed.
type Repository[T any, ID comparable] interface {
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
	GetAll(ctx context.Context) Query[T]
	FindByID(ctx context.Context, id ID) (T, error)
	Find(ctx context.Context, query any, args ...any) ([]T, error)
}

// Query is a lazily evaluated, read-only view over entities of type T.
// Builder methods return a new Query and never modify the receiver.
type Query[T any] interface {
	Where(query any, args ...any) Query[T]
	Joins(query string, args ...any) Query[T]
	Preload(association string, args ...any) Query[T]
	Order(value any) Query[T]
	Limit(limit int) Query[T]
	Find() ([]T, error)
	First() (T, error)
	Count() (int64, error)
}
