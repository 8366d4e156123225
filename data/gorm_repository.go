package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository implements Repository for one entity type. Reads go to the
// session bound to ctx; writes are staged on the shared ChangeSet.
type GormRepository[T any, ID comparable] struct {
	changes *ChangeSet
}

func NewGormRepository[T any, ID comparable](changes *ChangeSet) *GormRepository[T, ID] {
	return &GormRepository[T, ID]{changes: changes}
}

// DB returns the gorm session for ctx: the open transaction if there is one.
func (u *GormRepository[T, ID]) DB(ctx context.Context) *gorm.DB {
	db, ok := u.changes.TransactionManager().Get(ctx).(*gorm.DB)
	if !ok {
		panic(fmt.Sprintf("GormRepository[%s]: transaction manager has no gorm session", typeName[T]()))
	}
	return db
}

// Stage adds a write to the shared ChangeSet.
func (u *GormRepository[T, ID]) Stage(name string, apply func(tx *gorm.DB) (int64, error)) {
	u.changes.Stage(name, apply)
}

func (u *GormRepository[T, ID]) Add(ctx context.Context, entity *T) error {
	if entity == nil {
		return NilEntityError
	}
	created := *entity
	u.Stage(fmt.Sprintf("add %s", typeName[T]()), func(tx *gorm.DB) (int64, error) {
		result := tx.Omit(clause.Associations).Create(&created)
		return result.RowsAffected, result.Error
	})
	return nil
}

func (u *GormRepository[T, ID]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return NilEntityError
	}
	if _, zero := findID[*T, ID](entity); zero {
		panic("entity.ID is missing")
	}
	updated := *entity
	u.Stage(fmt.Sprintf("update %s", typeName[T]()), func(tx *gorm.DB) (int64, error) {
		result := tx.Model(&updated).Select("*").Omit(clause.Associations).Updates(&updated)
		return result.RowsAffected, result.Error
	})
	return nil
}

func (u *GormRepository[T, ID]) Delete(ctx context.Context, entity *T) error {
	if entity == nil {
		return NilEntityError
	}
	if _, zero := findID[*T, ID](entity); zero {
		panic("entity.ID is missing")
	}
	deleted := *entity
	u.Stage(fmt.Sprintf("delete %s", typeName[T]()), func(tx *gorm.DB) (int64, error) {
		result := tx.Omit(clause.Associations).Delete(&deleted)
		return result.RowsAffected, result.Error
	})
	return nil
}

func (u *GormRepository[T, ID]) GetAll(ctx context.Context) Query[T] {
	return newGormQuery[T](u.DB(ctx))
}

func (u *GormRepository[T, ID]) FindByID(ctx context.Context, id ID) (T, error) {
	return u.FindOne(u.DB(ctx), id)
}

// FindOne looks up id through db, which may carry preloads or joins.
func (u *GormRepository[T, ID]) FindOne(db *gorm.DB, id ID) (T, error) {
	var entity T
	if err := db.Model(&entity).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, NotFoundError
		}
		return entity, err
	}
	logrus.Debugf("GormRepository.FindOne: %s [%v] found", typeName[T](), id)
	return entity, nil
}

func (u *GormRepository[T, ID]) Find(ctx context.Context, query any, args ...any) ([]T, error) {
	var entities []T
	if err := u.DB(ctx).Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
