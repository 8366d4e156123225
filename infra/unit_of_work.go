package infra

import (
	"context"

	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/data"
	"github.com/reuben-baek/gamestore/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UnitOfWork shares one ChangeSet between the game, genre and platform
// repositories so a single Commit persists everything they staged.
type UnitOfWork struct {
	changes   *data.ChangeSet
	games     *GameRepository
	genres    *GenreRepository
	platforms *PlatformRepository
}

func NewUnitOfWork(transactionManager data.TransactionManager) *UnitOfWork {
	changes := data.NewChangeSet(transactionManager)
	return &UnitOfWork{
		changes:   changes,
		games:     NewGameRepository(data.NewGormRepository[domain.Game, uuid.UUID](changes)),
		genres:    NewGenreRepository(data.NewGormRepository[domain.Genre, uuid.UUID](changes)),
		platforms: NewPlatformRepository(data.NewGormRepository[domain.Platform, uuid.UUID](changes)),
	}
}

func (u *UnitOfWork) Games() domain.GameRepository {
	return u.games
}

func (u *UnitOfWork) Genres() domain.GenreRepository {
	return u.genres
}

func (u *UnitOfWork) Platforms() domain.PlatformRepository {
	return u.platforms
}

// Commit flushes every staged write in one transaction and returns the number
// of affected rows. Store errors are returned as the driver reported them.
func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	pending := u.changes.Len()
	affected, err := u.changes.Flush(ctx)
	if err != nil {
		logrus.Debugf("UnitOfWork.Commit: %d staged changes rolled back: %v", pending, err)
		return affected, err
	}
	logrus.Debugf("UnitOfWork.Commit: %d staged changes, %d rows", pending, affected)
	return affected, nil
}

type UnitOfWorkFactory struct {
	transactionManager data.TransactionManager
}

func NewUnitOfWorkFactory(db *gorm.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{transactionManager: data.NewGormTransactionManager(db)}
}

func (f *UnitOfWorkFactory) New() domain.UnitOfWork {
	return NewUnitOfWork(f.transactionManager)
}
