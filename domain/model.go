package domain

import (
	"github.com/google/uuid"
)

type Game struct {
	ID            uuid.UUID `gorm:"primaryKey"`
	Name          string    `gorm:"not null"`
	Key           string    `gorm:"not null;uniqueIndex"`
	Description   string
	GameGenres    []GameGenre    `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"` // has-many, owned
	GamePlatforms []GamePlatform `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"` // has-many, owned
}

// GenreIDs returns the ids of the game's current genre associations.
func (g Game) GenreIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.GameGenres))
	for _, gg := range g.GameGenres {
		ids = append(ids, gg.GenreID)
	}
	return ids
}

// PlatformIDs returns the ids of the game's current platform associations.
func (g Game) PlatformIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.GamePlatforms))
	for _, gp := range g.GamePlatforms {
		ids = append(ids, gp.PlatformID)
	}
	return ids
}

type Genre struct {
	ID            uuid.UUID  `gorm:"primaryKey"`
	Name          string     `gorm:"not null"`
	ParentGenreID *uuid.UUID `gorm:"index"`
	ParentGenre   *Genre     `gorm:"foreignKey:ParentGenreID;constraint:OnDelete:RESTRICT;"` // belong-to self reference
	SubGenres     []Genre    `gorm:"foreignKey:ParentGenreID;constraint:OnDelete:RESTRICT;"` // back-reference, not owned
}

type Platform struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Type string    `gorm:"not null"`
}

// GameGenre links a game to a genre. The pair is the primary key.
type GameGenre struct {
	GameID  uuid.UUID `gorm:"primaryKey"`
	GenreID uuid.UUID `gorm:"primaryKey"`
	Genre   *Genre    `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE;"`
}

// GamePlatform links a game to a platform. The pair is the primary key.
type GamePlatform struct {
	GameID     uuid.UUID `gorm:"primaryKey"`
	PlatformID uuid.UUID `gorm:"primaryKey"`
	Platform   *Platform `gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE;"`
}
