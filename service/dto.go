package service

import (
	"github.com/google/uuid"
	"github.com/reuben-baek/gamestore/domain"
)

type GameCreationRequest struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Key         string      `json:"key" validate:"max=200"`
	Description string      `json:"description"`
	GenreIDs    []uuid.UUID `json:"genre_ids"`
	PlatformIDs []uuid.UUID `json:"platform_ids"`
}

type GameUpdateRequest struct {
	ID          uuid.UUID   `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required,max=200"`
	Key         string      `json:"key" validate:"max=200"`
	Description string      `json:"description"`
	GenreIDs    []uuid.UUID `json:"genre_ids"`
	PlatformIDs []uuid.UUID `json:"platform_ids"`
}

type GenreCreationRequest struct {
	Name          string     `json:"name" validate:"required,max=100"`
	ParentGenreID *uuid.UUID `json:"parent_genre_id"`
}

type GenreUpdateRequest struct {
	ID            uuid.UUID  `json:"id" validate:"required"`
	Name          string     `json:"name" validate:"required,max=100"`
	ParentGenreID *uuid.UUID `json:"parent_genre_id"`
}

type PlatformCreationRequest struct {
	Type string `json:"type" validate:"required,max=100"`
}

type PlatformUpdateRequest struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Type string    `json:"type" validate:"required,max=100"`
}

// GameResult surfaces genres by name and platforms by type.
type GameResult struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	Platforms   []string  `json:"platforms"`
}

type GenreResult struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	ParentGenreID   *uuid.UUID `json:"parent_genre_id,omitempty"`
	ParentGenreName string     `json:"parent_genre_name,omitempty"`
}

type PlatformResult struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
}

func toGameResult(game domain.Game) GameResult {
	result := GameResult{
		ID:          game.ID,
		Name:        game.Name,
		Key:         game.Key,
		Description: game.Description,
		Genres:      make([]string, 0, len(game.GameGenres)),
		Platforms:   make([]string, 0, len(game.GamePlatforms)),
	}
	for _, gg := range game.GameGenres {
		if gg.Genre != nil {
			result.Genres = append(result.Genres, gg.Genre.Name)
		}
	}
	for _, gp := range game.GamePlatforms {
		if gp.Platform != nil {
			result.Platforms = append(result.Platforms, gp.Platform.Type)
		}
	}
	return result
}

func toGameResults(games []domain.Game) []GameResult {
	results := make([]GameResult, 0, len(games))
	for _, game := range games {
		results = append(results, toGameResult(game))
	}
	return results
}

func toGenreResult(genre domain.Genre) GenreResult {
	result := GenreResult{
		ID:            genre.ID,
		Name:          genre.Name,
		ParentGenreID: genre.ParentGenreID,
	}
	if genre.ParentGenre != nil {
		result.ParentGenreName = genre.ParentGenre.Name
	}
	return result
}

func toGenreResults(genres []domain.Genre) []GenreResult {
	results := make([]GenreResult, 0, len(genres))
	for _, genre := range genres {
		results = append(results, toGenreResult(genre))
	}
	return results
}

func toPlatformResult(platform domain.Platform) PlatformResult {
	return PlatformResult{ID: platform.ID, Type: platform.Type}
}

func toPlatformResults(platforms []domain.Platform) []PlatformResult {
	results := make([]PlatformResult, 0, len(platforms))
	for _, platform := range platforms {
		results = append(results, toPlatformResult(platform))
	}
	return results
}

// distinct drops repeated ids, keeping first occurrences in order.
func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
