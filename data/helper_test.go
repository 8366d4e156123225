package data

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFindID(t *testing.T) {
	type Platform struct {
		ID   uuid.UUID
		Type string
	}

	t.Run("success - notempty id", func(t *testing.T) {
		console := Platform{ID: uuid.New(), Type: "Console"}
		id, zero := findID[Platform, uuid.UUID](console)
		assert.Equal(t, console.ID, id)
		assert.False(t, zero)
	})
	t.Run("success - pointer entity", func(t *testing.T) {
		console := &Platform{ID: uuid.New()}
		id, zero := findID[*Platform, uuid.UUID](console)
		assert.Equal(t, console.ID, id)
		assert.False(t, zero)
	})
	t.Run("success - empty id", func(t *testing.T) {
		id, zero := findID[Platform, uuid.UUID](Platform{})
		assert.Equal(t, uuid.Nil, id)
		assert.True(t, zero)
	})
	t.Run("fail - Entity has not ID field", func(t *testing.T) {
		assert.PanicsWithValue(t, "Entity 'data.TT' has not ID field", func() {
			type TT struct {
				Name string
			}
			findID[TT, uuid.UUID](TT{Name: "console"})
		})
	})
	t.Run("fail - Entity ID type is not comparable", func(t *testing.T) {
		assert.PanicsWithValue(t, "ID field type 'map[string]string' of 'data.TT' is not comparable", func() {
			type TT struct {
				ID map[string]string
			}
			findID[TT, uuid.UUID](TT{})
		})
	})
	t.Run("fail - Entity's ID field type is different from ID type constraint", func(t *testing.T) {
		assert.PanicsWithValue(t, "Entity's ID field type is different from ID type constraint", func() {
			type TT struct {
				ID string
			}
			findID[TT, uuid.UUID](TT{ID: "console"})
		})
	})
}

func TestTypeName(t *testing.T) {
	type Genre struct{}
	assert.Equal(t, "Genre", typeName[Genre]())
}
