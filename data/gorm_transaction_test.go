package data_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/reuben-baek/gamestore/data"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormTransactionManager(t *testing.T) {
	type User struct {
		gorm.Model
		Name string
	}

	db := getGormDB()
	db.AutoMigrate(&User{})

	transactionManager := data.NewGormTransactionManager(db)

	create := func(ctx context.Context, user *User) error {
		tx := transactionManager.Get(ctx).(*gorm.DB)
		return tx.Create(user).Error
	}
	exists := func(id uint) bool {
		var count int64
		db.Model(&User{}).Where("id = ?", id).Count(&count)
		return count == 1
	}

	t.Run("commit", func(t *testing.T) {
		ctx := context.Background()
		reuben := User{Name: "reuben.b"}
		err := transactionManager.Do(ctx, func(ctx context.Context) error {
			return create(ctx, &reuben)
		})
		assert.Nil(t, err)
		assert.NotEmpty(t, reuben.ID)
		assert.True(t, exists(reuben.ID))
	})

	t.Run("rollback", func(t *testing.T) {
		ctx := context.Background()
		reuben := User{Name: "reuben.b"}
		err := transactionManager.Do(ctx, func(ctx context.Context) error {
			create(ctx, &reuben)
			return errors.New("fail to save")
		})
		assert.NotNil(t, err)
		assert.NotEmpty(t, reuben.ID)
		assert.False(t, exists(reuben.ID))
	})

	t.Run("rollback on panic", func(t *testing.T) {
		ctx := context.Background()
		reuben := User{Name: "reuben.b"}
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("panic: %v\n", r)
				}
			}()
			transactionManager.Do(ctx, func(ctx context.Context) error {
				create(ctx, &reuben)
				panic("something wrong")
			})
		}()
		assert.False(t, exists(reuben.ID))
	})

	t.Run("get without transaction", func(t *testing.T) {
		tx, ok := transactionManager.Get(context.Background()).(*gorm.DB)
		assert.True(t, ok)
		assert.NotNil(t, tx)
	})

	// cancelling discards the pooled connection, so this runs last.
	t.Run("ctx cancel", func(t *testing.T) {
		ctx, cancelFunction := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- transactionManager.Do(ctx, func(ctx context.Context) error {
				time.Sleep(20 * time.Millisecond)
				return create(ctx, &User{Name: "reuben.b"})
			})
		}()

		time.Sleep(10 * time.Millisecond)
		cancelFunction()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("transaction did not finish")
		}
	})
}
