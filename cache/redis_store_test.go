package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedisStore_Unreachable(t *testing.T) {
	client := NewRedisClient("127.0.0.1:1", "", 0)
	defer client.Close()
	store := NewRedisStore(client)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, ok, err := store.Get(ctx, Namespace+"/genres")
	assert.False(t, ok)
	assert.NotNil(t, err)
	assert.NotNil(t, store.Set(ctx, Namespace+"/genres", []byte("{}"), time.Minute))
	assert.NotNil(t, store.Invalidate(ctx, Namespace))
}
