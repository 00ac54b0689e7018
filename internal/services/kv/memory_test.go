package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
}

func TestMemoryStoreTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) TestSetAndGet() {
	// arrange
	store := NewMemoryStore()
	ctx := context.Background()

	// act
	err := store.Set(ctx, "key", "value")
	s.NoError(err)
	value, ok, err := store.Get(ctx, "key")

	// assert
	s.NoError(err)
	s.True(ok)
	s.Equal("value", value)
}

func (s *MemoryStoreTestSuite) TestGetMissingKey() {
	// arrange
	store := NewMemoryStore()
	ctx := context.Background()

	// act
	value, ok, err := store.Get(ctx, "missing")

	// assert
	s.NoError(err)
	s.False(ok)
	s.Empty(value)
}

func (s *MemoryStoreTestSuite) TestDelete() {
	// arrange
	store := NewMemoryStore()
	ctx := context.Background()
	err := store.Set(ctx, "key", "value")
	s.NoError(err)

	// act
	err = store.Delete(ctx, "key")
	s.NoError(err)
	_, ok, err := store.Get(ctx, "key")

	// assert
	s.NoError(err)
	s.False(ok)
}

func (s *MemoryStoreTestSuite) TestExpiration() {
	// arrange
	store := NewMemoryStore()
	ctx := context.Background()

	// act
	err := store.Set(ctx, "key", "value", WithExpiration(time.Millisecond))
	s.NoError(err)
	time.Sleep(10 * time.Millisecond)
	_, ok, err := store.Get(ctx, "key")

	// assert
	s.NoError(err)
	s.False(ok)
}
