package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/golfcup/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSetAndGet() {
	err := s.storage.Set(s.ctx, "upgcs.players", []byte(`[]`))
	s.Require().NoError(err)

	value, err := s.storage.Get(s.ctx, "upgcs.players")
	s.Require().NoError(err)
	s.Equal(`[]`, string(value))
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestSetOverwrites() {
	_ = s.storage.Set(s.ctx, "k", []byte("one"))
	_ = s.storage.Set(s.ctx, "k", []byte("two"))

	value, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("two", string(value))
}

func (s *StorageSuite) TestDelete() {
	_ = s.storage.Set(s.ctx, "k", []byte("v"))

	err := s.storage.Delete(s.ctx, "k")
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, "k")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeleteMissingIsNoop() {
	s.NoError(s.storage.Delete(s.ctx, "missing"))
}

func (s *StorageSuite) TestValuesAreCopied() {
	input := []byte("abc")
	_ = s.storage.Set(s.ctx, "k", input)
	input[0] = 'x'

	value, _ := s.storage.Get(s.ctx, "k")
	s.Equal("abc", string(value))

	value[1] = 'y'
	again, _ := s.storage.Get(s.ctx, "k")
	s.Equal("abc", string(again))
}

func (s *StorageSuite) TestKeys() {
	_ = s.storage.Set(s.ctx, "a", []byte("1"))
	_ = s.storage.Set(s.ctx, "b", []byte("2"))

	s.ElementsMatch([]string{"a", "b"}, s.storage.Keys())
}
