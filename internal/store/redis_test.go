package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/generator"
	"github.com/rybkr/tilepuzzle/internal/store"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   store.Repository
	now    time.Time
	ctx    context.Context
	result *board.Result
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	repo, err := store.NewRedisRepository(&store.Config{
		Client: s.client,
		TTL:    time.Hour,
		Now:    func() time.Time { return s.now },
		NewID:  func() string { return "lvl_1" },
	})
	s.Require().NoError(err)
	s.repo = repo

	req := generator.Request{TileType: tiling.Triangle, FigureSize: 12, PiecesAmount: 3}.WithSeed(9)
	s.result, err = generator.Generate(req)
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	saved, err := s.repo.Save(s.ctx, store.SaveInput{Result: s.result})
	s.Require().NoError(err)
	s.Equal("lvl_1", saved.Level.ID)
	s.Equal(s.now.Add(time.Hour), saved.Level.ExpiresAt)

	s.True(s.mr.Exists("level:lvl_1"))
	s.Equal(time.Hour, s.mr.TTL("level:lvl_1"))

	got, err := s.repo.Get(s.ctx, store.GetInput{ID: "lvl_1"})
	s.Require().NoError(err)
	s.Equal(s.result.Base, got.Level.Result.Base)
	s.Equal(s.result.Pieces, got.Level.Result.Pieces)
	s.Equal(s.result.Seed, got.Level.Result.Seed)
	s.True(s.now.Equal(got.Level.CreatedAt))
	s.NoError(got.Level.Result.Validate())
}

func (s *RedisRepositoryTestSuite) TestSaveWithCustomTTL() {
	_, err := s.repo.Save(s.ctx, store.SaveInput{Result: s.result, TTL: 5 * time.Minute})
	s.Require().NoError(err)
	s.Equal(5*time.Minute, s.mr.TTL("level:lvl_1"))
}

func (s *RedisRepositoryTestSuite) TestExpiredLevelIsGone() {
	_, err := s.repo.Save(s.ctx, store.SaveInput{Result: s.result})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, store.GetInput{ID: "lvl_1"})
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, store.SaveInput{Result: s.result})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(s.ctx, store.DeleteInput{ID: "lvl_1"}))
	s.False(s.mr.Exists("level:lvl_1"))

	// Deleting again is harmless.
	s.NoError(s.repo.Delete(s.ctx, store.DeleteInput{ID: "lvl_1"}))
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Save(s.ctx, store.SaveInput{})
	s.ErrorIs(err, store.ErrInvalidInput)

	_, err = s.repo.Save(s.ctx, store.SaveInput{Result: s.result, TTL: -time.Second})
	s.ErrorIs(err, store.ErrInvalidInput)

	_, err = s.repo.Get(s.ctx, store.GetInput{})
	s.ErrorIs(err, store.ErrInvalidInput)

	s.ErrorIs(s.repo.Delete(s.ctx, store.DeleteInput{}), store.ErrInvalidInput)
}

func (s *RedisRepositoryTestSuite) TestGetCorruptLevel() {
	s.Require().NoError(s.mr.Set("level:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, store.GetInput{ID: "bad"})
	s.Error(err)
	s.NotErrorIs(err, store.ErrNotFound)
}

func (s *RedisRepositoryTestSuite) TestRedisUnavailable() {
	s.mr.Close()

	_, err := s.repo.Save(s.ctx, store.SaveInput{Result: s.result})
	s.Error(err)
	_, err = s.repo.Get(s.ctx, store.GetInput{ID: "lvl_1"})
	s.Error(err)
	s.NotErrorIs(err, store.ErrNotFound)
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := store.NewRedisRepository(&store.Config{})
	s.ErrorIs(err, store.ErrInvalidInput)

	_, err = store.NewRedisRepository(&store.Config{Client: s.client, TTL: -time.Minute})
	s.ErrorIs(err, store.ErrInvalidInput)
}

func (s *RedisRepositoryTestSuite) TestDefaultsGenerateUniqueIDs() {
	repo, err := store.NewRedisRepository(&store.Config{Client: s.client})
	s.Require().NoError(err)

	a, err := repo.Save(s.ctx, store.SaveInput{Result: s.result})
	s.Require().NoError(err)
	b, err := repo.Save(s.ctx, store.SaveInput{Result: s.result})
	s.Require().NoError(err)

	s.NotEqual(a.Level.ID, b.Level.ID)
	s.Equal(2*time.Hour, s.mr.TTL("level:"+a.Level.ID))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
