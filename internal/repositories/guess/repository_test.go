package guess

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/pinpoint/internal/database"
	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// repositoryTestSuite runs the same behaviour checks against every backend
type repositoryTestSuite struct {
	suite.Suite
	newRepo  func() Repository
	teardown func()
	repo     Repository
	ctx      context.Context
	testNow  time.Time
}

func (s *repositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *repositoryTestSuite) TearDownTest() {
	if s.teardown != nil {
		s.teardown()
	}
}

func (s *repositoryTestSuite) newGuess(id, sessionID, imageID string, createdAt time.Time) *models.Guess {
	return &models.Guess{
		ID:             id,
		SessionID:      sessionID,
		ImageID:        imageID,
		Longitude:      17.9,
		Latitude:       59.3,
		ImageLongitude: 18.0686,
		ImageLatitude:  59.3293,
		Score:          0,
		DistanceMeters: 10234.5,
		CreatedAt:      createdAt,
	}
}

func (s *repositoryTestSuite) TestCreateAndGetGuess() {
	expected := s.newGuess("guess-1", "session-1", "img1", s.testNow)
	s.Require().NoError(s.repo.CreateGuess(s.ctx, &CreateGuessInput{Guess: expected}))

	actual, err := s.repo.GetGuess(s.ctx, &GetGuessInput{SessionID: "session-1", ImageID: "img1"})
	s.Require().NoError(err)
	s.Equal(expected.ID, actual.ID)
	s.Equal(expected.SessionID, actual.SessionID)
	s.Equal(expected.ImageID, actual.ImageID)
	s.Equal(expected.Longitude, actual.Longitude)
	s.Equal(expected.Latitude, actual.Latitude)
	s.Equal(expected.ImageLongitude, actual.ImageLongitude)
	s.Equal(expected.ImageLatitude, actual.ImageLatitude)
	s.Equal(expected.Score, actual.Score)
	s.Equal(expected.DistanceMeters, actual.DistanceMeters)
	s.True(expected.CreatedAt.Equal(actual.CreatedAt))
}

func (s *repositoryTestSuite) TestGetGuessNotFound() {
	_, err := s.repo.GetGuess(s.ctx, &GetGuessInput{SessionID: "session-1", ImageID: "img1"})
	s.ErrorIs(err, ErrGuessNotFound)
}

func (s *repositoryTestSuite) TestCreateGuessDuplicateImage() {
	s.Require().NoError(s.repo.CreateGuess(s.ctx, &CreateGuessInput{
		Guess: s.newGuess("guess-1", "session-1", "img1", s.testNow),
	}))

	err := s.repo.CreateGuess(s.ctx, &CreateGuessInput{
		Guess: s.newGuess("guess-2", "session-1", "img1", s.testNow.Add(time.Second)),
	})
	s.ErrorIs(err, ErrGuessExists)

	// The first guess stays in place
	actual, err := s.repo.GetGuess(s.ctx, &GetGuessInput{SessionID: "session-1", ImageID: "img1"})
	s.Require().NoError(err)
	s.Equal("guess-1", actual.ID)

	count, err := s.repo.CountGuesses(s.ctx, &CountGuessesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(1, count.Count)
}

func (s *repositoryTestSuite) TestSameImageInDifferentSessions() {
	s.Require().NoError(s.repo.CreateGuess(s.ctx, &CreateGuessInput{
		Guess: s.newGuess("guess-1", "session-1", "img1", s.testNow),
	}))
	s.Require().NoError(s.repo.CreateGuess(s.ctx, &CreateGuessInput{
		Guess: s.newGuess("guess-2", "session-2", "img1", s.testNow),
	}))

	for _, sessionID := range []string{"session-1", "session-2"} {
		count, err := s.repo.CountGuesses(s.ctx, &CountGuessesInput{SessionID: sessionID})
		s.Require().NoError(err)
		s.Equal(1, count.Count)
	}
}

func (s *repositoryTestSuite) TestConcurrentCreateOnlyOneWins() {
	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.repo.CreateGuess(s.ctx, &CreateGuessInput{
				Guess: s.newGuess(fmt.Sprintf("guess-%02d", i), "session-1", "img1", s.testNow),
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errors.Is(err, ErrGuessExists), "unexpected error: %v", err)
	}
	s.Equal(1, succeeded)

	count, err := s.repo.CountGuesses(s.ctx, &CountGuessesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(1, count.Count)
}

func (s *repositoryTestSuite) TestListGuessesOrderedByCreationThenID() {
	// Inserted out of order, with two sharing a timestamp
	inputs := []*models.Guess{
		s.newGuess("guess-c", "session-1", "img3", s.testNow.Add(2*time.Minute)),
		s.newGuess("guess-b", "session-1", "img2", s.testNow),
		s.newGuess("guess-a", "session-1", "img1", s.testNow),
		s.newGuess("guess-z", "session-2", "img1", s.testNow),
	}
	for _, g := range inputs {
		s.Require().NoError(s.repo.CreateGuess(s.ctx, &CreateGuessInput{Guess: g}))
	}

	output, err := s.repo.ListGuesses(s.ctx, &ListGuessesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Guesses, 3)
	s.Equal("guess-a", output.Guesses[0].ID)
	s.Equal("guess-b", output.Guesses[1].ID)
	s.Equal("guess-c", output.Guesses[2].ID)
}

func (s *repositoryTestSuite) TestListGuessesEmpty() {
	output, err := s.repo.ListGuesses(s.ctx, &ListGuessesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.NotNil(output.Guesses)
	s.Empty(output.Guesses)

	count, err := s.repo.CountGuesses(s.ctx, &CountGuessesInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(0, count.Count)
}

func (s *repositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.CreateGuess(s.ctx, nil))
	s.Error(s.repo.CreateGuess(s.ctx, &CreateGuessInput{Guess: &models.Guess{ID: "guess-1"}}))

	_, err := s.repo.GetGuess(s.ctx, &GetGuessInput{SessionID: "session-1"})
	s.Error(err)

	_, err = s.repo.ListGuesses(s.ctx, &ListGuessesInput{})
	s.Error(err)

	_, err = s.repo.CountGuesses(s.ctx, nil)
	s.Error(err)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	var mr *miniredis.Miniredis
	var client *redis.Client

	s := &repositoryTestSuite{}
	s.newRepo = func() Repository {
		var err error
		mr, err = miniredis.Run()
		s.Require().NoError(err)

		client = redis.NewClient(&redis.Options{
			Addr: mr.Addr(),
		})

		repo, err := NewRedis(&Config{
			RedisClient: client,
		})
		s.Require().NoError(err)
		return repo
	}
	s.teardown = func() {
		client.Close()
		mr.Close()
	}

	suite.Run(t, s)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	var db *sql.DB

	s := &repositoryTestSuite{}
	s.newRepo = func() Repository {
		var err error
		db, err = database.Open(context.Background(), database.MemoryPath)
		s.Require().NoError(err)
		s.Require().NoError(database.Migrate(context.Background(), db))

		repo, err := NewSQLite(&SQLiteConfig{
			DB: db,
		})
		s.Require().NoError(err)
		return repo
	}
	s.teardown = func() {
		db.Close()
	}

	suite.Run(t, s)
}

func TestNewRedisValidation(t *testing.T) {
	_, err := NewRedis(nil)
	assert.Error(t, err)

	_, err = NewRedis(&Config{})
	assert.Error(t, err)
}

func TestNewSQLiteValidation(t *testing.T) {
	_, err := NewSQLite(nil)
	assert.Error(t, err)

	_, err = NewSQLite(&SQLiteConfig{})
	assert.Error(t, err)
}
