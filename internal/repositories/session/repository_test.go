package session

import (
	"context"
	"database/sql"
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

func (s *repositoryTestSuite) createSession(id string) *models.GameSession {
	session := &models.GameSession{ID: id, StartedAt: s.testNow}
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: session}))
	return session
}

func (s *repositoryTestSuite) TestCreateAndGetSession() {
	s.createSession("session-1")

	session, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal("session-1", session.ID)
	s.True(s.testNow.Equal(session.StartedAt))
	s.Nil(session.EndedAt)
	s.True(session.Active())
}

func (s *repositoryTestSuite) TestCreateSessionDuplicateID() {
	s.createSession("session-1")

	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.GameSession{ID: "session-1", StartedAt: s.testNow.Add(time.Minute)},
	})
	s.ErrorIs(err, ErrSessionExists)

	// The original start time is untouched
	session, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(s.testNow.Equal(session.StartedAt))
}

func (s *repositoryTestSuite) TestCreateSessionInvalidInput() {
	s.Error(s.repo.CreateSession(s.ctx, nil))
	s.Error(s.repo.CreateSession(s.ctx, &CreateSessionInput{}))
	s.Error(s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.GameSession{StartedAt: s.testNow},
	}))
	s.Error(s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.GameSession{ID: "session-1"},
	}))
}

func (s *repositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *repositoryTestSuite) TestEndSession() {
	s.createSession("session-1")
	endedAt := s.testNow.Add(10 * time.Minute)

	output, err := s.repo.EndSession(s.ctx, &EndSessionInput{SessionID: "session-1", EndedAt: endedAt})
	s.Require().NoError(err)
	s.False(output.AlreadyEnded)
	s.Require().NotNil(output.Session.EndedAt)
	s.True(endedAt.Equal(*output.Session.EndedAt))
	s.False(output.Session.Active())
}

func (s *repositoryTestSuite) TestEndSessionTwiceKeepsFirstEndTime() {
	s.createSession("session-1")
	first := s.testNow.Add(10 * time.Minute)
	second := s.testNow.Add(20 * time.Minute)

	_, err := s.repo.EndSession(s.ctx, &EndSessionInput{SessionID: "session-1", EndedAt: first})
	s.Require().NoError(err)

	output, err := s.repo.EndSession(s.ctx, &EndSessionInput{SessionID: "session-1", EndedAt: second})
	s.Require().NoError(err)
	s.True(output.AlreadyEnded)
	s.Require().NotNil(output.Session.EndedAt)
	s.True(first.Equal(*output.Session.EndedAt))
}

func (s *repositoryTestSuite) TestEndSessionNotFound() {
	_, err := s.repo.EndSession(s.ctx, &EndSessionInput{SessionID: "missing", EndedAt: s.testNow})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *repositoryTestSuite) TestEndSessionConcurrentOnlyOneWins() {
	s.createSession("session-1")

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			output, err := s.repo.EndSession(s.ctx, &EndSessionInput{
				SessionID: "session-1",
				EndedAt:   s.testNow.Add(time.Duration(i+1) * time.Minute),
			})
			if err == nil {
				results <- output.AlreadyEnded
			}
		}(i)
	}
	wg.Wait()
	close(results)

	winners := 0
	total := 0
	for alreadyEnded := range results {
		total++
		if !alreadyEnded {
			winners++
		}
	}
	s.Equal(workers, total)
	s.Equal(1, winners)
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
