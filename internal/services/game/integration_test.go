package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/pinpoint/internal/common/clock"
	"github.com/KirkDiggler/pinpoint/internal/common/uuid"
	"github.com/KirkDiggler/pinpoint/internal/database"
	"github.com/KirkDiggler/pinpoint/internal/models"
	catalogRepo "github.com/KirkDiggler/pinpoint/internal/repositories/catalog"
	guessRepo "github.com/KirkDiggler/pinpoint/internal/repositories/guess"
	sessionRepo "github.com/KirkDiggler/pinpoint/internal/repositories/session"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) catalogRepo.Repository {
	repo, err := catalogRepo.NewStatic(&catalogRepo.Config{
		Images: []*models.Image{
			{ID: "img1", URL: "https://example.com/1.jpg", Name: "Lauterbrunnen", Latitude: 46.5008485, Longitude: 7.7061998},
			{ID: "img2", URL: "https://example.com/2.jpg", Name: "Stockholm", Latitude: 59.3293, Longitude: 18.0686},
			{ID: "img3", URL: "https://example.com/3.jpg", Name: "Quito", Latitude: -0.1807, Longitude: -78.4678},
		},
	})
	require.NoError(t, err)
	return repo
}

// backends builds the service over every real storage implementation
func backends(t *testing.T) map[string]func(t *testing.T) Service {
	return map[string]func(t *testing.T) Service{
		"redis": func(t *testing.T) Service {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { client.Close() })

			sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: client})
			require.NoError(t, err)
			guesses, err := guessRepo.NewRedis(&guessRepo.Config{RedisClient: client})
			require.NoError(t, err)

			return newTestService(t, sessions, guesses)
		},
		"sqlite": func(t *testing.T) Service {
			db, err := database.Open(context.Background(), database.MemoryPath)
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })
			require.NoError(t, database.Migrate(context.Background(), db))

			sessions, err := sessionRepo.NewSQLite(&sessionRepo.SQLiteConfig{DB: db})
			require.NoError(t, err)
			guesses, err := guessRepo.NewSQLite(&guessRepo.SQLiteConfig{DB: db})
			require.NoError(t, err)

			return newTestService(t, sessions, guesses)
		},
	}
}

func newTestService(t *testing.T, sessions sessionRepo.Repository, guesses guessRepo.Repository) Service {
	svc, err := New(&Config{
		SessionRepo:   sessions,
		GuessRepo:     guesses,
		CatalogRepo:   testCatalog(t),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	require.NoError(t, err)
	return svc
}

func TestGameFlow(t *testing.T) {
	for name, build := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := build(t)

			started, err := svc.StartNewSession(ctx, &StartNewSessionInput{})
			require.NoError(t, err)
			sessionID := started.Session.ID

			// Exact answer on the first image
			confirmed, err := svc.ConfirmGuess(ctx, &ConfirmGuessInput{
				ImageID:   "img1",
				SessionID: sessionID,
				Latitude:  46.5008485,
				Longitude: 7.7061998,
			})
			require.NoError(t, err)
			assert.InDelta(t, 0, confirmed.Guess.DistanceMeters, 1e-6)
			assert.Equal(t, 15, confirmed.Guess.Score)

			// A second guess for the same image fails and leaves the first in place
			_, err = svc.ConfirmGuess(ctx, &ConfirmGuessInput{
				ImageID:   "img1",
				SessionID: sessionID,
				Latitude:  10,
				Longitude: 10,
			})
			assert.ErrorIs(t, err, ErrDuplicateGuess)

			found, err := svc.FindGuess(ctx, &FindGuessInput{SessionID: sessionID, ImageID: "img1"})
			require.NoError(t, err)
			require.NotNil(t, found.Guess)
			assert.Equal(t, confirmed.Guess.ID, found.Guess.ID)

			next, err := svc.GetNextImage(ctx, &GetNextImageInput{SessionID: sessionID})
			require.NoError(t, err)
			require.NotNil(t, next.Image)
			assert.Equal(t, "img2", next.Image.ID)

			for _, imageID := range []string{"img2", "img3"} {
				_, err := svc.ConfirmGuess(ctx, &ConfirmGuessInput{
					ImageID:   imageID,
					SessionID: sessionID,
					Latitude:  0,
					Longitude: 0,
				})
				require.NoError(t, err)
			}

			progress, err := svc.GetSessionProgress(ctx, &GetSessionProgressInput{SessionID: sessionID})
			require.NoError(t, err)
			assert.Equal(t, 3, progress.Progress.ImageCount)
			assert.Equal(t, 3, progress.Progress.GuessCount)
			assert.True(t, progress.Progress.Complete())

			next, err = svc.GetNextImage(ctx, &GetNextImageInput{SessionID: sessionID})
			require.NoError(t, err)
			assert.True(t, next.Complete)

			summary, err := svc.GetSessionSummary(ctx, &GetSessionSummaryInput{SessionID: sessionID})
			require.NoError(t, err)
			require.Len(t, summary.Summary.Guesses, 3)
			assert.Equal(t, "img1", summary.Summary.Guesses[0].ImageID)
			assert.Equal(t, 15, summary.Summary.Meta.TotalScore)

			ended, err := svc.EndSession(ctx, &EndSessionInput{SessionID: sessionID})
			require.NoError(t, err)
			assert.False(t, ended.AlreadyEnded)
			require.NotNil(t, ended.Session.EndedAt)

			again, err := svc.EndSession(ctx, &EndSessionInput{SessionID: sessionID})
			require.NoError(t, err)
			assert.True(t, again.AlreadyEnded)
			assert.True(t, ended.Session.EndedAt.Equal(*again.Session.EndedAt))
		})
	}
}

func TestConfirmAfterEndIsRejected(t *testing.T) {
	for name, build := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := build(t)

			started, err := svc.StartNewSession(ctx, &StartNewSessionInput{})
			require.NoError(t, err)
			sessionID := started.Session.ID

			_, err = svc.EndSession(ctx, &EndSessionInput{SessionID: sessionID})
			require.NoError(t, err)

			_, err = svc.ConfirmGuess(ctx, &ConfirmGuessInput{
				ImageID:   "img1",
				SessionID: sessionID,
				Latitude:  46.5,
				Longitude: 7.7,
			})
			assert.ErrorIs(t, err, ErrSessionClosed)

			progress, err := svc.GetSessionProgress(ctx, &GetSessionProgressInput{SessionID: sessionID})
			require.NoError(t, err)
			assert.Equal(t, 0, progress.Progress.GuessCount)

			summary, err := svc.GetSessionSummary(ctx, &GetSessionSummaryInput{SessionID: sessionID})
			require.NoError(t, err)
			assert.Equal(t, 0, summary.Summary.Meta.TotalScore)
			assert.Equal(t, 0.0, summary.Summary.Meta.AverageDistance)
		})
	}
}

func TestConcurrentConfirmStoresOneGuess(t *testing.T) {
	for name, build := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := build(t)

			started, err := svc.StartNewSession(ctx, &StartNewSessionInput{})
			require.NoError(t, err)
			sessionID := started.Session.ID

			const workers = 16
			var wg sync.WaitGroup
			errs := make(chan error, workers)
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, err := svc.ConfirmGuess(ctx, &ConfirmGuessInput{
						ImageID:   "img2",
						SessionID: sessionID,
						Latitude:  59.3293 + float64(i)*0.001,
						Longitude: 18.0686,
					})
					errs <- err
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
				assert.True(t, errors.Is(err, ErrDuplicateGuess), fmt.Sprintf("unexpected error: %v", err))
			}
			assert.Equal(t, 1, succeeded)

			progress, err := svc.GetSessionProgress(ctx, &GetSessionProgressInput{SessionID: sessionID})
			require.NoError(t, err)
			assert.Equal(t, 1, progress.Progress.GuessCount)
		})
	}
}

func TestUnknownSession(t *testing.T) {
	for name, build := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := build(t)

			found, err := svc.FindSession(ctx, &FindSessionInput{SessionID: "missing"})
			require.NoError(t, err)
			assert.Nil(t, found.Session)

			_, err = svc.GetSessionProgress(ctx, &GetSessionProgressInput{SessionID: "missing"})
			assert.ErrorIs(t, err, ErrSessionNotFound)

			_, err = svc.GetSessionSummary(ctx, &GetSessionSummaryInput{SessionID: "missing"})
			assert.ErrorIs(t, err, ErrSessionNotFound)

			_, err = svc.EndSession(ctx, &EndSessionInput{SessionID: "missing"})
			assert.ErrorIs(t, err, ErrSessionNotFound)

			_, err = svc.ConfirmGuess(ctx, &ConfirmGuessInput{ImageID: "nope", SessionID: "missing"})
			assert.ErrorIs(t, err, ErrImageNotFound)
		})
	}
}
