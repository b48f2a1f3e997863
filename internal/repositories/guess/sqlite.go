package guess

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/pinpoint/internal/database"
	"github.com/KirkDiggler/pinpoint/internal/models"
)

const guessColumns = `id, session_id, image_id, longitude, latitude,
	image_longitude, image_latitude, score, distance_meters, created_at`

// SQLiteConfig holds configuration for the SQLite guess repository
type SQLiteConfig struct {
	// DB must already have the schema applied
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed guess repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// CreateGuess inserts a guess; the UNIQUE(session_id, image_id) constraint rejects a second one
func (r *sqliteRepository) CreateGuess(ctx context.Context, input *CreateGuessInput) error {
	if err := validateCreate(input); err != nil {
		return err
	}

	g := input.Guess
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO guesses (`+guessColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.SessionID, g.ImageID, g.Longitude, g.Latitude,
		g.ImageLongitude, g.ImageLatitude, g.Score, g.DistanceMeters, g.CreatedAt.UnixMicro(),
	)
	if err != nil {
		if database.IsUniqueConstraintErr(err) {
			return ErrGuessExists
		}
		return fmt.Errorf("failed to create guess: %w", err)
	}

	return nil
}

// GetGuess retrieves the guess for a session and image
func (r *sqliteRepository) GetGuess(ctx context.Context, input *GetGuessInput) (*models.Guess, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+guessColumns+` FROM guesses WHERE session_id = ? AND image_id = ?`,
		input.SessionID, input.ImageID,
	)

	g, err := scanGuess(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuessNotFound
		}
		return nil, fmt.Errorf("failed to get guess: %w", err)
	}

	return g, nil
}

// ListGuesses returns the guesses of a session in creation order
func (r *sqliteRepository) ListGuesses(ctx context.Context, input *ListGuessesInput) (*ListGuessesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+guessColumns+` FROM guesses WHERE session_id = ? ORDER BY created_at, id`,
		input.SessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guesses: %w", err)
	}
	defer rows.Close()

	guesses := make([]*models.Guess, 0)
	for rows.Next() {
		g, err := scanGuess(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guess: %w", err)
		}
		guesses = append(guesses, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list guesses: %w", err)
	}

	return &ListGuessesOutput{Guesses: guesses}, nil
}

// CountGuesses counts the guesses of a session
func (r *sqliteRepository) CountGuesses(ctx context.Context, input *CountGuessesInput) (*CountGuessesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM guesses WHERE session_id = ?`,
		input.SessionID,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count guesses: %w", err)
	}

	return &CountGuessesOutput{Count: count}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGuess(row scanner) (*models.Guess, error) {
	var g models.Guess
	var createdAt int64
	err := row.Scan(
		&g.ID, &g.SessionID, &g.ImageID, &g.Longitude, &g.Latitude,
		&g.ImageLongitude, &g.ImageLatitude, &g.Score, &g.DistanceMeters, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	g.CreatedAt = time.UnixMicro(createdAt).UTC()
	return &g, nil
}
