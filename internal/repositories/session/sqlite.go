package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/pinpoint/internal/database"
	"github.com/KirkDiggler/pinpoint/internal/models"
)

// SQLiteConfig holds configuration for the SQLite session repository
type SQLiteConfig struct {
	// DB must already have the schema applied
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed session repository
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

// CreateSession inserts a new session row
func (r *sqliteRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if err := validateCreate(input); err != nil {
		return err
	}

	var endedAt sql.NullInt64
	if input.Session.EndedAt != nil {
		endedAt = sql.NullInt64{Int64: input.Session.EndedAt.UnixMicro(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at, ended_at) VALUES (?, ?, ?)`,
		input.Session.ID, input.Session.StartedAt.UnixMicro(), endedAt,
	)
	if err != nil {
		if database.IsUniqueConstraintErr(err) {
			return ErrSessionExists
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetSession retrieves a session row by ID
func (r *sqliteRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	var startedAt int64
	var endedAt sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT started_at, ended_at FROM sessions WHERE id = ?`,
		input.SessionID,
	).Scan(&startedAt, &endedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := &models.GameSession{
		ID:        input.SessionID,
		StartedAt: time.UnixMicro(startedAt).UTC(),
	}
	if endedAt.Valid {
		t := time.UnixMicro(endedAt.Int64).UTC()
		session.EndedAt = &t
	}

	return session, nil
}

// EndSession sets ended_at with a conditional update so it is written at most once
func (r *sqliteRepository) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if err := validateEnd(input); err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ? WHERE id = ? AND ended_at IS NULL`,
		input.EndedAt.UnixMicro(), input.SessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}

	// Zero rows means either a missing session or one that already ended
	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	return &EndSessionOutput{
		Session:      session,
		AlreadyEnded: affected == 0,
	}, nil
}
