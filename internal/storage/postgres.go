package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"cv-builder/internal/domain"
)

// PostgresRepository persists one document per user as a JSONB column.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// NewPool connects to the resumes database using the given DSN.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.ResumeDocument, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT document FROM resume_documents WHERE user_id = $1`, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var doc domain.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *PostgresRepository) Set(ctx context.Context, userID uuid.UUID, doc *domain.ResumeDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resume_documents (user_id, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		userID, raw, time.Now())
	return err
}

func (r *PostgresRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM resume_documents WHERE user_id = $1`, userID)
	return err
}

func (r *PostgresRepository) LogExport(ctx context.Context, userID uuid.UUID, template, fileName string, pages int) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO export_log (id, user_id, template, file_name, pages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), userID, template, fileName, pages, time.Now())
	return err
}
