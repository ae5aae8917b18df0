package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("resume not found")

// ErrNoStorage is returned when the service was started without a database.
var ErrNoStorage = errors.New("storage is not configured")

// ResumesRepo persists whole resume records. Saves are wholesale upserts;
// there is no partial-update contract. Every payload is validated against
// the resume schema on both sides of the boundary so stored shape is never
// trusted implicitly.
type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) Save(ctx context.Context, rec *domain.ResumeRecord) error {
	if r.pool == nil {
		return ErrNoStorage
	}
	if err := model.Validate(rec.Data); err != nil {
		return fmt.Errorf("refusing to save invalid resume %s: %w", rec.ID, err)
	}

	dataB, err := json.Marshal(rec.Data)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, title, template, sidebar_color, data, last_modified)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, template = EXCLUDED.template, sidebar_color = EXCLUDED.sidebar_color, data = EXCLUDED.data, last_modified = EXCLUDED.last_modified`,
		rec.ID, rec.UserID, rec.Title, rec.Template, rec.SidebarColor, dataB, rec.LastModified)
	return err
}

func (r *ResumesRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ResumeRecord, error) {
	if r.pool == nil {
		return nil, ErrNoStorage
	}

	rec := &domain.ResumeRecord{}
	var dataB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, title, template, sidebar_color, data, last_modified
		FROM resumes WHERE id = $1`, id).
		Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Template, &rec.SidebarColor, &dataB, &rec.LastModified)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	data, err := model.FromJSON(dataB)
	if err != nil {
		return nil, fmt.Errorf("stored resume %s does not conform to schema: %w", id, err)
	}
	rec.Data = data
	return rec, nil
}

func (r *ResumesRepo) ListByUser(ctx context.Context, userID string) ([]*domain.ResumeRecord, error) {
	if r.pool == nil {
		return nil, ErrNoStorage
	}

	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, template, sidebar_color, data, last_modified
		FROM resumes WHERE user_id = $1 ORDER BY last_modified DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ResumeRecord
	for rows.Next() {
		rec := &domain.ResumeRecord{}
		var dataB []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Template, &rec.SidebarColor, &dataB, &rec.LastModified); err != nil {
			return nil, err
		}
		data, err := model.FromJSON(dataB)
		if err != nil {
			return nil, fmt.Errorf("stored resume %s does not conform to schema: %w", rec.ID, err)
		}
		rec.Data = data
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *ResumesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return ErrNoStorage
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
