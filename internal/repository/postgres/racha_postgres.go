package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/racha-stats-service/internal/model"
	"github.com/maxviazov/racha-stats-service/internal/repository"
)

type rachaRepository struct{ pool *pgxpool.Pool }

func NewRachaRepository(pool *pgxpool.Pool) repository.RachaRepository {
	return &rachaRepository{pool: pool}
}

func (r *rachaRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Racha, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Racha{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM rachas WHERE id = $1`, id,
	)
	var out model.Racha
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Racha{}, repository.ErrNotFound
		}
		return model.Racha{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.RachaRepository = (*rachaRepository)(nil)
