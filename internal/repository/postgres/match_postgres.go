package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/racha-stats-service/internal/model"
	"github.com/maxviazov/racha-stats-service/internal/repository"
)

type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

// Rosters are read as raw text: the engine decodes them and tolerates garbage.
// Missing scores are read as 0 and negative ones are clamped.
const listFinishedMatchesSQL = `
	SELECT
		m.id::text,
		m.racha_id,
		m.played_at,
		COALESCE(m.team_a_id, ''), COALESCE(m.team_a_name, ''), COALESCE(m.team_a_logo, ''),
		GREATEST(COALESCE(m.score_a, 0), 0),
		m.roster_a,
		COALESCE(m.team_b_id, ''), COALESCE(m.team_b_name, ''), COALESCE(m.team_b_logo, ''),
		GREATEST(COALESCE(m.score_b, 0), 0),
		m.roster_b,
		m.created_at,
		m.updated_at
	FROM matches m
	WHERE m.racha_id = $1 AND m.status = 'finished'
	ORDER BY m.played_at, m.id`

func (r *matchRepository) ListByRacha(ctx context.Context, rachaID uuid.UUID) ([]model.MatchRecord, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, listFinishedMatchesSQL, rachaID)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.MatchRecord, 0, 64)
	for rows.Next() {
		var (
			m         model.MatchRecord
			updatedAt *time.Time
		)
		if err := rows.Scan(
			&m.ID, &m.RachaID, &m.PlayedAt,
			&m.A.TeamID, &m.A.TeamName, &m.A.TeamLogo, &m.A.Score, &m.A.Roster,
			&m.B.TeamID, &m.B.TeamName, &m.B.TeamLogo, &m.B.Score, &m.B.Roster,
			&m.CreatedAt, &updatedAt,
		); err != nil {
			return nil, repository.MapPgError(err)
		}
		if updatedAt != nil {
			m.UpdatedAt = *updatedAt
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.MatchRepository = (*matchRepository)(nil)
