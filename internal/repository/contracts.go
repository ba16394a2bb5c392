package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// Standings only read, so the single entry point opens a read-only snapshot.
type TxManager interface {
	WithinReadOnlyTx(ctx context.Context, fn TxFunc) error
}

// RachaRepository resolves tenants.
type RachaRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Racha, error)
}

// MatchRepository is the match-history provider of the standings engine.
// ListByRacha returns every played match of the tenant in chronological order,
// rosters untouched as stored.
type MatchRepository interface {
	ListByRacha(ctx context.Context, rachaID uuid.UUID) ([]model.MatchRecord, error)
}
