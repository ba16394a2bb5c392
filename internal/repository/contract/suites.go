package contract

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maxviazov/racha-stats-service/internal/model"
	"github.com/maxviazov/racha-stats-service/internal/repository"
)

// MatchSeed describes one stored fixture. Status defaults to "finished".
type MatchSeed struct {
	PlayedAt time.Time
	Status   string
	A, B     model.MatchSide
	// NullScores stores SQL NULL instead of the side scores.
	NullScores bool
}

// Seeder writes fixtures through whatever path the implementation under test
// can offer; the repositories themselves are read-only.
type Seeder interface {
	SeedRacha(ctx context.Context, name string) (uuid.UUID, error)
	SeedMatch(ctx context.Context, rachaID uuid.UUID, m MatchSeed) error
}

type RachaFactory func(t *testing.T) (repository.RachaRepository, Seeder, func())

type MatchFactory func(t *testing.T) (repository.MatchRepository, Seeder, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, matches repository.MatchRepository, seed Seeder, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func RunRachaRepositoryContract(t *testing.T, makeRepo RachaFactory) {
	t.Helper()

	t.Run("get_existing", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		id, err := seed.SeedRacha(ctx, "Pelada de Quinta")
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != id || got.Name != "Pelada de Quinta" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), uuid.New())
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	t.Run("chronological_finished_only", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		racha, err := seed.SeedRacha(ctx, "R1")
		if err != nil {
			t.Fatalf("seed racha: %v", err)
		}
		other, err := seed.SeedRacha(ctx, "R2")
		if err != nil {
			t.Fatalf("seed racha: %v", err)
		}
		base := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
		seeds := []struct {
			racha uuid.UUID
			m     MatchSeed
		}{
			{racha, MatchSeed{PlayedAt: base.Add(48 * time.Hour), A: side("Azul", 2), B: side("Branco", 1)}},
			{racha, MatchSeed{PlayedAt: base, A: side("Azul", 0), B: side("Branco", 0)}},
			{racha, MatchSeed{PlayedAt: base.Add(24 * time.Hour), Status: "scheduled", A: side("Azul", 0), B: side("Branco", 0)}},
			{other, MatchSeed{PlayedAt: base, A: side("X", 1), B: side("Y", 1)}},
		}
		for _, s := range seeds {
			if err := seed.SeedMatch(ctx, s.racha, s.m); err != nil {
				t.Fatalf("seed match: %v", err)
			}
		}

		got, err := repo.ListByRacha(ctx, racha)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 finished matches, got %d", len(got))
		}
		if !got[0].PlayedAt.Equal(base) || !got[1].PlayedAt.Equal(base.Add(48*time.Hour)) {
			t.Fatalf("unexpected order: %v, %v", got[0].PlayedAt, got[1].PlayedAt)
		}
		if got[1].A.Score != 2 || got[1].B.Score != 1 || got[1].A.TeamName != "Azul" {
			t.Fatalf("unexpected sides: %+v", got[1])
		}
		for _, m := range got {
			if m.RachaID != racha || m.ID == "" {
				t.Fatalf("unexpected record: %+v", m)
			}
		}
	})

	t.Run("scores_and_rosters_tolerated", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		racha, err := seed.SeedRacha(ctx, "R")
		if err != nil {
			t.Fatalf("seed racha: %v", err)
		}
		a := side("Azul", 0)
		a.Roster = []byte("not json")
		b := side("Branco", 0)
		b.Roster = []byte(`[{"name":"Ana","goals":1}]`)
		if err := seed.SeedMatch(ctx, racha, MatchSeed{PlayedAt: time.Now().UTC(), A: a, B: b, NullScores: true}); err != nil {
			t.Fatalf("seed match: %v", err)
		}
		neg := side("Azul", -3)
		if err := seed.SeedMatch(ctx, racha, MatchSeed{PlayedAt: time.Now().UTC().Add(time.Minute), A: neg, B: side("Branco", 1)}); err != nil {
			t.Fatalf("seed match: %v", err)
		}

		got, err := repo.ListByRacha(ctx, racha)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].A.Score != 0 || got[0].B.Score != 0 {
			t.Fatalf("null scores should read as 0: %+v", got[0])
		}
		if string(got[0].A.Roster) != "not json" || string(got[0].B.Roster) != `[{"name":"Ana","goals":1}]` {
			t.Fatalf("rosters must be returned untouched: %q %q", got[0].A.Roster, got[0].B.Roster)
		}
		if got[1].A.Score != 0 {
			t.Fatalf("negative score should clamp to 0, got %d", got[1].A.Score)
		}
	})

	t.Run("empty_history", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		got, err := repo.ListByRacha(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %d", len(got))
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("snapshot_reads", func(t *testing.T) {
		tx, matches, seed, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		racha, err := seed.SeedRacha(ctx, "Snap")
		if err != nil {
			t.Fatalf("seed racha: %v", err)
		}
		if err := seed.SeedMatch(ctx, racha, MatchSeed{PlayedAt: time.Now().UTC(), A: side("A", 1), B: side("B", 0)}); err != nil {
			t.Fatalf("seed match: %v", err)
		}
		var first, second int
		err = tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
			got, err := matches.ListByRacha(ctx, racha)
			if err != nil {
				return err
			}
			first = len(got)
			// written outside the snapshot
			if err := seed.SeedMatch(context.Background(), racha, MatchSeed{PlayedAt: time.Now().UTC(), A: side("A", 2), B: side("B", 2)}); err != nil {
				return err
			}
			got, err = matches.ListByRacha(ctx, racha)
			if err != nil {
				return err
			}
			second = len(got)
			return nil
		})
		if err != nil {
			t.Fatalf("WithinReadOnlyTx: %v", err)
		}
		if first != 1 || second != 1 {
			t.Fatalf("expected stable snapshot of 1 match, got %d then %d", first, second)
		}
	})

	t.Run("error_propagates", func(t *testing.T) {
		tx, _, _, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		errMarker := assertErr("boom")
		err := tx.WithinReadOnlyTx(context.Background(), func(ctx context.Context) error {
			return errMarker
		})
		if err == nil || err.Error() != errMarker.Error() {
			t.Fatalf("expected marker error, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

func side(name string, score int) model.MatchSide {
	return model.MatchSide{TeamID: "", TeamName: name, Score: score}
}

// assertErr builds a sentinel error without importing errors to keep helpers local.
func assertErr(msg string) error { return &sentinel{msg} }

type sentinel struct{ s string }

func (e *sentinel) Error() string { return e.s }
