package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/maxviazov/racha-stats-service/internal/config"
	"github.com/maxviazov/racha-stats-service/internal/model"
	"github.com/maxviazov/racha-stats-service/internal/ranking"
	"github.com/maxviazov/racha-stats-service/internal/repository"
)

// ComputationRecorder receives one observation per standings computation.
// metrics.Metrics satisfies it.
type ComputationRecorder interface {
	ObserveComputation(period string, took time.Duration, matches, athletes, teams, degraded int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveComputation(string, time.Duration, int, int, int, int) {}

// StandingsOptions carries the calendar and collation settings of the engine.
type StandingsOptions struct {
	Location  *time.Location
	Collation language.Tag
	// Now is the clock the current year is read from. Defaults to time.Now.
	Now func() time.Time
}

// StandingsOptionsFromConfig resolves the configured timezone and locale.
func StandingsOptionsFromConfig(cfg config.StatsConfig) (StandingsOptions, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return StandingsOptions{}, fmt.Errorf("load stats timezone %q: %w", cfg.Timezone, err)
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return StandingsOptions{}, fmt.Errorf("parse stats locale %q: %w", cfg.Locale, err)
	}
	return StandingsOptions{Location: loc, Collation: tag, Now: time.Now}, nil
}

// standingsService validates requests, reads a consistent snapshot of the match
// history and hands it to the ranking engine. Nothing is cached: every call recomputes.
type standingsService struct {
	tx       repository.TxManager
	rachas   repository.RachaRepository
	matches  repository.MatchRepository
	recorder ComputationRecorder
	opts     StandingsOptions
	log      zerolog.Logger
}

func NewStandingsService(
	tx repository.TxManager,
	rachas repository.RachaRepository,
	matches repository.MatchRepository,
	recorder ComputationRecorder,
	opts StandingsOptions,
	logger zerolog.Logger,
) StandingsService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	l := logger.With().Str("module", "service").Str("component", "standings").Logger()
	return &standingsService{tx: tx, rachas: rachas, matches: matches, recorder: recorder, opts: opts, log: l}
}

func (s *standingsService) GetStandings(ctx context.Context, rachaID string, q PeriodQuery) (model.Standings, error) {
	start := time.Now()

	var ferrs []FieldError
	id, idErr := parseRachaID(rachaID)
	if idErr != nil {
		ferrs = append(ferrs, *idErr)
	}
	period, perrs := parsePeriod(q)
	ferrs = append(ferrs, perrs...)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("racha_id_raw", rachaID).Interface("field_errors", ferrs).Msg("standings validation failed")
		return model.Standings{}, err
	}

	history, err := s.loadHistory(ctx, id)
	if err != nil {
		return model.Standings{}, err
	}

	out := ranking.Compute(history, period, ranking.Options{
		CurrentYear: s.currentYear(),
		Location:    s.opts.Location,
		Collation:   s.opts.Collation,
	})
	for _, issue := range out.DegradedRosters {
		s.log.Warn().
			Str("racha_id", id.String()).
			Str("match_id", issue.MatchID).
			Str("side", string(issue.Side)).
			Msg("roster could not be decoded; side contributes no athletes")
	}

	took := time.Since(start)
	s.recorder.ObserveComputation(out.Period.Kind, took, out.MatchCount, len(out.Athletes), len(out.Teams), len(out.DegradedRosters))
	s.log.Info().
		Dur("took", took).
		Str("racha_id", id.String()).
		Str("period", out.Period.Kind).
		Int("year", out.Period.Year).
		Int("quadrimester", out.Period.Quadrimester).
		Int("matches", out.MatchCount).
		Int("athletes", len(out.Athletes)).
		Int("teams", len(out.Teams)).
		Msg("standings computed")
	return out, nil
}

func (s *standingsService) ListYears(ctx context.Context, rachaID string) ([]int, error) {
	id, ferr := parseRachaID(rachaID)
	if ferr != nil {
		return nil, newInvalidInput([]FieldError{*ferr})
	}
	history, err := s.loadHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	return ranking.AvailableYears(history, s.opts.Location), nil
}

// loadHistory checks the racha and fetches its matches inside one read-only snapshot.
func (s *standingsService) loadHistory(ctx context.Context, id uuid.UUID) ([]model.MatchRecord, error) {
	var history []model.MatchRecord
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := s.rachas.GetByID(ctx, id); err != nil {
			return fmt.Errorf("get racha: %w", err)
		}
		out, err := s.matches.ListByRacha(ctx, id)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		history = out
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("racha_id", id.String()).Msg("load match history failed")
		return nil, err
	}
	return history, nil
}

func (s *standingsService) currentYear() int {
	return s.opts.Now().In(s.opts.Location).Year()
}

func parseRachaID(raw string) (uuid.UUID, *FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, &FieldError{Field: "racha_id", Message: "must not be empty"}
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &FieldError{Field: "racha_id", Message: "must be a valid UUID"}
	}
	return id, nil
}

// parsePeriod rejects only what cannot be interpreted. A quadrimester outside
// 1..3 is not an error: the engine degrades it to the whole year.
func parsePeriod(q PeriodQuery) (ranking.Period, []FieldError) {
	var ferrs []FieldError
	kind, ok := ranking.ParsePeriodKind(q.Period)
	if !ok {
		ferrs = append(ferrs, FieldError{Field: "period", Message: "must be one of all, year, quadrimester"})
	}
	p := ranking.Period{Kind: kind}

	if raw := strings.TrimSpace(q.Year); raw != "" {
		y, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			ferrs = append(ferrs, FieldError{Field: "year", Message: "must be an integer"})
		case y < 1 || y > 9999:
			ferrs = append(ferrs, FieldError{Field: "year", Message: "must be between 1 and 9999"})
		default:
			p.Year = y
		}
	}
	if raw := strings.TrimSpace(q.Quadrimester); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			ferrs = append(ferrs, FieldError{Field: "quadrimester", Message: "must be an integer"})
		} else {
			p.Quadrimester = n
		}
	}
	return p, ferrs
}
