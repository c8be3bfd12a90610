package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"archivo/internal/model"
	"archivo/internal/repository"
	"archivo/internal/stats"
)

// StatsService computes the dashboard aggregates. Failures are logged here;
// handlers only report them.
type StatsService interface {
	// Records counts records archived between fechaInicio and fechaFin
	// (YYYY-MM-DD, inclusive). Malformed bounds are ignored.
	Records(ctx context.Context, fechaInicio, fechaFin string) (*stats.RecordStats, error)
	FUIDs(ctx context.Context, usuario string) (*stats.FUIDStats, error)
	Patients(ctx context.Context, usuario string) (*stats.PatientStats, error)
}

type statsService struct {
	repo repository.StatsRepository
	log  *zap.Logger
	loc  *time.Location
	now  func() time.Time
}

// NewStatsService constructs a StatsService. Ages are computed against the
// current date in loc.
func NewStatsService(repo repository.StatsRepository, log *zap.Logger, loc *time.Location) StatsService {
	if loc == nil {
		loc = time.UTC
	}
	return &statsService{repo: repo, log: log.Named("stats"), loc: loc, now: time.Now}
}

func (s *statsService) Records(ctx context.Context, fechaInicio, fechaFin string) (*stats.RecordStats, error) {
	out, err := s.repo.RecordStats(ctx, parseDate(fechaInicio), parseDate(fechaFin))
	if err != nil {
		s.log.Error("record_stats_failed", zap.Error(err),
			zap.String("fecha_inicio", fechaInicio), zap.String("fecha_fin", fechaFin))
		return nil, err
	}
	return out, nil
}

func (s *statsService) FUIDs(ctx context.Context, usuario string) (*stats.FUIDStats, error) {
	usuario = strings.TrimSpace(usuario)
	out, err := s.repo.FUIDStats(ctx, usuario)
	if err != nil {
		s.log.Error("fuid_stats_failed", zap.Error(err), zap.String("usuario", usuario))
		return nil, err
	}
	return out, nil
}

func (s *statsService) Patients(ctx context.Context, usuario string) (*stats.PatientStats, error) {
	usuario = strings.TrimSpace(usuario)
	out, err := s.repo.PatientStats(ctx, usuario)
	if err != nil {
		s.log.Error("patient_stats_failed", zap.Error(err), zap.String("usuario", usuario))
		return nil, err
	}
	births, err := s.repo.PatientBirthDates(ctx, usuario)
	if err != nil {
		s.log.Error("patient_ages_failed", zap.Error(err), zap.String("usuario", usuario))
		return nil, err
	}

	summary := stats.SummarizeAges(births, s.now().In(s.loc))
	out.PromedioEdad = summary.Mean
	out.GruposEdad = summary.Bands
	return out, nil
}

func parseDate(v string) *time.Time {
	d, err := model.ParseDate(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &d.Time
}
