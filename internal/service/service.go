package service

import (
	"fmt"
	"time"

	"github.com/Dan9191/serenity-service/internal/advice"
	"github.com/Dan9191/serenity-service/internal/forecast"
	"github.com/Dan9191/serenity-service/internal/kpi"
	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/report"
	"github.com/Dan9191/serenity-service/internal/scenario"
	"github.com/Dan9191/serenity-service/internal/schedule"
	"github.com/Dan9191/serenity-service/internal/score"
	"github.com/Dan9191/serenity-service/internal/utils"
	"github.com/sirupsen/logrus"
)

// Service computes projections on behalf of the transport layers
type Service struct {
	log *logrus.Logger
	now func() time.Time
	loc *time.Location
}

// Option configures a Service
type Option func(*Service)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the time zone in which "today" is read
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// NewService initializes a new service
func NewService(log *logrus.Logger, opts ...Option) *Service {
	s := &Service{log: log, now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Anchor returns today's date in the service location
func (s *Service) Anchor() time.Time {
	return utils.Day(s.now().In(s.loc))
}

// Project computes a projection anchored on today
func (s *Service) Project(req models.ProjectionRequest) (*models.ProjectionResult, error) {
	return s.ProjectAt(s.Anchor(), req)
}

// ProjectAt computes a projection anchored on the given date
func (s *Service) ProjectAt(anchor time.Time, req models.ProjectionRequest) (*models.ProjectionResult, error) {
	res, err := ComputeProjection(anchor, req)
	if err != nil {
		s.log.Errorf("Projection failed: %v", err)
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"entries":      len(req.Entries),
		"horizon_days": res.Meta.HorizonDays,
		"score":        res.Score.Score,
		"level":        res.Score.Level,
	}).Info("Projection computed")
	return res, nil
}

// QuickScore scores five declared monthly figures
func (s *Service) QuickScore(in models.QuickInput) (models.QuickResult, error) {
	res, err := score.Quick(in)
	if err != nil {
		s.log.Debugf("Quick score rejected: %v", err)
		return models.QuickResult{}, err
	}
	s.log.Infof("Quick score computed: %d (%s)", res.Score, res.Level)
	return res, nil
}

// Report computes a projection and wraps it into the document payload
func (s *Service) Report(req models.ProjectionRequest, disclaimer string) (*report.Report, error) {
	res, err := s.Project(req)
	if err != nil {
		return nil, err
	}
	r := report.Build(res, s.now(), disclaimer)
	return &r, nil
}

// ComputeProjection is the pure projection pipeline: same anchor and request,
// same result.
func ComputeProjection(anchor time.Time, req models.ProjectionRequest) (*models.ProjectionResult, error) {
	anchor = utils.Day(anchor)
	horizon := forecast.ClampHorizon(req.HorizonDays)

	sc := models.DefaultScenario()
	if req.Scenario != nil {
		sc = req.Scenario.Normalized()
	}

	entries := scenario.Apply(req.Entries, sc, anchor)

	events, err := schedule.Events(entries, anchor, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to generate events: %w", err)
	}
	curve := forecast.Simulate(req.Base, events, anchor, horizon)

	k := kpi.Compute(entries)

	return &models.ProjectionResult{
		Meta: models.Meta{
			Currency:    req.Currency,
			HorizonDays: horizon,
		},
		Inputs: models.Inputs{
			Base:     req.Base,
			Scenario: sc,
		},
		KPI:        k,
		Score:      score.FromKPI(k),
		Milestones: forecast.MilestonesOf(curve),
		Curve:      curve,
		Breakdown: models.Breakdown{
			ByCategory:   kpi.ByCategory(k),
			ByRecurrence: kpi.ByRecurrence(entries),
		},
		Tips: advice.Tips(advice.FromKPI(k), req.Currency),
	}, nil
}
