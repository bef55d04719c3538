package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"helloapi/internal/health"
	"helloapi/internal/logging"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	checkOK     = "ok"
	checkFailed = "failed"
)

// ErrUnhealthy is returned when at least one dependency probe failed.
var ErrUnhealthy = errors.New("one or more dependencies are unhealthy")

// HealthReport is the service-level DTO for readiness results.
// Checks maps each probe name to "ok" or "failed"; probe errors are never exposed.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthService aggregates dependency probes into a single readiness verdict.
type HealthService interface {
	// Check runs every registered probe and returns the report.
	// The report is always non-nil; err is ErrUnhealthy when any probe failed.
	Check(ctx context.Context) (*HealthReport, error)
}

type healthService struct {
	checkers []health.Checker
	timeout  time.Duration
	loc      *time.Location
}

// NewHealthService constructs a HealthService. Each probe gets its own timeout;
// a non-positive timeout leaves probes bounded only by the caller's context.
func NewHealthService(timeout time.Duration, loc *time.Location, checkers ...health.Checker) HealthService {
	return &healthService{checkers: checkers, timeout: timeout, loc: loc}
}

func (s *healthService) Check(ctx context.Context) (*HealthReport, error) {
	report := &HealthReport{Status: StatusHealthy}
	if len(s.checkers) == 0 {
		return report, nil
	}

	var (
		mu     sync.Mutex
		failed bool
		g      errgroup.Group
	)
	report.Checks = make(map[string]string, len(s.checkers))

	// Probes never return errors to the group so a single failure does not
	// cancel the others.
	for _, c := range s.checkers {
		g.Go(func() error {
			err := s.probe(ctx, c)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = true
				report.Checks[c.Name()] = checkFailed
				logging.JSON(s.loc, map[string]any{
					"component": "health",
					"event":     "health_check_failed",
					"status":    "error",
					"check":     c.Name(),
					"error":     err.Error(),
				})
				return nil
			}
			report.Checks[c.Name()] = checkOK
			return nil
		})
	}
	_ = g.Wait()

	if failed {
		report.Status = StatusUnhealthy
		return report, ErrUnhealthy
	}
	return report, nil
}

func (s *healthService) probe(ctx context.Context, c health.Checker) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return c.Check(ctx)
}
