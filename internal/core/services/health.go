package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
)

// Ensure HealthService implements the interface.
var _ driving.HealthService = (*HealthService)(nil)

// ErrBackendUnhealthy is returned when the backend answers but reports a
// status other than healthy.
var ErrBackendUnhealthy = errors.New("backend unhealthy")

// HealthService probes the scoring backend.
type HealthService struct {
	checker driven.HealthChecker
}

// NewHealthService creates a health service.
func NewHealthService(checker driven.HealthChecker) *HealthService {
	return &HealthService{checker: checker}
}

// Check probes the backend. The report is returned alongside
// ErrBackendUnhealthy when the backend answers with a degraded status.
func (s *HealthService) Check(ctx context.Context) (*domain.BackendHealth, error) {
	if s.checker == nil {
		return nil, fmt.Errorf("%w: no backend configured", domain.ErrNotFound)
	}
	h, err := s.checker.Health(ctx)
	if err != nil {
		return nil, err
	}
	if !h.Healthy() {
		return h, fmt.Errorf("%w: status %q", ErrBackendUnhealthy, h.Status)
	}
	return h, nil
}

// Endpoint returns the backend address being probed.
func (s *HealthService) Endpoint() string {
	if s.checker == nil {
		return ""
	}
	return s.checker.BaseURL()
}
