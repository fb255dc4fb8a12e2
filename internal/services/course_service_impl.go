package services

import (
	"context"

	"github.com/Bigyayos/appgolf/internal/courses"
	"github.com/Bigyayos/appgolf/internal/errors"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/metrics"
)

type courseImporter interface {
	Import(ctx context.Context, url string) (*courses.CourseInfo, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	importer courseImporter
	monitor  *courses.HealthMonitor
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// newCourseService creates a new course service implementation
func newCourseService(importer courseImporter, log logger.Logger, m *metrics.Metrics) CourseService {
	return &courseServiceImpl{importer: importer, monitor: courses.NewHealthMonitor(), logger: log, metrics: m}
}

// Import reads par and ratings from a scorecard page
func (s *courseServiceImpl) Import(ctx context.Context, url string) (*courses.CourseInfo, error) {
	if url == "" {
		return nil, errors.ValidationError("url is required", nil).WithOperation("ImportCourse")
	}

	info, err := s.importer.Import(ctx, url)
	if err != nil {
		s.metrics.CourseImports.WithLabelValues("failure").Inc()
		s.monitor.RecordFailure(url, err)
		s.logger.Warn("Course import failed", "url", url, "error", err)
		return nil, errors.ServiceError("failed to import course", err).WithOperation("ImportCourse").WithDetails(err.Error())
	}

	s.metrics.CourseImports.WithLabelValues("success").Inc()
	s.monitor.RecordSuccess()
	s.logger.Info("Course imported", "name", info.Name, "par", info.Par, "slope", info.SlopeRating)
	return info, nil
}

// Health summarizes recent import outcomes
func (s *courseServiceImpl) Health() courses.HealthStatus {
	return s.monitor.Status()
}
