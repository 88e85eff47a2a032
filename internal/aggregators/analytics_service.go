package aggregators

import (
	"context"
	"time"

	"streaming-analytics/internal/models"
)

const defaultRecentEventsLimit = 50

// RecentEventReader reads the newest persisted events for the dashboard feed.
//
//go:generate mockgen -source=analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type RecentEventReader interface {
	RecentEvents(ctx context.Context, limit int) ([]*models.Event, error)
}

// AnalyticsService is the read API consumed by the dashboard collaborator.
// Every query answers from live bucket state except GetRecentEvents, which
// reads the tail of the durable log.
type AnalyticsService interface {
	GetMetrics(ctx context.Context, window models.WindowSize) (*models.MetricsSummary, error)
	GetTopTitles(ctx context.Context, window models.WindowSize, n int) ([]models.TitleCount, error)
	GetErrorBreakdown(ctx context.Context, window models.WindowSize) (*models.ErrorBreakdown, error)
	GetGeoDistribution(ctx context.Context, window models.WindowSize) (*models.GeoDistribution, error)
	GetDevicePlatformStats(ctx context.Context, window models.WindowSize) (*models.DevicePlatformStats, error)
	GetRecentEvents(ctx context.Context, limit int) ([]*models.Event, error)
}

type analyticsService struct {
	aggregator *WindowAggregator
	events     RecentEventReader
	now        func() time.Time
}

func NewAnalyticsService(aggregator *WindowAggregator, events RecentEventReader) AnalyticsService {
	return &analyticsService{
		aggregator: aggregator,
		events:     events,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *analyticsService) GetMetrics(ctx context.Context, window models.WindowSize) (*models.MetricsSummary, error) {
	agg, err := s.aggregator.Query(window, s.now())
	if err != nil {
		return nil, err
	}

	minutes := window.Duration().Minutes()
	errorRate := 0.0
	if agg.TotalEvents > 0 {
		errorRate = float64(agg.ErrorCount) / float64(agg.TotalEvents) * 100
	}

	return &models.MetricsSummary{
		WindowSize:        window,
		WindowStart:       agg.WindowStart,
		WindowEnd:         agg.WindowEnd,
		PlaysPerMinute:    float64(agg.PlayCount) / minutes,
		ErrorRate:         errorRate,
		ActiveUsers:       agg.ActiveUsers,
		AvgResponseTimeMs: agg.ResponseTimes.AvgMs,
		TotalPlays:        agg.PlayCount,
		TotalErrors:       agg.ErrorCount,
		TotalEvents:       agg.TotalEvents,
	}, nil
}

func (s *analyticsService) GetTopTitles(ctx context.Context, window models.WindowSize, n int) ([]models.TitleCount, error) {
	agg, err := s.aggregator.Query(window, s.now())
	if err != nil {
		return nil, err
	}
	return TopTitles(agg, n), nil
}

func (s *analyticsService) GetErrorBreakdown(ctx context.Context, window models.WindowSize) (*models.ErrorBreakdown, error) {
	agg, err := s.aggregator.Query(window, s.now())
	if err != nil {
		return nil, err
	}

	errorRate := 0.0
	if agg.TotalEvents > 0 {
		errorRate = float64(agg.ErrorCount) / float64(agg.TotalEvents) * 100
	}

	return &models.ErrorBreakdown{
		WindowSize:  window,
		TotalErrors: agg.ErrorCount,
		TotalEvents: agg.TotalEvents,
		ErrorRate:   errorRate,
		ByType:      agg.ErrorCountByType,
	}, nil
}

func (s *analyticsService) GetGeoDistribution(ctx context.Context, window models.WindowSize) (*models.GeoDistribution, error) {
	agg, err := s.aggregator.Query(window, s.now())
	if err != nil {
		return nil, err
	}
	return &models.GeoDistribution{WindowSize: window, Countries: agg.CountryCounts}, nil
}

func (s *analyticsService) GetDevicePlatformStats(ctx context.Context, window models.WindowSize) (*models.DevicePlatformStats, error) {
	agg, err := s.aggregator.Query(window, s.now())
	if err != nil {
		return nil, err
	}
	return &models.DevicePlatformStats{
		WindowSize: window,
		Devices:    agg.DeviceCounts,
		Platforms:  agg.PlatformCounts,
	}, nil
}

func (s *analyticsService) GetRecentEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	if limit <= 0 {
		limit = defaultRecentEventsLimit
	}
	events, err := s.events.RecentEvents(ctx, limit)
	if err != nil {
		return nil, errInternalEventLogFailed(err)
	}
	return events, nil
}
