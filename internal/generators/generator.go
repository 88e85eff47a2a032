package generators

import (
	"fmt"
	"math/rand"
	"time"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/configs"
	"streaming-analytics/internal/shared/ulid"
)

const (
	zipfS = 1.07
	zipfV = 1.0

	userPoolSize = 500

	minResponseTimeMs = 100
	maxResponseTimeMs = 5000
)

// Generator produces synthetic playback events with a skewed title
// distribution. A fixed seed yields a reproducible event stream. Not safe for
// concurrent use; the runner drives it from a single goroutine.
type Generator struct {
	cfg  configs.GeneratorConfig
	rng  *rand.Rand
	zipf *rand.Zipf
	now  func() time.Time
}

func NewGenerator(cfg configs.GeneratorConfig) (*Generator, error) {
	if cfg.Rate <= 0 {
		return nil, errInvalidGeneratorConfig(fmt.Errorf("rate must be positive, got %d", cfg.Rate))
	}
	if sum := cfg.ErrorRate + cfg.BufferUnderrunRate + cfg.PauseRate; sum > 1 {
		return nil, errInvalidGeneratorConfig(fmt.Errorf("event type rates sum to %.3f, must not exceed 1", sum))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Generator{
		cfg:  cfg,
		rng:  rng,
		zipf: rand.NewZipf(rng, zipfS, zipfV, uint64(len(titleCatalog)-1)),
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// NextBatch produces n events stamped with the current time.
func (g *Generator) NextBatch(n int) *models.EventBatch {
	events := make([]*models.Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, g.nextEvent())
	}
	return &models.EventBatch{
		BatchID: ulid.NewULID(),
		Source:  "generator",
		Events:  events,
	}
}

func (g *Generator) nextEvent() *models.Event {
	device := pickWeighted(deviceWeights, g.rng.Float64())
	platforms := devicePlatforms[device]
	platform := platforms[g.rng.Intn(len(platforms))]
	userID := fmt.Sprintf("user_%04d", g.rng.Intn(userPoolSize)+1)

	event := &models.Event{
		EventID:    ulid.NewULID(),
		Timestamp:  g.now(),
		EventType:  g.nextEventType(),
		Title:      titleCatalog[g.zipf.Uint64()],
		UserID:     userID,
		SessionID:  fmt.Sprintf("sess_%s_%d", userID, g.rng.Intn(4)+1),
		DeviceType: device,
		Platform:   platform,
		Country:    pickWeighted(countryWeights, g.rng.Float64()),
		Quality:    pickWeighted(qualityWeights, g.rng.Float64()),
		UserAgent:  platformUserAgents[platform],
		ErrorType:  models.ErrorNone,
	}

	if event.EventType == models.EventError {
		event.ErrorType = models.ValidErrorTypes[g.rng.Intn(len(models.ValidErrorTypes))]
	}
	if event.EventType == models.EventPlay || event.EventType == models.EventError {
		rt := minResponseTimeMs + g.rng.Float64()*(maxResponseTimeMs-minResponseTimeMs)
		event.ResponseTimeMs = &rt
	}

	metricEventsGeneratedTotal.WithLabelValues(string(event.EventType)).Inc()
	return event
}

func (g *Generator) nextEventType() models.EventType {
	roll := g.rng.Float64()
	switch {
	case roll < g.cfg.ErrorRate:
		return models.EventError
	case roll < g.cfg.ErrorRate+g.cfg.BufferUnderrunRate:
		return models.EventBufferUnderrun
	case roll < g.cfg.ErrorRate+g.cfg.BufferUnderrunRate+g.cfg.PauseRate:
		return models.EventPause
	default:
		return models.EventPlay
	}
}
