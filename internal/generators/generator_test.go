package generators

import (
	"testing"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeneratorConfig() configs.GeneratorConfig {
	return configs.GeneratorConfig{
		Enabled:            true,
		Rate:               50,
		Seed:               42,
		ErrorRate:          0.04,
		BufferUnderrunRate: 0.01,
		PauseRate:          0.15,
		BatchSize:          100,
		BufferSize:         64,
		FlushIntervalMs:    1000,
	}
}

func TestNewGenerator_RejectsNonPositiveRate(t *testing.T) {
	t.Parallel()

	cfg := testGeneratorConfig()
	cfg.Rate = 0

	_, err := NewGenerator(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEN_1000")
}

func TestNewGenerator_RejectsRatesSummingPastOne(t *testing.T) {
	t.Parallel()

	cfg := testGeneratorConfig()
	cfg.ErrorRate = 0.5
	cfg.PauseRate = 0.6

	_, err := NewGenerator(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEN_1000")
}

func TestGenerator_NextBatchProducesValidEvents(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator(testGeneratorConfig())
	require.NoError(t, err)

	batch := gen.NextBatch(500)
	require.NotEmpty(t, batch.BatchID)
	assert.Equal(t, "generator", batch.Source)
	require.Len(t, batch.Events, 500)

	seenIDs := make(map[string]struct{})
	for _, e := range batch.Events {
		assert.NotEmpty(t, e.EventID)
		_, dup := seenIDs[e.EventID]
		assert.False(t, dup, "event IDs must be unique")
		seenIDs[e.EventID] = struct{}{}

		assert.Contains(t, models.ValidEventTypes, e.EventType)
		assert.Contains(t, titleCatalog, e.Title)
		assert.Contains(t, models.ValidDeviceTypes, e.DeviceType)
		assert.Contains(t, devicePlatforms[e.DeviceType], e.Platform, "platform must run on the drawn device")
		assert.Equal(t, platformUserAgents[e.Platform], e.UserAgent)
		assert.NotEmpty(t, e.Country)
		assert.NotEmpty(t, e.Quality)

		switch e.EventType {
		case models.EventPlay:
			require.NotNil(t, e.ResponseTimeMs)
			assert.Equal(t, models.ErrorNone, e.ErrorType)
		case models.EventError:
			require.NotNil(t, e.ResponseTimeMs)
			assert.Contains(t, models.ValidErrorTypes, e.ErrorType)
		default:
			assert.Nil(t, e.ResponseTimeMs)
			assert.Equal(t, models.ErrorNone, e.ErrorType)
		}
		if e.ResponseTimeMs != nil {
			assert.GreaterOrEqual(t, *e.ResponseTimeMs, float64(minResponseTimeMs))
			assert.Less(t, *e.ResponseTimeMs, float64(maxResponseTimeMs))
		}
	}
}

func TestGenerator_SameSeedSameStream(t *testing.T) {
	t.Parallel()

	first, err := NewGenerator(testGeneratorConfig())
	require.NoError(t, err)
	second, err := NewGenerator(testGeneratorConfig())
	require.NoError(t, err)

	a := first.NextBatch(200).Events
	b := second.NextBatch(200).Events

	for i := range a {
		assert.Equal(t, a[i].EventType, b[i].EventType)
		assert.Equal(t, a[i].Title, b[i].Title)
		assert.Equal(t, a[i].UserID, b[i].UserID)
		assert.Equal(t, a[i].Country, b[i].Country)
		assert.Equal(t, a[i].DeviceType, b[i].DeviceType)
	}
}

func TestGenerator_TitleDistributionIsSkewed(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator(testGeneratorConfig())
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, e := range gen.NextBatch(5000).Events {
		counts[e.Title]++
	}

	head := counts[titleCatalog[0]]
	tail := counts[titleCatalog[len(titleCatalog)-1]]
	assert.Greater(t, head, tail, "popular titles must dominate the draw")
	assert.Greater(t, head, 5000/len(titleCatalog), "head title must exceed a uniform share")
}

func TestGenerator_ErrorRateRoughlyHolds(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator(testGeneratorConfig())
	require.NoError(t, err)

	errors := 0
	const n = 10000
	for _, e := range gen.NextBatch(n).Events {
		if e.EventType == models.EventError {
			errors++
		}
	}

	// 4% of 10000 is 400; allow generous slack for the seeded draw.
	assert.InDelta(t, 400, errors, 150)
}
