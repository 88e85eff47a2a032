package aggregators

import "streaming-analytics/internal/models"

// histogramBoundsMs are the fixed upper bounds of the response-time histogram,
// in milliseconds. The last bucket is an implicit overflow bucket. Bounds are
// fixed so that incremental aggregation and log replay produce identical
// estimates for the same sample set, regardless of arrival order.
var histogramBoundsMs = []float64{25, 50, 100, 250, 500, 1000, 2500, 5000}

// responseTimeHistogram accumulates response-time samples into fixed buckets.
// It is mergeable: summing bucket counts of two histograms equals observing
// both sample sets into one.
type responseTimeHistogram struct {
	counts      []int64 // len(histogramBoundsMs)+1, last is overflow
	sumMs       float64
	sampleCount int64
}

func newResponseTimeHistogram() *responseTimeHistogram {
	return &responseTimeHistogram{
		counts: make([]int64, len(histogramBoundsMs)+1),
	}
}

func (h *responseTimeHistogram) Observe(ms float64) {
	idx := len(histogramBoundsMs) // overflow by default
	for i, bound := range histogramBoundsMs {
		if ms <= bound {
			idx = i
			break
		}
	}
	h.counts[idx]++
	h.sumMs += ms
	h.sampleCount++
}

func (h *responseTimeHistogram) Merge(other *responseTimeHistogram) {
	for i := range h.counts {
		h.counts[i] += other.counts[i]
	}
	h.sumMs += other.sumMs
	h.sampleCount += other.sampleCount
}

func (h *responseTimeHistogram) Clone() *responseTimeHistogram {
	clone := newResponseTimeHistogram()
	clone.Merge(h)
	return clone
}

// Stats computes the summary for the accumulated samples. The average is exact
// (sum/count); percentiles are interpolated within the containing bucket and
// are monotone in the requested quantile and under growing sample counts.
func (h *responseTimeHistogram) Stats() models.ResponseTimeStats {
	if h.sampleCount == 0 {
		return models.ResponseTimeStats{}
	}
	return models.ResponseTimeStats{
		SampleCount: h.sampleCount,
		AvgMs:       h.sumMs / float64(h.sampleCount),
		P50Ms:       h.percentile(0.50),
		P95Ms:       h.percentile(0.95),
		P99Ms:       h.percentile(0.99),
	}
}

func (h *responseTimeHistogram) percentile(q float64) float64 {
	rank := q * float64(h.sampleCount)
	cumulative := int64(0)
	for i, count := range h.counts {
		if count == 0 {
			continue
		}
		lower := 0.0
		if i > 0 {
			lower = histogramBoundsMs[i-1]
		}
		upper := histogramBoundsMs[len(histogramBoundsMs)-1]
		if i < len(histogramBoundsMs) {
			upper = histogramBoundsMs[i]
		}
		if float64(cumulative+count) >= rank {
			// Linear interpolation within the bucket.
			within := (rank - float64(cumulative)) / float64(count)
			return lower + within*(upper-lower)
		}
		cumulative += count
	}
	return histogramBoundsMs[len(histogramBoundsMs)-1]
}
