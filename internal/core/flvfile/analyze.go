package flvfile

import (
	"fmt"
	"math"

	"flvkit/internal/core/amf0"
)

// AnalyzeTimestamps flags dropped frames by comparing consecutive video-tag
// timestamps against the interval implied by the metadata framerate. It is
// a no-op unless metadata contains a positive "framerate" number. Gap
// arithmetic runs in a signed 64-bit domain so a decreasing timestamp
// (spliced or edited streams) never wraps as it would over unsigned 32-bit
// subtraction; a negative gap is simply skipped rather than analyzed.
func AnalyzeTimestamps(tags []*Tag, meta *amf0.Object) {
	if meta == nil {
		return
	}
	v, ok := meta.Get("framerate")
	if !ok {
		return
	}
	framerate, ok := v.(float64)
	if !ok || framerate <= 0 {
		return
	}

	expected := 1000.0 / framerate
	threshold := 2 * expected

	var prev *Tag
	for _, t := range tags {
		if t.Type != TagVideo {
			continue
		}
		if prev != nil {
			gap := int64(t.Timestamp) - int64(prev.Timestamp)
			if gap > 0 && float64(gap) > threshold {
				dropped := int(math.Round(float64(gap)/expected)) - 1
				if dropped > 0 {
					t.Analysis = fmt.Sprintf("Timestamp jump of %dms. Possible %d dropped frames.", gap, dropped)
				}
			}
		}
		prev = t
	}
}
