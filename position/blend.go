package position

import (
	"math"
	"time"

	"github.com/nowtrain/yamanote-live/geo"
)

// blend combines schedule progress with an optional real-time progress
// according to report staleness.
//
// Reference policy: a fresh report (age <= FreshThreshold) wins
// outright; at and beyond StaleThreshold the timetable alone is
// trusted; in between, the real-time share decays linearly to zero.
// Negative staleness (reporter clock ahead of ours) counts as fresh.
// Non-finite inputs classify as error and fall back to the schedule.
func (e *Engine) blend(scheduleProgress float64, realtime *float64, staleness time.Duration) (float64, Quality) {
	if !isFinite(scheduleProgress) {
		return 0, QualityError
	}
	sched := geo.Clamp(scheduleProgress, 0, 1)

	if realtime == nil {
		return sched, QualityTimetableOnly
	}
	if !isFinite(*realtime) {
		return sched, QualityError
	}
	rt := geo.Clamp(*realtime, 0, 1)

	if staleness < 0 {
		staleness = 0
	}
	switch {
	case staleness <= e.cfg.FreshThreshold:
		return rt, QualityGood
	case staleness >= e.cfg.StaleThreshold:
		return sched, QualityTimetableOnly
	default:
		span := (e.cfg.StaleThreshold - e.cfg.FreshThreshold).Seconds()
		w := 1 - (staleness-e.cfg.FreshThreshold).Seconds()/span
		return geo.Clamp(w*rt+(1-w)*sched, 0, 1), QualityStale
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
