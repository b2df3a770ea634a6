package timetable

import (
	"github.com/nowtrain/yamanote-live/geo"
	"github.com/nowtrain/yamanote-live/position"
)

// StatesAt returns one ScheduleState per trip active at the given
// service time. A trip is active from its first departure (trains wait
// at their origin before it) until its last arrival.
func (t *Timetable) StatesAt(serviceSec int) []position.ScheduleState {
	states := make([]position.ScheduleState, 0, len(t.trips))
	for _, trip := range t.trips {
		if st, ok := evalTrip(trip, serviceSec); ok {
			states = append(states, st)
		}
	}
	return states
}

func evalTrip(trip Trip, serviceSec int) (position.ScheduleState, bool) {
	stops := trip.StopTimes
	if len(stops) < 2 {
		return position.ScheduleState{}, false
	}

	last := stops[len(stops)-1]
	if serviceSec > last.ArrivalSec {
		return position.ScheduleState{}, false
	}

	st := position.ScheduleState{
		TrainNumber:    trip.TrainNumber,
		Direction:      trip.Direction,
		ServiceTimeSec: serviceSec,
	}

	// Waiting at the origin before the first departure.
	if serviceSec <= stops[0].DepartureSec {
		st.IsStopped = true
		st.StoppedAt = stops[0].StationID
		st.FromStation = stops[0].StationID
		st.ToStation = stops[1].StationID
		return st, true
	}

	for i := 0; i < len(stops)-1; i++ {
		cur := stops[i]
		next := stops[i+1]

		// Dwelling at an intermediate or final stop.
		if i > 0 && serviceSec >= cur.ArrivalSec && serviceSec <= cur.DepartureSec {
			st.IsStopped = true
			st.StoppedAt = cur.StationID
			st.FromStation = cur.StationID
			st.ToStation = next.StationID
			return st, true
		}

		// Running between cur's departure and next's arrival.
		if serviceSec >= cur.DepartureSec && serviceSec <= next.ArrivalSec {
			st.FromStation = cur.StationID
			st.ToStation = next.StationID
			duration := next.ArrivalSec - cur.DepartureSec
			if duration <= 0 {
				st.Progress = 0.5
			} else {
				elapsed := serviceSec - cur.DepartureSec
				st.Progress = geo.Clamp(float64(elapsed)/float64(duration), 0, 1)
			}
			return st, true
		}
	}

	// Arrived at the last stop within its dwell window.
	if serviceSec >= last.ArrivalSec {
		st.IsStopped = true
		st.StoppedAt = last.StationID
		st.FromStation = stops[len(stops)-2].StationID
		st.ToStation = last.StationID
		return st, true
	}

	return position.ScheduleState{}, false
}
