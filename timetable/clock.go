package timetable

import "time"

// The Yamanote service day rolls over at 03:00 JST: trains running
// after midnight keep counting past 86400 on the previous day's clock.
const serviceDayCutoverHour = 3

// JST has no daylight saving, so a fixed zone is exact and avoids a
// tzdata dependency.
var jst = time.FixedZone("JST", 9*60*60)

// ServiceSeconds converts a wall-clock instant to service-day seconds
// in JST.
func ServiceSeconds(t time.Time) int {
	local := t.In(jst)
	sec := local.Hour()*3600 + local.Minute()*60 + local.Second()
	if local.Hour() < serviceDayCutoverHour {
		sec += 24 * 3600
	}
	return sec
}

// JSTTimestamp formats an instant as an ISO8601 string in JST, the
// timezone every API timestamp uses.
func JSTTimestamp(t time.Time) string {
	return t.In(jst).Format(time.RFC3339)
}
