// Package position implements the hybrid position estimation engine:
// it fuses timetable-derived schedule progress with real-time vehicle
// reports into one best-effort map position per train.
//
// The pipeline for a running train is: neighbor segment search
// (project the real-time point onto the nominal segment and its two
// adjacent segments), staleness-aware blending of schedule and
// real-time progress, then coordinate synthesis along the track
// polyline with a straight-line fallback. Stopped trains resolve
// directly to their station coordinate.
//
// Everything here is a pure synchronous computation over read-only
// geometry; callers may process trains concurrently without
// coordination.
package position
