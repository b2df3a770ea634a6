// Package gtfsrt fetches the ODPT GTFS-Realtime vehicle position feed and
// turns Yamanote line entities into per-train reports.
//
// Trip identifiers carry the routing information: trips ending in "G" run on
// the Yamanote line, and the four-digit prefix (or the train number parity as
// a fallback) encodes the loop direction.
package gtfsrt
