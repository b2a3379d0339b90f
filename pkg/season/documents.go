// Package season implements the cross-dataset resolution and aggregation
// engine behind the season site: it reconciles the roster (entries),
// historical stats, and calendar documents, which are keyed inconsistently
// by display names and slugs, and derives rankings, career/season views,
// and driver search results from them.
//
// All types are plain decoded documents. Nothing here mutates a document
// after load and nothing reaches into ambient state: every operation takes
// the document snapshot it works on as a parameter, so a fresh fetch fully
// replaces prior state by simply being passed in instead.
package season

import "github.com/agentstation/utc"

// Roster is the season's teams-and-drivers listing (the entries document).
type Roster struct {
	Teams []Team `json:"teams"`
}

// Team is a roster entry. Slug is optional in the source document; use
// EffectiveSlug rather than reading the field directly.
type Team struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Slug    string   `json:"slug,omitempty"`
	Drivers []Driver `json:"drivers"`
}

// EffectiveSlug returns the team's explicit slug, or one derived from its
// display name when the document omits it.
func (t *Team) EffectiveSlug() string {
	if t.Slug != "" {
		return t.Slug
	}
	return Slugify(t.Name)
}

// Driver is a roster entry, owned by exactly one team for a given season.
// It is identified externally by the slug derived from its name.
type Driver struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

// Slug returns the driver's derived identifier.
func (d *Driver) Slug() string {
	return Slugify(d.Name)
}

// Calendar is the race calendar document. Races need no cross-referencing
// against the other documents.
type Calendar struct {
	Races []RaceEvent `json:"races"`
}

// RaceEvent is one calendar entry.
type RaceEvent struct {
	Date    utc.Time `json:"date"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Circuit string   `json:"circuit"`
}

// StatsDocument holds the historical and aggregated performance records,
// keyed by slug. Driver and team slugs are not guaranteed to line up with
// the roster; consumers must tolerate keys missing on either side.
type StatsDocument struct {
	Seasons     []string               `json:"seasons"`
	DriverStats map[string]DriverStats `json:"driverStats"`
	TeamStats   map[string]TeamStats   `json:"teamStats"`
}

// DefaultSeason returns the season a view should open on: the season
// literally labeled "2026" when present, otherwise the last season in
// document order. Empty when the document lists no seasons.
func (s *StatsDocument) DefaultSeason() string {
	for _, id := range s.Seasons {
		if id == defaultSeasonID {
			return id
		}
	}
	if len(s.Seasons) == 0 {
		return ""
	}
	return s.Seasons[len(s.Seasons)-1]
}

const defaultSeasonID = "2026"

// DriverStats is one driver's record set: an independently stored all-time
// rollup, per-season records, and optional feeder-series records keyed by
// series (e.g. "f2").
type DriverStats struct {
	AllTime  *AllTimeRecord          `json:"allTime,omitempty"`
	BySeason map[string]SeasonRecord `json:"bySeason,omitempty"`
	Feeder   map[string]FeederSeries `json:"feeder,omitempty"`
}

// TeamStats is one team's record set.
type TeamStats struct {
	AllTime  *AllTimeRecord          `json:"allTime,omitempty"`
	BySeason map[string]SeasonRecord `json:"bySeason,omitempty"`
}

// FeederSeries carries a driver's records in a secondary category, with the
// same two-part shape as the primary series.
type FeederSeries struct {
	AllTime  *AllTimeRecord          `json:"allTime,omitempty"`
	BySeason map[string]SeasonRecord `json:"bySeason,omitempty"`
}

// AllTimeRecord is a stored cumulative summary. It is independent of the
// per-season rows and may legitimately disagree with their sum (it can
// include history the season rows do not cover), so it is never recomputed
// from them.
type AllTimeRecord struct {
	Points  float64 `json:"points"`
	Wins    int     `json:"wins"`
	Podiums int     `json:"podiums"`
}

// SeasonRecord is one entity's record for a single season. Points and
// Position are pointers so the validator can tell absent from zero; Team is
// a display string, not a slug, which is the naming drift the resolver's
// containment join exists to absorb.
type SeasonRecord struct {
	Points      *float64 `json:"points,omitempty"`
	Wins        int      `json:"wins"`
	Podiums     int      `json:"podiums"`
	Poles       int      `json:"poles"`
	FastestLaps int      `json:"fastestLaps"`
	Position    *int     `json:"position,omitempty"`
	Team        string   `json:"team,omitempty"`
}

// PointsValue returns the record's points, defaulting an absent field to 0.
func (r *SeasonRecord) PointsValue() float64 {
	if r.Points == nil {
		return 0
	}
	return *r.Points
}
