package season

import "sort"

// PrimarySeries is the series key used for views over the main
// championship; feeder views use the series keys found on the driver entry.
const PrimarySeries = "f1"

// SeasonRow is one line of a career table.
type SeasonRow struct {
	Season string       `json:"season"`
	Record SeasonRecord `json:"record"`
}

// CareerView is the all-time view of an entity in one series: per-season
// rows sorted newest first, plus the stored all-time summary as a footer.
// The footer is rendered as given, never recomputed from the rows; the two
// may disagree and both are shown. Either part may be absent.
type CareerView struct {
	Slug        string         `json:"slug"`
	DisplayName string         `json:"displayName"`
	Series      string         `json:"series"`
	Rows        []SeasonRow    `json:"rows,omitempty"`
	AllTime     *AllTimeRecord `json:"allTime,omitempty"`
}

// HasData reports whether the view carries anything to render; a false
// result is the explicit "no data" outcome.
func (v *CareerView) HasData() bool {
	return len(v.Rows) > 0 || v.AllTime != nil
}

// SeasonView is the single-season view of an entity in one series. A nil
// Record is the explicit "no data for season" outcome, distinct from a
// present but zeroed record.
type SeasonView struct {
	Slug        string        `json:"slug"`
	DisplayName string        `json:"displayName"`
	Series      string        `json:"series"`
	Season      string        `json:"season"`
	Record      *SeasonRecord `json:"record,omitempty"`
}

// HasData reports whether the entity has a record for the season.
func (v *SeasonView) HasData() bool {
	return v.Record != nil
}

// Views assembles career and season views from one stats snapshot, using
// the resolver for display names. The zero value is unusable; construct
// with NewViews.
type Views struct {
	stats    *StatsDocument
	resolver *Resolver
}

// NewViews builds a view assembler over a stats document snapshot. Both
// arguments tolerate nil; views over a nil document are all no-data.
func NewViews(stats *StatsDocument, resolver *Resolver) *Views {
	return &Views{stats: stats, resolver: resolver}
}

// DefaultSeason exposes the document's initial-render season choice.
func (v *Views) DefaultSeason() string {
	if v.stats == nil {
		return ""
	}
	return v.stats.DefaultSeason()
}

// DriverCareer builds the primary-series career view for a driver slug.
func (v *Views) DriverCareer(slug string) *CareerView {
	view := &CareerView{
		Slug:        slug,
		DisplayName: v.resolver.DisplayName(slug),
		Series:      PrimarySeries,
	}
	if stats, ok := v.driverStats(slug); ok {
		view.Rows = seasonRows(stats.BySeason)
		view.AllTime = stats.AllTime
	}
	return view
}

// DriverSeason builds the single-season primary-series view for a driver.
func (v *Views) DriverSeason(slug, seasonID string) *SeasonView {
	view := &SeasonView{
		Slug:        slug,
		DisplayName: v.resolver.DisplayName(slug),
		Series:      PrimarySeries,
		Season:      seasonID,
	}
	if stats, ok := v.driverStats(slug); ok {
		if record, ok := stats.BySeason[seasonID]; ok {
			view.Record = &record
		}
	}
	return view
}

// TeamCareer builds the career view for a team slug.
func (v *Views) TeamCareer(slug string) *CareerView {
	view := &CareerView{
		Slug:        slug,
		DisplayName: DisplayNameFromSlug(slug),
		Series:      PrimarySeries,
	}
	if stats, ok := v.teamStats(slug); ok {
		view.Rows = seasonRows(stats.BySeason)
		view.AllTime = stats.AllTime
	}
	return view
}

// TeamSeason builds the single-season view for a team.
func (v *Views) TeamSeason(slug, seasonID string) *SeasonView {
	view := &SeasonView{
		Slug:        slug,
		DisplayName: DisplayNameFromSlug(slug),
		Series:      PrimarySeries,
		Season:      seasonID,
	}
	if stats, ok := v.teamStats(slug); ok {
		if record, ok := stats.BySeason[seasonID]; ok {
			view.Record = &record
		}
	}
	return view
}

// FeederSeriesFor lists the feeder series keys present on a driver, sorted.
// An empty result means no feeder views are offered for the driver.
func (v *Views) FeederSeriesFor(slug string) []string {
	stats, ok := v.driverStats(slug)
	if !ok || len(stats.Feeder) == 0 {
		return nil
	}
	keys := make([]string, 0, len(stats.Feeder))
	for key := range stats.Feeder {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FeederSeasonsFor lists the seasons actually present in one feeder's
// per-season records, sorted ascending. Season-level feeder views are only
// offered for these.
func (v *Views) FeederSeasonsFor(slug, series string) []string {
	feeder, ok := v.feeder(slug, series)
	if !ok {
		return nil
	}
	seasons := make([]string, 0, len(feeder.BySeason))
	for id := range feeder.BySeason {
		seasons = append(seasons, id)
	}
	sort.Strings(seasons)
	return seasons
}

// DriverFeederCareer builds the career view for one of a driver's feeder
// series. A series the driver has no entry for yields a no-data view.
func (v *Views) DriverFeederCareer(slug, series string) *CareerView {
	view := &CareerView{
		Slug:        slug,
		DisplayName: v.resolver.DisplayName(slug),
		Series:      series,
	}
	if feeder, ok := v.feeder(slug, series); ok {
		view.Rows = seasonRows(feeder.BySeason)
		view.AllTime = feeder.AllTime
	}
	return view
}

// DriverFeederSeason builds the single-season view for one of a driver's
// feeder series.
func (v *Views) DriverFeederSeason(slug, series, seasonID string) *SeasonView {
	view := &SeasonView{
		Slug:        slug,
		DisplayName: v.resolver.DisplayName(slug),
		Series:      series,
		Season:      seasonID,
	}
	if feeder, ok := v.feeder(slug, series); ok {
		if record, ok := feeder.BySeason[seasonID]; ok {
			view.Record = &record
		}
	}
	return view
}

func (v *Views) driverStats(slug string) (DriverStats, bool) {
	if v.stats == nil {
		return DriverStats{}, false
	}
	stats, ok := v.stats.DriverStats[slug]
	return stats, ok
}

func (v *Views) teamStats(slug string) (TeamStats, bool) {
	if v.stats == nil {
		return TeamStats{}, false
	}
	stats, ok := v.stats.TeamStats[slug]
	return stats, ok
}

func (v *Views) feeder(slug, series string) (FeederSeries, bool) {
	stats, ok := v.driverStats(slug)
	if !ok {
		return FeederSeries{}, false
	}
	feeder, ok := stats.Feeder[series]
	return feeder, ok
}

// seasonRows flattens a bySeason map into rows sorted season-descending,
// the order career tables are rendered in.
func seasonRows(bySeason map[string]SeasonRecord) []SeasonRow {
	if len(bySeason) == 0 {
		return nil
	}
	rows := make([]SeasonRow, 0, len(bySeason))
	for id, record := range bySeason {
		rows = append(rows, SeasonRow{Season: id, Record: record})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Season > rows[j].Season
	})
	return rows
}
