// Package validate cross-checks the entries and stats documents and
// reports the gaps between them. The report is an offline diagnostic; its
// findings describe exactly the input conditions the runtime engine is
// required to tolerate.
package validate

import (
	"sort"

	"github.com/gridlinehq/gridline/pkg/season"
)

// Report is the validation output, written as JSON by the validate
// command.
type Report struct {
	MissingInStats           []RosterDriver  `json:"missingInStats"`
	MissingInEntries         []StatsDriver   `json:"missingInEntries"`
	DriversWithMissingFields []FieldFindings `json:"driversWithMissingFields"`
	Summary                  Summary         `json:"summary"`
}

// Clean reports whether the two documents line up with no findings.
func (r *Report) Clean() bool {
	return len(r.MissingInStats) == 0 &&
		len(r.MissingInEntries) == 0 &&
		len(r.DriversWithMissingFields) == 0
}

// RosterDriver identifies a roster entry with no stats record.
type RosterDriver struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Team string `json:"team"`
}

// StatsDriver identifies a stats entry with no roster presence.
type StatsDriver struct {
	Slug string `json:"slug"`
}

// FieldFindings lists what is absent on one driver's stats entry.
type FieldFindings struct {
	Slug           string          `json:"slug"`
	Missing        []string        `json:"missing"`
	SeasonsMissing []SeasonFinding `json:"seasonsMissing"`
}

// SeasonFinding lists absent fields on one season record.
type SeasonFinding struct {
	Season  string   `json:"season"`
	Missing []string `json:"missing"`
}

// Summary carries the driver counts on both sides.
type Summary struct {
	EntriesDrivers int `json:"entriesDrivers"`
	StatsDrivers   int `json:"statsDrivers"`
}

// Check builds the full report for a roster/stats document pair. Nil
// documents are treated as empty; Check itself never fails.
func Check(roster *season.Roster, stats *season.StatsDocument) *Report {
	report := &Report{
		MissingInStats:           []RosterDriver{},
		MissingInEntries:         []StatsDriver{},
		DriversWithMissingFields: []FieldFindings{},
	}

	var driverStats map[string]season.DriverStats
	if stats != nil {
		driverStats = stats.DriverStats
	}
	report.Summary.StatsDrivers = len(driverStats)

	rosterSlugs := make(map[string]struct{})
	if roster != nil {
		for i := range roster.Teams {
			team := &roster.Teams[i]
			teamSlug := team.EffectiveSlug()
			for j := range team.Drivers {
				driver := &team.Drivers[j]
				slug := driver.Slug()
				rosterSlugs[slug] = struct{}{}
				report.Summary.EntriesDrivers++
				if _, ok := driverStats[slug]; !ok {
					report.MissingInStats = append(report.MissingInStats, RosterDriver{
						Slug: slug,
						Name: driver.Name,
						Team: teamSlug,
					})
				}
			}
		}
	}

	statsSlugs := make([]string, 0, len(driverStats))
	for slug := range driverStats {
		statsSlugs = append(statsSlugs, slug)
	}
	sort.Strings(statsSlugs)

	for _, slug := range statsSlugs {
		if _, ok := rosterSlugs[slug]; !ok {
			report.MissingInEntries = append(report.MissingInEntries, StatsDriver{Slug: slug})
		}
		if findings, ok := checkDriverFields(slug, driverStats[slug]); ok {
			report.DriversWithMissingFields = append(report.DriversWithMissingFields, findings)
		}
	}

	return report
}

// checkDriverFields collects the per-driver missing-field findings: absent
// allTime or bySeason sections, and season records without points or team.
func checkDriverFields(slug string, stats season.DriverStats) (FieldFindings, bool) {
	findings := FieldFindings{
		Slug:           slug,
		Missing:        []string{},
		SeasonsMissing: []SeasonFinding{},
	}

	if stats.AllTime == nil {
		findings.Missing = append(findings.Missing, "allTime")
	}
	if stats.BySeason == nil {
		findings.Missing = append(findings.Missing, "bySeason")
	}

	seasons := make([]string, 0, len(stats.BySeason))
	for id := range stats.BySeason {
		seasons = append(seasons, id)
	}
	sort.Strings(seasons)

	for _, id := range seasons {
		record := stats.BySeason[id]
		var missing []string
		if record.Points == nil {
			missing = append(missing, "points")
		}
		if record.Team == "" {
			missing = append(missing, "team")
		}
		if len(missing) > 0 {
			findings.SeasonsMissing = append(findings.SeasonsMissing, SeasonFinding{
				Season:  id,
				Missing: missing,
			})
		}
	}

	ok := len(findings.Missing) > 0 || len(findings.SeasonsMissing) > 0
	return findings, ok
}
