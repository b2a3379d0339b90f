package season

import (
	"sort"
	"strings"
)

// DriverIdentity is the roster-side identity of a stats entry: the display
// name to render and the slug of the team the driver is entered for.
type DriverIdentity struct {
	DisplayName string `json:"displayName"`
	TeamSlug    string `json:"teamSlug"`
}

// Resolver maps between the roster document (keyed by display names) and
// the stats document (keyed by slugs). It is built once per roster snapshot
// and is read-only afterwards.
type Resolver struct {
	drivers map[string]DriverIdentity
}

// NewResolver indexes a roster by derived driver slug. A nil roster yields
// a resolver that resolves nothing, so callers downstream of a failed
// entries fetch still get derived display names instead of an error.
func NewResolver(roster *Roster) *Resolver {
	r := &Resolver{drivers: make(map[string]DriverIdentity)}
	if roster == nil {
		return r
	}
	for i := range roster.Teams {
		team := &roster.Teams[i]
		teamSlug := team.EffectiveSlug()
		for j := range team.Drivers {
			driver := &team.Drivers[j]
			slug := driver.Slug()
			if slug == "" {
				continue
			}
			if _, dup := r.drivers[slug]; dup {
				continue
			}
			r.drivers[slug] = DriverIdentity{
				DisplayName: driver.Name,
				TeamSlug:    teamSlug,
			}
		}
	}
	return r
}

// ResolveDisplay returns the roster identity for a driver slug, and whether
// the roster knows the slug at all.
func (r *Resolver) ResolveDisplay(driverSlug string) (DriverIdentity, bool) {
	if r == nil {
		return DriverIdentity{}, false
	}
	id, ok := r.drivers[driverSlug]
	return id, ok
}

// DisplayName returns the roster display name for a driver slug, falling
// back to the name derived from the slug itself when the roster has no
// entry. The fallback never fails, even for malformed slugs.
func (r *Resolver) DisplayName(driverSlug string) string {
	if id, ok := r.ResolveDisplay(driverSlug); ok {
		return id.DisplayName
	}
	return DisplayNameFromSlug(driverSlug)
}

// TeamNameMatches is the matching policy of the approximate join between a
// season record's team display string and a team slug. Both sides are
// normalized through Slugify and compared by substring containment in
// either direction, which absorbs sponsor-prefixed naming ("Oracle Red
// Bull Racing" matches the slug "red-bull"). Short or overlapping slugs can
// produce false positives; that tolerance is deliberate, upstream data is
// not consistent enough for an exact join.
func TeamNameMatches(teamSlug, teamDisplayName string) bool {
	a := Slugify(teamSlug)
	b := Slugify(teamDisplayName)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// SeasonDriver is one result of the team/season join: a driver slug and its
// record for the requested season.
type SeasonDriver struct {
	DriverSlug string       `json:"driverSlug"`
	Record     SeasonRecord `json:"record"`
}

// DriversForTeamSeason scans every driver stats entry and keeps those that
// have a record for the season whose team string matches the target team
// under TeamNameMatches. Stats maps carry no document order, so entries are
// scanned in sorted-slug order to keep results deterministic.
func DriversForTeamSeason(stats *StatsDocument, teamSlug, seasonID string) []SeasonDriver {
	if stats == nil {
		return nil
	}
	var out []SeasonDriver
	for _, slug := range sortedDriverSlugs(stats) {
		record, ok := stats.DriverStats[slug].BySeason[seasonID]
		if !ok {
			continue
		}
		if !TeamNameMatches(teamSlug, record.Team) {
			continue
		}
		out = append(out, SeasonDriver{DriverSlug: slug, Record: record})
	}
	return out
}

// sortedDriverSlugs returns the driver stats keys in the canonical scan
// order used by the join and the ranking engine.
func sortedDriverSlugs(stats *StatsDocument) []string {
	slugs := make([]string, 0, len(stats.DriverStats))
	for slug := range stats.DriverStats {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

func sortedTeamSlugs(stats *StatsDocument) []string {
	slugs := make([]string, 0, len(stats.TeamStats))
	for slug := range stats.TeamStats {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
