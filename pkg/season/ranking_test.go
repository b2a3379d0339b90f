package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopNDrivers(t *testing.T) {
	stats := testStats()
	resolver := NewResolver(testRoster())

	top := TopN(stats, resolver, KindDriver, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "max-verstappen", top[0].Slug)
	assert.Equal(t, "Max Verstappen", top[0].DisplayName)
	assert.Equal(t, 575.0, top[0].Points)
}

func TestTopNOrderingAndLength(t *testing.T) {
	stats := testStats()
	resolver := NewResolver(testRoster())

	top := TopN(stats, resolver, KindDriver, 10)
	require.Len(t, top, 3, "length is min(n, entities)")
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Points, top[i].Points)
	}

	// Stats-only drivers still rank, with derived display names.
	assert.Equal(t, "sergio-perez", top[2].Slug)
	assert.Equal(t, "Sergio Perez", top[2].DisplayName)
}

func TestTopNTeamsMissingAllTimeRanksZero(t *testing.T) {
	stats := testStats()

	top := TopN(stats, nil, KindTeam, 5)
	require.Len(t, top, 3)
	assert.Equal(t, "red-bull", top[0].Slug)
	assert.Equal(t, "mclaren", top[1].Slug)

	// The entry without an allTime record is ranked last at 0, not dropped.
	assert.Equal(t, "alpine", top[2].Slug)
	assert.Equal(t, 0.0, top[2].Points)
	assert.Equal(t, "Alpine", top[2].DisplayName)
}

func TestTopNTiesKeepEncounterOrder(t *testing.T) {
	stats := &StatsDocument{
		DriverStats: map[string]DriverStats{
			"bb-driver": {AllTime: &AllTimeRecord{Points: 100}},
			"aa-driver": {AllTime: &AllTimeRecord{Points: 100}},
			"cc-driver": {AllTime: &AllTimeRecord{Points: 100}},
		},
	}

	top := TopN(stats, NewResolver(nil), KindDriver, 3)
	require.Len(t, top, 3)
	// Stable sort over the canonical sorted-slug scan order.
	assert.Equal(t, "aa-driver", top[0].Slug)
	assert.Equal(t, "bb-driver", top[1].Slug)
	assert.Equal(t, "cc-driver", top[2].Slug)
}

func TestTopNEdgeCases(t *testing.T) {
	assert.Nil(t, TopN(nil, nil, KindDriver, 5))
	assert.Nil(t, TopN(testStats(), nil, KindDriver, 0))
	assert.Nil(t, TopN(&StatsDocument{}, nil, KindTeam, 5))
}
