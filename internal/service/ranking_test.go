package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-match/internal/domain"
)

func TestTopMatches_TiesKeepCatalogOrder(t *testing.T) {
	a := domain.CareerRecord{
		ID:             "a",
		Category:       "Tech",
		SkillsRequired: []string{"Python"},
		TraitTargets:   map[domain.Trait]float64{domain.TraitOpenness: 0.7},
		Interests:      []string{"technology"},
		Values:         []string{"innovation"},
		GrowthOutlook:  "Average",
	}
	b := a.Clone()
	b.ID = "b"

	engine := newTestEngine(t, a, b)
	traits, p := sampleProfile()
	for i := 0; i < 20; i++ {
		top := TopMatches(engine.ComputeMatches(traits, p.Skills, p.Interests, p.Values, p.WorkStyle), 0)
		require.Len(t, top, 2)
		assert.Equal(t, top[0].MatchScore, top[1].MatchScore)
		assert.Equal(t, "a", top[0].CareerID)
		assert.Equal(t, "b", top[1].CareerID)
	}
}

func TestTopMatches_EqualScoresFromHandBuiltRecords(t *testing.T) {
	matches := map[string]domain.MatchRecord{
		"b": {CareerID: "b", Position: 1, MatchScore: 0.70},
		"a": {CareerID: "a", Position: 0, MatchScore: 0.70},
		"c": {CareerID: "c", Position: 2, MatchScore: 0.90},
		"d": {CareerID: "d", Position: 3, MatchScore: 0.30},
	}
	top := TopMatches(matches, 0)
	ids := make([]string, 0, len(top))
	for _, m := range top {
		ids = append(ids, m.CareerID)
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids)

	limited := TopMatches(matches, 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "c", limited[0].CareerID)
	assert.Equal(t, "a", limited[1].CareerID)

	assert.Len(t, TopMatches(matches, 10), 4)
	assert.Empty(t, TopMatches(nil, 5))
}

func TestTopMatches_SortedDescending(t *testing.T) {
	engine := newTestEngine(t)
	traits, p := sampleProfile()
	top := TopMatches(engine.ComputeMatches(traits, p.Skills, p.Interests, p.Values, p.WorkStyle), 0)
	require.NotEmpty(t, top)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].MatchScore, top[i].MatchScore)
		if top[i-1].MatchScore == top[i].MatchScore {
			assert.Less(t, top[i-1].Position, top[i].Position)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	matches := map[string]domain.MatchRecord{
		"nurse":  {CareerID: "nurse", Position: 7, MatchScore: 0.6, Career: domain.CareerRecord{Category: "Healthcare"}},
		"doctor": {CareerID: "doctor", Position: 19, MatchScore: 0.8, Career: domain.CareerRecord{Category: "Healthcare"}},
		"chef":   {CareerID: "chef", Position: 18, MatchScore: 0.5, Career: domain.CareerRecord{Category: "Hospitality"}},
	}
	groups := GroupByCategory(matches)
	require.Len(t, groups, 2)

	health := groups["Healthcare"]
	require.Len(t, health, 2)
	assert.Equal(t, "doctor", health[0].CareerID)
	assert.Equal(t, "nurse", health[1].CareerID)
	assert.Equal(t, 0.8, health[0].Match.MatchScore)

	assert.Equal(t, "chef", groups["Hospitality"][0].CareerID)
}
