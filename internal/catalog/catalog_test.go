package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-match/internal/domain"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.Equal(t, 20, c.Len())

	first := c.All()[0]
	assert.Equal(t, "software_engineer", first.ID)
	assert.Equal(t, 180000, first.SeniorSalaryMax())
	assert.Equal(t, domain.OutlookExcellent, first.OutlookBucket())
	assert.InDelta(t, 0.8, first.TraitTargets[domain.TraitConscientiousness], 1e-9)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestDefault_EveryCareerIsComplete(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	for _, rec := range c.All() {
		assert.NotEmpty(t, rec.SkillsRequired, rec.ID)
		assert.Len(t, rec.TraitTargets, 5, rec.ID)
		assert.NotEmpty(t, rec.WorkStyle, rec.ID)
		for tier := range rec.SalaryRange {
			band := rec.SalaryRange[tier]
			assert.LessOrEqual(t, band.Low, band.High, "%s %s", rec.ID, tier)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Get("astronaut")
	require.ErrorIs(t, err, ErrCareerNotFound)
	assert.Equal(t, -1, c.Position("astronaut"))
}

func TestGet_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	rec, err := c.Get("nurse")
	require.NoError(t, err)
	rec.SkillsRequired[0] = "mutated"
	rec.TraitTargets[domain.TraitOpenness] = 0

	again, err := c.Get("nurse")
	require.NoError(t, err)
	assert.Equal(t, "Patient Care", again.SkillsRequired[0])
	assert.InDelta(t, 0.5, again.TraitTargets[domain.TraitOpenness], 1e-9)
}

func TestLoad_RejectsBadCatalogs(t *testing.T) {
	cases := map[string]string{
		"empty":     "careers: []",
		"duplicate": "careers:\n  - id: a\n  - id: a\n",
		"no id":     "careers:\n  - title: Nameless\n",
		"bad trait": "careers:\n  - id: a\n    traits: {charisma: 0.5}\n",
		"bad yaml":  "careers: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestSearch(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	finance := c.Search("finance", nil)
	require.Len(t, finance, 2)
	assert.Equal(t, "financial_analyst", finance[0].ID)
	assert.Equal(t, "accountant", finance[1].ID)

	python := c.Search("", []string{"PYTHON"})
	ids := make([]string, 0, len(python))
	for _, rec := range python {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"software_engineer", "data_scientist"}, ids)

	assert.Empty(t, c.Search("Finance", []string{"figma"}))
}

func TestBySkills(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	counts := c.BySkills([]string{"python", "sql"})
	assert.Equal(t, 2, counts["software_engineer"])
	assert.Equal(t, 2, counts["data_scientist"])
	assert.Equal(t, 1, counts["financial_analyst"])
	_, ok := counts["teacher"]
	assert.False(t, ok)

	counts = c.BySkills([]string{"Machine_Learning", " PROJECT MANAGEMENT "})
	assert.Equal(t, 1, counts["data_scientist"])
	assert.Equal(t, 1, counts["product_manager"])
}

func TestCategories_InFirstSeenOrder(t *testing.T) {
	c, err := New([]domain.CareerRecord{
		{ID: "a", Category: "X"},
		{ID: "b", Category: "Y"},
		{ID: "c", Category: "X"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, c.Categories())
}
