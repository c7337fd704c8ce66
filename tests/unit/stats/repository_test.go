package stats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/stats"
)

func TestListByCategory_SeededFixtures(t *testing.T) {
	repo := stats.NewMemoryRepository(stats.Fixtures())

	cohortStats, err := repo.ListByCategory(context.Background(), "cohort")
	require.NoError(t, err)
	require.Len(t, cohortStats, 4)
	assert.Equal(t, "Total Participants", cohortStats[0].Label)

	leadStats, err := repo.ListByCategory(context.Background(), "campus_lead")
	require.NoError(t, err)
	assert.Len(t, leadStats, 4)
}

func TestListByCategory_UnknownCategoryIsEmpty(t *testing.T) {
	repo := stats.NewMemoryRepository(stats.Fixtures())

	got, err := repo.ListByCategory(context.Background(), "finance")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplaceCategory_SwapsOnlyThatCategory(t *testing.T) {
	repo := stats.NewMemoryRepository(stats.Fixtures())

	entries := []stats.Stat{
		{ID: "n1", Category: "cohort", Label: "Total Participants", Value: "120", Icon: "Users", Color: "text-cyan-600"},
		{ID: "n2", Category: "cohort", Label: "Active Cohorts", Value: "4", Icon: "TrendingUp", Color: "text-lime-600"},
	}

	replaced, err := repo.ReplaceCategory(context.Background(), "cohort", entries)
	require.NoError(t, err)
	assert.Len(t, replaced, 2)

	cohortStats, err := repo.ListByCategory(context.Background(), "cohort")
	require.NoError(t, err)
	require.Len(t, cohortStats, 2)
	assert.Equal(t, "120", cohortStats[0].Value)

	leadStats, err := repo.ListByCategory(context.Background(), "campus_lead")
	require.NoError(t, err)
	assert.Len(t, leadStats, 4, "other categories stay untouched")
}

func TestReplaceCategory_EmptyClearsCategory(t *testing.T) {
	repo := stats.NewMemoryRepository(stats.Fixtures())

	_, err := repo.ReplaceCategory(context.Background(), "cohort", nil)
	require.NoError(t, err)

	got, err := repo.ListByCategory(context.Background(), "cohort")
	require.NoError(t, err)
	assert.Empty(t, got)
}
