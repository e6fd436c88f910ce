package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRun() domain.ScrapeRun {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return domain.ScrapeRun{
		ID:           "run-1",
		Term:         "202400",
		StartedAt:    started,
		FinishedAt:   started.Add(5 * time.Minute),
		ModulesFound: 2,
	}
}

func testModules() []domain.Module {
	return []domain.Module{
		{
			Code:             "COMP20080",
			Title:            "Computer Systems",
			LearningOutcomes: []string{"Understand the architecture of a modern CPU."},
			Credits:          5,
			Level:            2,
		},
		{
			Code:             "COMP10010",
			URL:              "https://hub.example.edu/modules/COMP10010",
			Title:            "Introduction to Programming",
			Description:      "First programming module.",
			LearningOutcomes: []string{"Write and debug programs in a high-level language."},
			Syllabus:         "Variables, control flow, functions.",
			Assessment:       "Continuous assessment and exam.",
			Credits:          5,
			Level:            1,
			Coordinator:      "Dr. Example",
		},
	}
}

func TestStore_SaveRunAndGetModule(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, testRun(), testModules()))

	m, err := store.GetModule(ctx, "COMP10010")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Programming", m.Title)
	assert.Equal(t, []string{"Write and debug programs in a high-level language."}, m.LearningOutcomes)
	assert.Equal(t, 5, m.Credits)
	assert.Equal(t, 1, m.Level)
	assert.Equal(t, "Dr. Example", m.Coordinator)
}

func TestStore_GetModuleNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetModule(context.Background(), "COMP99999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListModulesOrderedByCode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, testRun(), testModules()))

	modules, err := store.ListModules(ctx)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "COMP10010", modules[0].Code)
	assert.Equal(t, "COMP20080", modules[1].Code)
}

func TestStore_LaterRunReplacesModules(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, testRun(), testModules()))

	second := testRun()
	second.ID = "run-2"
	second.StartedAt = second.StartedAt.Add(time.Hour)
	updated := testModules()[1]
	updated.Title = "Introduction to Programming I"
	require.NoError(t, store.SaveRun(ctx, second, []domain.Module{updated}))

	m, err := store.GetModule(ctx, "COMP10010")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Programming I", m.Title)

	// The other module from the first run stays cached.
	modules, err := store.ListModules(ctx)
	require.NoError(t, err)
	assert.Len(t, modules, 2)
}

func TestStore_LatestRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := testRun()
	require.NoError(t, store.SaveRun(ctx, first, nil))

	second := testRun()
	second.ID = "run-2"
	second.StartedAt = first.StartedAt.Add(time.Hour)
	second.ModulesFound = 7
	require.NoError(t, store.SaveRun(ctx, second, nil))

	latest, err := store.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-2", latest.ID)
	assert.Equal(t, 7, latest.ModulesFound)
}

func TestStore_LatestRunEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LatestRun(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveRunMissingID(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveRun(context.Background(), domain.ScrapeRun{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_NormalisesModulesOnSave(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, testRun(), []domain.Module{{Code: "COMP30010"}}))

	m, err := store.GetModule(ctx, "COMP30010")
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownField, m.Title)
	assert.Equal(t, []string{}, m.LearningOutcomes)
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs migrate again against the same file.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
