package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ricettario/internal/storage"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(storage.NewMemStore())
}

func TestLoadSettingsDefaults(t *testing.T) {
	r := newTestRepo(t)
	s := r.LoadSettings()
	require.Equal(t, "modern-blue", s.Theme)
	require.Equal(t, "it", s.Language)
	require.Equal(t, StorageLocal, s.DataStorage)
	require.Empty(t, s.AIProviders)
	require.Nil(t, s.Remote)
}

func TestLoadSettingsMalformedFallsBackToDefaults(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Set(KeySettings, []byte("{broken")))
	r := NewRepository(store)
	require.Equal(t, DefaultSettings(), r.LoadSettings())
}

func TestLoadSettingsTypeErrorDiscardsWholeDocument(t *testing.T) {
	// valid JSON that fails mid-decode: the already-decoded prefix must not
	// survive alongside the defaults
	store := storage.NewMemStore()
	require.NoError(t, store.Set(KeySettings, []byte(`{"theme":"hacked","language":123}`)))
	r := NewRepository(store)
	require.Equal(t, DefaultSettings(), r.LoadSettings())
}

func TestLoadRecipesTypeErrorDiscardsWholeDocument(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Set(KeyRecipes, []byte(`[{"title":"Pasta"},{"title":42}]`)))
	r := NewRepository(store)
	require.Empty(t, r.LoadRecipes())
}

func TestUpdateSettingsChangesOnlyPatchedFields(t *testing.T) {
	r := newTestRepo(t)
	before := r.LoadSettings()

	lang := "en"
	after, err := r.UpdateSettings(SettingsPatch{Language: &lang})
	require.NoError(t, err)
	require.Equal(t, "en", after.Language)
	require.Equal(t, before.Theme, after.Theme)
	require.Equal(t, before.DataStorage, after.DataStorage)
	require.Equal(t, before.AIProviders, after.AIProviders)
	require.Nil(t, after.Remote)

	// persisted, not only in-memory
	r2 := NewRepository(r.store)
	require.Equal(t, "en", r2.LoadSettings().Language)
}

func TestUpsertRecipeNewAssignsIdentityAndPrepends(t *testing.T) {
	r := newTestRepo(t)
	first, err := r.UpsertRecipe(Recipe{Title: "Pasta"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.True(t, first.CreatedAt.Equal(first.UpdatedAt))

	second, err := r.UpsertRecipe(Recipe{Title: "Pane"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	got := r.LoadRecipes()
	require.Len(t, got, 2)
	require.Equal(t, "Pane", got[0].Title)
	require.Equal(t, "Pasta", got[1].Title)
}

func TestUpsertRecipeExistingKeepsCreatedAtBumpsUpdatedAt(t *testing.T) {
	r := newTestRepo(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }

	created, err := r.UpsertRecipe(Recipe{Title: "Pasta"})
	require.NoError(t, err)

	r.now = func() time.Time { return base.Add(time.Minute) }
	created.Title = "Pasta al forno"
	updated, err := r.UpsertRecipe(created)
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID)
	require.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	require.True(t, updated.UpdatedAt.After(created.CreatedAt))

	got := r.LoadRecipes()
	require.Len(t, got, 1)
	require.Equal(t, "Pasta al forno", got[0].Title)
}

func TestUpsertRecipeUpdatedAtStrictlyIncreasesOnFrozenClock(t *testing.T) {
	r := newTestRepo(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }

	created, err := r.UpsertRecipe(Recipe{Title: "Pasta"})
	require.NoError(t, err)
	updated, err := r.UpsertRecipe(created)
	require.NoError(t, err)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestDeleteRecipe(t *testing.T) {
	r := newTestRepo(t)
	rec, err := r.UpsertRecipe(Recipe{Title: "Pasta"})
	require.NoError(t, err)

	require.NoError(t, r.DeleteRecipe(rec.ID))
	require.Empty(t, r.LoadRecipes())
	require.NoError(t, r.DeleteRecipe("missing"))
}

func TestVerifyProviderLifecycle(t *testing.T) {
	r := newTestRepo(t)

	ok, err := r.VerifyProvider("OpenAI", "short", "gpt-4o")
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, r.LoadSettings().AIProviders[0].Active)

	ok, err = r.VerifyProvider("OpenAI", "sk-long-enough", "gpt-4o")
	require.NoError(t, err)
	require.True(t, ok)
	providers := r.LoadSettings().AIProviders
	require.Len(t, providers, 1)
	require.True(t, providers[0].Active)
	require.NotEmpty(t, providers[0].ID)

	require.NoError(t, r.RemoveProvider("OpenAI"))
	require.Empty(t, r.LoadSettings().AIProviders)
}

func TestClearRemovesBothKeys(t *testing.T) {
	store := storage.NewMemStore()
	r := NewRepository(store)
	_, err := r.UpsertRecipe(Recipe{Title: "Pasta"})
	require.NoError(t, err)
	lang := "en"
	_, err = r.UpdateSettings(SettingsPatch{Language: &lang})
	require.NoError(t, err)

	require.NoError(t, r.Clear())
	_, ok := store.Get(KeySettings)
	require.False(t, ok)
	_, ok = store.Get(KeyRecipes)
	require.False(t, ok)
	require.Empty(t, r.LoadRecipes())
	require.Equal(t, DefaultSettings(), r.LoadSettings())
}

func TestSeedIfEmpty(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.SeedIfEmpty())
	seeded := len(r.LoadRecipes())
	require.Greater(t, seeded, 0)

	// second call is a no-op
	require.NoError(t, r.SeedIfEmpty())
	require.Len(t, r.LoadRecipes(), seeded)
}

func TestFilterRecipes(t *testing.T) {
	recipes := []Recipe{
		{Title: "Tiramisu", Description: "dolce classico", Category: "dolce"},
		{Title: "Caprese", Description: "antipasto fresco", Category: "antipasto"},
	}
	require.Len(t, FilterRecipes(recipes, "tutte", ""), 2)
	require.Len(t, FilterRecipes(recipes, "dolce", ""), 1)
	require.Len(t, FilterRecipes(recipes, "tutte", "fresco"), 1)
	require.Empty(t, FilterRecipes(recipes, "dolce", "caprese"))
}
