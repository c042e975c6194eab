package backup

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ricettario/internal/catalog"
	"ricettario/internal/storage"
)

func newFixture(t *testing.T) (*catalog.Repository, *Codec) {
	t.Helper()
	repo := catalog.NewRepository(storage.NewMemStore())
	return repo, NewCodec(repo)
}

func TestExportImportRoundTrip(t *testing.T) {
	repo, codec := newFixture(t)
	lang := "en"
	_, err := repo.UpdateSettings(catalog.SettingsPatch{Language: &lang})
	require.NoError(t, err)
	rec, err := repo.UpsertRecipe(catalog.Recipe{Title: "Tiramisu", Category: "dolce"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.Export(&buf))

	// import into a fresh repository
	repo2 := catalog.NewRepository(storage.NewMemStore())
	codec2 := NewCodec(repo2)
	require.NoError(t, codec2.Import(&buf))

	require.Equal(t, repo.LoadSettings(), repo2.LoadSettings())
	got := repo2.LoadRecipes()
	require.Len(t, got, 1)
	require.Equal(t, rec.ID, got[0].ID)
	require.Equal(t, "Tiramisu", got[0].Title)
}

func TestImportMissingRecipesKeyLeavesDataUntouched(t *testing.T) {
	repo, codec := newFixture(t)
	_, err := repo.UpsertRecipe(catalog.Recipe{Title: "Caprese"})
	require.NoError(t, err)
	before := repo.LoadSettings()

	err = codec.Import(strings.NewReader(`{"settings":{"theme":"dark"}}`))
	require.ErrorIs(t, err, ErrInvalidShape)
	require.Equal(t, before, repo.LoadSettings())
	require.Len(t, repo.LoadRecipes(), 1)
}

func TestImportParseFailureLeavesDataUntouched(t *testing.T) {
	repo, codec := newFixture(t)
	_, err := repo.UpsertRecipe(catalog.Recipe{Title: "Caprese"})
	require.NoError(t, err)

	err = codec.Import(strings.NewReader(`{not json`))
	require.ErrorIs(t, err, ErrParseFailure)
	require.Len(t, repo.LoadRecipes(), 1)
}

// flakyStore fails writes to one key, everything else passes through.
type flakyStore struct {
	*storage.MemStore
	failKey string
}

func (f *flakyStore) Set(key string, value []byte) error {
	if key != "" && key == f.failKey {
		return errors.New("disk full")
	}
	return f.MemStore.Set(key, value)
}

func TestImportRecipesWriteFailureRestoresSettings(t *testing.T) {
	fs := &flakyStore{MemStore: storage.NewMemStore()}
	repo := catalog.NewRepository(fs)
	lang := "en"
	_, err := repo.UpdateSettings(catalog.SettingsPatch{Language: &lang})
	require.NoError(t, err)
	before := repo.LoadSettings()
	codec := NewCodec(repo)

	fs.failKey = catalog.KeyRecipes
	doc := `{"settings":{"theme":"elegant-dark","language":"fr","dataStorage":"local","aiProviders":[]},` +
		`"recipes":[{"id":"x","title":"Pasta"}]}`
	err = codec.Import(strings.NewReader(doc))
	require.Error(t, err)
	require.Equal(t, before, repo.LoadSettings())
	require.Empty(t, repo.LoadRecipes())

	// the rollback reached the store, not only the in-memory view
	fs.failKey = ""
	require.Equal(t, before, catalog.NewRepository(fs).LoadSettings())
}

func TestFileNameEmbedsDate(t *testing.T) {
	_, codec := newFixture(t)
	codec.now = func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }
	require.Equal(t, "ricettario-backup-2026-09-01.json", codec.FileName())
}

func TestExportImportFile(t *testing.T) {
	repo, codec := newFixture(t)
	_, err := repo.UpsertRecipe(catalog.Recipe{Title: "Pasta"})
	require.NoError(t, err)

	path, err := codec.ExportFile(t.TempDir())
	require.NoError(t, err)

	repo2 := catalog.NewRepository(storage.NewMemStore())
	require.NoError(t, NewCodec(repo2).ImportFile(path))
	require.Len(t, repo2.LoadRecipes(), 1)
}

func TestClearEmptiesBothCollections(t *testing.T) {
	repo, codec := newFixture(t)
	_, err := repo.UpsertRecipe(catalog.Recipe{Title: "Pasta"})
	require.NoError(t, err)

	require.NoError(t, codec.Clear())
	require.Empty(t, repo.LoadRecipes())
	require.Equal(t, catalog.DefaultSettings(), repo.LoadSettings())
}
