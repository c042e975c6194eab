package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ricettario/internal/storage"
)

// Repository owns the canonical in-memory copies of Settings and Recipes and
// keeps them in sync with the store. All mutation goes through it; callers
// never hold a second mutable copy.
type Repository struct {
	store    storage.Store
	settings Settings
	recipes  []Recipe
	now      func() time.Time
}

func NewRepository(store storage.Store) *Repository {
	r := &Repository{store: store, now: time.Now}
	r.Reinitialize()
	return r
}

// Reinitialize rebuilds the in-memory view from the store. Used after import
// and clear so derived state is recomputed instead of relying on a process
// restart.
func (r *Repository) Reinitialize() {
	// decode into scratch values: a document that fails partway through must
	// not leave a mix of stored and default fields behind
	r.settings = DefaultSettings()
	var s Settings
	if storage.GetJSON(r.store, KeySettings, &s) {
		if s.AIProviders == nil {
			s.AIProviders = []AIProvider{}
		}
		r.settings = s
	}
	r.recipes = nil
	var recipes []Recipe
	if storage.GetJSON(r.store, KeyRecipes, &recipes) {
		r.recipes = recipes
	}
}

// LoadSettings returns the current settings value.
func (r *Repository) LoadSettings() Settings { return r.settings }

// UpdateSettings shallow-merges patch into current settings, persists and
// returns the new value.
func (r *Repository) UpdateSettings(patch SettingsPatch) (Settings, error) {
	s := r.settings
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	if patch.DataStorage != nil {
		s.DataStorage = *patch.DataStorage
	}
	if patch.Remote != nil {
		cp := *patch.Remote
		s.Remote = &cp
	}
	if patch.AIProviders != nil {
		s.AIProviders = append([]AIProvider(nil), (*patch.AIProviders)...)
	}
	if err := storage.SetJSON(r.store, KeySettings, s); err != nil {
		return r.settings, err
	}
	r.settings = s
	return s, nil
}

// ReplaceSettings swaps settings wholesale (import path only).
func (r *Repository) ReplaceSettings(s Settings) error {
	if s.AIProviders == nil {
		s.AIProviders = []AIProvider{}
	}
	if err := storage.SetJSON(r.store, KeySettings, s); err != nil {
		return err
	}
	r.settings = s
	return nil
}

// LoadRecipes returns the recipe collection, newest first.
func (r *Repository) LoadRecipes() []Recipe { return r.recipes }

// ReplaceRecipes swaps the whole collection and persists it.
func (r *Repository) ReplaceRecipes(recipes []Recipe) error {
	cp := append([]Recipe(nil), recipes...)
	if err := storage.SetJSON(r.store, KeyRecipes, cp); err != nil {
		return err
	}
	r.recipes = cp
	return nil
}

// UpsertRecipe inserts rec at the front when its ID is new (assigning ID,
// CreatedAt and UpdatedAt), otherwise overwrites the existing entry in place
// keeping its original CreatedAt.
func (r *Repository) UpsertRecipe(rec Recipe) (Recipe, error) {
	now := r.now()
	if rec.ID != "" {
		for i, existing := range r.recipes {
			if existing.ID == rec.ID {
				rec.CreatedAt = existing.CreatedAt
				rec.UpdatedAt = now
				if !rec.UpdatedAt.After(existing.UpdatedAt) {
					rec.UpdatedAt = existing.UpdatedAt.Add(time.Millisecond)
				}
				updated := append([]Recipe(nil), r.recipes...)
				updated[i] = rec
				if err := storage.SetJSON(r.store, KeyRecipes, updated); err != nil {
					return Recipe{}, err
				}
				r.recipes = updated
				return rec, nil
			}
		}
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now
	updated := append([]Recipe{rec}, r.recipes...)
	if err := storage.SetJSON(r.store, KeyRecipes, updated); err != nil {
		return Recipe{}, err
	}
	r.recipes = updated
	return rec, nil
}

// DeleteRecipe removes the recipe with the given id. Unknown ids are a no-op.
func (r *Repository) DeleteRecipe(id string) error {
	updated := make([]Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		if rec.ID != id {
			updated = append(updated, rec)
		}
	}
	if len(updated) == len(r.recipes) {
		return nil
	}
	if err := storage.SetJSON(r.store, KeyRecipes, updated); err != nil {
		return err
	}
	r.recipes = updated
	return nil
}

// VerifyProvider runs the provider verify-and-save step: a key longer than 5
// characters and a model name longer than 2 pass. The provider entry is
// updated in place when present, appended otherwise, and Active reflects the
// verify result.
func (r *Repository) VerifyProvider(name, apiKey, model string) (bool, error) {
	ok := len(apiKey) > 5 && len(model) > 2
	providers := append([]AIProvider(nil), r.settings.AIProviders...)
	found := false
	for i, p := range providers {
		if p.Name == name {
			providers[i].APIKey = apiKey
			providers[i].Model = model
			providers[i].Active = ok
			found = true
			break
		}
	}
	if !found {
		providers = append(providers, AIProvider{
			ID:     uuid.NewString(),
			Name:   name,
			APIKey: apiKey,
			Model:  model,
			Active: ok,
		})
	}
	_, err := r.UpdateSettings(SettingsPatch{AIProviders: &providers})
	return ok, err
}

// RemoveProvider deletes the provider entry entirely rather than
// deactivating it.
func (r *Repository) RemoveProvider(name string) error {
	providers := make([]AIProvider, 0, len(r.settings.AIProviders))
	for _, p := range r.settings.AIProviders {
		if p.Name != name {
			providers = append(providers, p)
		}
	}
	_, err := r.UpdateSettings(SettingsPatch{AIProviders: &providers})
	return err
}

// Clear removes both persisted collections and resets the in-memory view to
// its defaults.
func (r *Repository) Clear() error {
	if err := r.store.Remove(KeySettings); err != nil {
		return err
	}
	if err := r.store.Remove(KeyRecipes); err != nil {
		return err
	}
	r.Reinitialize()
	return nil
}

// DeleteKey removes a single persisted key and refreshes the in-memory view.
func (r *Repository) DeleteKey(key string) error {
	if err := r.store.Remove(key); err != nil {
		return err
	}
	r.Reinitialize()
	return nil
}

// FilterRecipes applies the browser's category and search filters.
func FilterRecipes(recipes []Recipe, category, search string) []Recipe {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Recipe, 0, len(recipes))
	for _, rec := range recipes {
		if category != "" && category != "tutte" && rec.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Title), search) &&
			!strings.Contains(strings.ToLower(rec.Description), search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
