package catalog

import "time"

// Storage keys for the two persisted collections.
const (
	KeySettings = "ricettario-settings"
	KeyRecipes  = "ricettario-recipes"
)

// Where recipe data lives.
const (
	StorageLocal  = "local"
	StorageRemote = "remote"
)

// Settings is the singleton application configuration. It is mutated via
// partial merge and never replaced wholesale except on import or clear.
type Settings struct {
	Theme       string        `json:"theme"`
	Language    string        `json:"language"`
	DataStorage string        `json:"dataStorage"`
	Remote      *RemoteConfig `json:"remoteConfig,omitempty"`
	AIProviders []AIProvider  `json:"aiProviders"`
}

// RemoteConfig describes the remote backend connection. Connected=true means
// URL and AnonKey were the pair last used in a successful connectivity test.
type RemoteConfig struct {
	URL       string `json:"url"`
	AnonKey   string `json:"anonKey"`
	Connected bool   `json:"connected"`
}

// AIProvider is a configured text-generation provider. Active is set only
// after a successful verify step.
type AIProvider struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
	Active bool   `json:"active"`
}

type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	TimeMinutes int          `json:"timeMinutes"`
	Difficulty  string       `json:"difficulty"`
	Calories    int          `json:"calories"`
	Image       string       `json:"image,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
}

type Step struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Categories, first entry is the "all" filter.
var Categories = []string{
	"tutte", "antipasto", "primo", "secondo", "contorno",
	"dolce", "bevanda", "veg", "gluten-free", "light",
}

var Difficulties = []string{"facile", "media", "difficile"}

// Languages supported by the UI translation tables.
var Languages = []string{"it", "en", "es", "pl", "cs", "fr", "is"}

// DefaultSettings is returned whenever stored settings are absent or
// malformed.
func DefaultSettings() Settings {
	return Settings{
		Theme:       "modern-blue",
		Language:    "it",
		DataStorage: StorageLocal,
		AIProviders: []AIProvider{},
	}
}

// SettingsPatch is a partial settings update: only non-nil fields overwrite.
type SettingsPatch struct {
	Theme       *string
	Language    *string
	DataStorage *string
	Remote      *RemoteConfig
	AIProviders *[]AIProvider
}
