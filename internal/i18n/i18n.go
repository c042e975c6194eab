// Package i18n holds the static UI translation tables.
package i18n

// Text keys used by the UI.
const (
	KeyAppTitle           = "app_title"
	KeyRecipes            = "recipes"
	KeySearch             = "search"
	KeyNoRecipes          = "no_recipes"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyTheme              = "theme"
	KeyDataManagement     = "data_management"
	KeyAIIntegration      = "ai_integration"
	KeyExportData         = "export_data"
	KeyImportHint         = "import_hint"
	KeyClearData          = "clear_data"
	KeyDataExported       = "data_exported"
	KeyDataCleared        = "data_cleared"
	KeyIngredients        = "ingredients"
	KeySteps              = "steps"
	KeyNotes              = "notes"
	KeyMinutes            = "minutes"
	KeyCalories           = "calories"
	KeyWizardTitle        = "wizard_title"
	KeyStep1Title         = "step1_title"
	KeyStep1Desc          = "step1_desc"
	KeyStep2Title         = "step2_title"
	KeyStep2Desc          = "step2_desc"
	KeyProjectURL         = "project_url"
	KeyAnonKey            = "anon_key"
	KeyTestConnection     = "test_connection"
	KeyTestingConnection  = "testing_connection"
	KeyConnectionSuccess  = "connection_success"
	KeyConnectionError    = "connection_error"
	KeyInvalidCredentials = "invalid_credentials"
	KeyStep3Title         = "step3_title"
	KeyCheckingTables     = "checking_tables"
	KeyTablesOk           = "tables_ok"
	KeyTablesNok          = "tables_nok"
	KeyTablesUnknown      = "tables_unknown"
	KeyCreateTables       = "create_tables"
	KeyCreatingTables     = "creating_tables"
	KeyTablesCreated      = "tables_created"
	KeyTablesRPCMissing   = "tables_rpc_missing"
	KeyTablesCreateError  = "tables_create_error"
	KeyStep4Title         = "step4_title"
	KeyStep4Desc          = "step4_desc"
	KeyDisconnect         = "disconnect"
	KeyNextStep           = "next_step"
	KeyActive             = "active"
	KeyInactive           = "inactive"
	KeyVerifyAndSave      = "verify_and_save"
	KeyVerifying          = "verifying"
	KeyRemove             = "remove"
	KeyHelp               = "help"
)

// UIKeys lists every key the views render; translation tables are checked
// against it in tests.
var UIKeys = []string{
	KeyAppTitle, KeyRecipes, KeySearch, KeyNoRecipes, KeySettings,
	KeyLanguage, KeyTheme, KeyDataManagement, KeyAIIntegration,
	KeyExportData, KeyImportHint, KeyClearData, KeyDataExported,
	KeyDataCleared, KeyIngredients, KeySteps, KeyNotes, KeyMinutes,
	KeyCalories, KeyWizardTitle, KeyStep1Title, KeyStep1Desc, KeyStep2Title,
	KeyStep2Desc, KeyProjectURL, KeyAnonKey, KeyTestConnection,
	KeyTestingConnection, KeyConnectionSuccess, KeyConnectionError,
	KeyInvalidCredentials, KeyStep3Title, KeyCheckingTables, KeyTablesOk,
	KeyTablesNok, KeyTablesUnknown, KeyCreateTables, KeyCreatingTables,
	KeyTablesCreated, KeyTablesRPCMissing, KeyTablesCreateError,
	KeyStep4Title, KeyStep4Desc, KeyDisconnect, KeyNextStep, KeyActive,
	KeyInactive, KeyVerifyAndSave, KeyVerifying, KeyRemove, KeyHelp,
}

// Localizer resolves keys for the active language, falling back to Italian
// (the application default) and finally to the key itself.
type Localizer struct {
	lang string
}

func New(lang string) *Localizer {
	if _, ok := texts[lang]; !ok {
		lang = "it"
	}
	return &Localizer{lang: lang}
}

func (l *Localizer) Language() string { return l.lang }

func (l *Localizer) Text(key string) string {
	if t, ok := texts[l.lang][key]; ok {
		return t
	}
	if t, ok := texts["it"][key]; ok {
		return t
	}
	return key
}

// LanguageName returns the display name for a language code.
func LanguageName(code string) string {
	if n, ok := languageNames[code]; ok {
		return n
	}
	return code
}

var languageNames = map[string]string{
	"it": "Italiano",
	"en": "English",
	"es": "Español",
	"pl": "Polski",
	"cs": "Čeština",
	"fr": "Français",
	"is": "Íslenska",
}
