package i18n

var texts = map[string]map[string]string{
	"it": {
		KeyAppTitle:           "RICETTARIO",
		KeyRecipes:            "Ricette",
		KeySearch:             "Cerca",
		KeyNoRecipes:          "Nessuna ricetta trovata",
		KeySettings:           "Impostazioni",
		KeyLanguage:           "Lingua",
		KeyTheme:              "Tema",
		KeyDataManagement:     "Gestione dati",
		KeyAIIntegration:      "Integrazione AI",
		KeyExportData:         "Esporta dati",
		KeyImportHint:         "Per importare: ricettario import <file>",
		KeyClearData:          "Cancella dati",
		KeyDataExported:       "Dati esportati in",
		KeyDataCleared:        "Dati cancellati",
		KeyIngredients:        "Ingredienti",
		KeySteps:              "Preparazione",
		KeyNotes:              "Note",
		KeyMinutes:            "minuti",
		KeyCalories:           "calorie",
		KeyWizardTitle:        "Configurazione backend remoto",
		KeyStep1Title:         "Passo 1: Crea un progetto",
		KeyStep1Desc:          "Crea un progetto sul tuo provider e recupera URL e chiave anonima.",
		KeyStep2Title:         "Passo 2: Credenziali",
		KeyStep2Desc:          "Inserisci URL del progetto e chiave anonima, poi prova la connessione.",
		KeyProjectURL:         "URL progetto",
		KeyAnonKey:            "Chiave anonima",
		KeyTestConnection:     "Prova connessione",
		KeyTestingConnection:  "Connessione in corso...",
		KeyConnectionSuccess:  "Connessione riuscita",
		KeyConnectionError:    "Connessione fallita",
		KeyInvalidCredentials: "Credenziali non valide",
		KeyStep3Title:         "Passo 3: Verifica dello schema",
		KeyCheckingTables:     "Verifica tabelle in corso...",
		KeyTablesOk:           "Tabelle presenti",
		KeyTablesNok:          "Tabelle mancanti",
		KeyTablesUnknown:      "Stato tabelle non determinato",
		KeyCreateTables:       "Crea tabelle",
		KeyCreatingTables:     "Creazione tabelle in corso...",
		KeyTablesCreated:      "Tabelle create",
		KeyTablesRPCMissing:   "Funzione RPC execute_sql assente: abilitala sul progetto",
		KeyTablesCreateError:  "Creazione tabelle fallita",
		KeyStep4Title:         "Connesso",
		KeyStep4Desc:          "Il backend remoto è configurato.",
		KeyDisconnect:         "Disconnetti",
		KeyNextStep:           "Avanti",
		KeyActive:             "Attivo",
		KeyInactive:           "Inattivo",
		KeyVerifyAndSave:      "Verifica e salva",
		KeyVerifying:          "Verifica in corso...",
		KeyRemove:             "Rimuovi",
		KeyHelp:               "Aiuto",
	},
	"en": {
		KeyAppTitle:           "RICETTARIO",
		KeyRecipes:            "Recipes",
		KeySearch:             "Search",
		KeyNoRecipes:          "No recipes found",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyTheme:              "Theme",
		KeyDataManagement:     "Data management",
		KeyAIIntegration:      "AI integration",
		KeyExportData:         "Export data",
		KeyImportHint:         "To import: ricettario import <file>",
		KeyClearData:          "Clear data",
		KeyDataExported:       "Data exported to",
		KeyDataCleared:        "Data cleared",
		KeyIngredients:        "Ingredients",
		KeySteps:              "Steps",
		KeyNotes:              "Notes",
		KeyMinutes:            "minutes",
		KeyCalories:           "calories",
		KeyWizardTitle:        "Remote backend setup",
		KeyStep1Title:         "Step 1: Create a project",
		KeyStep1Desc:          "Create a project with your provider and copy its URL and anon key.",
		KeyStep2Title:         "Step 2: Credentials",
		KeyStep2Desc:          "Enter the project URL and anon key, then test the connection.",
		KeyProjectURL:         "Project URL",
		KeyAnonKey:            "Anon key",
		KeyTestConnection:     "Test connection",
		KeyTestingConnection:  "Testing connection...",
		KeyConnectionSuccess:  "Connection successful",
		KeyConnectionError:    "Connection failed",
		KeyInvalidCredentials: "Invalid credentials",
		KeyStep3Title:         "Step 3: Schema check",
		KeyCheckingTables:     "Checking tables...",
		KeyTablesOk:           "Tables present",
		KeyTablesNok:          "Tables missing",
		KeyTablesUnknown:      "Table state undetermined",
		KeyCreateTables:       "Create tables",
		KeyCreatingTables:     "Creating tables...",
		KeyTablesCreated:      "Tables created",
		KeyTablesRPCMissing:   "execute_sql RPC missing: enable it on your project",
		KeyTablesCreateError:  "Table creation failed",
		KeyStep4Title:         "Connected",
		KeyStep4Desc:          "The remote backend is configured.",
		KeyDisconnect:         "Disconnect",
		KeyNextStep:           "Next",
		KeyActive:             "Active",
		KeyInactive:           "Inactive",
		KeyVerifyAndSave:      "Verify and save",
		KeyVerifying:          "Verifying...",
		KeyRemove:             "Remove",
		KeyHelp:               "Help",
	},
	"es": {
		KeyAppTitle:           "RICETTARIO",
		KeyRecipes:            "Recetas",
		KeySearch:             "Buscar",
		KeyNoRecipes:          "No se encontraron recetas",
		KeySettings:           "Ajustes",
		KeyLanguage:           "Idioma",
		KeyTheme:              "Tema",
		KeyDataManagement:     "Gestión de datos",
		KeyAIIntegration:      "Integración AI",
		KeyExportData:         "Exportar datos",
		KeyImportHint:         "Para importar: ricettario import <archivo>",
		KeyClearData:          "Borrar datos",
		KeyDataExported:       "Datos exportados a",
		KeyDataCleared:        "Datos borrados",
		KeyIngredients:        "Ingredientes",
		KeySteps:              "Preparación",
		KeyNotes:              "Notas",
		KeyMinutes:            "minutos",
		KeyCalories:           "calorías",
		KeyWizardTitle:        "Configuración del backend remoto",
		KeyStep1Title:         "Paso 1: Crea un proyecto",
		KeyStep1Desc:          "Crea un proyecto con tu proveedor y copia su URL y clave anónima.",
		KeyStep2Title:         "Paso 2: Credenciales",
		KeyStep2Desc:          "Introduce la URL del proyecto y la clave anónima, luego prueba la conexión.",
		KeyProjectURL:         "URL del proyecto",
		KeyAnonKey:            "Clave anónima",
		KeyTestConnection:     "Probar conexión",
		KeyTestingConnection:  "Probando conexión...",
		KeyConnectionSuccess:  "Conexión correcta",
		KeyConnectionError:    "Conexión fallida",
		KeyInvalidCredentials: "Credenciales no válidas",
		KeyStep3Title:         "Paso 3: Comprobación del esquema",
		KeyCheckingTables:     "Comprobando tablas...",
		KeyTablesOk:           "Tablas presentes",
		KeyTablesNok:          "Faltan tablas",
		KeyTablesUnknown:      "Estado de las tablas sin determinar",
		KeyCreateTables:       "Crear tablas",
		KeyCreatingTables:     "Creando tablas...",
		KeyTablesCreated:      "Tablas creadas",
		KeyTablesRPCMissing:   "Falta la función RPC execute_sql: actívala en tu proyecto",
		KeyTablesCreateError:  "Error al crear las tablas",
		KeyStep4Title:         "Conectado",
		KeyStep4Desc:          "El backend remoto está configurado.",
		KeyDisconnect:         "Desconectar",
		KeyNextStep:           "Siguiente",
		KeyActive:             "Activo",
		KeyInactive:           "Inactivo",
		KeyVerifyAndSave:      "Verificar y guardar",
		KeyVerifying:          "Verificando...",
		KeyRemove:             "Eliminar",
		KeyHelp:               "Ayuda",
	},
	"pl": {
		KeyAppTitle:           "RICETTARIO",
		KeyRecipes:            "Przepisy",
		KeySearch:             "Szukaj",
		KeyNoRecipes:          "Nie znaleziono przepisów",
		KeySettings:           "Ustawienia",
		KeyLanguage:           "Język",
		KeyTheme:              "Motyw",
		KeyDataManagement:     "Zarządzanie danymi",
		KeyAIIntegration:      "Integracja AI",
		KeyExportData:         "Eksportuj dane",
		KeyImportHint:         "Aby zaimportować: ricettario import <plik>",
		KeyClearData:          "Wyczyść dane",
		KeyDataExported:       "Dane wyeksportowano do",
		KeyDataCleared:        "Dane wyczyszczone",
		KeyIngredients:        "Składniki",
		KeySteps:              "Przygotowanie",
		KeyNotes:              "Notatki",
		KeyMinutes:            "minut",
		KeyCalories:           "kalorie",
		KeyWizardTitle:        "Konfiguracja zdalnego backendu",
		KeyStep1Title:         "Krok 1: Utwórz projekt",
		KeyStep1Desc:          "Utwórz projekt u dostawcy i skopiuj jego URL oraz klucz anon.",
		KeyStep2Title:         "Krok 2: Dane dostępowe",
		KeyStep2Desc:          "Podaj URL projektu i klucz anon, potem przetestuj połączenie.",
		KeyProjectURL:         "URL projektu",
		KeyAnonKey:            "Klucz anon",
		KeyTestConnection:     "Testuj połączenie",
		KeyTestingConnection:  "Testowanie połączenia...",
		KeyConnectionSuccess:  "Połączenie udane",
		KeyConnectionError:    "Połączenie nieudane",
		KeyInvalidCredentials: "Nieprawidłowe dane dostępowe",
		KeyStep3Title:         "Krok 3: Kontrola schematu",
		KeyCheckingTables:     "Sprawdzanie tabel...",
		KeyTablesOk:           "Tabele istnieją",
		KeyTablesNok:          "Brak tabel",
		KeyTablesUnknown:      "Stan tabel nieustalony",
		KeyCreateTables:       "Utwórz tabele",
		KeyCreatingTables:     "Tworzenie tabel...",
		KeyTablesCreated:      "Tabele utworzone",
		KeyTablesRPCMissing:   "Brak funkcji RPC execute_sql: włącz ją w projekcie",
		KeyTablesCreateError:  "Tworzenie tabel nie powiodło się",
		KeyStep4Title:         "Połączono",
		KeyStep4Desc:          "Zdalny backend jest skonfigurowany.",
		KeyDisconnect:         "Rozłącz",
		KeyNextStep:           "Dalej",
		KeyActive:             "Aktywny",
		KeyInactive:           "Nieaktywny",
		KeyVerifyAndSave:      "Zweryfikuj i zapisz",
		KeyVerifying:          "Weryfikacja...",
		KeyRemove:             "Usuń",
		KeyHelp:               "Pomoc",
	},
	"cs": {
		KeyAppTitle:           "RICETTARIO",
		KeyRecipes:            "Recepty",
		KeySearch:             "Hledat",
		KeyNoRecipes:          "Žádné recepty nenalezeny",
		KeySettings:           "Nastavení",
		KeyLanguage:           "Jazyk",
		KeyTheme:              "Motiv",
		KeyDataManagement:     "Správa dat",
		KeyAIIntegration:      "Integrace AI",
		KeyExportData:         "Exportovat data",
		KeyImportHint:         "Pro import: ricettario import <soubor>",
		KeyClearData:          "Smazat data",
		KeyDataExported:       "Data exportována do",
		KeyDataCleared:        "Data smazána",
		KeyIngredients:        "Ingredience",
		KeySteps:              "Postup",
		KeyNotes:              "Poznámky",
		KeyMinutes:            "minut",
		KeyCalories:           "kalorií",
		KeyWizardTitle:        "Nastavení vzdáleného backendu",
		KeyStep1Title:         "Krok 1: Vytvořte projekt",
		KeyStep1Desc:          "Vytvořte projekt u poskytovatele a zkopírujte URL a anonymní klíč.",
		KeyStep2Title:         "Krok 2: Přihlašovací údaje",
		KeyStep2Desc:          "Zadejte URL projektu a anonymní klíč, poté otestujte připojení.",
		KeyProjectURL:         "URL projektu",
		KeyAnonKey:            "Anonymní klíč",
		KeyTestConnection:     "Otestovat připojení",
		KeyTestingConnection:  "Testování připojení...",
		KeyConnectionSuccess:  "Připojení úspěšné",
		KeyConnectionError:    "Připojení selhalo",
		KeyInvalidCredentials: "Neplatné přihlašovací údaje",
		KeyStep3Title:         "Krok 3: Kontrola schématu",
		KeyCheckingTables:     "Kontrola tabulek...",
		KeyTablesOk:           "Tabulky existují",
		KeyTablesNok:          "Tabulky chybí",
		KeyTablesUnknown:      "Stav tabulek neurčen",
		KeyCreateTables:       "Vytvořit tabulky",
		KeyCreatingTables:     "Vytváření tabulek...",
		KeyTablesCreated:      "Tabulky vytvořeny",
		KeyTablesRPCMissing:   "Chybí RPC funkce execute_sql: povolte ji v projektu",
		KeyTablesCreateError:  "Vytvoření tabulek selhalo",
		KeyStep4Title:         "Připojeno",
		KeyStep4Desc:          "Vzdálený backend je nakonfigurován.",
		KeyDisconnect:         "Odpojit",
		KeyNextStep:           "Další",
		KeyActive:             "Aktivní",
		KeyInactive:           "Neaktivní",
		KeyVerifyAndSave:      "Ověřit a uložit",
		KeyVerifying:          "Ověřování...",
		KeyRemove:             "Odebrat",
		KeyHelp:               "Nápověda",
	},
	"fr": {
		KeyAppTitle:           "RICETTARIO",
		KeyRecipes:            "Recettes",
		KeySearch:             "Rechercher",
		KeyNoRecipes:          "Aucune recette trouvée",
		KeySettings:           "Paramètres",
		KeyLanguage:           "Langue",
		KeyTheme:              "Thème",
		KeyDataManagement:     "Gestion des données",
		KeyAIIntegration:      "Intégration AI",
		KeyExportData:         "Exporter les données",
		KeyImportHint:         "Pour importer : ricettario import <fichier>",
		KeyClearData:          "Effacer les données",
		KeyDataExported:       "Données exportées vers",
		KeyDataCleared:        "Données effacées",
		KeyIngredients:        "Ingrédients",
		KeySteps:              "Préparation",
		KeyNotes:              "Notes",
		KeyMinutes:            "minutes",
		KeyCalories:           "calories",
		KeyWizardTitle:        "Configuration du backend distant",
		KeyStep1Title:         "Étape 1 : Créez un projet",
		KeyStep1Desc:          "Créez un projet chez votre fournisseur et copiez son URL et sa clé anonyme.",
		KeyStep2Title:         "Étape 2 : Identifiants",
		KeyStep2Desc:          "Saisissez l'URL du projet et la clé anonyme, puis testez la connexion.",
		KeyProjectURL:         "URL du projet",
		KeyAnonKey:            "Clé anonyme",
		KeyTestConnection:     "Tester la connexion",
		KeyTestingConnection:  "Test de connexion...",
		KeyConnectionSuccess:  "Connexion réussie",
		KeyConnectionError:    "Échec de la connexion",
		KeyInvalidCredentials: "Identifiants invalides",
		KeyStep3Title:         "Étape 3 : Vérification du schéma",
		KeyCheckingTables:     "Vérification des tables...",
		KeyTablesOk:           "Tables présentes",
		KeyTablesNok:          "Tables manquantes",
		KeyTablesUnknown:      "État des tables indéterminé",
		KeyCreateTables:       "Créer les tables",
		KeyCreatingTables:     "Création des tables...",
		KeyTablesCreated:      "Tables créées",
		KeyTablesRPCMissing:   "Fonction RPC execute_sql absente : activez-la sur votre projet",
		KeyTablesCreateError:  "Échec de la création des tables",
		KeyStep4Title:         "Connecté",
		KeyStep4Desc:          "Le backend distant est configuré.",
		KeyDisconnect:         "Déconnecter",
		KeyNextStep:           "Suivant",
		KeyActive:             "Actif",
		KeyInactive:           "Inactif",
		KeyVerifyAndSave:      "Vérifier et enregistrer",
		KeyVerifying:          "Vérification...",
		KeyRemove:             "Supprimer",
		KeyHelp:               "Aide",
	},
	"is": {
		KeyAppTitle:           "RICETTARIO",
		KeyRecipes:            "Uppskriftir",
		KeySearch:             "Leita",
		KeyNoRecipes:          "Engar uppskriftir fundust",
		KeySettings:           "Stillingar",
		KeyLanguage:           "Tungumál",
		KeyTheme:              "Þema",
		KeyDataManagement:     "Gagnaumsjón",
		KeyAIIntegration:      "AI samþætting",
		KeyExportData:         "Flytja út gögn",
		KeyImportHint:         "Til að flytja inn: ricettario import <skrá>",
		KeyClearData:          "Hreinsa gögn",
		KeyDataExported:       "Gögn flutt út í",
		KeyDataCleared:        "Gögn hreinsuð",
		KeyIngredients:        "Hráefni",
		KeySteps:              "Aðferð",
		KeyNotes:              "Athugasemdir",
		KeyMinutes:            "mínútur",
		KeyCalories:           "hitaeiningar",
		KeyWizardTitle:        "Uppsetning fjartengds bakenda",
		KeyStep1Title:         "Skref 1: Búðu til verkefni",
		KeyStep1Desc:          "Búðu til verkefni hjá þjónustuveitunni og afritaðu URL og anon lykil.",
		KeyStep2Title:         "Skref 2: Auðkenni",
		KeyStep2Desc:          "Sláðu inn URL verkefnisins og anon lykilinn, prófaðu síðan tenginguna.",
		KeyProjectURL:         "URL verkefnis",
		KeyAnonKey:            "Anon lykill",
		KeyTestConnection:     "Prófa tengingu",
		KeyTestingConnection:  "Prófa tengingu...",
		KeyConnectionSuccess:  "Tenging tókst",
		KeyConnectionError:    "Tenging mistókst",
		KeyInvalidCredentials: "Ógild auðkenni",
		KeyStep3Title:         "Skref 3: Athugun á gagnagrunnsskema",
		KeyCheckingTables:     "Athuga töflur...",
		KeyTablesOk:           "Töflur til staðar",
		KeyTablesNok:          "Töflur vantar",
		KeyTablesUnknown:      "Staða taflna óþekkt",
		KeyCreateTables:       "Búa til töflur",
		KeyCreatingTables:     "Bý til töflur...",
		KeyTablesCreated:      "Töflur búnar til",
		KeyTablesRPCMissing:   "execute_sql RPC vantar: virkjaðu það í verkefninu",
		KeyTablesCreateError:  "Mistókst að búa til töflur",
		KeyStep4Title:         "Tengt",
		KeyStep4Desc:          "Fjartengdi bakendinn er uppsettur.",
		KeyDisconnect:         "Aftengja",
		KeyNextStep:           "Áfram",
		KeyActive:             "Virkt",
		KeyInactive:           "Óvirkt",
		KeyVerifyAndSave:      "Staðfesta og vista",
		KeyVerifying:          "Staðfesti...",
		KeyRemove:             "Fjarlægja",
		KeyHelp:               "Hjálp",
	},
}
