package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"ricettario/internal/backup"
	"ricettario/internal/catalog"
	"ricettario/internal/log"
	"ricettario/internal/remote"
	"ricettario/internal/storage"
	"ricettario/internal/ui"
	"ricettario/internal/util"
	"ricettario/internal/wizard"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	dataDir := flag.String("data-dir", defaultDataDir(), "Directory for the local database, logs and exports")
	lang := flag.String("lang", os.Getenv("RICETTARIO_LANG"), "UI language override (it|en|es|pl|cs|fr|is)")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ricettario [--data-dir dir] [--lang code] [--log-level level] | export [dir] | import <file> | clear | version\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 && args[0] == "version" {
		fmt.Println("ricettario", version)
		return
	}

	if err := os.MkdirAll(*dataDir, 0o700); err != nil {
		stdlog.Fatalf("data dir: %v", err)
	}
	logFile, err := os.OpenFile(filepath.Join(*dataDir, "ricettario.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		stdlog.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	log.Init(log.Config{Level: *logLevel, Output: logFile})

	store, err := storage.Open(*dataDir)
	if err != nil {
		stdlog.Fatalf("open store: %v", err)
	}
	defer store.Close()

	repo := catalog.NewRepository(store)
	codec := backup.NewCodec(repo)

	if len(args) > 0 {
		if err := runCommand(args, repo, codec, *dataDir); err != nil {
			stdlog.Fatal(err)
		}
		return
	}

	if err := repo.SeedIfEmpty(); err != nil {
		stdlog.Fatalf("seed: %v", err)
	}

	cfg := util.Config{
		DataDir:  *dataDir,
		Language: *lang,
		LogLevel: *logLevel,
		Version:  version,
	}

	wiz := wizard.New(repo, remote.Dial)
	log.Info("starting")
	if err := ui.Run(context.Background(), repo, codec, wiz, cfg, version); err != nil {
		stdlog.Fatal(err)
	}
}

// runCommand handles the non-interactive word subcommands.
func runCommand(args []string, repo *catalog.Repository, codec *backup.Codec, dataDir string) error {
	switch args[0] {
	case "export":
		dir := dataDir
		if len(args) > 1 {
			dir = args[1]
		}
		path, err := codec.ExportFile(dir)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("import requires a file path")
		}
		if err := codec.ImportFile(args[1]); err != nil {
			return err
		}
		fmt.Printf("imported %d recipes\n", len(repo.LoadRecipes()))
		return nil
	case "clear":
		if err := codec.Clear(); err != nil {
			return err
		}
		fmt.Println("data cleared")
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func defaultDataDir() string {
	if dir := os.Getenv("RICETTARIO_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ricettario"
	}
	return filepath.Join(home, ".ricettario")
}
