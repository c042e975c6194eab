package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"ricettario/internal/catalog"
	"ricettario/internal/log"
)

// Import failure taxonomy. No partial import ever happens: existing data is
// untouched unless the whole document is accepted.
var (
	ErrParseFailure = errors.New("backup: document is not valid JSON")
	ErrInvalidShape = errors.New("backup: document must contain settings and recipes")
)

// Document is the combined export/import artifact.
type Document struct {
	Settings catalog.Settings `json:"settings"`
	Recipes  []catalog.Recipe `json:"recipes"`
}

// Codec serializes the repository state to a backup document and back.
type Codec struct {
	repo *catalog.Repository
	now  func() time.Time
}

func NewCodec(repo *catalog.Repository) *Codec {
	return &Codec{repo: repo, now: time.Now}
}

// FileName returns the export filename with the date embedded.
func (c *Codec) FileName() string {
	return fmt.Sprintf("ricettario-backup-%s.json", c.now().Format("2006-01-02"))
}

// Export writes the backup document to w.
func (c *Codec) Export(w io.Writer) error {
	doc := Document{
		Settings: c.repo.LoadSettings(),
		Recipes:  c.repo.LoadRecipes(),
	}
	if doc.Recipes == nil {
		doc.Recipes = []catalog.Recipe{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(doc), "export backup")
}

// ExportFile writes the backup into dir and returns the full path.
func (c *Codec) ExportFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", errors.Wrap(err, "export dir")
	}
	path := filepath.Join(dir, c.FileName())
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create backup file")
	}
	defer f.Close()
	if err := c.Export(f); err != nil {
		return "", err
	}
	return path, nil
}

// Import validates and applies a backup document read from r. Settings and
// recipes are replaced wholesale and the repository reloads its local view.
func (c *Codec) Import(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read backup")
	}
	doc, err := Decode(raw)
	if err != nil {
		return err
	}
	prev := c.repo.LoadSettings()
	if err := c.repo.ReplaceSettings(doc.Settings); err != nil {
		return err
	}
	if err := c.repo.ReplaceRecipes(doc.Recipes); err != nil {
		// roll the settings write back so a failed import is all-or-nothing
		if restoreErr := c.repo.ReplaceSettings(prev); restoreErr != nil {
			logger := log.WithComponent("backup")
			logger.Error().Err(restoreErr).Msg("settings rollback failed after import error")
		}
		return err
	}
	c.repo.Reinitialize()
	return nil
}

// ImportFile imports a backup from path.
func (c *Codec) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open backup file")
	}
	defer f.Close()
	return c.Import(f)
}

// Clear removes both stored collections and resets the in-memory view.
func (c *Codec) Clear() error { return c.repo.Clear() }

// Decode parses and shape-checks a backup document before any mutation is
// applied. Both top-level keys must be present.
func Decode(raw []byte) (Document, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return Document{}, ErrParseFailure
	}
	if _, ok := shape["settings"]; !ok {
		return Document{}, ErrInvalidShape
	}
	if _, ok := shape["recipes"]; !ok {
		return Document{}, ErrInvalidShape
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, ErrParseFailure
	}
	if doc.Recipes == nil {
		doc.Recipes = []catalog.Recipe{}
	}
	return doc, nil
}
