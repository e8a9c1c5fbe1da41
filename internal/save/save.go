// Package save persists campaign state as versioned JSON documents.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/merctools/iron-contract/internal/models"
)

// Version identifies the save document format.
const Version = "1.0"

// AutosaveName is the default save file written when no name is given.
const AutosaveName = "autosave.json"

var (
	// ErrNotFound reports that the save file does not exist.
	ErrNotFound = errors.New("save file not found")

	// ErrCorrupted reports that the save file exists but cannot be
	// understood: invalid JSON or missing company data.
	ErrCorrupted = errors.New("corrupted save file")
)

// Metadata describes a save file without loading the full company.
type Metadata struct {
	Filename    string
	CompanyName string
	SavedAt     time.Time
}

// DefaultDir returns the standard save directory under the user's home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ironcontract", "saves")
	}
	return filepath.Join(home, ".ironcontract", "saves")
}

// normalize appends the .json extension when missing.
func normalize(filename string) string {
	if filename == "" {
		return AutosaveName
	}
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}
	return filename
}

// Save writes the company to dir/filename, creating the directory as
// needed. An empty filename selects the autosave slot.
func Save(c *models.Company, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating save directory: %w", err)
	}
	path := filepath.Join(dir, normalize(filename))

	doc := map[string]any{
		"version":  Version,
		"saved_at": time.Now().Format(time.RFC3339),
		"company":  c.ToMap(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding save data: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing save file: %w", err)
	}
	return path, nil
}

// Load reads a company back from dir/filename. A missing file yields
// ErrNotFound; unparseable JSON or a document without company data yields
// ErrCorrupted.
func Load(dir, filename string) (*models.Company, error) {
	path := filepath.Join(dir, normalize(filename))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
		}
		return nil, fmt.Errorf("reading save file: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON format", ErrCorrupted)
	}
	raw, ok := doc["company"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing company data", ErrCorrupted)
	}
	return models.CompanyFromMap(raw), nil
}

// ListSaves scans dir for save files and returns their metadata, most
// recent first. Corrupted files are skipped.
func ListSaves(dir string) ([]Metadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading save directory: %w", err)
	}

	var saves []Metadata
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}

		meta := Metadata{Filename: e.Name(), CompanyName: "Unknown"}
		if company, ok := doc["company"].(map[string]any); ok {
			if name, ok := company["name"].(string); ok && name != "" {
				meta.CompanyName = name
			}
		}
		if s, ok := doc["saved_at"].(string); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				meta.SavedAt = t
			}
		}
		if meta.SavedAt.IsZero() {
			if info, err := e.Info(); err == nil {
				meta.SavedAt = info.ModTime()
			}
		}
		saves = append(saves, meta)
	}

	sort.Slice(saves, func(i, j int) bool {
		return saves[i].SavedAt.After(saves[j].SavedAt)
	})
	return saves, nil
}

// Exists reports whether the named save file is present in dir.
func Exists(dir, filename string) bool {
	_, err := os.Stat(filepath.Join(dir, normalize(filename)))
	return err == nil
}
