package question

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the question set at path, choosing the loader from the file
// extension: .json for JSON documents, .db, .sqlite or .sqlite3 for SQLite
// banks. An empty set is not an error.
func Load(ctx context.Context, path string) (*Set, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadJSON(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	default:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}
}

// LoadJSON reads and validates a JSON question set.
func LoadJSON(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	qs, err := ParseJSON(raw)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &Set{Source: path, Questions: qs}, nil
}

// ParseJSON validates raw against SetSchema and decodes it.
func ParseJSON(raw []byte) ([]Question, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if qs == nil {
		qs = []Question{}
	}
	return qs, nil
}
