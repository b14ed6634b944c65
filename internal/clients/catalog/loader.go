// Package catalog loads superstar rosters from disk
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
)

// DefaultPath is where the roster file is looked up when none is given
const DefaultPath = "roster.json"

// Encoding of a roster file
type Encoding string

// Supported encodings
const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// rosterFile is the document layout: {"superstars": [...]}
type rosterFile struct {
	Superstars []*entities.Superstar `json:"superstars" yaml:"superstars"`
}

// Loader produces a catalog
type Loader interface {
	Load(ctx context.Context) (*entities.Catalog, error)
}

// Config holds the configuration for the file loader
type Config struct {
	Path string
}

// Validate ensures the loader can find its file
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", c.Path, vb)
	if c.Path != "" {
		if _, err := EncodingFor(c.Path); err != nil {
			vb.Field("path", "must end in .json, .yaml or .yml")
		}
	}
	return vb.Build()
}

type fileLoader struct {
	path string
}

// NewFileLoader creates a loader that reads one roster file
func NewFileLoader(cfg *Config) (Loader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &fileLoader{path: cfg.Path}, nil
}

// Load reads and parses the roster file
func (l *fileLoader) Load(_ context.Context) (*entities.Catalog, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		code := errors.CodeUnavailable
		if os.IsNotExist(err) {
			code = errors.CodeNotFound
		}
		return nil, errors.WrapWithCode(err, code, "failed to read roster file").
			WithMeta("path", l.path)
	}

	encoding, _ := EncodingFor(l.path)
	catalog, err := Parse(data, encoding)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load roster %s", l.path)
	}

	slog.Debug("Loaded roster",
		"path", l.path,
		"superstars", catalog.Len(),
		"teams", len(catalog.Teams()))
	return catalog, nil
}

// EncodingFor picks the encoding from a file extension
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodingJSON, nil
	case ".yaml", ".yml":
		return EncodingYAML, nil
	}
	return "", errors.InvalidArgumentf("unsupported roster file extension %q", filepath.Ext(path)).
		WithMeta("path", path)
}

// Parse decodes a roster document and builds a validated catalog
func Parse(data []byte, encoding Encoding) (*entities.Catalog, error) {
	var doc rosterFile

	switch encoding {
	case EncodingJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed JSON roster")
		}
	case EncodingYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed YAML roster")
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported roster encoding %q", encoding)
	}

	if doc.Superstars == nil {
		return nil, errors.InvalidArgument("roster has no superstars key")
	}

	return entities.NewCatalog(doc.Superstars)
}
