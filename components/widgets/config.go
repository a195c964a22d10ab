package widgets

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ConfigVersion is the current config file format version.
const ConfigVersion = "1"

//go:embed schema/config.schema.json
var configSchemaSource []byte

var (
	configSchemaOnce sync.Once
	configSchema     *jsonschema.Schema
	configSchemaErr  error
)

// ErrEmptyConfig is returned when a config document has no content.
var ErrEmptyConfig = errors.New("widgets: config is empty")

// Duration decodes either a Go duration string ("300ms") or a bare number of
// milliseconds.
type Duration time.Duration

// UnmarshalYAML satisfies yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.parse(node.Value)
}

// UnmarshalJSON satisfies json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.parse(s)
	}
	return d.parse(string(data))
}

// MarshalYAML renders the duration as a Go duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// MarshalJSON renders the duration as a Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(value string) error {
	if value == "" {
		*d = 0
		return nil
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("widgets: invalid duration %q: %w", value, err)
	}
	*d = Duration(parsed)
	return nil
}

// SearchConfig is the file form of SearchOptions.
type SearchConfig struct {
	Placeholder   string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MinCharacters int      `json:"min_characters,omitempty" yaml:"min_characters,omitempty"`
	Delay         Duration `json:"delay,omitempty" yaml:"delay,omitempty"`
	MaxResults    int      `json:"max_results,omitempty" yaml:"max_results,omitempty"`
	Filters       []string `json:"filters,omitempty" yaml:"filters,omitempty"`
	CacheSize     int      `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
}

// Config describes the widgets of an admin page and their seed data.
type Config struct {
	Version    string           `json:"version" yaml:"version"`
	Language   string           `json:"language,omitempty" yaml:"language,omitempty"`
	Pagination PaginatorOptions `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Search     SearchConfig     `json:"search,omitempty" yaml:"search,omitempty"`
	Theme      Theme            `json:"theme,omitempty" yaml:"theme,omitempty"`
	Palette    []string         `json:"palette,omitempty" yaml:"palette,omitempty"`
	Records    []SearchRecord   `json:"records,omitempty" yaml:"records,omitempty"`
	Source     string           `json:"-" yaml:"-"`
}

// SearchOptions converts the file form into SearchOptions.
func (c Config) SearchOptions() SearchOptions {
	return SearchOptions{
		Placeholder:   c.Search.Placeholder,
		MinCharacters: c.Search.MinCharacters,
		Delay:         time.Duration(c.Search.Delay),
		MaxResults:    c.Search.MaxResults,
		Filters:       append([]string(nil), c.Search.Filters...),
		CacheSize:     c.Search.CacheSize,
	}
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("widgets: open config %s: %w", path, err)
	}
	cfg, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("widgets: decode config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// DecodeConfig reads a YAML (or JSON) config, validates it against the
// embedded JSON schema and applies defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("widgets: read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyConfig
	}
	if err := validateConfigSchema(data); err != nil {
		return nil, err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyConfig
		}
		return nil, fmt.Errorf("widgets: parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the schema cannot express.
func (c *Config) Validate() error {
	if c.Version != ConfigVersion {
		return fmt.Errorf("widgets: unsupported config version %q", c.Version)
	}
	seen := make(map[string]struct{}, len(c.Records))
	for idx, record := range c.Records {
		if record.Title == "" {
			return fmt.Errorf("widgets: record at index %d is missing title", idx)
		}
		if record.ID == "" {
			continue
		}
		if _, exists := seen[record.ID]; exists {
			return fmt.Errorf("widgets: config duplicates record id %s", record.ID)
		}
		seen[record.ID] = struct{}{}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = ConfigVersion
	}
	if c.Language == "" {
		c.Language = LanguageArabic
	}
}

func validateConfigSchema(data []byte) error {
	schema, err := compiledConfigSchema()
	if err != nil {
		return err
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("widgets: parse config: %w", err)
	}
	normalized, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("widgets: normalize config: %w", err)
	}
	var payload any
	if err := json.Unmarshal(normalized, &payload); err != nil {
		return fmt.Errorf("widgets: normalize config: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("widgets: config failed validation: %w", err)
	}
	return nil
}

func compiledConfigSchema() (*jsonschema.Schema, error) {
	configSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		const name = "widgets-config.json"
		if err := compiler.AddResource(name, bytes.NewReader(configSchemaSource)); err != nil {
			configSchemaErr = fmt.Errorf("widgets: load config schema: %w", err)
			return
		}
		configSchema, configSchemaErr = compiler.Compile(name)
		if configSchemaErr != nil {
			configSchemaErr = fmt.Errorf("widgets: compile config schema: %w", configSchemaErr)
		}
	})
	return configSchema, configSchemaErr
}
