package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const DefaultPrompt = "ready> "

// Config controls the shell and the operator table. Operators are added on
// top of DefaultPrecedence.
type Config struct {
	Prompt    string         `toml:"prompt" yaml:"prompt"`
	Verbose   bool           `toml:"verbose" yaml:"verbose"`
	LogLevel  string         `toml:"log_level" yaml:"log_level"`
	Operators map[string]int `toml:"operators" yaml:"operators"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:    DefaultPrompt,
		LogLevel:  "info",
		Operators: map[string]int{},
	}
}

// LoadConfig reads a TOML or YAML file, picked by extension. Keys missing
// from the file keep their defaults. An empty path gives DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml", "":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	_, err := c.Precedence()
	return err
}

// Precedence builds the operator table described by the config.
func (c Config) Precedence() (PrecedenceTable, error) {
	ops := make([]string, 0, len(c.Operators))
	for op := range c.Operators {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	table := DefaultPrecedence()
	for _, op := range ops {
		if utf8.RuneCountInString(op) != 1 {
			return nil, fmt.Errorf("%w: %q must be a single character", ErrInvalidOperator, op)
		}
		ch, _ := utf8.DecodeRuneInString(op)
		var err error
		table, err = table.WithOperator(ch, c.Operators[op])
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}
