package types

import (
	"errors"
	"fmt"
)

// Config holds the settings a rolodex session runs with.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	BookFile string `json:"book_file" yaml:"book_file" mapstructure:"book_file"`
	PageSize int    `json:"page_size" yaml:"page_size" mapstructure:"page_size"`
	Index    string `json:"index" yaml:"index" mapstructure:"index"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Supported search index names.
const (
	IndexMemory = "memory"
	IndexSQLite = "sqlite"
)

// Defaults applied when a key is absent from config.yaml.
const (
	DefaultBookFile = "address_book.json"
	DefaultPageSize = 10
	DefaultIndex    = IndexMemory
	DefaultLogLevel = "warn"
)

// Config validation errors.
var (
	ErrBookFileEmpty = errors.New("book file must not be empty")
	ErrIndexUnknown  = errors.New("unknown index")
	ErrLogLevel      = errors.New("unknown log level")
)

// knownIndexes lists the indexes that Validate accepts.
var knownIndexes = map[string]bool{
	IndexMemory: true,
	IndexSQLite: true,
}

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with every default filled in and an
// empty DataDir.
func DefaultConfig() Config {
	return Config{
		BookFile: DefaultBookFile,
		PageSize: DefaultPageSize,
		Index:    DefaultIndex,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.BookFile == "" {
		return ErrBookFileEmpty
	}
	if err := ValidatePageSize(c.PageSize); err != nil {
		return err
	}
	if !knownIndexes[c.Index] {
		return fmt.Errorf("%w: %q", ErrIndexUnknown, c.Index)
	}
	if !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevel, c.LogLevel)
	}
	return nil
}
