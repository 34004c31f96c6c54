// Package config loads rolodex settings from config.yaml with Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ROLODEX"
)

// Config keys.
const (
	KeyDataDir  = "data_dir"
	KeyBookFile = "book_file"
	KeyPageSize = "page_size"
	KeyIndex    = "index"
	KeyLogLevel = "log_level"
)

// envKeys can be overridden by ROLODEX_<KEY> environment variables.
// data_dir is resolved by paths.ResolveDataDir instead, where the config
// file value outranks ROLODEX_DATA_DIR.
var envKeys = []string{KeyBookFile, KeyPageSize, KeyIndex, KeyLogLevel}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# rolodex configuration

# Directory holding the address book (default: current directory;
# overridable by --data-dir)
# data_dir:

# Address book file name inside data_dir
book_file: address_book.json

# Records per page for "2" in the shell and the pages command
page_size: 10

# Search engine: memory or sqlite
index: memory

# debug, info, warn, error
log_level: warn
`

// Path returns the config.yaml path inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, configFileExt)
}

// Load reads config.yaml from configDir. It creates the directory and a
// default config.yaml on first run. A missing config.yaml is not an error.
func Load(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	def := types.DefaultConfig()
	v.SetDefault(KeyBookFile, def.BookFile)
	v.SetDefault(KeyPageSize, def.PageSize)
	v.SetDefault(KeyIndex, def.Index)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// Resolve builds a validated types.Config from v. DataDir follows
// paths.ResolveDataDir with dataDirFlag as the highest precedence.
func Resolve(v *viper.Viper, dataDirFlag string) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(dataDirFlag, cfg.DataDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// WriteFile writes cfg to path as YAML. An existing file is kept unless
// overwrite is set; the return value reports whether a file was written.
func WriteFile(path string, cfg types.Config, overwrite bool) (bool, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := Path(configDir)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
