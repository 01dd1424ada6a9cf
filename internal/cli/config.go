package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/paths"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ISLAB"

	cfgKeyServerURL      = "server_url"
	cfgKeyPageSize       = "page_size"
	cfgKeyDataDir        = "data_dir"
	cfgKeyLogLevel       = "log_level"
	cfgKeyLogFormat      = "log_format"
	cfgKeyRequestTimeout = "request_timeout"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	ServerURL      string `yaml:"server_url"`
	PageSize       int    `yaml:"page_size"`
	DataDir        string `yaml:"data_dir,omitempty"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	RequestTimeout string `yaml:"request_timeout"`
}

func defaultConfigFile() configFile {
	return configFile{
		ServerURL:      types.DefaultServerURL,
		PageSize:       types.DefaultPageSize,
		LogLevel:       types.DefaultLogLevel,
		LogFormat:      types.LogFormatText,
		RequestTimeout: types.DefaultRequestTimeout.String(),
	}
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default file on first run.
// ISLAB_<KEY> environment variables override file values; --server
// overrides server_url. The data directory is resolved separately.
func (a *app) loadConfig() (types.Config, string, error) {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return types.Config{}, "", sysErr("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, "", sysErr("create config directory: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), defaultConfigFile()); err != nil {
		return types.Config{}, "", sysErr("write config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyServerURL, types.DefaultServerURL)
	v.SetDefault(cfgKeyPageSize, types.DefaultPageSize)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, types.LogFormatText)
	v.SetDefault(cfgKeyRequestTimeout, types.DefaultRequestTimeout)
	v.SetEnvPrefix(envPrefix)
	// data_dir is not bound: ISLAB_DATA_DIR ranks below the file value
	// and is handled by paths.ResolveDataDir.
	for _, key := range []string{cfgKeyServerURL, cfgKeyPageSize, cfgKeyLogLevel, cfgKeyLogFormat, cfgKeyRequestTimeout} {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, "", sysErr("bind env %s: %w", key, err)
		}
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, "", sysErr("read config: %w", err)
		}
	}

	cfg := types.Config{
		ServerURL:      v.GetString(cfgKeyServerURL),
		PageSize:       v.GetInt(cfgKeyPageSize),
		DataDir:        v.GetString(cfgKeyDataDir),
		LogLevel:       v.GetString(cfgKeyLogLevel),
		LogFormat:      v.GetString(cfgKeyLogFormat),
		RequestTimeout: v.GetDuration(cfgKeyRequestTimeout),
	}
	if a.flags.serverURL != "" {
		cfg.ServerURL = a.flags.serverURL
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, "", sysErr("invalid config %s: %w", filepath.Join(configDir, configFileExt), err)
	}
	return cfg, configDir, nil
}

// writeConfigIfMissing creates config.yaml with the given values if the
// file does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string, cfg configFile) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# islab configuration. ISLAB_<KEY> environment variables override these values.\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
