// Config loading for the plotline CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyListenAddr = "listen_addr"
	cfgKeyDBPath     = "db_path"
	cfgKeyServerURL  = "server_url"

	defaultListenAddr = "127.0.0.1:8377"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# plotline configuration

# Address the API server listens on
listen_addr: 127.0.0.1:8377

# Server URL the CLI client talks to
server_url: http://127.0.0.1:8377

# Database path (optional; overridable by the PLOTLINE_DB env var)
# db_path:
`

// Config holds the resolved settings for both the server and the client
// side of the CLI.
type Config struct {
	// DataDir holds the database, the config file, and the local
	// position overrides.
	DataDir    string
	ListenAddr string
	DBPath     string
	ServerURL  string
}

// DataDir resolves the plotline home directory: PLOTLINE_HOME if set,
// otherwise ~/.plotline.
func DataDir() (string, error) {
	if dir := os.Getenv("PLOTLINE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".plotline"), nil
}

// Load reads config.yaml from the given data dir using Viper, creating the
// directory and a default config.yaml on first run. A missing config.yaml
// is not an error.
func Load(dataDir string) (*Config, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	if err := ensureDefaultConfigFile(dataDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, defaultListenAddr)
	v.SetDefault(cfgKeyDBPath, filepath.Join(dataDir, "plotline.db"))
	v.SetDefault(cfgKeyServerURL, "http://"+defaultListenAddr)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dataDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		DataDir:    dataDir,
		ListenAddr: v.GetString(cfgKeyListenAddr),
		DBPath:     v.GetString(cfgKeyDBPath),
		ServerURL:  v.GetString(cfgKeyServerURL),
	}
	if dbPath := os.Getenv("PLOTLINE_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the data directory.
func ensureDefaultConfigFile(dataDir string) error {
	path := filepath.Join(dataDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
