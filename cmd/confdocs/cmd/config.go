package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration loaded from flags, environment
// variables, .env files and an optional config file.
type Config struct {
	// Global flags
	Verbose bool

	// Config file
	ConfigFile string

	// Verification inputs
	ManifestPaths []string
	GeneratedDir  string
	CommonSection string
	CommonFile    string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.confdocs.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.SetEnvPrefix("confdocs")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".confdocs")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose:    viper.GetBool("verbose"),
		ConfigFile: viper.ConfigFileUsed(),

		ManifestPaths: viper.GetStringSlice("manifest_paths"),
		GeneratedDir:  viper.GetString("generated_dir"),
		CommonSection: viper.GetString("common_section"),
		CommonFile:    viper.GetString("common_file"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if config.CommonSection == "" {
		config.CommonSection = "common"
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags. Flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(manifests []string, generated string, verbose bool) {
	if len(manifests) > 0 {
		c.ManifestPaths = manifests
	}
	if generated != "" {
		c.GeneratedDir = generated
	}
	if verbose {
		c.Verbose = true
	}
}

// loadEnvFiles loads .env files from the working directory.
func loadEnvFiles() {
	// Silently ignore missing files; .env is optional
	for _, file := range []string{".env.local", ".env"} {
		_ = godotenv.Load(file)
	}
}

// getEnvOrDefault returns the environment value or a default.
func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
