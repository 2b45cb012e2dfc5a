package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ukaji3/sheetstd/pkg/sheetstd"
)

// schemaFileName is the template looked up inside STANDARD_FORMAT_DIR.
const schemaFileName = "standard_format.xlsx"

// Config holds the CLI configuration loaded from flags, environment
// variables, .env files and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Engine configuration
	SchemaPath   string
	OutputDir    string
	DefaultSheet string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. SHEETSTD_* environment variables
//  3. STANDARD_FORMAT_DIR and OUTPUT_FOLDER
//  4. .env and .env.local
//  5. Config file (.sheetstd.yaml in . or $HOME)
//  6. Defaults
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	defaults := sheetstd.DefaultOptions()
	v.SetDefault("default_sheet", defaults.DefaultSheetName)
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	v.SetEnvPrefix("sheetstd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName(".sheetstd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		// Config file is optional.
		_ = v.ReadInConfig()
	}

	cfg := &Config{
		Verbose:      v.GetBool("verbose"),
		Quiet:        v.GetBool("quiet"),
		NoColor:      v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		ConfigFile:   v.ConfigFileUsed(),
		SchemaPath:   v.GetString("schema"),
		OutputDir:    v.GetString("output_dir"),
		DefaultSheet: v.GetString("default_sheet"),
		LogLevel:     firstNonEmpty(v.GetString("log_level"), os.Getenv("LOG_LEVEL")),
		LogFormat:    v.GetString("log_format"),
		LogOutput:    v.GetString("log_output"),
	}

	// STANDARD_FORMAT_DIR and OUTPUT_FOLDER only fill values that neither the
	// SHEETSTD_* variables nor the config file set.
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = defaults.SchemaPath
		if dir := os.Getenv("STANDARD_FORMAT_DIR"); dir != "" {
			cfg.SchemaPath = filepath.Join(dir, schemaFileName)
		}
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = firstNonEmpty(os.Getenv("OUTPUT_FOLDER"), defaults.OutputDir)
	}

	return cfg, nil
}

// UpdateFromFlags applies explicitly set flag values over the loaded config.
func (c *Config) UpdateFromFlags(f *globalFlags) {
	c.Verbose = c.Verbose || f.verbose
	c.Quiet = c.Quiet || f.quiet
	c.NoColor = c.NoColor || f.noColor
	if f.schema != "" {
		c.SchemaPath = f.schema
	}
	if f.outputDir != "" {
		c.OutputDir = f.outputDir
	}
}

// Options converts the config into engine options.
func (c *Config) Options() sheetstd.Options {
	opts := sheetstd.DefaultOptions()
	opts.SchemaPath = c.SchemaPath
	opts.OutputDir = c.OutputDir
	if c.DefaultSheet != "" {
		opts.DefaultSheetName = c.DefaultSheet
	}
	return opts
}

// loadEnvFiles loads .env.local then .env. Existing variables are never
// overwritten, so .env.local wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
