package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputDir string
	Format    string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	OutputDir string
	File      string
	Format    string
	Database  string
	Builtin   bool
	Filter    string
}

// Database holds connection settings for the seed command
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath: DefaultProjectPath,
		OutputDir:   DefaultOutputDir,
		Format:      DefaultFormat,
	}
}

// Apply copies parsed flags into the config and validates them
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		if !isSupportedFormat(flags.Format) {
			return fmt.Errorf("unsupported format %q (supported: %v)", flags.Format, SupportedFormats)
		}
		c.Format = flags.Format
	}
	return nil
}

// OutputPath returns the path of the generated file, relative to the project path.
// An explicit --file wins; otherwise the name follows the output format.
func (c *Config) OutputPath() string {
	name := c.Flags.File
	if name == "" {
		name = DefaultOutputName + "." + c.Format
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDirPath(), name)
}

// OutputDirPath returns the output directory, relative to the project path
// unless it is absolute. CSV output writes one file per sheet here.
func (c *Config) OutputDirPath() string {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir
	}
	return filepath.Join(c.ProjectPath, c.OutputDir)
}

// LoadDatabase reads database settings from the environment, after loading
// the project's .env file if there is one
func (c *Config) LoadDatabase() Database {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	db := Database{
		Host:     getEnv("DB_HOST", DefaultDBHost),
		Port:     getEnv("DB_PORT", DefaultDBPort),
		User:     getEnv("DB_USERNAME", DefaultDBUser),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getEnv("DB_DATABASE", DefaultDBDatabase),
	}
	if c.Flags.Database != "" {
		db.Name = c.Flags.Database
	}
	return db
}

// Addr returns host:port
func (d Database) Addr() string {
	return d.Host + ":" + d.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
