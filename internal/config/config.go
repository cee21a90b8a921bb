package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every knob the pipeline reads.
type Config struct {
	GithubUsername     string `yaml:"githubUsername"`
	GithubToken        string `yaml:"githubToken"`
	GeminiAPIKey       string `yaml:"geminiApiKey"`
	GeminiModel        string `yaml:"geminiModel"`
	CommitCount        int    `yaml:"commitCount"`
	MaxDiffSize        int    `yaml:"maxDiffSize"`
	LogLevel           string `yaml:"logLevel"`
	LogFile            string `yaml:"logFile"`
	OutputDir          string `yaml:"outputDir"`
	ContainerOutputDir string `yaml:"containerOutputDir"`
	GitUserName        string `yaml:"gitUserName"`
	GitUserEmail       string `yaml:"gitUserEmail"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		GeminiModel:  "gemini-2.0-flash",
		CommitCount:  5,
		MaxDiffSize:  3000,
		LogLevel:     "INFO",
		LogFile:      "app.log",
		OutputDir:    "revu-reports",
		GitUserName:  "GitHub PR Reviewer",
		GitUserEmail: "reviewer@localhost",
	}
}

// ConfigDir returns the platform-appropriate config directory for revu.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "revu"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "revu"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "revu"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "revu"), nil
	default:
		return filepath.Join(home, ".config", "revu"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Load builds the effective config by merging:
// defaults <- .env <- config file <- env <- overrides.
// The overrides map comes from CLI flags (only set values should be passed).
func Load(overrides map[string]string) (Config, error) {
	// Best effort: a missing .env is the common case.
	_ = godotenv.Load()

	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.GithubUsername != "" {
		dst.GithubUsername = src.GithubUsername
	}
	if src.GithubToken != "" {
		dst.GithubToken = src.GithubToken
	}
	if src.GeminiAPIKey != "" {
		dst.GeminiAPIKey = src.GeminiAPIKey
	}
	if src.GeminiModel != "" {
		dst.GeminiModel = src.GeminiModel
	}
	if src.CommitCount > 0 {
		dst.CommitCount = src.CommitCount
	}
	if src.MaxDiffSize > 0 {
		dst.MaxDiffSize = src.MaxDiffSize
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.ContainerOutputDir != "" {
		dst.ContainerOutputDir = src.ContainerOutputDir
	}
	if src.GitUserName != "" {
		dst.GitUserName = src.GitUserName
	}
	if src.GitUserEmail != "" {
		dst.GitUserEmail = src.GitUserEmail
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("DEFAULT_GITHUB_USERNAME"); v != "" {
		cfg.GithubUsername = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GithubToken = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("MAX_DIFF_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDiffSize = n
		}
	}
	if v := os.Getenv("DEFAULT_COMMIT_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CommitCount = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("CONTAINER_OUTPUT_DIR"); v != "" {
		cfg.ContainerOutputDir = v
	}
	if v := os.Getenv("GIT_USER_NAME"); v != "" {
		cfg.GitUserName = v
	}
	if v := os.Getenv("GIT_USER_EMAIL"); v != "" {
		cfg.GitUserEmail = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["githubUsername"]; ok && v != "" {
		cfg.GithubUsername = v
	}
	if v, ok := overrides["githubToken"]; ok && v != "" {
		cfg.GithubToken = v
	}
	if v, ok := overrides["apiKey"]; ok && v != "" {
		cfg.GeminiAPIKey = v
	}
	if v, ok := overrides["commits"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CommitCount = n
		}
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
}
