package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderGemini LLMProvider = "gemini"
	ProviderMock   LLMProvider = "mock"
)

type StorageBackend string

const (
	StorageSQLite    StorageBackend = "sqlite"
	StorageFirestore StorageBackend = "firestore"
	StorageMemory    StorageBackend = "memory"
)

type Config struct {
	Port string `yaml:"port"`

	LLMProvider  LLMProvider `yaml:"llm_provider"`
	OpenAIAPIKey string      `yaml:"openai_api_key"`
	OpenAIModel  string      `yaml:"openai_model"`
	GCPProjectID string      `yaml:"gcp_project"`
	GCPLocation  string      `yaml:"gcp_location"`
	GeminiModel  string      `yaml:"gemini_model"`

	YouTubeAPIKey string `yaml:"youtube_api_key"`

	StorageBackend StorageBackend `yaml:"storage_backend"`
	DBPath         string         `yaml:"db_path"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// MissingError lists every required setting that was not provided.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Keys, ", ")
}

func defaults() *Config {
	return &Config{
		Port:           "8080",
		LLMProvider:    ProviderOpenAI,
		OpenAIModel:    "gpt-4",
		GCPLocation:    "us-central1",
		GeminiModel:    "gemini-2.5-flash",
		StorageBackend: StorageSQLite,
		DBPath:         "journal.db",
		LogLevel:       "info",
	}
}

// Load reads .env files, the optional MIRROR_CONFIG yaml file and the
// environment, in increasing order of precedence. It does not validate.
func Load() (*Config, error) {
	if err := loadDotEnv(".env.local", ".env"); err != nil {
		return nil, err
	}

	cfg := defaults()

	if path := os.Getenv("MIRROR_CONFIG"); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("MIRROR_PORT", cfg.Port)
	cfg.LLMProvider = LLMProvider(strings.ToLower(getEnv("MIRROR_LLM_PROVIDER", string(cfg.LLMProvider))))
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIModel = getEnv("MIRROR_OPENAI_MODEL", cfg.OpenAIModel)
	cfg.GCPProjectID = getEnv("MIRROR_GCP_PROJECT", cfg.GCPProjectID)
	cfg.GCPLocation = getEnv("MIRROR_GCP_LOCATION", cfg.GCPLocation)
	cfg.GeminiModel = getEnv("MIRROR_GEMINI_MODEL", cfg.GeminiModel)
	cfg.YouTubeAPIKey = getEnv("YOUTUBE_API_KEY", cfg.YouTubeAPIKey)
	cfg.StorageBackend = StorageBackend(strings.ToLower(getEnv("MIRROR_STORAGE_BACKEND", string(cfg.StorageBackend))))
	cfg.DBPath = getEnv("MIRROR_DB_PATH", cfg.DBPath)
	cfg.LogLevel = getEnv("MIRROR_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("MIRROR_LOG_FILE", cfg.LogFile)

	return cfg, nil
}

// Validate reports all missing secrets at once as a *MissingError, or an
// error for an unknown provider or backend.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderGemini, ProviderMock:
	default:
		return fmt.Errorf("unknown MIRROR_LLM_PROVIDER %q", c.LLMProvider)
	}
	switch c.StorageBackend {
	case StorageSQLite, StorageFirestore, StorageMemory:
	default:
		return fmt.Errorf("unknown MIRROR_STORAGE_BACKEND %q", c.StorageBackend)
	}

	var missing []string
	if c.LLMProvider == ProviderOpenAI && c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.YouTubeAPIKey == "" {
		missing = append(missing, "YOUTUBE_API_KEY")
	}
	if (c.LLMProvider == ProviderGemini || c.StorageBackend == StorageFirestore) && c.GCPProjectID == "" {
		missing = append(missing, "MIRROR_GCP_PROJECT")
	}
	if c.StorageBackend == StorageSQLite && c.DBPath == "" {
		missing = append(missing, "MIRROR_DB_PATH")
	}

	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// loadDotEnv never overrides variables that are already set.
func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}
