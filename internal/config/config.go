package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".medportal"
	envPrefix  = "MP"
)

const (
	KeyAPIBaseURL       = "api.base_url"
	KeyAPITimeout       = "api.timeout"
	KeyMirrorBackend    = "mirror.backend"
	KeyMirrorFallback   = "mirror.fallback"
	KeyMirrorPath       = "mirror.path"
	KeyMirrorNamespace  = "mirror.namespace"
	KeyRedisAddr        = "mirror.redis.addr"
	KeyRedisPassword    = "mirror.redis.password"
	KeyRedisDB          = "mirror.redis.db"
	KeyRedisTTL         = "mirror.redis.ttl"
	KeyAssistantSource  = "assistant.source"
	KeyLLMBaseURL       = "assistant.llm.base_url"
	KeyLLMAPIKey        = "assistant.llm.api_key"
	KeyLLMModel         = "assistant.llm.model"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	DefaultAPIBaseURL   = "http://localhost:5000/api"
	DefaultLLMBaseURL   = "https://api.groq.com/openai/v1"
	DefaultLLMModel     = "llama3-70b-8192"
	DefaultMirrorPrefix = "medportal"
)

const (
	BackendFile   = "file"
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

const (
	SourceRemote = "remote"
	SourceLocal  = "local"
	SourceLLM    = "llm"
)

type Config struct {
	API       APIConfig
	Mirror    MirrorConfig
	Assistant AssistantConfig
	Log       LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type MirrorConfig struct {
	Backend   string
	Fallback  string
	Path      string
	Namespace string
	Redis     RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type AssistantConfig struct {
	Source string
	LLM    LLMConfig
}

type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load resolves configuration from ~/.medportal/config.toml, a .env file in
// the working directory, and MP_* environment variables, in increasing
// precedence. A missing config file or .env file is not an error.
func Load(cfg *viper.Viper, homeDir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env file: %w", err)
	}

	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	if err := cfg.BindEnv(KeyLLMAPIKey, "MP_ASSISTANT_LLM_API_KEY", "GROQ_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind llm api key env: %w", err)
	}

	setDefaults(cfg, baseDir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(cfg.GetString(KeyAPIBaseURL), "/"),
			Timeout: cfg.GetDuration(KeyAPITimeout),
		},
		Mirror: MirrorConfig{
			Backend:   strings.ToLower(cfg.GetString(KeyMirrorBackend)),
			Fallback:  strings.ToLower(cfg.GetString(KeyMirrorFallback)),
			Path:      cfg.GetString(KeyMirrorPath),
			Namespace: cfg.GetString(KeyMirrorNamespace),
			Redis: RedisConfig{
				Addr:     cfg.GetString(KeyRedisAddr),
				Password: cfg.GetString(KeyRedisPassword),
				DB:       cfg.GetInt(KeyRedisDB),
				TTL:      cfg.GetDuration(KeyRedisTTL),
			},
		},
		Assistant: AssistantConfig{
			Source: strings.ToLower(cfg.GetString(KeyAssistantSource)),
			LLM: LLMConfig{
				BaseURL: cfg.GetString(KeyLLMBaseURL),
				APIKey:  cfg.GetString(KeyLLMAPIKey),
				Model:   cfg.GetString(KeyLLMModel),
			},
		},
		Log: LogConfig{
			Level:  cfg.GetString(KeyLogLevel),
			Format: cfg.GetString(KeyLogFormat),
		},
	}

	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper, baseDir string) {
	cfg.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	cfg.SetDefault(KeyAPITimeout, 15*time.Second)
	cfg.SetDefault(KeyMirrorBackend, BackendFile)
	cfg.SetDefault(KeyMirrorFallback, "")
	cfg.SetDefault(KeyMirrorPath, filepath.Join(baseDir, "mirror"))
	cfg.SetDefault(KeyMirrorNamespace, DefaultMirrorPrefix)
	cfg.SetDefault(KeyRedisAddr, "localhost:6379")
	cfg.SetDefault(KeyRedisPassword, "")
	cfg.SetDefault(KeyRedisDB, 0)
	cfg.SetDefault(KeyRedisTTL, time.Duration(0))
	cfg.SetDefault(KeyAssistantSource, SourceRemote)
	cfg.SetDefault(KeyLLMBaseURL, DefaultLLMBaseURL)
	cfg.SetDefault(KeyLLMModel, DefaultLLMModel)
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "text")
}

func (c Config) Validate() error {
	var errs []error

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is empty"))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}
	if !validBackend(c.Mirror.Backend) {
		errs = append(errs, fmt.Errorf("unsupported mirror.backend %q", c.Mirror.Backend))
	}
	if c.Mirror.Fallback != "" {
		if !validBackend(c.Mirror.Fallback) || c.Mirror.Fallback == BackendRedis {
			errs = append(errs, fmt.Errorf("unsupported mirror.fallback %q", c.Mirror.Fallback))
		}
		if c.Mirror.Fallback == c.Mirror.Backend {
			errs = append(errs, errors.New("mirror.fallback must differ from mirror.backend"))
		}
	}
	if c.Mirror.Path == "" && c.Mirror.Backend != BackendRedis {
		errs = append(errs, errors.New("mirror.path is empty"))
	}
	switch c.Assistant.Source {
	case SourceRemote, SourceLocal:
	case SourceLLM:
		if c.Assistant.LLM.Model == "" {
			errs = append(errs, errors.New("assistant.llm.model is empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported assistant.source %q", c.Assistant.Source))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return nil
}

func validBackend(name string) bool {
	switch name {
	case BackendFile, BackendTOML, BackendSQLite, BackendRedis:
		return true
	default:
		return false
	}
}
