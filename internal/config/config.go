package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"museum-guide/backend/internal/llm"
)

type Config struct {
	AppPort            int           `mapstructure:"PORT"`
	Provider           string        `mapstructure:"LLM_PROVIDER"`
	GroqAPIKey         string        `mapstructure:"GROQ_API_KEY"`
	HuggingFaceAPIKey  string        `mapstructure:"HUGGINGFACE_API_KEY"`
	BaseURL            string        `mapstructure:"LLM_BASE_URL"`
	UpstreamTimeout    time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	StaticDir          string        `mapstructure:"STATIC_DIR"`

	// ConfigFile is the .env file that was read, or "" when only the
	// environment and defaults were used.
	ConfigFile string `mapstructure:"-"`
}

// CredentialRule names the rule that decided a credential's variant.
type CredentialRule string

const (
	RuleAccepted    CredentialRule = "accepted"
	RuleMissing     CredentialRule = "missing"
	RulePlaceholder CredentialRule = "placeholder"
	RuleTemplate    CredentialRule = "template"
)

// templateKey matches values copied unchanged from an example .env file,
// e.g. "your_groq_api_key_here" or "YOUR-API-KEY-HERE".
var templateKey = regexp.MustCompile(`(?i)^<?your[_-].*[_-]here>?$`)

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", 5000)
	v.SetDefault("LLM_PROVIDER", llm.ProviderGroq)
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("HUGGINGFACE_API_KEY", "")
	v.SetDefault("LLM_BASE_URL", "")
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "")

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.ConfigFile = v.ConfigFileUsed()
	return &cfg, nil
}

// Validate rejects settings the service cannot start with. A missing or
// placeholder API key is not an error: it selects mock mode.
func (c *Config) Validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if _, ok := llm.LookupProfile(c.Provider); !ok {
		return fmt.Errorf("unknown LLM_PROVIDER %q, expected one of %s", c.Provider, strings.Join(llm.ProfileNames(), ", "))
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("invalid PORT %d", c.AppPort)
	}
	if c.UpstreamTimeout < 0 {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT %s", c.UpstreamTimeout)
	}
	return nil
}

// Profile returns the selected provider profile, with the base URL override applied.
func (c *Config) Profile() llm.Profile {
	profile, _ := llm.LookupProfile(c.Provider)
	if c.BaseURL != "" {
		profile.BaseURL = strings.TrimRight(c.BaseURL, "/")
	}
	return profile
}

// Credential resolves the API key of the selected provider into its
// Configured or Unconfigured variant, and reports which rule decided it.
func (c *Config) Credential() (llm.Credential, CredentialRule) {
	raw := c.GroqAPIKey
	profile := c.Profile()
	if profile.Name == llm.ProviderHuggingFace {
		raw = c.HuggingFaceAPIKey
	}
	return ResolveCredential(raw, profile.KeyPlaceholder)
}

// ResolveCredential applies the credential validation rules to a raw key.
func ResolveCredential(raw, placeholder string) (llm.Credential, CredentialRule) {
	key := strings.TrimSpace(raw)
	switch {
	case key == "":
		return llm.Unconfigured(), RuleMissing
	case placeholder != "" && strings.EqualFold(key, placeholder):
		return llm.Unconfigured(), RulePlaceholder
	case templateKey.MatchString(key):
		return llm.Unconfigured(), RuleTemplate
	default:
		return llm.Configured(key), RuleAccepted
	}
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS into its entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
