// Package config loads analyzer configuration from a YAML file with .env and
// environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName    = "narrative-analyzer"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8074
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 60 * time.Second
	defaultRateLimitRPS   = 10
	defaultLogLevel       = "info"
	defaultTopDriverCount = 5
)

// Default keyword lists. These mirror the reference narrative lists and are
// illustrative defaults only; callers supply their own per run.
var (
	defaultProTerms = []string{
		"proud indian", "jai hind", "india shining", "support india",
		"modi government", "indian army", "made in india", "incredible india",
		"strong india", "unified india",
	}
	defaultAntiTerms = []string{
		"boycott india", "fascist india", "kashmir under siege",
		"hindutva terror", "indian government failed", "muslim genocide",
		"endia", "shame on india", "free kashmir", "dalit lives matter",
		"farmer protest",
	}
)

// Config holds all configuration for the analyzer service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name           string        `yaml:"name"`
	Version        string        `yaml:"version"`
	Port           int           `yaml:"port"             env:"ANALYZER_PORT"`
	Debug          bool          `yaml:"debug"            env:"APP_DEBUG"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	RateLimitRPS   int           `yaml:"rate_limit_rps"   env:"ANALYZER_RATE_LIMIT_RPS"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// AnalysisConfig holds detection run settings.
type AnalysisConfig struct {
	// ProTerms and AntiTerms are the default keyword lists used when a
	// request does not supply its own.
	ProTerms  []string `yaml:"pro_terms"  env:"ANALYZER_PRO_TERMS"`
	AntiTerms []string `yaml:"anti_terms" env:"ANALYZER_ANTI_TERMS"`
	// TextFields overrides the ordered text field candidates.
	TextFields []string `yaml:"text_fields"`
	// TopDriverCount caps the top-drivers list in run reports.
	TopDriverCount int `yaml:"top_driver_count"`
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	setAnalysisDefaults(&cfg.Analysis)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeout
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeout
	}
	if s.RateLimitRPS == 0 {
		s.RateLimitRPS = defaultRateLimitRPS
	}
	if s.RateLimitBurst == 0 {
		s.RateLimitBurst = s.RateLimitRPS
	}
}

func setAnalysisDefaults(a *AnalysisConfig) {
	if len(a.ProTerms) == 0 {
		a.ProTerms = defaultProTerms
	}
	if len(a.AntiTerms) == 0 {
		a.AntiTerms = defaultAntiTerms
	}
	if a.TopDriverCount == 0 {
		a.TopDriverCount = defaultTopDriverCount
	}
}
