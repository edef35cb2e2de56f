package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"breachcheck/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPPort           = 8080

	defaultBreachCorpusBaseURL   = "https://api.pwnedpasswords.com"
	defaultBreachCorpusTimeout   = 5 * time.Second
	defaultBreachCorpusUserAgent = "breachcheck"

	// legacyTableNameEnv is read when audit.tableName is not configured.
	legacyTableNameEnv = "DYNAMODB_TABLE_NAME"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// BreachCorpus configures the k-anonymity range endpoint
	BreachCorpus *BreachCorpusConfig `json:"breachCorpus" yaml:"breachCorpus"`

	// AWS holds shared settings for the DynamoDB and SNS clients
	AWS *AWSConfig `json:"aws" yaml:"aws"`

	// Audit selects and configures the audit store
	Audit *AuditConfig `json:"audit" yaml:"audit"`

	// Postgres is only read when audit.provider is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Notification selects and configures the SMS sender
	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BreachCorpusConfig defines the breach corpus range API
type BreachCorpusConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`

	// AddPadding asks the corpus to pad responses with zero-count entries
	AddPadding bool `json:"addPadding" yaml:"addPadding"`
}

// AWSConfig defines connection settings shared by AWS clients.
// Empty credentials fall back to the default provider chain.
type AWSConfig struct {
	Region          string `json:"region" yaml:"region"`
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
}

// AuditConfig defines the audit store
type AuditConfig struct {
	// Provider type: "dynamodb" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// DynamoDB table name (for dynamodb provider)
	TableName string `json:"tableName" yaml:"tableName"`
}

// NotificationConfig defines the SMS sender
type NotificationConfig struct {
	// Provider type: "sns", "pubsub", "local" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// SNS SMS attributes (for sns provider)
	SMSType  string `json:"smsType" yaml:"smsType"`
	SenderID string `json:"senderId" yaml:"senderId"`

	// Google Cloud project and topic (for pubsub provider)
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// AUDIT_TABLENAME -> audit.tableName, aligned with the YAML keys
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}

	if cfg.BreachCorpus == nil {
		cfg.BreachCorpus = &BreachCorpusConfig{}
	}
	if cfg.BreachCorpus.BaseURL == "" {
		cfg.BreachCorpus.BaseURL = defaultBreachCorpusBaseURL
	}
	cfg.BreachCorpus.BaseURL = strings.TrimRight(cfg.BreachCorpus.BaseURL, "/")
	if cfg.BreachCorpus.Timeout <= 0 {
		cfg.BreachCorpus.Timeout = defaultBreachCorpusTimeout
	}
	if cfg.BreachCorpus.UserAgent == "" {
		cfg.BreachCorpus.UserAgent = defaultBreachCorpusUserAgent
	}

	if cfg.AWS == nil {
		cfg.AWS = &AWSConfig{}
	}

	if cfg.Audit == nil {
		cfg.Audit = &AuditConfig{}
	}
	if cfg.Audit.Provider == "" {
		cfg.Audit.Provider = constants.AuditProviderDynamoDB
	}
	if cfg.Audit.TableName == "" {
		cfg.Audit.TableName = os.Getenv(legacyTableNameEnv)
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Provider == "" {
		cfg.Notification.Provider = constants.SMSProviderSNS
	}
}

// Validate reports deployment errors that must stop the process at startup.
func (c *Config) Validate() error {
	switch c.Audit.Provider {
	case constants.AuditProviderDynamoDB:
		if strings.TrimSpace(c.Audit.TableName) == "" {
			return errors.Errorf("audit.tableName (or %s) is required for the dynamodb audit provider", legacyTableNameEnv)
		}
	case constants.AuditProviderPostgres:
		if c.Postgres == nil {
			return errors.New("postgres config is required for the postgres audit provider")
		}
	default:
		return errors.Errorf("unknown audit provider: %s", c.Audit.Provider)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
