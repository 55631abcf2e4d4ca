package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Retention configuration for the reminder and fan-out pipeline
	Retention RetentionConfig `json:"retention" yaml:"retention"`

	// Tasks configuration for the deferred reminder queue
	Tasks *TasksConfig `json:"tasks" yaml:"tasks"`

	// PubSub configuration for the fan-out page chain
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Billing configuration for the subscription webhook
	Billing *BillingConfig `json:"billing" yaml:"billing"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase credentials shared by the Firestore client
// and the FCM messaging client.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RetentionConfig defines the behavioral constants of the pipeline.
type RetentionConfig struct {
	// Default average visit interval in days when a customer has no
	// history yet
	DefaultVisitIntervalDays int `json:"defaultVisitIntervalDays" yaml:"defaultVisitIntervalDays"`

	// Fallback IANA time zone for brands without one configured
	Timezone string `json:"timezone" yaml:"timezone"`

	// Fan-out page size (also the transport's bulk-send limit)
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// Lead time before the appointment start at which the reminder fires
	ReminderLead time.Duration `json:"reminderLead" yaml:"reminderLead"`

	// Tolerance window around the lead time inside which a fired job is
	// still considered fresh
	ReminderWindowMin time.Duration `json:"reminderWindowMin" yaml:"reminderWindowMin"`
	ReminderWindowMax time.Duration `json:"reminderWindowMax" yaml:"reminderWindowMax"`
}

// TasksConfig defines the deferred-job queue for single reminders.
type TasksConfig struct {
	// Provider type: "local" for in-process timers or "google" for Cloud Tasks
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project, location and queue (for google provider)
	ProjectID  string `json:"projectId" yaml:"projectId"`
	LocationID string `json:"locationId" yaml:"locationId"`
	QueueID    string `json:"queueId" yaml:"queueId"`

	// Base URL of this worker; task targets are derived from it
	TargetBaseURL string `json:"targetBaseUrl" yaml:"targetBaseUrl"`

	// Retry budget applied by the local provider (the google provider
	// takes these from the queue definition)
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	Backoff     time.Duration `json:"backoff" yaml:"backoff"`
}

// PubSubConfig defines the fan-out continuation channel.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// BillingConfig defines the payment-provider webhook settings.
type BillingConfig struct {
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`

	// Maximum accepted age of a signed webhook timestamp
	SignatureTolerance time.Duration `json:"signatureTolerance" yaml:"signatureTolerance"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PUBSUB_TOPICID -> pubsub.topicId (not pubsub.topicid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	applyRetentionDefaults(&cfg.Retention)

	return cfg, nil
}

func applyRetentionDefaults(r *RetentionConfig) {
	if r.DefaultVisitIntervalDays <= 0 {
		r.DefaultVisitIntervalDays = 30
	}
	if r.Timezone == "" {
		r.Timezone = "Europe/Zagreb"
	}
	if r.PageSize <= 0 {
		r.PageSize = 500
	}
	if r.ReminderLead <= 0 {
		r.ReminderLead = 2 * time.Hour
	}
	if r.ReminderWindowMin <= 0 {
		r.ReminderWindowMin = 90 * time.Minute
	}
	if r.ReminderWindowMax <= 0 {
		r.ReminderWindowMax = 150 * time.Minute
	}
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
