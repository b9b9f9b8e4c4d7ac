package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"

	// ENV_PREFIX marks environment variables that override the config file,
	// e.g. DISPATCHER_PORT=9090 or DISPATCHER_GATE_LOGIN=admin.
	ENV_PREFIX = "DISPATCHER_"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName string       `yaml:"service_name" mapstructure:"service_name" validate:"required"`
	LogLevel    string       `yaml:"loglevel" mapstructure:"loglevel" validate:"required"`
	Host        string       `yaml:"host" mapstructure:"host" validate:"required"`
	Port        string       `yaml:"port" mapstructure:"port" validate:"required"`
	Server      ServerConfig `yaml:"server" mapstructure:"server"`
	Gate        GateConfig   `yaml:"gate" mapstructure:"gate" validate:"required"`
}

// ServerConfig holds the HTTP server timeouts. Zero values fall back to the server defaults.
type ServerConfig struct {
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// GateConfig holds the credential pair and the dispatch targets of the login gate.
type GateConfig struct {
	Login          string `yaml:"login" mapstructure:"login" validate:"required"`
	Password       string `yaml:"password" mapstructure:"password" validate:"required"` // #nosec G117
	ForwardTarget  string `yaml:"forward_target" mapstructure:"forward_target" validate:"required"`
	IncludeTarget  string `yaml:"include_target" mapstructure:"include_target" validate:"required"`
	FailureMessage string `yaml:"failure_message" mapstructure:"failure_message" validate:"required"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnvOverrides overlays every ENV_PREFIX variable found in environ onto cfg.
// Nested keys are separated by an underscore after the section name,
// so DISPATCHER_GATE_LOGIN sets gate.login.
func ApplyEnvOverrides(cfg *ServiceConfig, environ []string) error {
	overrides := EnvToMap(environ)
	if len(overrides) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to create config decoder: %w", err)
	}

	if err := decoder.Decode(overrides); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// EnvToMap turns ENV_PREFIX variables into the nested map shape of ServiceConfig.
func EnvToMap(environ []string) map[string]interface{} {
	result := make(map[string]interface{})
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, ENV_PREFIX) {
			continue
		}

		key = strings.ToLower(strings.TrimPrefix(key, ENV_PREFIX))
		section, field, nested := strings.Cut(key, "_")
		if nested && isSection(section) {
			sub, _ := result[section].(map[string]interface{})
			if sub == nil {
				sub = make(map[string]interface{})
				result[section] = sub
			}
			sub[field] = value
			continue
		}
		result[key] = value
	}
	return result
}

func isSection(name string) bool {
	switch name {
	case "gate", "server":
		return true
	}
	return false
}
