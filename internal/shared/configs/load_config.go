package configs

import (
	"fmt"
	"strings"

	"log-report/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOGREPORT"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.max_body_bytes", 32*1024*1024)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.path", "")
	v.SetDefault("log.file.max_size_mb", 10)
	v.SetDefault("log.file.max_backups", 3)
	v.SetDefault("log.file.compress", false)

	v.SetDefault("report.output_dir", ".")
	v.SetDefault("report.default_format", "plain")
	v.SetDefault("report.parallel_aggregation", true)
	v.SetDefault("report.endpoint_patterns", []string{})

	v.SetDefault("diagnostics.warnings_per_second", 20)
	v.SetDefault("diagnostics.burst", 100)
}

// LoadConfig reads configuration from the YAML file at configPath (skipped when
// empty), applies LOGREPORT_* environment overrides and validates the result.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() (*Config, error) {
	return LoadConfig("")
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validators.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		} else {
			validationErrors = append(validationErrors, err.Error())
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Report.OutputDir" -> "report.outputdir"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "gte", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	case validators.TagGlob:
		return fmt.Sprintf("%s (invalid glob %q)", field, e.Value())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
