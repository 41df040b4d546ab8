package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics" validate:"required"`
}

// ServerConfig holds configuration of the report HTTP API.
type ServerConfig struct {
	Port              int   `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int   `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int   `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int   `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int   `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	MaxBodyBytes      int64 `mapstructure:"max_body_bytes" validate:"required,min=1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string        `mapstructure:"level" validate:"required,oneof=trace debug info warn error disabled"`
	File  LogFileConfig `mapstructure:"file"`
}

// LogFileConfig enables a rotating log file when Path is set.
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

// ReportConfig holds pipeline and report output configuration.
type ReportConfig struct {
	// OutputDir is the root every report artifact is written under.
	OutputDir           string   `mapstructure:"output_dir" validate:"required"`
	DefaultFormat       string   `mapstructure:"default_format" validate:"required,oneof=plain csv"`
	ParallelAggregation bool     `mapstructure:"parallel_aggregation"`
	EndpointPatterns    []string `mapstructure:"endpoint_patterns" validate:"dive,required,glob"`
}

// DiagnosticsConfig throttles malformed-line warnings.
type DiagnosticsConfig struct {
	WarningsPerSecond float64 `mapstructure:"warnings_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"min=1"`
}
