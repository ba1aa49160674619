package contract

import (
	"fmt"

	"github.com/huangsam/studentrisk/schema"
)

// Default values for configuration.
const (
	DefaultDataPath    = "data/students.csv"
	DefaultModelPath   = "model/student_predictor.json"
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	MaxPrecision       = 4
	DefaultSampleCount = 50
)

// Config holds the runtime configuration for all commands.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath    string                 // CSV roster path, used when the backend is "none"
	ModelPath   string                 // Model blob path
	ResultLimit int                    // Maximum rows to display
	Precision   int                    // Decimal precision for numeric columns
	Output      schema.OutputMode      // Output format
	OutputFile  string                 // Optional path to write output to
	AtRiskOnly  bool                   // Restrict rank output to High/Failure students
	Detail      bool                   // Print per-student component marks
	Width       int                    // Terminal width override (0 = auto-detect)
	Backend     schema.DatabaseBackend // Roster store backend
	DBConnect   string                 // Database connection string (plaintext; prefer env var)
	UseColors   bool                   // Enable colored risk labels in table output
	SampleCount int                    // Number of synthetic students for the sample command
}

// Clone returns a copy of the config safe for per-request mutation.
func (c *Config) Clone() *Config {
	dup := *c
	return &dup
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Data       string `mapstructure:"data"`
	Model      string `mapstructure:"model"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	AtRisk     bool   `mapstructure:"at-risk"`
	Detail     bool   `mapstructure:"detail"`
	Width      int    `mapstructure:"width"`
	Backend    string `mapstructure:"backend"`
	DBConnect  string `mapstructure:"db-connect"`
	Color      string `mapstructure:"color"`
	Count      int    `mapstructure:"count"`
}

// ProcessAndValidate reads from 'input' and populates 'cfg', rejecting
// invalid combinations before any command logic runs.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, input.Precision)
	}

	output := schema.OutputMode(input.Output)
	switch output {
	case schema.TextOut, schema.CSVOut, schema.JSONOut, schema.ParquetOut:
	default:
		return fmt.Errorf("unsupported output format: %s", input.Output)
	}

	backend := schema.DatabaseBackend(input.Backend)
	switch backend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend, schema.NoneBackend:
	default:
		return fmt.Errorf("unsupported backend: %s", input.Backend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.DBConnect); err != nil {
		return err
	}

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}

	cfg.DataPath = input.Data
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}
	cfg.ModelPath = input.Model
	if cfg.ModelPath == "" {
		cfg.ModelPath = DefaultModelPath
	}
	cfg.ResultLimit = input.Limit
	cfg.Precision = input.Precision
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.AtRiskOnly = input.AtRisk
	cfg.Detail = input.Detail
	cfg.Width = input.Width
	cfg.Backend = backend
	cfg.DBConnect = input.DBConnect
	cfg.UseColors = useColors
	cfg.SampleCount = input.Count
	if cfg.SampleCount <= 0 {
		cfg.SampleCount = DefaultSampleCount
	}

	return nil
}

// ValidateDatabaseConnectionString ensures networked backends carry a
// connection string. SQLite falls back to the default file path and "none"
// reads the CSV roster directly, so both pass with an empty string.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("backend %s requires a db-connect string", backend)
		}
	}
	return nil
}
