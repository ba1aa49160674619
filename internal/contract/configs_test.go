package contract

import (
	"testing"

	"github.com/huangsam/studentrisk/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:     25,
		Precision: 1,
		Output:    "text",
		Backend:   "sqlite",
		Color:     "yes",
	}
}

// TestProcessAndValidateDefaults verifies default path and count fallbacks.
func TestProcessAndValidateDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, validInput()))

	assert.Equal(t, DefaultDataPath, cfg.DataPath)
	assert.Equal(t, DefaultModelPath, cfg.ModelPath)
	assert.Equal(t, DefaultSampleCount, cfg.SampleCount)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
	assert.True(t, cfg.UseColors)
}

// TestProcessAndValidateRejections covers the validation failure paths.
func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantErr string
	}{
		{"zero limit", func(in *ConfigRawInput) { in.Limit = 0 }, "limit must be"},
		{"excess limit", func(in *ConfigRawInput) { in.Limit = 5000 }, "limit must be"},
		{"bad precision", func(in *ConfigRawInput) { in.Precision = 9 }, "precision must be"},
		{"bad output", func(in *ConfigRawInput) { in.Output = "xml" }, "unsupported output format"},
		{"bad backend", func(in *ConfigRawInput) { in.Backend = "oracle" }, "unsupported backend"},
		{"mysql without connect", func(in *ConfigRawInput) { in.Backend = "mysql" }, "requires a db-connect"},
		{"bad color", func(in *ConfigRawInput) { in.Color = "maybe" }, "invalid color setting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			var cfg Config
			assert.ErrorContains(t, ProcessAndValidate(&cfg, in), tt.wantErr)
		})
	}
}

// TestConfigClone verifies clones mutate independently.
func TestConfigClone(t *testing.T) {
	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, validInput()))

	dup := cfg.Clone()
	dup.ResultLimit = 5
	assert.Equal(t, 25, cfg.ResultLimit)
	assert.Equal(t, 5, dup.ResultLimit)
}
