package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"careerday/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Schedule.StepMinutes)
	assert.Equal(t, []string{"11:30-13:00", "14:30-16:30"}, cfg.Schedule.Ranges)
	assert.Equal(t, 60, cfg.Schedule.CancelBufferMinutes)
	assert.Equal(t, 10, cfg.RoundTable.DefaultCapacity)
	assert.Equal(t, "none", cfg.Notification.Sink)
}

func TestLoadDotenvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("SCHEDULE_STEP_MINUTES=20\nROUND_TABLE_DEFAULT_CAPACITY=8\n"), 0o600))

	t.Setenv("SCHEDULE_STEP_MINUTES", "")
	require.NoError(t, os.Unsetenv("SCHEDULE_STEP_MINUTES"))
	t.Setenv("ROUND_TABLE_DEFAULT_CAPACITY", "")
	require.NoError(t, os.Unsetenv("ROUND_TABLE_DEFAULT_CAPACITY"))

	cfg, err := config.Load(file)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Schedule.StepMinutes)
	assert.Equal(t, 8, cfg.RoundTable.DefaultCapacity)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg := &config.Config{}
		cfg.Schedule.StepMinutes = 15
		cfg.Schedule.Ranges = []string{"11:30-13:00"}
		cfg.RoundTable.DefaultCapacity = 10

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr []string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "zero step",
			mutate:  func(cfg *config.Config) { cfg.Schedule.StepMinutes = 0 },
			wantErr: []string{"SCHEDULE_STEP_MINUTES"},
		},
		{
			name: "every problem reported",
			mutate: func(cfg *config.Config) {
				cfg.Schedule.Ranges = nil
				cfg.Schedule.CancelBufferMinutes = -5
				cfg.RoundTable.DefaultCapacity = 0
			},
			wantErr: []string{"SCHEDULE_RANGES", "SCHEDULE_CANCEL_BUFFER_MINUTES", "ROUND_TABLE_DEFAULT_CAPACITY"},
		},
		{
			name:    "kafka sink without brokers",
			mutate:  func(cfg *config.Config) { cfg.Notification.Sink = "kafka" },
			wantErr: []string{"KAFKA_BROKERS"},
		},
		{
			name:    "rabbitmq sink without url",
			mutate:  func(cfg *config.Config) { cfg.Notification.Sink = "rabbitmq" },
			wantErr: []string{"RABBITMQ_URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)

			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
