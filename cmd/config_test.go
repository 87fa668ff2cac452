package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	m "pushup.dev/pkg/pushup/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "pushup", configBaseName)
	assert.Equal(t, "pushup.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "host", hostConfigKey)
	assert.Equal(t, "platform", platformConfigKey)
	assert.Equal(t, "check.strict", strictConfigKey)
	assert.Equal(t, "watch.debounce", debounceConfigKey)
	assert.Equal(t, "200ms", defaultDebounce)
	assert.Equal(t, ".pushup.log", defaultLogFilename)
	assert.Equal(t, "PUSHUP", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParsePlatforms(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []m.Platform
	}{
		{"empty", "", m.Platforms()},
		{"all", "all", m.Platforms()},
		{"all upper case", " ALL ", m.Platforms()},
		{"single", "ios", []m.Platform{m.PlatformIOS}},
		{"list", "android, ios", []m.Platform{m.PlatformAndroid, m.PlatformIOS}},
		{"all inside list", "ios,all", m.Platforms()},
		{"unknown kept for validation", "web", []m.Platform{"web"}},
		{"empty items dropped", "android,,", []m.Platform{m.PlatformAndroid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePlatforms(tt.value))
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}
