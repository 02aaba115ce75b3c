package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-celebration/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultTheme", config.DefaultTheme},
		{"DefaultLanguage", config.DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestTiming_Sanity pins the celebration timing contract.
func TestTiming_Sanity(t *testing.T) {
	assert.Equal(t, 3, config.InitialCount)
	assert.Equal(t, time.Second, config.TickInterval)
	assert.Equal(t, 3*time.Second, config.AmbientInterval)
	assert.Greater(t, config.AmbientInterval, config.TickInterval)
}

func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	assert.Contains(t, config.DefaultCountdownImage, "%d")
}
