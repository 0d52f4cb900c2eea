package commands

import (
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		key         string
		value       string
		expected    Config
		expectedErr error
	}{
		{name: "site", key: "site", value: "acme", expected: Config{Site: "acme"}},
		{name: "api key", key: "api_key", value: "secret", expected: Config{APIKey: "secret"}},
		{name: "api key dashed", key: "api-key", value: "secret", expected: Config{APIKey: "secret"}},
		{name: "format normalised", key: "format", value: " JSON ", expected: Config{Format: "json"}},
		{name: "output", key: "output", value: "yaml", expected: Config{Output: "yaml"}},
		{name: "bad output", key: "output", value: "xml", expectedErr: constants.ErrInvalidOutput},
		{name: "unknown key", key: "color", value: "red", expectedErr: constants.ErrUnknownConfigKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &Config{}

			err := setConfigValue(config, tt.key, tt.value)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *config)
		})
	}

	err := setConfigValue(&Config{}, "format", "csv")
	require.Error(t, err)

	config := &Config{Format: "json"}
	require.NoError(t, setConfigValue(config, "format", ""))
	assert.Empty(t, config.Format)
}

func TestExpandSite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme.chargify.com", expandSite("acme"))
	assert.Equal(t, "acme.example.com", expandSite("acme.example.com"))
	assert.Equal(t, "https://acme.chargify.com", expandSite("https://acme.chargify.com"))
	assert.Equal(t, "localhost:3000", expandSite("localhost:3000"))
	assert.Empty(t, expandSite("  "))
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "nested", "config.yml")
	viper.SetConfigFile(configFile)

	config, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)

	config.Site = "acme"
	config.APIKey = "secret"
	require.NoError(t, saveConfig(config))

	loaded, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
