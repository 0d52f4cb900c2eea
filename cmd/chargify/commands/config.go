package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/fivetwenty-io/chargify-client/internal/logging"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
	"github.com/fivetwenty-io/chargify-client/pkg/chargifyclient"
	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".chargify"
	configFileName = "config.yml"

	// Bare subdomains are expanded with this suffix.
	hostedDomain = ".chargify.com"

	keySite   = "site"
	keyAPIKey = "api_key"
	keyFormat = "format"
	keyOutput = "output"
)

// Config represents the CLI configuration file.
type Config struct {
	Site   string `json:"site,omitempty"    yaml:"site,omitempty"`
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Format string `json:"format,omitempty"  yaml:"format,omitempty"`
	Output string `json:"output,omitempty"  yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the site, API key and output settings stored in the config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the stored CLI configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = logging.MaskAPIKey(config.APIKey)

			return renderOutput(cmd.OutOrStdout(), config, func(w io.Writer) error {
				return renderProperties(w, [][2]string{
					{"Config File", configFilePath()},
					{"Site", orNA(config.Site)},
					{"API Key", orNA(config.APIKey)},
					{"Format", orNA(config.Format)},
					{"Output", orNA(config.Output)},
				})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of site, api_key, format or output in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			shown := args[1]
			if args[0] == keyAPIKey {
				shown = logging.MaskAPIKey(shown)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], shown)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove one of site, api_key, format or output from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := os.Remove(configFilePath())
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared all configuration")

			return nil
		},
	}
}

// setConfigValue validates and applies one key. An empty value clears it.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keySite:
		config.Site = value
	case keyAPIKey, "api-key":
		config.APIKey = value
	case keyFormat:
		if value != "" {
			format, err := wire.ParseFormat(value)
			if err != nil {
				return fmt.Errorf("invalid format: %w", err)
			}

			value = format.String()
		}

		config.Format = value
	case keyOutput:
		switch value {
		case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, value)
		}

		config.Output = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the config file in use, defaulting to
// $HOME/.chargify/config.yml.
func configFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}

	return filepath.Join(home, configDirName, configFileName)
}

// loadConfig reads the config file. A missing file yields an empty config.
func loadConfig() (*Config, error) {
	config := &Config{}

	// configFilePath is built from the user's home directory or --config.
	// #nosec G304
	data, err := os.ReadFile(configFilePath())
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// saveConfig writes config to the config file with owner-only permissions.
func saveConfig(config *Config) error {
	configFile := configFilePath()

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandSite turns a bare subdomain such as "acme" into its hosted URL.
func expandSite(site string) string {
	site = strings.TrimSpace(site)
	if site == "" || strings.Contains(site, "://") || strings.Contains(site, ".") || strings.Contains(site, ":") {
		return site
	}

	return site + hostedDomain
}

// readAPIKey returns the configured API key, prompting for it when stdin is
// a terminal.
func readAPIKey(cmd *cobra.Command) (string, error) {
	apiKey := viper.GetString(keyAPIKey)
	if apiKey != "" {
		return apiKey, nil
	}

	stdin := int(os.Stdin.Fd()) // #nosec G115
	if !term.IsTerminal(stdin) {
		return "", constants.ErrNoAPIKeyConfigured
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

	key, err := term.ReadPassword(stdin)

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	apiKey = strings.TrimSpace(string(key))
	if apiKey == "" {
		return "", constants.ErrNoAPIKeyConfigured
	}

	return apiKey, nil
}

// buildClientConfig assembles the library configuration from flags,
// environment and the config file.
func buildClientConfig(cmd *cobra.Command) (*chargify.Config, error) {
	site := expandSite(viper.GetString(keySite))
	if site == "" {
		return nil, constants.ErrNoSiteConfigured
	}

	apiKey, err := readAPIKey(cmd)
	if err != nil {
		return nil, err
	}

	format := wire.FormatXML
	if name := viper.GetString(keyFormat); name != "" {
		format, err = wire.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("invalid format: %w", err)
		}
	}

	config := &chargify.Config{
		SiteURL: site,
		APIKey:  apiKey,
		Format:  format,
		Timeout: constants.DefaultHTTPTimeout,
	}

	if viper.GetBool("verbose") {
		logger, err := logging.NewConsole(true)
		if err != nil {
			return nil, err
		}

		config.Logger = logger
		config.Debug = true
		config.RequestLogger = logger.RequestBody
		config.ResponseLogger = logger.ResponseBody
	}

	return config, nil
}

// CreateClient creates a Chargify client from the current CLI configuration.
func CreateClient(cmd *cobra.Command) (chargify.Client, error) {
	config, err := buildClientConfig(cmd)
	if err != nil {
		return nil, err
	}

	return newClient(config)
}

func newClient(config *chargify.Config) (chargify.Client, error) {
	client, err := chargifyclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
