package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the chargify command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chargify",
		Short: "Chargify subscription billing CLI",
		Long: `A command-line interface for a Chargify subscription billing site.

This CLI reads and manages customers, subscriptions, products, statements,
transactions, coupons and one-time ledger entries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.chargify/config.yml)")
	rootCmd.PersistentFlags().StringP("site", "s", "", "site subdomain or URL (e.g. acme or https://acme.chargify.com)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "API key")
	rootCmd.PersistentFlags().String("format", "", "wire format used with the API (xml, json)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(keySite, rootCmd.PersistentFlags().Lookup("site"))
	_ = viper.BindPFlag(keyAPIKey, rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag(keyFormat, rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag(keyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewCustomersCommand())
	rootCmd.AddCommand(NewSubscriptionsCommand())
	rootCmd.AddCommand(NewProductsCommand())
	rootCmd.AddCommand(NewStatementsCommand())
	rootCmd.AddCommand(NewTransactionsCommand())
	rootCmd.AddCommand(NewCouponsCommand())
	rootCmd.AddCommand(NewChargesCommand())
	rootCmd.AddCommand(NewCreditsCommand())
	rootCmd.AddCommand(NewRefundsCommand())
	rootCmd.AddCommand(NewAdjustmentsCommand())
	rootCmd.AddCommand(NewPaymentsCommand())

	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	cfgFile := viper.GetString("config")
	if cfgFile == "" {
		cfgFile = configFilePath()
	}

	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("yml")

	// Read in environment variables that match
	viper.SetEnvPrefix("CHARGIFY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	if viper.GetBool("verbose") {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}
