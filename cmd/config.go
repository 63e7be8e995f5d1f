package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/khrees2412/jobdesk/internal/app"
	"github.com/khrees2412/jobdesk/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}
		cfg := application.Config

		timeout := "none"
		if cfg.RequestTimeout > 0 {
			timeout = cfg.RequestTimeout.String()
		}

		cmd.Println(titleStyle.Render("Configuration"))
		field(cmd, "", "Config File", config.GetConfigPath())
		field(cmd, "", "API Base URL", cfg.APIBaseURL)
		field(cmd, "", "Listen Address", cfg.ListenAddr)
		field(cmd, "", "Request Timeout", timeout)
		field(cmd, "", "Locale", application.Renderer.Lang())
		field(cmd, "", "Log", cfg.LogLevel+" / "+cfg.LogFormat)
		field(cmd, "", "Dashboard", fmt.Sprintf("%d jobs, %d feedback", cfg.DashboardJobs, cfg.DashboardFeedbacks))
		field(cmd, "", "Test URL", cfg.TestURL)

		ids := make([]string, 0, len(cfg.Platforms))
		for _, p := range application.Registry.All() {
			ids = append(ids, p.ID)
		}
		field(cmd, "", "Platforms", strings.Join(ids, ", "))
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  jobdesk config set --key api_base_url --value http://localhost:8000/api
  jobdesk config set --key locale --value en
  jobdesk config set --key request_timeout --value 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("%w: both --key and --value are required", app.ErrInvalidArgument)
		}

		validKeys := config.SettableKeys()
		if !slices.Contains(validKeys, key) {
			return fmt.Errorf("%w: key %q must be one of: %s", app.ErrInvalidArgument, key, strings.Join(validKeys, ", "))
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("update config: %w", err)
		}
		cmd.Printf("✓ Configuration updated: %s\n", key)

		if err := config.Initialize(configPath); err != nil {
			cmd.Printf("Warning: the new value does not load: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
