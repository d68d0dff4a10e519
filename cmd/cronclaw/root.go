package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronclaw/internal/api"
	"github.com/aatumaykin/cronclaw/internal/config"
	"github.com/aatumaykin/cronclaw/internal/constants"
	"github.com/aatumaykin/cronclaw/internal/logger"
	"github.com/aatumaykin/cronclaw/internal/output"
)

// Global flags
var (
	flagJSON    bool
	flagVerbose bool
	flagAPIURL  string
)

// configDirOverride redirects the config store in tests.
var configDirOverride string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cronclaw",
	Short: "cronclaw - CLI for the cronclaw hosted job scheduler",
	Long: `cronclaw is the command-line client for the cronclaw cloud service.
Jobs are scheduled, executed and delivered server-side; this client
authenticates, validates input locally and talks to the HTTP API.`,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log HTTP traffic to stderr")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "override the API base URL for this invocation")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(gatewayCmd)
	rootCmd.AddCommand(jobCmd)
	rootCmd.AddCommand(apikeyCmd)
}

// configStore returns the per-user config store.
func configStore() *config.Store {
	dir := configDirOverride
	if dir == "" {
		var err error
		dir, err = config.DefaultDir()
		if err != nil {
			fatal(err)
		}
	}
	return config.NewStore(dir)
}

// newLogger builds the command logger. Without --verbose everything is
// discarded so normal output stays clean.
func newLogger() *logger.Logger {
	if !flagVerbose {
		return logger.Discard()
	}
	log, err := logger.New(logger.Config{
		Level:  "debug",
		Format: "text",
		Output: "stderr",
	})
	if err != nil {
		fatal(err)
	}
	return log
}

// newPrinter builds the output printer, honoring --json and the
// defaults.toml output preference.
func newPrinter() *output.Printer {
	jsonMode := flagJSON
	if !jsonMode {
		if defaults, err := configStore().LoadDefaults(); err == nil && defaults.Output == "json" {
			jsonMode = true
		}
	}
	return output.New(jsonMode)
}

// loadCredentials reads stored credentials and applies the --api-url flag.
func loadCredentials() *config.Credentials {
	creds, err := configStore().Load()
	if err != nil {
		if errors.Is(err, config.ErrNotLoggedIn) {
			fmt.Fprint(os.Stderr, constants.MsgNotLoggedIn)
			os.Exit(1)
		}
		fatal(err)
	}
	if flagAPIURL != "" {
		creds.APIURL = flagAPIURL
	}
	return creds
}

// newClient builds an API client from the stored credentials.
func newClient() *api.Client {
	return api.New(loadCredentials(), newLogger())
}

// fatal prints the error and exits nonzero.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, constants.MsgErrorFormat, err)
	os.Exit(1)
}

// fatalValidation reports a failed local validation and exits nonzero
// before any network call.
func fatalValidation(field, msg string) {
	fmt.Fprintf(os.Stderr, constants.MsgValidationError, field, msg)
	os.Exit(1)
}
