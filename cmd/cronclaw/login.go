package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronclaw/internal/api"
	"github.com/aatumaykin/cronclaw/internal/config"
	"github.com/aatumaykin/cronclaw/internal/constants"
)

var loginCmd = &cobra.Command{
	Use:   "login <api-key>",
	Short: "Store credentials for the cronclaw service",
	Long: `Verify the API key against the service and store it in the per-user
config file. Use --api-url to log in to a non-default server.`,
	Args: cobra.ExactArgs(1),
	Run:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	Run:   runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the authenticated account",
	Run:   runWhoami,
}

func runLogin(cmd *cobra.Command, args []string) {
	apiKey := args[0]
	if apiKey == "" {
		fatalValidation("api-key", "API key must not be empty")
	}

	apiURL := constants.DefaultAPIURL
	if flagAPIURL != "" {
		apiURL = flagAPIURL
	}

	creds := &config.Credentials{
		APIURL: apiURL,
		APIKey: apiKey,
	}
	if err := creds.Validate(); err != nil {
		fatal(err)
	}

	// Verify before persisting anything
	client := api.New(creds, newLogger())
	status, err := client.Status(context.Background())
	if err != nil {
		fatal(err)
	}

	if err := configStore().Save(creds); err != nil {
		fatal(err)
	}

	fmt.Printf(constants.MsgLoginOK, apiURL)
	fmt.Printf(constants.MsgLoginAccount, status.Account.Email)
}

func runLogout(cmd *cobra.Command, args []string) {
	if err := configStore().Remove(); err != nil {
		fatal(err)
	}
	fmt.Print(constants.MsgLogoutOK)
}

func runWhoami(cmd *cobra.Command, args []string) {
	status, err := newClient().Status(context.Background())
	if err != nil {
		fatal(err)
	}

	printer := newPrinter()
	if printer.JSONMode() {
		printer.JSON(status.Account)
		return
	}

	fmt.Printf("Account: %s\n", status.Account.Email)
	fmt.Printf("ID: %s\n", status.Account.ID)
	fmt.Printf("Plan: %s\n", status.Account.Plan)
}
