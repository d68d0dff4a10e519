package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronclaw/internal/constants"
	"github.com/aatumaykin/cronclaw/internal/output"
	"github.com/aatumaykin/cronclaw/internal/validate"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage API keys",
}

var apikeyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List API keys",
	Run:   runAPIKeyList,
}

var apikeyCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an API key",
	Long: `Create a named API key. The secret is printed once and never
returned by the server again.`,
	Args: cobra.ExactArgs(1),
	Run:  runAPIKeyCreate,
}

var apikeyRevokeCmd = &cobra.Command{
	Use:   "revoke <key-id>",
	Short: "Revoke an API key",
	Args:  cobra.ExactArgs(1),
	Run:   runAPIKeyRevoke,
}

func runAPIKeyList(cmd *cobra.Command, args []string) {
	keys, err := newClient().ListAPIKeys(context.Background())
	if err != nil {
		fatal(err)
	}

	printer := newPrinter()
	if printer.JSONMode() {
		printer.JSON(keys)
		return
	}

	if len(keys) == 0 {
		fmt.Print(constants.MsgAPIKeysNotFound)
		return
	}

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		created := key.CreatedAt
		rows = append(rows, []string{
			key.ID,
			key.Name,
			output.FormatTime(&created),
			output.FormatTime(key.LastUsedAt),
		})
	}
	printer.Table([]string{"ID", "NAME", "CREATED", "LAST USED"}, rows)
}

func runAPIKeyCreate(cmd *cobra.Command, args []string) {
	name := args[0]
	if r := validate.Name(name); !r.Valid {
		fatalValidation("name", r.Error)
	}

	key, err := newClient().CreateAPIKey(context.Background(), name)
	if err != nil {
		fatal(err)
	}

	fmt.Print(constants.MsgAPIKeyCreated)
	fmt.Printf("ID: %s\n", key.ID)
	fmt.Printf(constants.MsgAPIKeySecret, key.Secret)
}

func runAPIKeyRevoke(cmd *cobra.Command, args []string) {
	keyID := args[0]
	if keyID == "" {
		fatalValidation("key ID", "key ID is required")
	}

	if err := newClient().RevokeAPIKey(context.Background(), keyID); err != nil {
		fatal(err)
	}
	fmt.Printf(constants.MsgAPIKeyRevoked, keyID)
}

func init() {
	apikeyCmd.AddCommand(apikeyListCmd)
	apikeyCmd.AddCommand(apikeyCreateCmd)
	apikeyCmd.AddCommand(apikeyRevokeCmd)
}
