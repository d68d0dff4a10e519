package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronclaw/internal/constants"
	"github.com/aatumaykin/cronclaw/internal/output"
	"github.com/aatumaykin/cronclaw/internal/validate"
)

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Manage the messaging gateway bridge",
	Long: `The gateway is a user-operated bridge the cronclaw service calls to
reach a messaging agent. It runs on your side; these commands only
register and probe it.`,
}

var gatewaySetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Register the gateway URL",
	Args:  cobra.ExactArgs(1),
	Run:   runGatewaySet,
}

var gatewayStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the registered gateway",
	Run:   runGatewayStatus,
}

var gatewayTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Round-trip a probe through the gateway",
	Run:   runGatewayTest,
}

func runGatewaySet(cmd *cobra.Command, args []string) {
	gatewayURL := args[0]
	if r := validate.WebhookURL(gatewayURL); !r.Valid {
		fatalValidation("gateway URL", r.Error)
	}

	gw, err := newClient().SetGateway(context.Background(), gatewayURL)
	if err != nil {
		fatal(err)
	}

	fmt.Printf(constants.MsgGatewaySet, gw.URL)
}

func runGatewayStatus(cmd *cobra.Command, args []string) {
	gw, err := newClient().Gateway(context.Background())
	if err != nil {
		fatal(err)
	}

	printer := newPrinter()
	if printer.JSONMode() {
		printer.JSON(gw)
		return
	}

	if gw.URL == "" {
		fmt.Print(constants.MsgGatewayNotSet)
		return
	}
	state := "disconnected"
	if gw.Connected {
		state = "connected"
	}
	fmt.Printf("URL: %s\n", gw.URL)
	fmt.Printf("State: %s\n", state)
	fmt.Printf("Last seen: %s\n", output.FormatTime(gw.LastSeenAt))
}

func runGatewayTest(cmd *cobra.Command, args []string) {
	result, err := newClient().TestGateway(context.Background())
	if err != nil {
		fatal(err)
	}

	if !result.OK {
		fmt.Printf(constants.MsgGatewayTestFail, result.Error)
		os.Exit(1)
	}
	fmt.Printf(constants.MsgGatewayTestOK, result.LatencyMs)
}

func init() {
	gatewayCmd.AddCommand(gatewaySetCmd)
	gatewayCmd.AddCommand(gatewayStatusCmd)
	gatewayCmd.AddCommand(gatewayTestCmd)
}
