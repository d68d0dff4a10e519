package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronclaw/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show account and gateway health",
	Run:   runStatus,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the current plan and its limits",
	Run:   runPlan,
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show usage against plan limits",
	Run:   runUsage,
}

func runStatus(cmd *cobra.Command, args []string) {
	status, err := newClient().Status(context.Background())
	if err != nil {
		fatal(err)
	}

	printer := newPrinter()
	if printer.JSONMode() {
		printer.JSON(status)
		return
	}

	fmt.Printf("Account: %s (%s plan)\n", status.Account.Email, status.Account.Plan)
	fmt.Printf("Jobs: %d\n", status.JobCount)
	if status.Gateway.URL == "" {
		fmt.Println("Gateway: not configured")
		return
	}
	state := "disconnected"
	if status.Gateway.Connected {
		state = "connected"
	}
	fmt.Printf("Gateway: %s (%s, last seen %s)\n",
		status.Gateway.URL, state, output.FormatTime(status.Gateway.LastSeenAt))
}

func runPlan(cmd *cobra.Command, args []string) {
	plan, err := newClient().Plan(context.Background())
	if err != nil {
		fatal(err)
	}

	printer := newPrinter()
	if printer.JSONMode() {
		printer.JSON(plan)
		return
	}

	fmt.Printf("Plan: %s\n", plan.Name)
	fmt.Printf("Max jobs: %d\n", plan.MaxJobs)
	fmt.Printf("Max runs per month: %d\n", plan.MaxRunsPerMonth)
	syncState := "not included"
	if plan.SyncTrigger {
		syncState = "included"
	}
	fmt.Printf("Sync trigger: %s\n", syncState)
}

func runUsage(cmd *cobra.Command, args []string) {
	usage, err := newClient().Usage(context.Background())
	if err != nil {
		fatal(err)
	}

	printer := newPrinter()
	if printer.JSONMode() {
		printer.JSON(usage)
		return
	}

	fmt.Printf("Jobs: %d\n", usage.JobCount)
	fmt.Printf("Runs this month: %d\n", usage.RunsThisMonth)
	fmt.Printf("Failed runs this month: %d\n", usage.FailsThisMonth)
	if usage.PeriodStart != nil {
		fmt.Printf("Period start: %s\n", output.FormatTime(usage.PeriodStart))
	}
}
