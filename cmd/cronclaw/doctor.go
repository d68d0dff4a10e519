package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronclaw/internal/api"
	"github.com/aatumaykin/cronclaw/internal/config"
	"github.com/aatumaykin/cronclaw/internal/constants"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local setup and server reachability",
	Run:   runDoctor,
}

// doctorCheck is one named check with a human-readable failure.
type doctorCheck struct {
	name string
	run  func() error
}

func runDoctor(cmd *cobra.Command, args []string) {
	store := configStore()

	var creds *config.Credentials

	checks := []doctorCheck{
		{
			name: "credentials present",
			run: func() error {
				var err error
				creds, err = store.Load()
				if errors.Is(err, config.ErrNotLoggedIn) {
					return fmt.Errorf("no credentials found, run 'cronclaw login <api-key>'")
				}
				return err
			},
		},
		{
			name: "credentials well-formed",
			run: func() error {
				if creds == nil {
					return fmt.Errorf("skipped, no credentials")
				}
				return creds.Validate()
			},
		},
		{
			name: "preferences file",
			run: func() error {
				_, err := store.LoadDefaults()
				return err
			},
		},
		{
			name: "server reachable",
			run: func() error {
				if creds == nil {
					return fmt.Errorf("skipped, no credentials")
				}
				if flagAPIURL != "" {
					creds.APIURL = flagAPIURL
				}
				_, err := api.New(creds, newLogger()).Status(context.Background())
				return err
			},
		},
	}

	failed := 0
	for _, check := range checks {
		if err := check.run(); err != nil {
			fmt.Printf(constants.MsgDoctorCheckFail, check.name, err)
			failed++
			continue
		}
		fmt.Printf(constants.MsgDoctorCheckOK, check.name)
	}

	if failed > 0 {
		fmt.Printf(constants.MsgDoctorProblems, failed)
		os.Exit(1)
	}
	fmt.Print(constants.MsgDoctorAllOK)
}
