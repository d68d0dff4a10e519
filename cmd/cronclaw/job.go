package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronclaw/internal/api"
	"github.com/aatumaykin/cronclaw/internal/constants"
	"github.com/aatumaykin/cronclaw/internal/jobfile"
	"github.com/aatumaykin/cronclaw/internal/output"
	"github.com/aatumaykin/cronclaw/internal/validate"
)

var jobCmd = &cobra.Command{
	Use:     "job",
	Aliases: []string{"jobs"},
	Short:   "Manage scheduled jobs",
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all jobs",
	Run:   runJobList,
}

var jobCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a job",
	Long: `Create a job from flags or from a YAML definition (--file).
Flags override file values. The job is validated locally before the
request is sent.`,
	Run: runJobCreate,
}

var jobUpdateCmd = &cobra.Command{
	Use:   "update <job-id>",
	Short: "Update fields of a job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobUpdate,
}

var jobRemoveCmd = &cobra.Command{
	Use:   "remove <job-id>",
	Short: "Remove a job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobRemove,
}

var jobTriggerCmd = &cobra.Command{
	Use:   "trigger <job-id>",
	Short: "Run a job now",
	Long: `Ask the service to run a job immediately. With --sync the command
polls until the run is observed or five minutes pass.`,
	Args: cobra.ExactArgs(1),
	Run:  runJobTrigger,
}

var jobEnableCmd = &cobra.Command{
	Use:   "enable <job-id>",
	Short: "Enable scheduling for a job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobEnable,
}

var jobDisableCmd = &cobra.Command{
	Use:   "disable <job-id>",
	Short: "Disable scheduling for a job",
	Args:  cobra.ExactArgs(1),
	Run:   runJobDisable,
}

// Job flags shared by create and update
var (
	flagJobName        string
	flagJobCron        string
	flagJobMessage     string
	flagJobIntegration string
	flagJobAgent       string
	flagJobChannel     string
	flagJobPhone       string
	flagJobChatID      string
	flagJobReplyTo     string
	flagJobWebhookURL  string
	flagJobMethod      string
	flagJobHeaders     string
	flagJobBody        string
	flagJobTimezone    string
	flagJobDisabled    bool
	flagJobFile        string
	flagTriggerSync    bool
)

func addJobFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagJobName, "name", "", "job name")
	cmd.Flags().StringVar(&flagJobCron, "cron", "", "cron expression, e.g. '0 9 * * *'")
	cmd.Flags().StringVar(&flagJobMessage, "message", "", "message delivered on each run (openclaw)")
	cmd.Flags().StringVar(&flagJobIntegration, "integration", "", "integration type: openclaw or webhook")
	cmd.Flags().StringVar(&flagJobAgent, "agent", "", "agent name behind the gateway (openclaw)")
	cmd.Flags().StringVar(&flagJobChannel, "channel", "", "delivery channel: telegram, whatsapp, discord, slack")
	cmd.Flags().StringVar(&flagJobPhone, "phone", "", "deliver target phone in E.164, e.g. +15555551234")
	cmd.Flags().StringVar(&flagJobChatID, "chat-id", "", "deliver target chat ID")
	cmd.Flags().StringVar(&flagJobReplyTo, "reply-to", "", "message ID to reply to (openclaw)")
	cmd.Flags().StringVar(&flagJobWebhookURL, "webhook-url", "", "webhook target URL")
	cmd.Flags().StringVar(&flagJobMethod, "method", "", "webhook HTTP method")
	cmd.Flags().StringVar(&flagJobHeaders, "headers", "", "webhook headers as a JSON object")
	cmd.Flags().StringVar(&flagJobBody, "body", "", "webhook JSON body")
	cmd.Flags().StringVar(&flagJobTimezone, "timezone", "", "IANA timezone for the schedule")
	cmd.Flags().StringVar(&flagJobFile, "file", "", "YAML job definition file")
}

func runJobList(cmd *cobra.Command, args []string) {
	jobs, err := newClient().ListJobs(context.Background())
	if err != nil {
		fatal(err)
	}

	printer := newPrinter()
	if printer.JSONMode() {
		printer.JSON(jobs)
		return
	}

	if len(jobs) == 0 {
		fmt.Print(constants.MsgJobsNotFound)
		return
	}

	rows := make([][]string, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, []string{
			job.ID,
			job.Name,
			job.Cron,
			job.IntegrationType,
			output.FormatEnabled(job.Enabled),
			fmt.Sprintf("%d/%d", job.RunCount, job.FailCount),
			output.FormatTime(job.LastRunAt),
		})
	}
	printer.Table(
		[]string{"ID", "NAME", "CRON", "TYPE", "STATE", "RUNS/FAILS", "LAST RUN"},
		rows,
	)
	fmt.Printf(constants.MsgJobsTotal, len(jobs))
}

// jobDefinitionFromFlags merges --file values with explicit flags.
// Flags win so a file can serve as a template.
func jobDefinitionFromFlags(cmd *cobra.Command) *jobfile.Definition {
	def := &jobfile.Definition{}
	if flagJobFile != "" {
		loaded, err := jobfile.Load(flagJobFile)
		if err != nil {
			fatal(err)
		}
		def = loaded
	}

	setIfChanged := func(flag string, dst *string, value string) {
		if cmd.Flags().Changed(flag) {
			*dst = value
		}
	}
	setIfChanged("name", &def.Name, flagJobName)
	setIfChanged("cron", &def.Cron, flagJobCron)
	setIfChanged("message", &def.Message, flagJobMessage)
	setIfChanged("integration", &def.Integration, flagJobIntegration)
	setIfChanged("agent", &def.Agent, flagJobAgent)
	setIfChanged("channel", &def.Channel, flagJobChannel)
	setIfChanged("phone", &def.Phone, flagJobPhone)
	setIfChanged("chat-id", &def.ChatID, flagJobChatID)
	setIfChanged("reply-to", &def.ReplyTo, flagJobReplyTo)
	setIfChanged("timezone", &def.Timezone, flagJobTimezone)

	webhookFlagsUsed := cmd.Flags().Changed("webhook-url") || cmd.Flags().Changed("method") ||
		cmd.Flags().Changed("headers") || cmd.Flags().Changed("body")
	if webhookFlagsUsed {
		if def.Webhook == nil {
			def.Webhook = &jobfile.WebhookSection{}
		}
		setIfChanged("webhook-url", &def.Webhook.URL, flagJobWebhookURL)
		setIfChanged("method", &def.Webhook.Method, flagJobMethod)
		setIfChanged("body", &def.Webhook.Body, flagJobBody)
		if cmd.Flags().Changed("headers") {
			var headers map[string]string
			if r := validate.WebhookHeaders(flagJobHeaders); !r.Valid {
				fatalValidation("webhook headers", r.Error)
			}
			if flagJobHeaders != "" {
				if err := json.Unmarshal([]byte(flagJobHeaders), &headers); err != nil {
					fatal(err)
				}
			}
			def.Webhook.Headers = headers
		}
	}

	return def
}

func runJobCreate(cmd *cobra.Command, args []string) {
	def := jobDefinitionFromFlags(cmd)

	// Preference file supplies the timezone when nothing else did
	if def.Timezone == "" {
		if defaults, err := configStore().LoadDefaults(); err == nil {
			def.Timezone = defaults.Timezone
		}
	}
	if cmd.Flags().Changed("disabled") {
		enabled := !flagJobDisabled
		def.Enabled = &enabled
	}

	if r := def.Validate(); !r.Valid {
		fatalValidation("job", r.Error)
	}

	job, err := newClient().CreateJob(context.Background(), def.ToCreateRequest())
	if err != nil {
		fatal(err)
	}

	fmt.Print(constants.MsgJobCreated)
	fmt.Printf(constants.MsgJobID, job.ID)
}

func runJobUpdate(cmd *cobra.Command, args []string) {
	jobID := args[0]
	if r := validate.JobID(jobID); !r.Valid {
		fatalValidation("job ID", r.Error)
	}

	def := jobDefinitionFromFlags(cmd)
	req := def.ToUpdateRequest()

	// Validate only what is being changed
	if req.Name != nil {
		if r := validate.Name(*req.Name); !r.Valid {
			fatalValidation("name", r.Error)
		}
	}
	if req.Cron != nil {
		if r := validate.Cron(*req.Cron); !r.Valid {
			fatalValidation("cron", r.Error)
		}
	}
	if req.Message != nil {
		if r := validate.Message(*req.Message); !r.Valid {
			fatalValidation("message", r.Error)
		}
	}
	if req.Channel != nil {
		if r := validate.Channel(*req.Channel); !r.Valid {
			fatalValidation("channel", r.Error)
		}
	}
	if req.WebhookURL != nil {
		if r := validate.WebhookURL(*req.WebhookURL); !r.Valid {
			fatalValidation("webhook URL", r.Error)
		}
	}
	if req.WebhookMethod != nil {
		if r := validate.WebhookMethod(*req.WebhookMethod); !r.Valid {
			fatalValidation("webhook method", r.Error)
		}
	}
	if req.WebhookBody != nil {
		if r := validate.WebhookBody(*req.WebhookBody); !r.Valid {
			fatalValidation("webhook body", r.Error)
		}
	}
	if req.Timezone != nil {
		if r := validate.Timezone(*req.Timezone); !r.Valid {
			fatalValidation("timezone", r.Error)
		}
	}

	job, err := newClient().UpdateJob(context.Background(), jobID, req)
	if err != nil {
		fatal(err)
	}

	fmt.Printf(constants.MsgJobUpdated, job.ID)
}

func runJobRemove(cmd *cobra.Command, args []string) {
	jobID := args[0]
	if r := validate.JobID(jobID); !r.Valid {
		fatalValidation("job ID", r.Error)
	}

	if err := newClient().DeleteJob(context.Background(), jobID); err != nil {
		fatal(err)
	}
	fmt.Printf(constants.MsgJobRemoved, jobID)
}

func runJobTrigger(cmd *cobra.Command, args []string) {
	jobID := args[0]
	if r := validate.JobID(jobID); !r.Valid {
		fatalValidation("job ID", r.Error)
	}

	client := newClient()
	ctx := context.Background()

	if err := client.TriggerJob(ctx, jobID, uuid.NewString()); err != nil {
		fatal(err)
	}

	if !flagTriggerSync {
		fmt.Printf(constants.MsgJobTriggered, jobID)
		return
	}

	// Ctrl-C stops the wait, not the server-side run
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	window := time.Duration(constants.PollMaxAttempts) * constants.PollInterval
	fmt.Printf(constants.MsgTriggerWaiting, jobID, window)

	outcome, err := client.WaitForRun(ctx, jobID, api.PollConfig{})
	if err != nil {
		fatal(err)
	}

	switch outcome.State {
	case api.RunSuccess:
		fmt.Printf(constants.MsgTriggerSuccess, jobID, output.FormatTime(outcome.Job.LastRunAt))
	case api.RunFailed:
		fmt.Printf(constants.MsgTriggerFailed, jobID, outcome.FailCount)
		os.Exit(1)
	case api.RunTimeout:
		fmt.Printf(constants.MsgTriggerTimeout, jobID)
		os.Exit(1)
	}
}

func runJobEnable(cmd *cobra.Command, args []string) {
	jobID := args[0]
	if r := validate.JobID(jobID); !r.Valid {
		fatalValidation("job ID", r.Error)
	}

	job, err := newClient().EnableJob(context.Background(), jobID)
	if err != nil {
		fatal(err)
	}
	fmt.Printf(constants.MsgJobEnabled, job.ID)
}

func runJobDisable(cmd *cobra.Command, args []string) {
	jobID := args[0]
	if r := validate.JobID(jobID); !r.Valid {
		fatalValidation("job ID", r.Error)
	}

	job, err := newClient().DisableJob(context.Background(), jobID)
	if err != nil {
		fatal(err)
	}
	fmt.Printf(constants.MsgJobDisabled, job.ID)
}

func init() {
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobCreateCmd)
	jobCmd.AddCommand(jobUpdateCmd)
	jobCmd.AddCommand(jobRemoveCmd)
	jobCmd.AddCommand(jobTriggerCmd)
	jobCmd.AddCommand(jobEnableCmd)
	jobCmd.AddCommand(jobDisableCmd)

	addJobFieldFlags(jobCreateCmd)
	jobCreateCmd.Flags().BoolVar(&flagJobDisabled, "disabled", false, "create the job disabled")
	addJobFieldFlags(jobUpdateCmd)

	jobTriggerCmd.Flags().BoolVar(&flagTriggerSync, "sync", false, "wait for the run outcome")
}
