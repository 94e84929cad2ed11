package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"time-tracker-client/internal/api"
	"time-tracker-client/internal/config"
)

// APIFactory builds the backend API once configuration is final. It returns
// the API together with a cleanup function releasing its resources.
type APIFactory func(cfg *config.Config) (api.API, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	config  *config.Config
	factory APIFactory
	cleanup func() error

	// out and in replace the app's stdout and stdin when set.
	out io.Writer
	in  io.Reader
}

// NewRootCommand creates the root cobra command with global flags. The API
// is constructed through the factory inside PersistentPreRunE, after flag
// overrides have been folded into the configuration, so flags like
// --backend-url and --storage-dir affect the wiring they describe.
func NewRootCommand(factory APIFactory, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "ttc",
		Short: "A command-line client for the time tracker backend",
		Long: `Time Tracker Client (ttc) is a command-line client for logging and
reviewing time spent on projects, backed by the time tracker REST API.

FEATURES:
  • Track time live with a stopwatch or enter durations manually
  • Log finished work with explicit start and end times
  • Group logged records into weekly reports
  • Manage projects and per-project totals
  • Stay logged in between invocations

EXAMPLES:
  ttc login ada@example.com                # Log in and store the session
  ttc projects                             # List projects with totals
  ttc projects new "Website Redesign"      # Create a project
  ttc track 3 "wireframes"                 # Stopwatch against project 3
  ttc add 3 "standup" --start 09:00 --end 09:15
  ttc report                               # Weekly report, newest week first
  ttc edit 7 --duration 02:00:00           # Edit a record's duration
  ttc delete 7                             # Delete a record (with confirmation)

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Backend Configuration:
    TTC_BACKEND_URL                        Backend base URL (default: http://localhost:8000)
    TTC_BACKEND_TIMEOUT                    Request timeout (default: 10s)

  Storage Configuration:
    TTC_STORAGE_DIR                        Session database directory (default: ~/.ttc)
    TTC_STORAGE_FILENAME                   Session database filename (default: ttc.db)
    TTC_STORAGE_KEY_PREFIX                 Session key prefix (default: timetracker_)

  Display Configuration:
    TTC_DISPLAY_TIME_FORMAT                Clock display format (default: 15:04:05)
    TTC_DISPLAY_DATE_FORMAT                Date display format (default: 2006-01-02)

  Tracking Configuration:
    TTC_TRACKING_TICK_INTERVAL             Stopwatch refresh interval (default: 10ms)

  Application Configuration:
    TTC_APP_TIMEOUT                        Application timeout (default: 60s)
    TTC_APP_VERBOSE                        Enable verbose output (default: false)

GETTING HELP:
  ttc [command] --help                     # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}

			apiInstance, cleanup, err := root.factory(root.config)
			if err != nil {
				return err
			}
			root.app = NewApp(apiInstance, root.config)
			if root.out != nil {
				root.app.out = root.out
			}
			if root.in != nil {
				root.app.in = root.in
			}
			root.cleanup = cleanup
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases whatever the API factory
// opened once the command finishes.
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if r.cleanup != nil {
		if closeErr := r.cleanup(); err == nil {
			err = closeErr
		}
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Backend configuration
	flags.String("backend-url", "", "Backend base URL (overrides TTC_BACKEND_URL)")
	flags.Duration("backend-timeout", 0, "Backend request timeout (overrides TTC_BACKEND_TIMEOUT)")

	// Storage configuration
	flags.String("storage-dir", "", "Session database directory (overrides TTC_STORAGE_DIR)")
	flags.String("storage-filename", "", "Session database filename (overrides TTC_STORAGE_FILENAME)")

	// Display configuration
	flags.String("time-format", "", "Clock display format (overrides TTC_DISPLAY_TIME_FORMAT)")
	flags.String("date-format", "", "Date display format (overrides TTC_DISPLAY_DATE_FORMAT)")

	// Tracking configuration
	flags.Duration("tick-interval", 0, "Stopwatch refresh interval (overrides TTC_TRACKING_TICK_INTERVAL)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TTC_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TTC_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	loginCmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Log in to the backend",
		Long: `Log in to the time tracker backend and store the session token locally.

The password is prompted for when not given as a second argument.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewLoginCommand(r.app).Execute(ctx, args)
		},
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Create a new account on the backend. Prompts for name, email, and password.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewRegisterCommand(r.app).Execute(ctx)
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewLogoutCommand(r.app).Execute()
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewWhoamiCommand(r.app).Execute()
		},
	}

	projectsCmd := &cobra.Command{
		Use:   "projects [new|rename] [args]",
		Short: "List and manage projects",
		Long: `List projects with their total logged time, or manage them.

Examples:
  ttc projects                             # List projects with totals
  ttc projects new "Website Redesign"      # Create a project
  ttc projects rename 3 "Relaunch"         # Rename project 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewProjectsCommand(r.app).Execute(ctx, args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [project-id] [description]",
		Short: "Log a finished time record",
		Long: `Log a finished time record against a project.

Give either --end or --duration along with --start. Timestamps accept
"2006-01-02 15:04" or a bare clock time like "14:30" meaning today.

Examples:
  ttc add 3 "standup" --start 09:00 --end 09:15
  ttc add 3 "deep work" --start "2024-01-10 13:00" --duration 02:30:00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			durationFlag, _ := cmd.Flags().GetString("duration")

			return NewAddCommand(r.app).Execute(ctx, args, start, end, durationFlag)
		},
	}
	addCmd.Flags().String("start", "", "Start time")
	addCmd.Flags().String("end", "", "End time")
	addCmd.Flags().String("duration", "", "Duration as HH:MM:SS, instead of --end")

	trackCmd := &cobra.Command{
		Use:   "track [project-id] [description]",
		Short: "Track time against a project",
		Long: `Track time against a project with a live stopwatch.

Press Enter to stop and save the record, or type q to discard it.
With --manual the stopwatch is skipped and a duration is prompted for
instead; the record ends now and starts that long ago.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Tracking runs until the user stops it, so no timeout here.
			manual, _ := cmd.Flags().GetBool("manual")

			return NewTrackCommand(r.app).Execute(context.Background(), args, manual)
		},
	}
	trackCmd.Flags().Bool("manual", false, "Enter a duration instead of running the stopwatch")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show the weekly report",
		Long:  "Show all logged records grouped into Sunday-start weeks, newest week first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit [record-id]",
		Short: "Edit a time record",
		Long: `Edit a time record. Only the fields given as flags are sent to the
backend; editing one time field can move another to keep the record
consistent, in which case both are sent.

Examples:
  ttc edit 7 --end 17:30
  ttc edit 7 --duration 02:00:00
  ttc edit 7 --description "retro notes" --project 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := EditOptions{}
			if cmd.Flags().Changed("start") {
				opts.Start, _ = cmd.Flags().GetString("start")
				opts.HasStart = true
			}
			if cmd.Flags().Changed("end") {
				opts.End, _ = cmd.Flags().GetString("end")
				opts.HasEnd = true
			}
			if cmd.Flags().Changed("duration") {
				opts.Duration, _ = cmd.Flags().GetString("duration")
				opts.HasDuration = true
			}
			if cmd.Flags().Changed("description") {
				opts.Description, _ = cmd.Flags().GetString("description")
				opts.HasDescription = true
			}
			if cmd.Flags().Changed("project") {
				opts.ProjectID, _ = cmd.Flags().GetInt64("project")
				opts.HasProjectID = true
			}

			return NewEditCommand(r.app).Execute(ctx, args[0], opts)
		},
	}
	editCmd.Flags().String("start", "", "New start time")
	editCmd.Flags().String("end", "", "New end time")
	editCmd.Flags().String("duration", "", "New duration as HH:MM:SS")
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().Int64("project", 0, "New project ID")

	deleteCmd := &cobra.Command{
		Use:   "delete [record-id]",
		Short: "Delete a time record",
		Long: `Delete a time record.

This operation cannot be undone. You will be asked to confirm.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Delete waits on user confirmation, so allow extra time.
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args[0])
		},
	}

	r.cmd.AddCommand(
		loginCmd,
		registerCmd,
		logoutCmd,
		whoamiCmd,
		projectsCmd,
		addCmd,
		trackCmd,
		reportCmd,
		editCmd,
		deleteCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Backend configuration
	if url, _ := flags.GetString("backend-url"); url != "" {
		r.config.Backend.BaseURL = url
	}
	if timeout, _ := flags.GetDuration("backend-timeout"); timeout > 0 {
		r.config.Backend.RequestTimeout = timeout
	}

	// Storage configuration
	if dir, _ := flags.GetString("storage-dir"); dir != "" {
		r.config.Storage.Dir = dir
	}
	if filename, _ := flags.GetString("storage-filename"); filename != "" {
		r.config.Storage.Filename = filename
	}

	// Display configuration
	if format, _ := flags.GetString("time-format"); format != "" {
		r.config.Display.TimeFormat = format
	}
	if format, _ := flags.GetString("date-format"); format != "" {
		r.config.Display.DateFormat = format
	}

	// Tracking configuration
	if interval, _ := flags.GetDuration("tick-interval"); interval > 0 {
		r.config.Tracking.TickInterval = interval
	}

	// Application configuration
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
