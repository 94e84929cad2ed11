package cli

import (
	"context"
	"fmt"
	"strings"

	"time-tracker-client/internal/api"
	"time-tracker-client/internal/duration"
	"time-tracker-client/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string, startArg, endArg, durationArg string) error {
	projectID, err := parseID("project-id", args[0])
	if err != nil {
		return err
	}
	description := strings.Join(args[1:], " ")

	if startArg == "" {
		return errors.NewInvalidInputError("start", "", "--start is required")
	}
	if endArg == "" && durationArg == "" {
		return errors.NewInvalidInputError("end", "", "give either --end or --duration")
	}
	if endArg != "" && durationArg != "" {
		return errors.NewInvalidInputError("end", endArg, "--end and --duration are mutually exclusive")
	}

	startTime, err := parseTimestamp(startArg)
	if err != nil {
		return err
	}

	endTime := startTime
	if endArg != "" {
		if endTime, err = parseTimestamp(endArg); err != nil {
			return err
		}
	} else {
		// Lenient parse: malformed segments count as zero.
		endTime = startTime.Add(duration.Parse(durationArg).Elapsed())
	}

	rec, err := c.api.CreateRecord(ctx, projectID, description, startTime, endTime)
	if err != nil {
		return c.errorHandler.Handle("add record", err)
	}

	fmt.Fprintf(c.app.out, "Logged %s against %s (record %d)\n",
		rec.DurationDisplay(), rec.ProjectName, rec.ID)
	return nil
}
