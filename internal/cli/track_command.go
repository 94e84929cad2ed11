package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"time-tracker-client/internal/api"
	"time-tracker-client/internal/duration"
	"time-tracker-client/internal/session"
)

// TrackCommand handles the track command
type TrackCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewTrackCommand creates a new track command handler
func NewTrackCommand(app *App) *TrackCommand {
	return &TrackCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the track command
func (c *TrackCommand) Execute(ctx context.Context, args []string, manual bool) error {
	projectID, err := parseID("project-id", args[0])
	if err != nil {
		return err
	}
	description := strings.Join(args[1:], " ")

	if manual {
		return c.trackManually(ctx, projectID, description)
	}
	return c.trackWithStopwatch(ctx, projectID, description)
}

// trackManually prompts for a duration and logs a record ending now
func (c *TrackCommand) trackManually(ctx context.Context, projectID int64, description string) error {
	input, err := c.app.prompt("Duration (HH:MM:SS): ")
	if err != nil {
		return err
	}

	// Lenient parse: malformed segments count as zero.
	dur := duration.Parse(input)
	endTime := timeNow()
	startTime := endTime.Add(-dur.Elapsed())

	rec, err := c.api.CreateRecord(ctx, projectID, description, startTime, endTime)
	if err != nil {
		return c.errorHandler.Handle("save record", err)
	}

	fmt.Fprintf(c.app.out, "Logged %s against %s (record %d)\n",
		rec.DurationDisplay(), rec.ProjectName, rec.ID)
	return nil
}

// trackWithStopwatch runs the live stopwatch until the user stops it
func (c *TrackCommand) trackWithStopwatch(ctx context.Context, projectID int64, description string) error {
	tracker := session.New(
		session.WithClock(timeNow),
		session.WithTickInterval(c.tickInterval()),
		session.WithOnTick(func(elapsed time.Duration) {
			fmt.Fprintf(c.app.out, "\r%s", session.DisplayClock(elapsed))
		}),
	)
	defer tracker.Close()

	if err := tracker.SwitchMode(session.ModeTimer); err != nil {
		return err
	}
	if err := tracker.Start(); err != nil {
		return err
	}

	fmt.Fprintln(c.app.out, "Tracking. Press Enter to stop and save, or q then Enter to discard.")

	input, err := c.app.readLine()
	if err != nil {
		_ = tracker.Discard()
		return err
	}

	if strings.EqualFold(strings.TrimSpace(input), "q") {
		if err := tracker.Discard(); err != nil {
			return err
		}
		fmt.Fprintln(c.app.out, "\nDiscarded.")
		return nil
	}

	result, err := tracker.Stop()
	if err != nil {
		return err
	}

	rec, err := c.api.CreateRecord(ctx, projectID, description, result.StartTime, result.EndTime)
	if err != nil {
		return c.errorHandler.Handle("save record", err)
	}

	fmt.Fprintf(c.app.out, "\nLogged %s against %s (record %d)\n",
		rec.DurationDisplay(), rec.ProjectName, rec.ID)
	return nil
}

// tickInterval returns the configured stopwatch refresh interval
func (c *TrackCommand) tickInterval() time.Duration {
	if c.app.config != nil {
		return c.app.config.Tracking.TickInterval
	}
	return session.DefaultTickInterval
}
