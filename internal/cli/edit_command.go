package cli

import (
	"context"
	"fmt"

	"time-tracker-client/internal/api"
)

// EditOptions carries the edit command's flag values. The Has* fields
// distinguish an unset flag from one explicitly set to its zero value.
type EditOptions struct {
	Start          string
	HasStart       bool
	End            string
	HasEnd         bool
	Duration       string
	HasDuration    bool
	Description    string
	HasDescription bool
	ProjectID      int64
	HasProjectID   bool
}

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, idArg string, opts EditOptions) error {
	recordID, err := parseID("record-id", idArg)
	if err != nil {
		return err
	}

	edit := api.RecordEdit{}
	if opts.HasStart {
		startTime, err := parseTimestamp(opts.Start)
		if err != nil {
			return err
		}
		edit.StartTime = &startTime
	}
	if opts.HasEnd {
		endTime, err := parseTimestamp(opts.End)
		if err != nil {
			return err
		}
		edit.EndTime = &endTime
	}
	if opts.HasDuration {
		dur := opts.Duration
		edit.Duration = &dur
	}
	if opts.HasDescription {
		description := opts.Description
		edit.Description = &description
	}
	if opts.HasProjectID {
		projectID := opts.ProjectID
		edit.ProjectID = &projectID
	}

	rec, err := c.api.UpdateRecord(ctx, recordID, edit)
	if err != nil {
		return c.errorHandler.Handle("edit record", err)
	}

	fmt.Fprintf(c.app.out, "Record %d: %s to %s (%s)\n",
		rec.ID,
		rec.StartTime.Format("2006-01-02 15:04:05"),
		rec.EndTime.Format("2006-01-02 15:04:05"),
		rec.DurationDisplay())
	return nil
}
