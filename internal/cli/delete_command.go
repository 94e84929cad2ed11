package cli

import (
	"context"
	"fmt"
	"strings"

	"time-tracker-client/internal/api"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, idArg string) error {
	recordID, err := parseID("record-id", idArg)
	if err != nil {
		return err
	}

	rec, err := c.api.GetRecord(ctx, recordID)
	if err != nil {
		return c.errorHandler.Handle("delete record", err)
	}

	fmt.Fprintf(c.app.out, "Delete record %d (%s, %s on %s)? [y/N]: ",
		rec.ID, rec.Description, rec.DurationDisplay(),
		rec.StartTime.Format("2006-01-02"))

	input, err := c.app.readLine()
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(input), "y") {
		fmt.Fprintln(c.app.out, "Delete cancelled.")
		return nil
	}

	if err := c.api.DeleteRecord(ctx, recordID); err != nil {
		return c.errorHandler.Handle("delete record", err)
	}

	fmt.Fprintf(c.app.out, "Deleted record %d.\n", recordID)
	return nil
}
