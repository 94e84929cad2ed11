package cli

import (
	"context"
	"fmt"

	"time-tracker-client/internal/api"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	groups, err := c.api.WeeklyReport(ctx)
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}

	if len(groups) == 0 {
		fmt.Fprintln(c.app.out, "No records yet.")
		return nil
	}

	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(c.app.out)
		}
		fmt.Fprintf(c.app.out, "%s   total %s\n", group.Bucket.Label(), group.TotalDisplay())
		for _, rec := range group.Records {
			fmt.Fprintf(c.app.out, "  %4d  %s  %-30s %s\n",
				rec.ID,
				rec.StartTime.Format(c.dateFormat()),
				truncate(rec.Description, 30),
				rec.DurationDisplay())
		}
	}
	return nil
}

// dateFormat returns the configured date display format
func (c *ReportCommand) dateFormat() string {
	if c.app.config != nil {
		return c.app.config.Display.DateFormat
	}
	return "2006-01-02"
}

// truncate shortens a string to at most n runes for column display
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
