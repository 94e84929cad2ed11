package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"time-tracker-client/internal/api"
	"time-tracker-client/internal/config"
	"time-tracker-client/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
	in     io.Reader
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
		in:     os.Stdin,
	}
}

// readLine reads one line of user input, trimmed of the trailing newline
func (a *App) readLine() (string, error) {
	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints a prompt and reads one line of input
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	return a.readLine()
}

// timestampLayouts are the accepted forms for user-supplied timestamps,
// tried in order.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseTimestamp parses a user-supplied timestamp. A bare clock time such
// as "14:30" is taken to mean today at that time, in local time.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			now := timeNow()
			return time.Date(now.Year(), now.Month(), now.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
		}
	}

	return time.Time{}, errors.NewInvalidInputError("timestamp", value,
		"expected \"2006-01-02 15:04\" or a clock time like \"14:30\"")
}

// parseID parses a positive numeric identifier argument
func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError(field, value, "expected a positive numeric ID")
	}
	return id, nil
}
