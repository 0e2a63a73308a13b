package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0x4D44/mdtouch/internal/app"
	"github.com/0x4D44/mdtouch/internal/buildinfo"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// banner is the two-line version output for an empty invocation.
const banner = "mdtouch  %s\n" +
	"A tool to update file timestamps or create empty files, mimicking the Unix touch command.\n"

// usage is the help text shown for -h or -?. Help flags are matched as
// literal arguments, not parsed as flags: -? is not a legal stdlib flag
// name, and help must win no matter where it appears in the argument list.
const usage = `Usage: mdtouch [OPTIONS] <file> [file...]

A command line tool to mimic the behaviour of the Unix touch command on
platforms lacking it natively. If the file does not exist, it will be
created. Otherwise, its access and modification times will be updated to
the current time.

Options:
  -h, -?      Display this help message and exit.
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// The three outcomes are resolved in priority order: empty invocation prints
// the version banner, a help flag anywhere prints usage (and suppresses any
// file processing), and otherwise every argument is a path to touch.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.", "arg_count", len(args))

	if len(args) == 0 {
		fmt.Fprintf(output, banner, buildinfo.BuildDatetime)
		return nil, true, nil
	}

	for _, arg := range args {
		if arg == "-h" || arg == "-?" {
			fmt.Fprint(output, usage)
			return nil, true, nil
		}
	}

	config, err := app.NewConfig(app.Config{
		Paths:     args,
		LogFormat: os.Getenv("MDTOUCH_LOG_FORMAT"),
		LogLevel:  os.Getenv("MDTOUCH_LOG_LEVEL"),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "path_count", len(config.Paths))
	return config, false, nil
}
