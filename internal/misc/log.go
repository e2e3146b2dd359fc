package misc

import (
	"log/slog"
	"os"
)

// SetDefaultLog installs a text handler on stderr at the given level.
// Stdout is kept clean for the --fileinf JSON output.
func SetDefaultLog(level slog.Leveler) {
	slog.SetDefault(
		slog.New(
			slog.NewTextHandler(
				os.Stderr,
				&slog.HandlerOptions{
					Level: level,
				},
			),
		),
	)
}
