// Package main (main.go) :
// CLI wiring: flags, credential discovery, resolve and download pipeline,
// failure summary and exit status.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/tales-aparecida/download-google-drive-files/internal/fetch"
	"github.com/tales-aparecida/download-google-drive-files/internal/gdrive"
	"github.com/tales-aparecida/download-google-drive-files/internal/misc"
)

const appname = "download-google-drive-files"

// createApp : Build the CLI application.
func createApp() *cli.App {
	app := cli.NewApp()
	app.Name = appname
	app.Usage = "download a shared Google Drive file or folder tree using a service account"
	app.ArgsUsage = "URL"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "credentials, c",
			Usage: "path to the service-account credentials JSON. Falls back to $GOOGLE_DRIVE_CREDENTIALS, then to the first *.json under ./credential.",
		},
		cli.StringFlag{
			Name:  "directory, d",
			Usage: "directory downloaded files are saved under. Defaults to the current working directory.",
		},
		cli.BoolFlag{
			Name:  "fileinf, i",
			Usage: "print the resolved resource (for folders, the whole tree) as JSON instead of downloading.",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging.",
		},
	}
	return app
}

// handler : Run the resolve and download pipeline.
func handler(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	misc.SetDefaultLog(level)

	rawURL := c.Args().First()
	if rawURL == "" {
		_ = cli.ShowAppHelp(c)
		return cli.NewExitError("missing URL argument", 1)
	}

	// Malformed URLs fail before any network call.
	if _, err := gdrive.ExtractID(rawURL); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	workDir := c.String("directory")
	if workDir == "" {
		var err error
		workDir, err = filepath.Abs(".")
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}

	ctx := context.Background()

	credPath, err := gdrive.DiscoverCredentials(c.String("credentials"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	slog.Info("authenticating service account", "credentials", credPath)
	client, err := gdrive.NewClient(ctx, credPath)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	slog.Info("drive service ready", "email", client.Email())

	handle, err := gdrive.Resolve(ctx, client, rawURL)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	slog.Info("resolved resource", "id", handle.ID, "name", handle.Name, "mimeType", handle.MimeType)

	if c.Bool("fileinf") {
		return showFileInf(ctx, client, handle)
	}

	fetcher := fetch.New(client, afero.NewOsFs())
	report, err := fetcher.Download(ctx, handle, workDir)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	printSummary(report)
	if !report.OK() {
		return cli.NewExitError(fmt.Sprintf("%d item(s) failed to download", len(report.Failures)), 1)
	}
	return nil
}

// showFileInf : Print file or folder-tree information as JSON.
func showFileInf(ctx context.Context, client *gdrive.Client, handle *gdrive.Handle) error {
	var out []byte
	var err error
	if handle.Kind == gdrive.KindFolder {
		out, err = client.Inventory(handle.ID)
	} else {
		var item *gdrive.Item
		if item, err = client.Metadata(ctx, handle.ID); err == nil {
			out, err = json.Marshal(item)
		}
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("%s\n", out)
	return nil
}

// printSummary : Print the aggregate result of the run.
func printSummary(report *fetch.Report) {
	fmt.Printf("downloaded %d file(s) and %d folder(s)\n", report.Files, report.Folders)
	if report.OK() {
		color.Green("all items downloaded")
		return
	}
	color.Red("%d item(s) failed:", len(report.Failures))
	for _, failure := range report.Failures {
		color.Red("  %s", failure)
	}
}

// main : Main of this tool.
func main() {
	app := createApp()
	app.Action = handler
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
