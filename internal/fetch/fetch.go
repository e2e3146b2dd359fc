// Package fetch mirrors resolved Drive resources to a local directory
// tree, depth-first, tolerating failures on individual items.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/tales-aparecida/download-google-drive-files/internal/gdrive"
)

// errorReportName is the per-folder log of failed items, written next to
// the files that did download.
const errorReportName = "google_drive_download_error_report.log"

// Fetcher walks a resolved Drive resource and mirrors it under a local
// root. The filesystem is injected so tests run against an in-memory one.
type Fetcher struct {
	svc gdrive.Service
	fs  afero.Fs
}

// New returns a Fetcher that downloads through svc and writes through fs.
func New(svc gdrive.Service, fs afero.Fs) *Fetcher {
	return &Fetcher{svc: svc, fs: fs}
}

// Download mirrors the resource behind handle into destDir.
//
// An error on handle itself is returned and nothing else is attempted.
// Errors on descendants of a folder are recorded in the report and
// traversal continues with the remaining siblings; the caller decides the
// process exit status from Report.OK.
func (f *Fetcher) Download(ctx context.Context, handle *gdrive.Handle, destDir string) (*Report, error) {
	report := &Report{}
	if err := f.download(ctx, handle, destDir, report); err != nil {
		return report, err
	}
	return report, nil
}

func (f *Fetcher) download(ctx context.Context, h *gdrive.Handle, destDir string, report *Report) error {
	switch h.Kind {
	case gdrive.KindFolder:
		return f.downloadFolder(ctx, h, destDir, report)
	case gdrive.KindDocument:
		return f.exportDocument(ctx, h, destDir, report)
	default:
		return f.downloadFile(ctx, h, destDir, report)
	}
}

func (f *Fetcher) downloadFile(ctx context.Context, h *gdrive.Handle, destDir string, report *Report) error {
	body, err := f.svc.Download(ctx, h.ID)
	if err != nil {
		return err
	}
	path := f.destPath(destDir, h.Name)
	if err := f.writeStream(body, path); err != nil {
		return err
	}
	slog.Info("downloaded file", "id", h.ID, "name", h.Name, "path", path)
	report.Files++
	return nil
}

func (f *Fetcher) exportDocument(ctx context.Context, h *gdrive.Handle, destDir string, report *Report) error {
	format, ok := gdrive.ExportFormatFor(h.MimeType)
	if !ok {
		return errors.Wrapf(gdrive.ErrUnsupportedFormat, "%q (%s)", h.Name, h.MimeType)
	}
	body, err := f.svc.Export(ctx, h.ID, format.MimeType)
	if err != nil {
		return err
	}
	path := f.destPath(destDir, h.Name+"."+format.Extension)
	if err := f.writeStream(body, path); err != nil {
		return err
	}
	slog.Info("exported document", "id", h.ID, "name", h.Name, "as", format.MimeType, "path", path)
	report.Files++
	return nil
}

func (f *Fetcher) downloadFolder(ctx context.Context, h *gdrive.Handle, destDir string, report *Report) error {
	dir := filepath.Join(destDir, safeName(h.Name))
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(gdrive.ErrTransfer, "create directory %s: %v", dir, err)
	}
	slog.Info("stepping into folder", "id", h.ID, "path", dir)

	children, err := f.listChildren(ctx, h.ID)
	if err != nil {
		return err
	}
	for _, item := range children {
		child := gdrive.HandleFromItem(item)
		if err := f.download(ctx, child, dir, report); err != nil {
			report.Failures = append(report.Failures, Failure{ID: child.ID, Name: child.Name, Err: err})
			f.appendErrorReport(dir, child, err)
			slog.Error("download failed", "id", child.ID, "name", child.Name, "err", err)
		}
	}
	report.Folders++
	return nil
}

// listChildren drains the paginated listing, concatenating pages in the
// order the API returned them.
func (f *Fetcher) listChildren(ctx context.Context, folderID string) ([]*gdrive.Item, error) {
	var all []*gdrive.Item
	pageToken := ""
	for {
		items, next, err := f.svc.Children(ctx, folderID, pageToken)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if next == "" {
			return all, nil
		}
		pageToken = next
	}
}

// writeStream copies body into a new file at path. The file handle and the
// response body are released on every exit path, and an empty partial file
// left behind by a failed stream is removed.
func (f *Fetcher) writeStream(body io.ReadCloser, path string) error {
	defer body.Close()
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(gdrive.ErrTransfer, "create directory for %s: %v", path, err)
	}
	file, err := f.fs.Create(path)
	if err != nil {
		return errors.Wrapf(gdrive.ErrTransfer, "create %s: %v", path, err)
	}
	_, err = io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if info, statErr := f.fs.Stat(path); statErr == nil && info.Size() == 0 {
			_ = f.fs.Remove(path)
		}
		return errors.Wrapf(gdrive.ErrTransfer, "write %s: %v", path, err)
	}
	return nil
}

// destPath joins name under dir. An existing file is never overwritten:
// the new download is written under a uuid-suffixed name instead, so the
// first sibling with a given display name keeps the plain path.
func (f *Fetcher) destPath(dir, name string) string {
	path := filepath.Join(dir, safeName(name))
	exists, err := afero.Exists(f.fs, path)
	if err != nil || !exists {
		return path
	}
	suffixed := withSuffix(path)
	slog.Warn("path conflict, appending suffix", "path", path, "renamed", filepath.Base(suffixed))
	return suffixed
}

// safeName makes a display name joinable by replacing path separators.
func safeName(name string) string {
	return strings.ReplaceAll(name, "/", "_")
}

// withSuffix inserts a random suffix before the extension.
func withSuffix(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + uuid.NewString() + ext
}

// appendErrorReport keeps a record of the failure in the folder the item
// would have landed in. Best effort; the report already carries the error.
func (f *Fetcher) appendErrorReport(dir string, h *gdrive.Handle, cause error) {
	file, err := f.fs.OpenFile(filepath.Join(dir, errorReportName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("could not write error report", "dir", dir, "err", err)
		return
	}
	defer file.Close()
	fmt.Fprintf(file, "failed to download (%s) %q: %v\n", h.ID, h.Name, cause)
}
