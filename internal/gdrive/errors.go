package gdrive

import (
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// Error kinds surfaced by this package. Callers match them with errors.Is;
// the wrapped message carries the file ID and the API detail.
var (
	ErrInvalidURL        = errors.New("could not extract a file ID from the URL")
	ErrNotFound          = errors.New("file not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUnsupportedFormat = errors.New("file type has no export format")
	ErrTransfer          = errors.New("transfer failed")
)

const permissionHint = "check that the file is shared with the service account and allows downloads from viewers"

// wrapAPIError maps a Drive API failure onto one of the package error kinds.
func wrapAPIError(err error, fileID string) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return errors.Wrapf(ErrNotFound, "file %s: %s", fileID, apiMessage(gerr))
		case http.StatusForbidden:
			return errors.Wrapf(ErrPermissionDenied, "file %s: %s (%s)", fileID, apiMessage(gerr), permissionHint)
		}
	}
	return errors.Wrapf(ErrTransfer, "file %s: %v", fileID, err)
}

func apiMessage(gerr *googleapi.Error) string {
	if gerr.Message != "" {
		return gerr.Message
	}
	return http.StatusText(gerr.Code)
}
