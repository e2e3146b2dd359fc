package gdrive

import (
	"io"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestWrapAPIError(t *testing.T) {
	err := wrapAPIError(&googleapi.Error{Code: http.StatusNotFound, Message: "File not found"}, "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "abc")

	err = wrapAPIError(&googleapi.Error{Code: http.StatusForbidden}, "abc")
	assert.True(t, errors.Is(err, ErrPermissionDenied))
	assert.Contains(t, err.Error(), permissionHint)

	err = wrapAPIError(&googleapi.Error{Code: http.StatusInternalServerError}, "abc")
	assert.True(t, errors.Is(err, ErrTransfer))

	err = wrapAPIError(io.ErrUnexpectedEOF, "abc")
	assert.True(t, errors.Is(err, ErrTransfer))

	assert.NoError(t, wrapAPIError(nil, "abc"))
}
