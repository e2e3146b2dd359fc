package gdrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFormatFor(t *testing.T) {
	format, ok := ExportFormatFor("application/vnd.google-apps.spreadsheet")
	require.True(t, ok)
	assert.Equal(t, "application/pdf", format.MimeType)
	assert.Equal(t, "pdf", format.Extension)

	format, ok = ExportFormatFor("application/vnd.google-apps.drawing")
	require.True(t, ok)
	assert.Equal(t, "image/png", format.MimeType)
	assert.Equal(t, "png", format.Extension)
}

func TestExportFormatForUnsupported(t *testing.T) {
	for _, mimeType := range []string{
		"application/vnd.google-apps.form",
		"application/vnd.google-apps.map",
		"application/vnd.google-apps.shortcut",
		"application/vnd.google-apps.script",
		FolderMimeType,
		"application/pdf",
	} {
		_, ok := ExportFormatFor(mimeType)
		assert.False(t, ok, "mime type %q", mimeType)
	}
}

// Every exportable type must classify as a document, never as a plain file.
func TestExportTableMatchesClassification(t *testing.T) {
	for mimeType := range exportFormats {
		assert.Equal(t, KindDocument, ClassifyMimeType(mimeType), "mime type %q", mimeType)
	}
}
