package gdrive

// ExportFormat is the downloadable representation of a Google Workspace
// document, as used with files.export.
type ExportFormat struct {
	MimeType  string
	Extension string
}

// exportFormats maps native Google document MIME types to the format they
// are exported as. Native types missing from the table cannot be downloaded
// at all (forms, maps, sites, scripts, shortcuts, fusion tables).
//
// Reference: https://developers.google.com/drive/api/v3/mime-types
var exportFormats = map[string]ExportFormat{
	"application/vnd.google-apps.document":     {MimeType: "application/pdf", Extension: "pdf"},
	"application/vnd.google-apps.drawing":      {MimeType: "image/png", Extension: "png"},
	"application/vnd.google-apps.presentation": {MimeType: "application/pdf", Extension: "pdf"},
	"application/vnd.google-apps.spreadsheet":  {MimeType: "application/pdf", Extension: "pdf"},
	"application/vnd.google-apps.audio":        {MimeType: "audio/webm", Extension: "webm"},
	"application/vnd.google-apps.photo":        {MimeType: "image/webp", Extension: "webp"},
	"application/vnd.google-apps.video":        {MimeType: "video/webm", Extension: "webm"},
}

// ExportFormatFor returns the export format for a native document MIME type.
// The second return value is false when the type cannot be exported.
func ExportFormatFor(mimeType string) (ExportFormat, bool) {
	format, ok := exportFormats[mimeType]
	return format, ok
}
