package gdrive

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a resolved Drive resource and decides how it is
// downloaded: plain files are fetched as-is, native documents are exported,
// folders are recursed into.
type Kind int

const (
	KindFile Kind = iota
	KindDocument
	KindFolder
)

const (
	// FolderMimeType is the MIME type the Drive API reports for folders.
	FolderMimeType = "application/vnd.google-apps.folder"

	nativePrefix = "application/vnd.google-apps."
)

// Handle identifies one resolved Drive resource.
type Handle struct {
	ID       string
	Name     string
	MimeType string
	Kind     Kind
}

// Sharing-link shapes Drive hands out: /file/d/<id> and the Docs editors'
// /<kind>/d/<id>, /drive/folders/<id>, and the older ?id=<id> query form.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/(?:file|document|spreadsheets|presentation|drawings)/d/([a-zA-Z0-9_-]{10,})`),
	regexp.MustCompile(`/folders/([a-zA-Z0-9_-]{10,})`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]{10,})`),
}

// ExtractID pulls the file ID out of a Drive sharing URL without touching
// the network. Unrecognized URLs yield ErrInvalidURL.
func ExtractID(rawURL string) (string, error) {
	for _, pattern := range idPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", errors.Wrapf(ErrInvalidURL, "%q", rawURL)
}

// ClassifyMimeType maps a Drive MIME type onto a Kind. Every native Google
// type except the folder type is a document, whether or not it can be
// exported; the export table decides that later.
func ClassifyMimeType(mimeType string) Kind {
	switch {
	case mimeType == FolderMimeType:
		return KindFolder
	case strings.HasPrefix(mimeType, nativePrefix):
		return KindDocument
	default:
		return KindFile
	}
}

// Resolve extracts the file ID from rawURL and looks up its metadata.
func Resolve(ctx context.Context, svc Service, rawURL string) (*Handle, error) {
	id, err := ExtractID(rawURL)
	if err != nil {
		return nil, err
	}
	item, err := svc.Metadata(ctx, id)
	if err != nil {
		return nil, err
	}
	return HandleFromItem(item), nil
}

// HandleFromItem classifies a metadata or listing entry the same way
// Resolve does.
func HandleFromItem(item *Item) *Handle {
	return &Handle{
		ID:       item.ID,
		Name:     item.Name,
		MimeType: item.MimeType,
		Kind:     ClassifyMimeType(item.MimeType),
	}
}
