package gdrive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	// credentialsEnv names the service-account JSON when no flag is given.
	credentialsEnv = "GOOGLE_DRIVE_CREDENTIALS"
	// credentialDir is scanned for *.json as a last resort.
	credentialDir = "credential"

	// pageSize for folder listings.
	pageSize = 300

	itemFields = "id, name, mimeType, size"
	listFields = "nextPageToken, files(id, name, mimeType, size)"
)

// Item is one file or folder entry as returned by the Drive API.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size,omitempty"`
}

// Service is the slice of the Drive API the resolver and the download
// executor consume. Children returns one listing page and the continuation
// token for the next; an empty token means the listing is exhausted.
type Service interface {
	Metadata(ctx context.Context, fileID string) (*Item, error)
	Children(ctx context.Context, folderID, pageToken string) ([]*Item, string, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
	Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error)
}

// Client implements Service on the Drive v3 API, authenticated with a
// service-account credential. It is read-only after construction and safe
// for concurrent use.
type Client struct {
	srv   *drive.Service
	email string
}

// DiscoverCredentials returns the credential file to use: the explicit path
// if given, then $GOOGLE_DRIVE_CREDENTIALS, then the first *.json under
// ./credential.
func DiscoverCredentials(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := strings.TrimSpace(os.Getenv(credentialsEnv)); env != "" {
		return env, nil
	}
	matches, err := filepath.Glob(filepath.Join(credentialDir, "*.json"))
	if err == nil && len(matches) > 0 {
		return matches[0], nil
	}
	return "", errors.Errorf("missing credentials file: pass --credentials, set %s, or place a *.json under ./%s", credentialsEnv, credentialDir)
}

// NewClient authenticates the service account behind credentialsPath with
// read-only Drive scopes and builds the Drive v3 service.
func NewClient(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "read credentials file")
	}
	conf, err := google.JWTConfigFromJSON(data, drive.DriveReadonlyScope, drive.DriveMetadataReadonlyScope)
	if err != nil {
		return nil, errors.Wrap(err, "parse service-account credentials")
	}
	srv, err := drive.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "start drive service")
	}
	return &Client{srv: srv, email: conf.Email}, nil
}

// Email returns the authenticated service-account identity. Resources must
// be shared with this address to be visible.
func (c *Client) Email() string {
	return c.email
}

// Metadata fetches id, name and MIME type for one resource.
func (c *Client) Metadata(ctx context.Context, fileID string) (*Item, error) {
	f, err := c.srv.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields(itemFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(err, fileID)
	}
	return itemFromFile(f), nil
}

// Children returns one page of the folder's immediate children, in the
// order the API listed them, plus the next page token.
func (c *Client) Children(ctx context.Context, folderID, pageToken string) ([]*Item, string, error) {
	call := c.srv.Files.List().
		Q(fmt.Sprintf("'%s' in parents", folderID)).
		PageSize(pageSize).
		Fields(listFields).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Corpora("allDrives").
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	list, err := call.Do()
	if err != nil {
		return nil, "", wrapAPIError(err, folderID)
	}
	items := make([]*Item, 0, len(list.Files))
	for _, f := range list.Files {
		items = append(items, itemFromFile(f))
	}
	return items, list.NextPageToken, nil
}

// Download opens the raw content stream of a plain file.
func (c *Client) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	res, err := c.srv.Files.Get(fileID).
		SupportsAllDrives(true).
		Context(ctx).
		Download()
	if err != nil {
		return nil, wrapAPIError(err, fileID)
	}
	return res.Body, nil
}

// Export opens the exported stream of a native document in the given
// format. Drive caps exports at 10MB; larger documents fail server-side.
func (c *Client) Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error) {
	res, err := c.srv.Files.Export(fileID, mimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, wrapAPIError(err, fileID)
	}
	return res.Body, nil
}

func itemFromFile(f *drive.File) *Item {
	return &Item{ID: f.Id, Name: f.Name, MimeType: f.MimeType, Size: f.Size}
}
