package gdrive

import (
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "1A2b3C4d5E6f7G8h9I0jKLMNOPqrstu"

func TestExtractID(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"file link", "https://drive.google.com/file/d/" + testID + "/view?usp=sharing"},
		{"file link trailing slash", "https://drive.google.com/file/d/" + testID + "/"},
		{"file link bare", "https://drive.google.com/file/d/" + testID},
		{"folder link", "https://drive.google.com/drive/folders/" + testID},
		{"folder link with query", "https://drive.google.com/drive/folders/" + testID + "?usp=drive_link"},
		{"document link", "https://docs.google.com/document/d/" + testID + "/edit"},
		{"spreadsheet link", "https://docs.google.com/spreadsheets/d/" + testID + "/edit#gid=0"},
		{"presentation link", "https://docs.google.com/presentation/d/" + testID + "/edit"},
		{"open link", "https://drive.google.com/open?id=" + testID},
		{"uc export link", "https://drive.google.com/uc?export=download&id=" + testID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractID(tc.url)
			require.NoError(t, err)
			assert.Equal(t, testID, got)
		})
	}
}

func TestExtractIDUnrecognized(t *testing.T) {
	for _, url := range []string{
		"",
		"not a url at all",
		"https://example.com/file/abc",
		"https://drive.google.com/drive/my-drive",
		"https://drive.google.com/file/d/short",
	} {
		_, err := ExtractID(url)
		assert.True(t, errors.Is(err, ErrInvalidURL), "url %q", url)
	}
}

func TestClassifyMimeType(t *testing.T) {
	assert.Equal(t, KindFolder, ClassifyMimeType(FolderMimeType))
	assert.Equal(t, KindDocument, ClassifyMimeType("application/vnd.google-apps.document"))
	assert.Equal(t, KindDocument, ClassifyMimeType("application/vnd.google-apps.form"))
	assert.Equal(t, KindFile, ClassifyMimeType("application/pdf"))
	assert.Equal(t, KindFile, ClassifyMimeType("image/png"))
}

// metadataOnly is a Service stub for resolver tests.
type metadataOnly struct {
	item  *Item
	err   error
	calls int
}

func (s *metadataOnly) Metadata(ctx context.Context, fileID string) (*Item, error) {
	s.calls++
	return s.item, s.err
}

func (s *metadataOnly) Children(ctx context.Context, folderID, pageToken string) ([]*Item, string, error) {
	return nil, "", nil
}

func (s *metadataOnly) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	return nil, nil
}

func (s *metadataOnly) Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error) {
	return nil, nil
}

func TestResolve(t *testing.T) {
	svc := &metadataOnly{item: &Item{ID: testID, Name: "reports", MimeType: FolderMimeType}}
	handle, err := Resolve(context.Background(), svc, "https://drive.google.com/drive/folders/"+testID)
	require.NoError(t, err)
	assert.Equal(t, testID, handle.ID)
	assert.Equal(t, "reports", handle.Name)
	assert.Equal(t, KindFolder, handle.Kind)
	assert.Equal(t, 1, svc.calls)
}

func TestResolveInvalidURLSkipsNetwork(t *testing.T) {
	svc := &metadataOnly{item: &Item{ID: testID}}
	_, err := Resolve(context.Background(), svc, "https://example.com/nothing-here")
	assert.True(t, errors.Is(err, ErrInvalidURL))
	assert.Zero(t, svc.calls)
}

func TestResolveNotFound(t *testing.T) {
	svc := &metadataOnly{err: errors.Wrap(ErrNotFound, "file "+testID)}
	_, err := Resolve(context.Background(), svc, "https://drive.google.com/file/d/"+testID+"/view")
	assert.True(t, errors.Is(err, ErrNotFound))
}
