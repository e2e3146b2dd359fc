package gdrive

import (
	"encoding/json"

	"github.com/pkg/errors"
	getfilelist "github.com/tanaikech/go-getfilelist"
)

// Inventory walks the whole tree under folderID and returns the folder
// structure and file list as JSON. Used by the --fileinf mode, which
// inspects a share without downloading it.
func (c *Client) Inventory(folderID string) ([]byte, error) {
	list, err := getfilelist.Folder(folderID).Do(c.srv)
	if err != nil {
		return nil, errors.Wrap(err, "list folder tree")
	}
	out, err := json.Marshal(list)
	if err != nil {
		return nil, errors.Wrap(err, "encode folder tree")
	}
	return out, nil
}
