package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
)

var sceneExtensions = []string{".yaml", ".yml"}

// isSceneFile reports whether name looks like a scene document. Scenes are
// plain YAML so the extension is all we have.
func isSceneFile(name string) bool {
	return slices.Contains(sceneExtensions, strings.ToLower(filepath.Ext(name)))
}

// isArchiveFile checks file content (not extension) for zip signature, so
// renamed archives (.osz) are recognized too.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// enough for any matcher filetype has
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}
