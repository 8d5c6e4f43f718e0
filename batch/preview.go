package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cornerbrand/cornerbrand/messages"
)

// PreviewDir prepares an empty scratch directory for one request's
// preview renders under the system temp directory. Leftovers from an
// earlier run with the same id are removed first.
func PreviewDir(requestID string) (string, error) {
	dir := filepath.Join(os.TempDir(), "cornerbrand-preview", requestID)

	if _, err := os.Stat(dir); err == nil {
		if err := os.RemoveAll(dir); err != nil {
			return "", fmt.Errorf("%s: %w", messages.PreviewRemoveFailed(), err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", messages.PreviewCreateFailed(), err)
	}
	return dir, nil
}
