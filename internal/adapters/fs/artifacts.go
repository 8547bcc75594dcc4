// Package fs manages the files a pipeline run leaves in its working
// directory.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/bft-labs/normbridge/internal/ports"
	"github.com/bft-labs/normbridge/pkg/log"
)

// Stem returns the base name of path without its final extension, so
// "dir/input.txt" becomes "input".
func Stem(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Artifacts names the files sharing one stem inside a directory.
type Artifacts struct {
	Dir  string
	Stem string
	Exts []string
}

// Path returns the path of the artifact with extension ext.
func (a Artifacts) Path(ext string) string {
	return filepath.Join(a.Dir, a.Stem+ext)
}

// Paths returns every artifact path in Exts order.
func (a Artifacts) Paths() []string {
	return lo.Map(a.Exts, func(ext string, _ int) string { return a.Path(ext) })
}

// Remove deletes every artifact. Missing files are ignored; other failures
// are logged and skipped. It returns how many files were actually removed.
func (a Artifacts) Remove(logger ports.Logger) int {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if a.Stem == "" {
		return 0
	}

	removed := 0
	for _, p := range a.Paths() {
		err := os.Remove(p)
		switch {
		case err == nil:
			removed++
		case errors.Is(err, iofs.ErrNotExist):
		default:
			logger.Warn("cleanup: remove failed", log.String("path", p), log.Err(err))
		}
	}
	if removed > 0 {
		logger.Debug("cleanup: removed artifacts", log.String("stem", a.Stem), log.Int("count", removed))
	}
	return removed
}
