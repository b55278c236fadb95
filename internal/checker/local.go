package checker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// StripFragment removes everything from the first '#' onward.
// An anchor names a place inside a file, not a separate file.
func StripFragment(target string) string {
	if i := strings.IndexByte(target, '#'); i >= 0 {
		return target[:i]
	}
	return target
}

// ResolveLocal returns the absolute path a local link refers to.
// The fragment is stripped and the remainder is resolved against the
// directory containing source, not the working directory. Absolute
// targets are used as they are.
func ResolveLocal(source, target string) (string, error) {
	path := StripFragment(target)
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(source), path)
	}
	return filepath.Abs(path)
}

// LocalChecker checks that local links point at existing paths.
type LocalChecker struct{}

// NewLocalChecker creates a LocalChecker.
func NewLocalChecker() *LocalChecker {
	return &LocalChecker{}
}

// Check resolves target relative to source and checks that the path
// exists, as a file or a directory. Every failure to inspect the path is
// MISSING FILE; the ErrorKind records which failure it was.
func (c *LocalChecker) Check(source, target string) Result {
	resolved, err := ResolveLocal(source, target)
	if err != nil {
		return Result{
			Status:    model.StatusMissingFile,
			ErrorKind: model.ErrorKindInvalidPath,
			Err:       err,
		}
	}

	if _, err := os.Stat(resolved); err != nil {
		return Result{
			Status:       model.StatusMissingFile,
			ErrorKind:    classifyStatError(err),
			ResolvedPath: resolved,
			Err:          err,
		}
	}

	return Result{Status: model.StatusOK, ResolvedPath: resolved}
}

// classifyStatError maps an os.Stat error to an ErrorKind.
func classifyStatError(err error) model.ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return model.ErrorKindNotExist
	case errors.Is(err, fs.ErrPermission):
		return model.ErrorKindPermission
	default:
		return model.ErrorKindInvalidPath
	}
}
