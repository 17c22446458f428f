package dirinfo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Local implements Resolver for the host file system.
// Names are made absolute and cleaned, symbolic links are not followed
type Local struct {
	// Probe enables a read-only Lstat of every resolved name to surface permission errors.
	// A missing name is not an error
	Probe bool

	Logger logrus.FieldLogger
}

// NewLocal returns a pointer to a new Local object without probing
func NewLocal() Resolver { return &Local{} }

func (l *Local) logger() logrus.FieldLogger {
	if l.Logger == nil {
		return logrus.StandardLogger()
	}
	return l.Logger
}

// Resolve makes Local to implement Resolver
func (l *Local) Resolve(ctx context.Context, name string) (res Resolution, err error) {
	if ctx, err = invokeBeforeResolveCB(ctx); err != nil {
		return
	}
	defer func() {
		if errcb := invokeAfterResolveCB(ctx); err == nil {
			err = errcb
		} // else drop callback error
	}()

	if len(name) == 0 {
		return res, newPathError(ErrInvalidArgument, name, nil)
	}
	if strings.IndexFunc(name, invalidLocalRune) >= 0 {
		return res, newPathError(ErrMalformedPath, name, nil)
	}

	var fullName string
	if fullName, err = filepath.Abs(name); err != nil {
		return res, classifyLocalError(name, err)
	}
	if len(fullName) > maxLocalPathLength {
		return res, newPathError(ErrPathTooLong, fullName, nil)
	}
	if l.Probe {
		if err = l.probe(fullName); err != nil {
			return
		}
	}

	res.FullName = fullName
	if parent := filepath.Dir(fullName); parent != fullName {
		res.Parent, res.HasParent = parent, true
	}
	l.logger().Debugf("local: resolved %q to %q", name, fullName)
	return res, nil
}

func (l *Local) probe(fullName string) error {
	_, err := os.Lstat(fullName)
	switch {
	case err == nil, errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return nil
	default:
		l.logger().Debugf("local: probe of %q failed: %v", fullName, err)
		return classifyLocalError(fullName, err)
	}
}

func classifyLocalError(name string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return newPathError(ErrAccessDenied, name, err)
	case errors.Is(err, syscall.ENAMETOOLONG):
		return newPathError(ErrPathTooLong, name, err)
	default:
		return err
	}
}
