package dirinfo

import (
	"context"
	"path"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// Memory implements Resolver without touching any storage. Names are slash separated,
// relative names are resolved against the working directory. It is concurrent-safe
type Memory struct {
	workDir  string
	failures *xsync.Map[string, error]
	calls    *xsync.Counter
}

// NewMemory returns a pointer to a new Memory object with the working directory given
func NewMemory(workDir string) *Memory {
	return &Memory{
		workDir:  path.Clean("/" + workDir),
		failures: xsync.NewMap[string, error](),
		calls:    xsync.NewCounter(),
	}
}

// WorkDir returns the working directory
func (m *Memory) WorkDir() string { return m.workDir }

// Fail makes resolving of name fail with err. A nil err removes failure
func (m *Memory) Fail(name string, err error) {
	if err == nil {
		m.failures.Delete(m.canonical(name))
		return
	}
	m.failures.Store(m.canonical(name), err)
}

// Calls returns the amount of Resolve calls made
func (m *Memory) Calls() int64 { return m.calls.Value() }

func (m *Memory) canonical(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(m.workDir, name)
}

// Resolve makes Memory to implement Resolver
func (m *Memory) Resolve(_ context.Context, name string) (res Resolution, err error) {
	m.calls.Inc()
	if len(name) == 0 {
		return res, newPathError(ErrInvalidArgument, name, nil)
	}
	if strings.ContainsRune(name, 0) {
		return res, newPathError(ErrMalformedPath, name, nil)
	}

	res.FullName = m.canonical(name)
	if ferr, ok := m.failures.Load(res.FullName); ok {
		return Resolution{}, ferr
	}
	if res.FullName != "/" {
		res.Parent, res.HasParent = path.Dir(res.FullName), true
	}
	return res, nil
}
