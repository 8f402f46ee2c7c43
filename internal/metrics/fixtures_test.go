package metrics

import (
	"os"
	"path/filepath"
	"testing"

	exectest "github.com/rileyhilliard/yoinky/internal/exec/testing"
	"github.com/rileyhilliard/yoinky/internal/logger"
	"github.com/stretchr/testify/require"
)

const cpuinfoFixture = `processor	: 0
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz

processor	: 1
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz

processor	: 2
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz

processor	: 3
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz
`

// hostFixture is a fake /proc and /sys pair in a temp dir.
type hostFixture struct {
	t      *testing.T
	proc   string
	sys    string
	runner *exectest.FakeRunner
	log    *logger.BufferLogger
}

func newHostFixture(t *testing.T) *hostFixture {
	t.Helper()
	root := t.TempDir()
	f := &hostFixture{
		t:      t,
		proc:   filepath.Join(root, "proc"),
		sys:    filepath.Join(root, "sys"),
		runner: exectest.NewFakeRunner(),
		log:    logger.NewBufferLogger(),
	}
	require.NoError(t, os.MkdirAll(f.proc, 0755))
	require.NoError(t, os.MkdirAll(f.sys, 0755))
	return f
}

func (f *hostFixture) writeProc(rel, content string) {
	f.t.Helper()
	writeFixture(f.t, filepath.Join(f.proc, rel), content)
}

func (f *hostFixture) writeSys(rel, content string) {
	f.t.Helper()
	writeFixture(f.t, filepath.Join(f.sys, rel), content)
}

func (f *hostFixture) source(opts ...Option) *Source {
	base := []Option{
		WithProcRoot(f.proc),
		WithSysRoot(f.sys),
		WithRunner(f.runner),
		WithLogger(f.log),
	}
	return NewSource(append(base, opts...)...)
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
