//go:build linux

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_CPUCount(t *testing.T) {
	f := newHostFixture(t)
	f.writeProc("cpuinfo", cpuinfoFixture)

	n, err := f.source().CPUCount()
	require.NoError(t, err)
	assert.Equal(t, uint(4), n)
}

func TestSource_CPUCount_Missing(t *testing.T) {
	f := newHostFixture(t)

	_, err := f.source().CPUCount()
	assert.Error(t, err)
}
