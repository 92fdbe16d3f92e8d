package affinity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/affinity"
	"go.trai.ch/peek/internal/core/domain"
)

func TestPin_LockOnly(t *testing.T) {
	release, err := affinity.Pin(domain.CPUUnpinned)
	require.NoError(t, err)
	require.NotNil(t, release)
	release()
}
