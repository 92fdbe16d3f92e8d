//go:build !amd64

package hw_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/hw"
	"go.trai.ch/peek/internal/core/domain"
)

func TestNew_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := hw.New(100)
	require.ErrorContains(t, err, domain.ErrPlatformUnsupported.Error())
	require.False(t, hw.Supported)
}
