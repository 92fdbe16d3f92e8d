package hw_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/affinity"
	"go.trai.ch/peek/internal/adapters/hw"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/engine/recovery"
)

func TestMachine_Primitives(t *testing.T) {
	t.Parallel()

	m, err := hw.New(0)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformHardware, m.Name())

	line := make([]byte, domain.CacheLineSize)
	start := m.Now()
	m.Flush(&line[0])
	m.ForcedTouch(&line[0])
	assert.GreaterOrEqual(t, m.Now(), start)
}

// TestMachine_RecoversSecret runs the real attack. Its outcome depends on the
// CPU, its microcode and the kernel's mitigations, so it only runs when asked
// for and is allowed a few attempts.
func TestMachine_RecoversSecret(t *testing.T) {
	if os.Getenv("PEEK_HARDWARE_TESTS") != "1" {
		t.Skip("set PEEK_HARDWARE_TESTS=1 to run hardware tests")
	}

	release, err := affinity.Pin(0)
	require.NoError(t, err)
	defer release()

	target, err := domain.NewTarget([]byte("Hello World"), []byte("OK"))
	require.NoError(t, err)

	cfg := domain.DefaultAttackConfig()
	m, err := hw.New(cfg.SyntheticLatency)
	require.NoError(t, err)

	const attempts = 5
	for attempt := range attempts {
		loop, err := recovery.New(m, target, cfg)
		require.NoError(t, err)

		got := make([]byte, 0, 2)
		for _, offset := range target.SecretOffsets() {
			res, err := loop.RecoverByte(offset)
			require.NoError(t, err)
			got = append(got, res.Byte)
		}
		require.NoError(t, loop.Close())

		if string(got) == "OK" {
			return
		}
		t.Logf("attempt %d on %s recovered %q", attempt+1, runtime.GOARCH, got)
	}
	t.Fatalf("secret not recovered in %d attempts", attempts)
}
