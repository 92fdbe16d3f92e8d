package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/linear"
	"go.trai.ch/peek/internal/core/domain"
)

func TestRenderer_Lifecycle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)
	require.NoError(t, r.Start(t.Context()))

	now := time.Now()
	r.OnPlanEmit([]int{11, 12, 13})

	r.OnByteStart("a", 11, now)
	r.OnByteRecovered("a", domain.RecoveryResult{
		Offset: 11, Byte: 'O', RunnerUp: 'H', BestScore: 421, RunnerUpScore: 10, Rounds: 421, Confident: true,
	}, now, nil)

	r.OnByteStart("b", 12, now)
	r.OnByteRecovered("b", domain.RecoveryResult{
		Offset: 12, Byte: 0x01, BestScore: 7, Rounds: 1000,
	}, now, nil)

	r.OnByteStart("c", 13, now)
	r.OnByteRecovered("c", domain.RecoveryResult{Offset: 13}, now, errors.New("offset outside victim buffer"))

	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())

	g := goldie.New(t)
	g.Assert(t, "lifecycle_stdout", stdout.Bytes())
	g.Assert(t, "lifecycle_stderr", stderr.Bytes())
}

func TestRenderer_UnknownSpanIgnored(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnByteRecovered("missing", domain.RecoveryResult{Offset: 1}, time.Now(), nil)
	assert.Empty(t, stdout.String())
}

func TestRenderer_StopReportsInterrupted(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnPlanEmit(nil)
	r.OnByteStart("a", 5, time.Now())
	require.NoError(t, r.Stop())

	assert.Equal(t, "Nothing to read\nReading at offset 5... interrupted\n", stderr.String())
}
