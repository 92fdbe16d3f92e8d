package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/sim"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/engine/cache"
	"go.trai.ch/peek/internal/engine/oracle"
	"go.trai.ch/peek/internal/engine/probe"
	"go.trai.ch/peek/internal/engine/recovery"
)

func newMachine(t *testing.T, mutate func(*domain.SimulationProfile)) *sim.Machine {
	t.Helper()
	profile := domain.DefaultSimulationProfile()
	if mutate != nil {
		mutate(&profile)
	}
	m, err := sim.New(profile)
	require.NoError(t, err)
	return m
}

func recoverSecret(t *testing.T, m *sim.Machine, cfg domain.AttackConfig) domain.Recovery {
	t.Helper()

	target, err := domain.NewTarget([]byte("Hello World"), []byte("OK"))
	require.NoError(t, err)

	loop, err := recovery.New(m, target, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, loop.Close()) })

	var out domain.Recovery
	for _, offset := range target.SecretOffsets() {
		res, err := loop.RecoverByte(offset)
		require.NoError(t, err)
		out = append(out, res)
	}
	return out
}

func TestNew_InvalidProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.SimulationProfile)
	}{
		{name: "no sets", mutate: func(p *domain.SimulationProfile) { p.Sets = 0 }},
		{name: "no ways", mutate: func(p *domain.SimulationProfile) { p.Ways = -1 }},
		{name: "hit not faster than miss", mutate: func(p *domain.SimulationProfile) { p.HitLatency = 300 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profile := domain.DefaultSimulationProfile()
			tt.mutate(&profile)
			_, err := sim.New(profile)
			require.ErrorContains(t, err, domain.ErrInvalidSimulation.Error())
		})
	}
}

func TestMachine_HitAndMiss(t *testing.T) {
	t.Parallel()

	m := newMachine(t, func(p *domain.SimulationProfile) { p.Jitter = 0 })
	o := oracle.New(m)
	line := make([]byte, domain.CacheLineSize)

	m.Flush(&line[0])
	assert.Equal(t, domain.Cycles(220), o.MeasureAccess(&line[0]))
	assert.Equal(t, domain.Cycles(40), o.MeasureAccess(&line[0]))
	assert.Equal(t, sim.Name, m.Name())
}

func TestMachine_RecoversSecret(t *testing.T) {
	t.Parallel()

	got := recoverSecret(t, newMachine(t, nil), domain.DefaultAttackConfig())

	require.Len(t, got, 2)
	assert.Equal(t, "OK", string(got.Bytes()))
	assert.Equal(t, 2, got.ConfidentCount())
	for _, res := range got {
		assert.Equal(t, 401, res.Rounds)
	}
}

func TestMachine_Deterministic(t *testing.T) {
	t.Parallel()

	a := recoverSecret(t, newMachine(t, nil), domain.DefaultAttackConfig())
	b := recoverSecret(t, newMachine(t, nil), domain.DefaultAttackConfig())
	assert.Equal(t, a, b)
}

func TestMachine_MitigatedNeverConfident(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAttackConfig()
	cfg.MaxRounds = 100

	got := recoverSecret(t, newMachine(t, func(p *domain.SimulationProfile) { p.Mitigated = true }), cfg)

	for _, res := range got {
		assert.False(t, res.Confident)
		assert.Equal(t, cfg.MaxRounds, res.Rounds)
		assert.Zero(t, res.BestScore)
	}
}

func TestMachine_PrefetcherPollutesLinearScan(t *testing.T) {
	t.Parallel()

	m := newMachine(t, nil)
	arr, err := probe.New(cache.NewController(m), 512)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, arr.Close()) })

	o := oracle.New(m)
	missFloor := domain.DefaultSimulationProfile().MissLatency

	arr.FlushAll()
	linearHits := 0
	for class := range domain.ProbeClasses {
		if o.MeasureAccess(arr.Addr(byte(class))) < missFloor {
			linearHits++
		}
	}
	assert.Positive(t, linearHits, "sequential stride should trigger the prefetcher")

	arr.FlushAll()
	var v domain.LatencyVector
	arr.Scan(o, &v)
	for class, latency := range v {
		assert.GreaterOrEqual(t, latency, missFloor, "class %d measured as a hit", class)
	}
}

func TestMachine_CalibrationSeparates(t *testing.T) {
	t.Parallel()

	target, err := domain.NewTarget([]byte("Hello World"), []byte("OK"))
	require.NoError(t, err)

	loop, err := recovery.New(newMachine(t, nil), target, domain.DefaultAttackConfig())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, loop.Close()) })

	assert.True(t, loop.Profile(256).Separated())

	res, err := loop.ReloadByte(0)
	require.NoError(t, err)
	assert.Equal(t, byte('H'), res.Byte)
	assert.True(t, res.Confident)
}
