package recovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/peek/internal/core/ports/mocks"
	"go.trai.ch/peek/internal/engine/recovery"
	"go.uber.org/mock/gomock"
)

const (
	hitCycles  = 10
	missCycles = 200
)

// fakeMachine caches every line it touches and nothing else.
type fakeMachine struct {
	clock     domain.Cycles
	cached    map[*byte]bool
	speculate bool
	victim    ports.Victim
	// extra is called with the round number before each training pass.
	extra func(round int, channel ports.Channel)
}

func newFakeMachine(speculate bool) *fakeMachine {
	return &fakeMachine{cached: map[*byte]bool{}, speculate: speculate}
}

func (m *fakeMachine) Name() string { return "fake" }

func (m *fakeMachine) Now() domain.Cycles { return m.clock }

func (m *fakeMachine) Flush(addr *byte) { delete(m.cached, addr) }

func (m *fakeMachine) ForcedTouch(addr *byte) {
	if m.cached[addr] {
		m.clock += hitCycles
	} else {
		m.clock += missCycles
	}
	m.cached[addr] = true
}

func (m *fakeMachine) NewVictim(target domain.Target, channel ports.Channel) ports.Victim {
	if m.victim != nil {
		return m.victim
	}
	return &fakeVictim{machine: m, target: target, channel: channel}
}

type fakeVictim struct {
	machine *fakeMachine
	target  domain.Target
	channel ports.Channel
	calls   int
}

func (v *fakeVictim) Access(index int) {
	if v.calls%domain.DefaultAttackConfig().TrialsPerRound == 0 && v.machine.extra != nil {
		v.machine.extra(v.calls/domain.DefaultAttackConfig().TrialsPerRound+1, v.channel)
	}
	v.calls++

	if index < v.target.KnownSize || v.machine.speculate {
		v.machine.cached[v.channel.Addr(v.target.Data[index])] = true
	}
}

func newTarget(t *testing.T) domain.Target {
	t.Helper()
	target, err := domain.NewTarget([]byte("Hello World"), []byte("OK"))
	require.NoError(t, err)
	return target
}

func newLoop(t *testing.T, m ports.Machine, cfg domain.AttackConfig) *recovery.Loop {
	t.Helper()
	loop, err := recovery.New(m, newTarget(t), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, loop.Close()) })
	return loop
}

func TestLoop_RecoverByte(t *testing.T) {
	t.Parallel()

	loop := newLoop(t, newFakeMachine(true), domain.DefaultAttackConfig())

	res, err := loop.RecoverByte(11)
	require.NoError(t, err)

	assert.Equal(t, byte('O'), res.Byte)
	assert.True(t, res.Confident)
	assert.Equal(t, 401, res.Rounds)
	assert.Equal(t, 401, res.BestScore)
	assert.Zero(t, res.RunnerUpScore)
	assert.Equal(t, 11, res.Offset)
	assert.Equal(t, "fake", loop.Machine())
}

func TestLoop_RecoverByte_MarginTracksRunnerUp(t *testing.T) {
	t.Parallel()

	m := newFakeMachine(true)
	m.extra = func(round int, channel ports.Channel) {
		if round <= 10 {
			m.cached[channel.Addr('B')] = true
		}
	}
	loop := newLoop(t, m, domain.DefaultAttackConfig())

	res, err := loop.RecoverByte(12)
	require.NoError(t, err)

	assert.Equal(t, byte('K'), res.Byte)
	assert.Equal(t, byte('B'), res.RunnerUp)
	assert.True(t, res.Confident)
	assert.Equal(t, 10, res.RunnerUpScore)
	assert.Equal(t, 421, res.BestScore)
	assert.Equal(t, 421, res.Rounds)
}

func TestLoop_RecoverByte_NoSpeculation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	victim := mocks.NewMockVictim(ctrl)

	cfg := domain.DefaultAttackConfig()
	cfg.MaxRounds = 50
	victim.EXPECT().Access(gomock.Any()).Times(cfg.MaxRounds * cfg.TrialsPerRound)

	m := newFakeMachine(false)
	m.victim = victim
	loop := newLoop(t, m, cfg)

	res, err := loop.RecoverByte(11)
	require.NoError(t, err)

	assert.False(t, res.Confident)
	assert.Equal(t, cfg.MaxRounds, res.Rounds)
	assert.Zero(t, res.BestScore)
}

func TestLoop_RecoverByte_SafeClassExcluded(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAttackConfig()
	cfg.MaxRounds = 20
	loop := newLoop(t, newFakeMachine(false), cfg)

	res, err := loop.RecoverByte(11)
	require.NoError(t, err)

	// 'H' is touched in bounds every round but never votes.
	assert.False(t, res.Confident)
	assert.Zero(t, res.BestScore)
	assert.Equal(t, 20, res.Rounds)
}

// A byte equal to the training byte shares its excluded class, so even a
// perfect channel leaves it unclear.
func TestLoop_RecoverByte_TrainingByteNeverConfident(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		offset int
	}{
		{name: "secret equals training byte", secret: "H", offset: 11},
		{name: "in-bounds offset", secret: "OK", offset: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target, err := domain.NewTarget([]byte("Hello World"), []byte(tt.secret))
			require.NoError(t, err)
			require.Equal(t, target.Data[target.SafeIndex(tt.offset)], target.Data[tt.offset])

			cfg := domain.DefaultAttackConfig()
			cfg.MaxRounds = 30
			loop, err := recovery.New(newFakeMachine(true), target, cfg)
			require.NoError(t, err)
			t.Cleanup(func() { require.NoError(t, loop.Close()) })

			res, err := loop.RecoverByte(tt.offset)
			require.NoError(t, err)

			assert.False(t, res.Confident)
			assert.Zero(t, res.BestScore)
			assert.Equal(t, cfg.MaxRounds, res.Rounds)
		})
	}
}

func TestLoop_ReloadByte(t *testing.T) {
	t.Parallel()

	loop := newLoop(t, newFakeMachine(false), domain.DefaultAttackConfig())

	res, err := loop.ReloadByte(4)
	require.NoError(t, err)

	assert.Equal(t, byte('o'), res.Byte)
	assert.True(t, res.Confident)
	assert.Equal(t, 401, res.Rounds)
}

func TestLoop_OffsetOutOfRange(t *testing.T) {
	t.Parallel()

	loop := newLoop(t, newFakeMachine(true), domain.DefaultAttackConfig())

	for _, offset := range []int{-1, 13, 100} {
		_, err := loop.RecoverByte(offset)
		require.ErrorContains(t, err, domain.ErrOffsetOutOfRange.Error())

		_, err = loop.ReloadByte(offset)
		require.ErrorContains(t, err, domain.ErrOffsetOutOfRange.Error())
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAttackConfig()
	cfg.TrialsPerRound = 0
	_, err := recovery.New(newFakeMachine(true), newTarget(t), cfg)
	require.ErrorContains(t, err, domain.ErrInvalidAttackConfig.Error())

	_, err = recovery.New(newFakeMachine(true), domain.Target{Data: []byte("x")}, domain.DefaultAttackConfig())
	require.ErrorContains(t, err, domain.ErrInvalidTarget.Error())
}

func TestLoop_Profile(t *testing.T) {
	t.Parallel()

	loop := newLoop(t, newFakeMachine(false), domain.DefaultAttackConfig())

	p := loop.Profile(512)
	assert.Equal(t, 512, p.Samples)
	assert.Equal(t, domain.Cycles(hitCycles), p.HitMedian)
	assert.Equal(t, domain.Cycles(missCycles), p.MissMedian)
	assert.True(t, p.Separated())
}
