package gadget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/peek/internal/engine/gadget"
)

type recordingVictim struct {
	indices []int
}

func (v *recordingVictim) Access(index int) { v.indices = append(v.indices, index) }

func TestSelectIndex(t *testing.T) {
	t.Parallel()

	for trial := range 100 {
		got := gadget.SelectIndex(trial, 10, 3, 40)
		if (trial+1)%10 == 0 {
			assert.Equal(t, 40, got, "trial %d", trial)
		} else {
			assert.Equal(t, 3, got, "trial %d", trial)
		}
	}
}

func TestGadget_Train(t *testing.T) {
	t.Parallel()

	victim := &recordingVictim{}
	g := gadget.New(victim, 100, 10)

	g.Train(5, 17)

	assert.Len(t, victim.indices, 100)

	var safe, unsafe int
	for trial, index := range victim.indices {
		switch index {
		case 5:
			safe++
		case 17:
			unsafe++
			assert.Equal(t, 9, trial%10, "unsafe index on trial %d", trial)
		default:
			t.Fatalf("unexpected index %d", index)
		}
	}
	assert.Equal(t, 90, safe)
	assert.Equal(t, 10, unsafe)
}
