package blocks

import (
	"bufio"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/pace/header"
)

// 0-based JXS slot positions, mirroring header.slotFor's private mapping.
const (
	slotNU  = 1
	slotDNU = 23
	slotBDD = 24
)

func jxsWithSlot(t *testing.T, slot0 int, value uint64) *header.JXS {
	t.Helper()
	words := make([]uint64, 32)
	words[slot0] = value
	var sb strings.Builder
	for i, w := range words {
		sb.WriteString(strconv.FormatUint(w, 10))
		if (i+1)%8 == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	jxs, err := header.ParseASCIIJXS(bufio.NewReader(strings.NewReader(sb.String())))
	require.NoError(t, err)
	return jxs
}

func nuFissileJXS(t *testing.T, start int) *header.JXS {
	return jxsWithSlot(t, slotNU, uint64(start))
}

func TestProcessNUPromptAndTotal(t *testing.T) {
	xxs := []float64{
		bitsWord(-5), // k: both prompt (len 5) and total follow
		bitsWord(1), bitsWord(3), 1.0, 1.1, 1.2, // prompt: polynomial nc=3
		bitsWord(2), bitsWord(0), bitsWord(3), 1e-11, 1, 10, 1, 2, 3, // total: tabulated nr==0
	}
	a := &Arrays{NXS: &header.NXS{}, JXS: nuFissileJXS(t, 1), XXS: xxs}

	nu, err := processNU(a, false)
	require.NoError(t, err)
	require.NotNil(t, nu.Prompt)
	require.NotNil(t, nu.Total)

	p1, err := nu.Prompt.Evaluate(1)
	require.NoError(t, err)
	assert.InDelta(t, 3.3, p1, 1e-9)
	p2, err := nu.Prompt.Evaluate(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.35, p2, 1e-9)
	p3, err := nu.Prompt.Evaluate(2)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, p3, 1e-9)

	tot, err := nu.Total.Evaluate(5.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, tot, 1e-9)
}

func TestProcessNUSingleFormulationGatedByDNU(t *testing.T) {
	xxs := []float64{
		bitsWord(5), // k > 0: a single formulation
		bitsWord(1), bitsWord(2), 4.0, 5.0,
	}
	a := &Arrays{NXS: &header.NXS{}, JXS: nuFissileJXS(t, 1), XXS: xxs}

	withDNU, err := processNU(a, true)
	require.NoError(t, err)
	assert.NotNil(t, withDNU.Prompt)
	assert.Nil(t, withDNU.Total)

	withoutDNU, err := processNU(a, false)
	require.NoError(t, err)
	assert.Nil(t, withoutDNU.Prompt)
	assert.NotNil(t, withoutDNU.Total)
}

func TestProcessNUAbsentWhenNotFissile(t *testing.T) {
	a := &Arrays{NXS: &header.NXS{}, JXS: &header.JXS{}, XXS: nil}
	nu, err := processNU(a, false)
	require.NoError(t, err)
	assert.Nil(t, nu)
}

func TestProcessDNU(t *testing.T) {
	xxs := []float64{
		bitsWord(1), // leading marker
		bitsWord(0), bitsWord(3), 1e-11, 10, 30, 1.0, 1.333333, 2.0,
	}
	j := jxsWithSlot(t, slotDNU, 1)
	a := &Arrays{NXS: &header.NXS{}, JXS: j, XXS: xxs}

	dnu, err := processDNU(a)
	require.NoError(t, err)
	require.NotNil(t, dnu)

	v, err := dnu.Table.Interpolate(1e-11)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-6)
	v, err = dnu.Table.Interpolate(10.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.333333, v, 1e-6)
	v, err = dnu.Table.Interpolate(30.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-6)

	_, err = dnu.Table.Interpolate(100.0)
	assert.Error(t, err)
}

func TestProcessBDD(t *testing.T) {
	constants := []float64{0.01, 0.03, 0.05, 0.09, 0.3, 0.5}
	var xxs []float64
	for _, c := range constants {
		xxs = append(xxs, c/1e8)
		xxs = append(xxs, bitsWord(0), bitsWord(1), 0, 1)
	}
	j := jxsWithSlot(t, slotBDD, 1)
	a := &Arrays{NXS: &header.NXS{Npcr: uint64(len(constants))}, JXS: j, XXS: xxs}

	bdd, err := processBDD(a)
	require.NoError(t, err)
	require.Len(t, bdd.Families, len(constants))
	for i, want := range constants {
		assert.InDelta(t, want, bdd.Families[i].DecayConstant, 1e-9)
	}
}
