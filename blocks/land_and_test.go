package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/pace/header"
)

func TestReleasingMTsOrdered(t *testing.T) {
	mtr := &MTR{MT: []int{16, 18, 102}}
	tyr := &TYR{Entries: []TYREntry{
		{Multiplicity: MultiplicityDiscrete},
		{Multiplicity: MultiplicityEnergyDependent},
		{Multiplicity: MultiplicityAbsorption},
	}}
	got := releasingMTsOrdered(mtr, tyr)
	assert.Equal(t, []int{16, 18}, got)
}

func TestProcessANDTabulatedAndEquiprobable(t *testing.T) {
	data := make([]float64, 13+33)
	data[0] = bitsWord(2)     // nE
	data[1] = 1               // E1
	data[2] = 2               // E2
	data[3] = bitsWord(-6)    // loc1: tabulated at offset 6
	data[4] = bitsWord(14)    // loc2: equiprobable at offset 14
	data[5] = bitsWord(2)     // scheme: LinLin
	data[6] = bitsWord(2)     // nPts
	data[7] = -0.5            // cos1
	data[8] = 0.5             // cos2
	data[9] = 0.5             // pdf1
	data[10] = 0.5            // pdf2
	data[11] = 0.0            // cdf1
	data[12] = 1.0            // cdf2
	for i := 0; i < 33; i++ {
		data[13+i] = -1.0 + float64(i)*(2.0/32.0)
	}

	j := jxsWithSlot(t, 8 /* AND */, 1)
	a := &Arrays{NXS: &header.NXS{Nr: 1}, JXS: j, XXS: data}

	mtr := &MTR{MT: []int{18}}
	tyr := &TYR{Entries: []TYREntry{{Multiplicity: MultiplicityDiscrete}}}
	land := &LAND{Entries: []LANDEntry{landNotSupplied, 1}}

	and, err := processAND(a, mtr, tyr, land)
	require.NoError(t, err)

	_, hasElastic := and.ByMT[elasticMT]
	assert.False(t, hasElastic, "elastic LAND entry was -1, no distribution expected")

	entry, ok := and.ByMT[18]
	require.True(t, ok)
	require.NotNil(t, entry.Distribution)
	assert.False(t, entry.Isotropic)

	cos, err := entry.Distribution.SampleAt(1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cos, 1e-9) // tabulated LinLin midpoint of [-0.5, 0.5]

	cos, err = entry.Distribution.SampleAt(2, 0.0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, cos, 1e-9) // equiprobable: u=0 -> lowest boundary
}

func TestProcessANDIsotropicLocator(t *testing.T) {
	j := jxsWithSlot(t, 8 /* AND */, 1)
	a := &Arrays{NXS: &header.NXS{Nr: 0}, JXS: j, XXS: []float64{0}}

	mtr := &MTR{MT: nil}
	tyr := &TYR{Entries: nil}
	land := &LAND{Entries: []LANDEntry{landIsotropic}}

	and, err := processAND(a, mtr, tyr, land)
	require.NoError(t, err)
	entry, ok := and.ByMT[elasticMT]
	require.True(t, ok)
	assert.True(t, entry.Isotropic)
	assert.Nil(t, entry.Distribution)
}

func TestProcessLANDFixture(t *testing.T) {
	xxs := []float64{bitsWord(-1), bitsWord(1)}
	j := jxsWithSlot(t, 7 /* LAND */, 1)
	a := &Arrays{NXS: &header.NXS{Nr: 1}, JXS: j, XXS: xxs}

	land, err := processLAND(a)
	require.NoError(t, err)
	require.Len(t, land.Entries, 2)
	assert.Equal(t, landNotSupplied, land.Entries[0])
	assert.Equal(t, LANDEntry(1), land.Entries[1])
}
