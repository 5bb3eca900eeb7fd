package blocks

import (
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/paceerr"
)

// Frame is the reference frame a reaction's secondary-neutron data is
// tabulated in.
type Frame int

const (
	// FrameNone applies to reactions that release no secondary neutrons.
	FrameNone Frame = iota
	FrameLab
	FrameCM
)

// Multiplicity classifies a reaction's neutron-release count.
type Multiplicity int

const (
	MultiplicityAbsorption     Multiplicity = iota // |y| == 0
	MultiplicityDiscrete                           // |y| in 1..4
	MultiplicityEnergyDependent                     // |y| == 19 or |y| > 100
)

// TYREntry is one reaction's decoded neutron-release descriptor.
type TYREntry struct {
	Raw          int
	Multiplicity Multiplicity
	Count        int // valid only when Multiplicity == MultiplicityDiscrete
	Frame        Frame
}

// TYR lists the neutron-release descriptor for each reaction in MTR,
// position for position.
type TYR struct {
	Entries []TYREntry
}

// processTYR decodes the TYR block: ntr signed integers, each a
// (neutron_release, frame) pair per spec.md §4.3.
func processTYR(a *Arrays) (*TYR, error) {
	start, ok := blockStart(a.JXS.Get(header.TYR))
	if !ok {
		return &TYR{}, nil
	}
	ntr := int(a.NXS.Ntr)
	data, err := sliceBlock(a.XXS, start, ntr)
	if err != nil {
		return nil, err
	}
	entries := make([]TYREntry, ntr)
	for i, w := range data {
		raw := int(int64(bits(w)))
		entry := TYREntry{Raw: raw}
		switch {
		case raw > 0:
			entry.Frame = FrameLab
		case raw < 0:
			entry.Frame = FrameCM
		default:
			entry.Frame = FrameNone
		}
		abs := raw
		if abs < 0 {
			abs = -abs
		}
		switch {
		case abs == 0:
			entry.Multiplicity = MultiplicityAbsorption
		case abs >= 1 && abs <= 4:
			entry.Multiplicity = MultiplicityDiscrete
			entry.Count = abs
		case abs == 19 || abs > 100:
			entry.Multiplicity = MultiplicityEnergyDependent
		default:
			return nil, paceerr.GrammarViolation("TYR", "neutron release value out of the known range")
		}
		entries[i] = entry
	}
	return &TYR{Entries: entries}, nil
}
