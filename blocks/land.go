package blocks

import (
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/paceerr"
)

// LANDEntry is one reaction's pointer into the AND block, or a sentinel:
// 0 means isotropic at every energy, -1 means no distribution is supplied.
type LANDEntry int

const (
	landIsotropic  LANDEntry = 0
	landNotSupplied LANDEntry = -1
)

// LAND is the ordered list of AND locators: index 0 is the elastic
// channel, and each remaining entry lines up positionally with
// releasingMTsOrdered (the MTR reactions TYR marks as neutron-releasing).
type LAND struct {
	Entries []LANDEntry
}

// processLAND decodes the LAND block: nr+1 signed integers.
func processLAND(a *Arrays) (*LAND, error) {
	start, ok := blockStart(a.JXS.Get(header.LAND))
	if !ok {
		return &LAND{}, nil
	}
	nr := int(a.NXS.Nr)
	data, err := sliceBlock(a.XXS, start, nr+1)
	if err != nil {
		return nil, err
	}
	entries := make([]LANDEntry, len(data))
	for i, w := range data {
		entries[i] = LANDEntry(int64(bits(w)))
		if entries[i] < landNotSupplied {
			return nil, paceerr.GrammarViolation("LAND", "negative locator other than -1")
		}
	}
	return &LAND{Entries: entries}, nil
}

// releasingMTsOrdered returns the MTR reactions TYR marks as releasing at
// least one neutron, in MTR order. LAND's entries after index 0 line up
// positionally with this list.
func releasingMTsOrdered(mtr *MTR, tyr *TYR) []int {
	var out []int
	for i, mt := range mtr.MT {
		if i < len(tyr.Entries) && tyr.Entries[i].Multiplicity != MultiplicityAbsorption {
			out = append(out, mt)
		}
	}
	return out
}
