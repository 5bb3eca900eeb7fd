package blocks

import (
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/interp"
	"github.com/latticeforge/pace/paceerr"
)

// BDDFamily is one delayed-neutron precursor family: its decay constant
// (per second) and the fraction-of-delayed-neutrons table as a function of
// incident energy.
type BDDFamily struct {
	DecayConstant float64
	Table         interp.Table
}

// BDD lists one family per delayed-neutron precursor group (NXS.Npcr of
// them).
type BDD struct {
	Families []BDDFamily
}

// processBDD decodes the BDD block: npcr repetitions of
// [decay_constant, interpolation_table], the stored constant scaled by
// 1e8 on decode.
func processBDD(a *Arrays) (*BDD, error) {
	start, ok := blockStart(a.JXS.Get(header.BDD))
	if !ok {
		return nil, nil
	}
	npcr := int(a.NXS.Npcr)
	pos := start // 1-based cursor
	families := make([]BDDFamily, npcr)
	for i := 0; i < npcr; i++ {
		if pos-1 >= len(a.XXS) {
			return nil, paceerr.GrammarViolation("BDD", "precursor family runs past XXS")
		}
		decay := a.XXS[pos-1] * 1e8
		table, err := interp.Process(a.XXS[pos:])
		if err != nil {
			return nil, err
		}
		length, err := interp.TableLength(0, a.XXS[pos:])
		if err != nil {
			return nil, err
		}
		families[i] = BDDFamily{DecayConstant: decay, Table: table}
		pos += 1 + length
	}
	return &BDD{Families: families}, nil
}
