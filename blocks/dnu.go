package blocks

import (
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/interp"
	"github.com/latticeforge/pace/paceerr"
)

// DNU is the delayed-neutron fraction as a function of incident energy.
type DNU struct {
	Table interp.Table
}

// processDNU decodes the DNU block: a leading format marker (always 1,
// discarded) followed by an interpolation table.
func processDNU(a *Arrays) (*DNU, error) {
	start, ok := blockStart(a.JXS.Get(header.DNU))
	if !ok {
		return nil, nil
	}
	if start-1 >= len(a.XXS) {
		return nil, paceerr.GrammarViolation("DNU", "block start beyond XXS")
	}
	marker := int(bits(a.XXS[start-1]))
	if marker != 1 {
		return nil, paceerr.GrammarViolation("DNU", "unexpected leading format marker")
	}
	table, err := interp.Process(a.XXS[start:])
	if err != nil {
		return nil, err
	}
	return &DNU{Table: table}, nil
}
