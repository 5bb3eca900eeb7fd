package blocks

import (
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/interp"
	"github.com/latticeforge/pace/paceerr"
)

// NUFormulation is one decoded neutrons-per-fission representation: either
// a polynomial in incident energy or a tabulated function of it.
type NUFormulation struct {
	Polynomial []float64 // coefficients c0..c_{nc-1}; nil when Table is set
	Table      *interp.Table
}

// Evaluate returns nu(e), evaluating the polynomial or the table as
// appropriate.
func (f *NUFormulation) Evaluate(e float64) (float64, error) {
	if f.Table != nil {
		return f.Table.Interpolate(e)
	}
	sum := 0.0
	power := 1.0
	for _, c := range f.Polynomial {
		sum += c * power
		power *= e
	}
	return sum, nil
}

// NU carries the prompt and/or total neutrons-per-fission formulations.
// When the block stores a single formulation exactly one of Prompt/Total is
// non-nil: Prompt when DNU is present, Total when it is absent (the single
// formulation is ambiguous between the two without consulting JXS[DNU]);
// both are set when the block stores both.
type NU struct {
	Prompt *NUFormulation
	Total  *NUFormulation
}

func parseNUFormulation(data []float64) (*NUFormulation, int, error) {
	if len(data) < 1 {
		return nil, 0, paceerr.GrammarViolation("NU", "formulation record is empty")
	}
	tag := int(bits(data[0]))
	switch tag {
	case 1:
		if len(data) < 2 {
			return nil, 0, paceerr.GrammarViolation("NU", "polynomial formulation truncated")
		}
		nc := int(bits(data[1]))
		if 2+nc > len(data) {
			return nil, 0, paceerr.GrammarViolation("NU", "polynomial coefficients truncated")
		}
		coeffs := append([]float64(nil), data[2:2+nc]...)
		return &NUFormulation{Polynomial: coeffs}, 2 + nc, nil
	case 2:
		table, err := interp.Process(data[1:])
		if err != nil {
			return nil, 0, err
		}
		length, err := interp.TableLength(0, data[1:])
		if err != nil {
			return nil, 0, err
		}
		return &NUFormulation{Table: &table}, 1 + length, nil
	default:
		return nil, 0, paceerr.GrammarViolation("NU", "unknown formulation tag")
	}
}

// processNU decodes the NU block when fissile (JXS[NU] != 0).
func processNU(a *Arrays, dnuPresent bool) (*NU, error) {
	start, ok := blockStart(a.JXS.Get(header.NU))
	if !ok {
		return nil, nil
	}
	if start-1 >= len(a.XXS) {
		return nil, paceerr.GrammarViolation("NU", "block start beyond XXS")
	}
	k := int(int64(bits(a.XXS[start-1])))
	absK := k
	if absK < 0 {
		absK = -absK
	}

	firstEnd := start + absK // 1-based exclusive end of first formulation's words
	if k > 0 {
		// A positive k only flags a single formulation; its extent comes
		// from the formulation's own grammar, not from k.
		firstEnd = len(a.XXS)
	}
	if firstEnd > len(a.XXS) {
		return nil, paceerr.GrammarViolation("NU", "first formulation runs past XXS")
	}
	first, _, err := parseNUFormulation(a.XXS[start:firstEnd])
	if err != nil {
		return nil, err
	}

	if k < 0 {
		second, _, err := parseNUFormulation(a.XXS[firstEnd:])
		if err != nil {
			return nil, err
		}
		return &NU{Prompt: first, Total: second}, nil
	}

	if dnuPresent {
		return &NU{Prompt: first}, nil
	}
	return &NU{Total: first}, nil
}
