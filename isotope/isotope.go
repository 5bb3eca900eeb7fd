// Package isotope builds the user-facing reaction/cross-section view of a
// parsed ACE file from the blocks the resolver decoded.
package isotope

import (
	"fmt"
	"strings"

	wordwrap "github.com/mitchellh/go-wordwrap"

	"github.com/latticeforge/pace/blocks"
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/interp"
)

// Reaction is one MT-keyed cross section, with an optional Q-value.
type Reaction struct {
	MT            int
	Q             *float64
	CrossSection  interp.Table
}

// Synthesized MT codes for the three reactions built directly off ESZ
// rather than from a SIG sub-record (spec.md §4.5).
const (
	MTTotal      = 1
	MTElastic    = 2
	MTAbsorption = 101
)

// Isotope is the fully-resolved, immutable view of one ACE-file nuclide.
type Isotope struct {
	Zaid               string
	Szaid              string
	AtomicMassFraction float64
	KT                 float64
	Temperature        float64

	Za uint64
	Z  uint64
	A  uint64

	Reactions map[int]Reaction
}

// Build assembles an Isotope from the header and the resolved blocks.
func Build(h *header.Header, nxs *header.NXS, b *blocks.Blocks) (*Isotope, error) {
	iso := &Isotope{
		Zaid:               h.Zaid,
		Szaid:              h.Szaid,
		AtomicMassFraction: h.AtomicMassFraction,
		KT:                 h.KT,
		Temperature:        h.Temperature,
		Za:                 nxs.Za,
		Z:                  nxs.Z,
		A:                  nxs.A,
		Reactions:          make(map[int]Reaction),
	}

	if b.ESZ != nil {
		addSynthesized := func(mt int, xs []float64) {
			if len(xs) == 0 {
				return
			}
			iso.Reactions[mt] = Reaction{
				MT:           mt,
				CrossSection: interp.FromXY(b.ESZ.Energy, xs, interp.LinLin),
			}
		}
		addSynthesized(MTTotal, b.ESZ.Total)
		addSynthesized(MTElastic, b.ESZ.Elastic)
		addSynthesized(MTAbsorption, b.ESZ.Absorption)
	}

	if b.SIG != nil {
		for mt, entry := range b.SIG.ByMT {
			reaction := Reaction{
				MT:           mt,
				CrossSection: interp.FromXY(entry.Energy, entry.XS, interp.LinLin),
			}
			if b.LQR != nil {
				if q, ok := qForMT(b.MTR, b.LQR, mt); ok {
					reaction.Q = &q
				}
			}
			iso.Reactions[mt] = reaction
		}
	}

	return iso, nil
}

func qForMT(mtr *blocks.MTR, lqr *blocks.LQR, mt int) (float64, bool) {
	if mtr == nil || lqr == nil {
		return 0, false
	}
	for i, candidate := range mtr.MT {
		if candidate == mt && i < len(lqr.Q) {
			return lqr.Q[i], true
		}
	}
	return 0, false
}

// String renders a short, wrapped summary of the isotope, in the style of
// a genbank-file metadata field.
func (iso *Isotope) String() string {
	id := iso.Zaid
	if iso.Szaid != "" {
		id = iso.Szaid
	}
	summary := fmt.Sprintf(
		"isotope %s: za=%d awr_fraction=%.6f kT=%g MeV T=%.3f K, %d reactions",
		id, iso.Za, iso.AtomicMassFraction, iso.KT, iso.Temperature, len(iso.Reactions),
	)
	wrapped := wordwrap.WrapString(summary, 68)
	return strings.TrimRight(wrapped, "\n")
}
