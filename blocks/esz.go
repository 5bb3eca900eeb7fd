package blocks

import (
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/paceerr"
)

// ESZ holds the energy grid and the four cross-section arrays that index
// against it directly, position for position.
type ESZ struct {
	Energy     []float64
	Total      []float64
	Absorption []float64
	Elastic    []float64
	Heating    []float64
}

// processESZ decodes the ESZ block. Every ACE file carries an energy grid;
// its absence is a grammar violation rather than an optional block.
func processESZ(a *Arrays) (*ESZ, error) {
	start, ok := blockStart(a.JXS.Get(header.ESZ))
	if !ok {
		return nil, paceerr.GrammarViolation("ESZ", "energy grid block is required but absent")
	}
	nes := int(a.NXS.Nes)
	data, err := sliceBlock(a.XXS, start, 5*nes)
	if err != nil {
		return nil, err
	}
	return &ESZ{
		Energy:     append([]float64(nil), data[0*nes:1*nes]...),
		Total:      append([]float64(nil), data[1*nes:2*nes]...),
		Absorption: append([]float64(nil), data[2*nes:3*nes]...),
		Elastic:    append([]float64(nil), data[3*nes:4*nes]...),
		Heating:    append([]float64(nil), data[4*nes:5*nes]...),
	}, nil
}
