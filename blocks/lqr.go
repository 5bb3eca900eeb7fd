package blocks

import "github.com/latticeforge/pace/header"

// LQR lists the Q-value (MeV) of each reaction in MTR, position for
// position.
type LQR struct {
	Q []float64
}

// processLQR decodes the LQR block: ntr floating Q-values.
func processLQR(a *Arrays) (*LQR, error) {
	start, ok := blockStart(a.JXS.Get(header.LQR))
	if !ok {
		return &LQR{}, nil
	}
	ntr := int(a.NXS.Ntr)
	data, err := sliceBlock(a.XXS, start, ntr)
	if err != nil {
		return nil, err
	}
	return &LQR{Q: append([]float64(nil), data...)}, nil
}
