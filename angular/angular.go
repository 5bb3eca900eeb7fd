// Package angular implements the three ACE angular-distribution variants
// and the energy-dependent sampler that blends between them.
package angular

import (
	"sort"

	"github.com/latticeforge/pace/interp"
	"github.com/latticeforge/pace/paceerr"
)

// equiprobableBinCount is the number of cos-theta boundaries the ACE spec
// requires for the EquiprobableBins variant: 32 equal-probability bins need
// 33 boundary points.
const equiprobableBinCount = 33

// Distribution samples a scattering cosine from a caller-supplied u in
// [0, 1]. The caller owns the random number generator; Sample performs no
// bounds validation on u in the release build path this module targets
// (spec.md §4.2, §9 — debug-only validation is a caller concern).
type Distribution interface {
	Sample(u float64) (float64, error)
}

// Isotropic scatters uniformly in cos theta.
type Isotropic struct{}

func (Isotropic) Sample(u float64) (float64, error) {
	return 2*u - 1, nil
}

// Tabulated maps CDF in [0, 1] to cos theta via an interpolation table
// restricted to Histogram or LinLin (spec.md §4.2).
type Tabulated struct {
	table interp.Table
}

// NewTabulated validates the scheme and equal-length x/y arrays, then
// builds a CDF-indexed table (x = CDF, y = cos theta).
func NewTabulated(scheme interp.Scheme, cosTheta, cdf []float64) (Tabulated, error) {
	if scheme != interp.Histogram && scheme != interp.LinLin {
		return Tabulated{}, paceerr.OutOfRange("angular_distribution_construction", float64(scheme))
	}
	if len(cosTheta) != len(cdf) || len(cosTheta) == 0 {
		return Tabulated{}, paceerr.GrammarViolation("tabulated_angular_distribution", "cos_theta and cdf arrays must be equal, non-zero length")
	}
	return Tabulated{table: interp.FromXY(cdf, cosTheta, scheme)}, nil
}

func (t Tabulated) Sample(u float64) (float64, error) {
	return t.table.Interpolate(u)
}

// EquiprobableBins interprets 33 cos-theta boundaries as defining 32
// equal-probability bins, indexed as a LinLin table over CDF {0, 1/32, ...,
// 1}.
type EquiprobableBins struct {
	table interp.Table
}

// NewEquiprobableBins validates exactly 33 values in [-1, 1], sorts them
// ascending, then builds the CDF table.
func NewEquiprobableBins(cosTheta []float64) (EquiprobableBins, error) {
	if len(cosTheta) != equiprobableBinCount {
		return EquiprobableBins{}, paceerr.GrammarViolation("equiprobable_bins_angular_distribution", "expected exactly 33 cos-theta boundaries")
	}
	sorted := make([]float64, len(cosTheta))
	copy(sorted, cosTheta)
	for _, c := range sorted {
		if c < -1 || c > 1 {
			return EquiprobableBins{}, paceerr.OutOfRange("angular_distribution_construction", c)
		}
	}
	sort.Float64s(sorted)

	cdf := make([]float64, equiprobableBinCount)
	for i := range cdf {
		cdf[i] = float64(i) / float64(equiprobableBinCount-1)
	}
	return EquiprobableBins{table: interp.FromXY(cdf, sorted, interp.LinLin)}, nil
}

func (e EquiprobableBins) Sample(u float64) (float64, error) {
	return e.table.Interpolate(u)
}
