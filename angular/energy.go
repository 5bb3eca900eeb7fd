package angular

import "github.com/latticeforge/pace/paceerr"

// EnergyDependent composes a sequence of angular distributions indexed by
// an ascending neutron-energy grid. len(Energy) == len(Distributions) >= 2.
type EnergyDependent struct {
	Energy        []float64
	Distributions []Distribution
}

// NewEnergyDependent validates the invariant before construction.
func NewEnergyDependent(energy []float64, distributions []Distribution) (EnergyDependent, error) {
	if len(energy) != len(distributions) || len(energy) < 2 {
		return EnergyDependent{}, paceerr.GrammarViolation("energy_dependent_angular_distribution", "energy and distributions must be equally long and at least 2")
	}
	return EnergyDependent{Energy: energy, Distributions: distributions}, nil
}

// SampleAt brackets E between two grid energies E0 <= E <= E1, samples cos
// theta from each bracketing distribution with the same u, then linearly
// blends by (E-E0)/(E1-E0). Exact on-grid energies sample directly with no
// blend.
func (d EnergyDependent) SampleAt(energy, u float64) (float64, error) {
	n := len(d.Energy)
	if energy < d.Energy[0] || energy > d.Energy[n-1] {
		return 0, paceerr.OutOfRange("angular_distribution_energy", energy)
	}

	idx := 0
	for idx < n && d.Energy[idx] < energy {
		idx++
	}
	if d.Energy[idx] == energy {
		return d.Distributions[idx].Sample(u)
	}

	lo, hi := idx-1, idx
	lowSample, err := d.Distributions[lo].Sample(u)
	if err != nil {
		return 0, err
	}
	highSample, err := d.Distributions[hi].Sample(u)
	if err != nil {
		return 0, err
	}
	factor := (energy - d.Energy[lo]) / (d.Energy[hi] - d.Energy[lo])
	return lowSample + (highSample-lowSample)*factor, nil
}
