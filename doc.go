/*
Package pace parses ACE-format continuous-energy neutron cross-section
libraries.

ACE files are the text interchange format used by Monte Carlo particle
transport codes (MCNP, Serpent, OpenMC) to distribute evaluated nuclear
data: energy grids, reaction cross sections, fission neutron yields,
delayed-neutron precursor data, and angular scattering distributions for
a single nuclide at a single temperature.

Parsing that text on every run is slow, so this package converts it once
into PACE, a fixed-layout binary cache that can be opened with a memory
map and read with zero further copying. Load handles both forms
transparently: point it at an ACE file and it converts (caching the
result next to the source, fingerprinted so an unchanged file is never
reconverted) and returns the resolved Isotope; point it at an existing
PACE file and it maps straight in.

	iso, err := pace.Load("H1.710nc", nil)
	if err != nil {
		log.Fatal(err)
	}
	xs, err := iso.Reactions[18].CrossSection.Interpolate(2.0) // MeV
*/
package pace
