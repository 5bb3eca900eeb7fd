package interp

import (
	"math"
	"sort"

	"github.com/latticeforge/pace/paceerr"
)

// Point is one (x, y) node of an interpolation region.
type Point struct {
	X, Y float64
}

// Region is a contiguous run of nodes sharing one interpolation scheme.
type Region struct {
	Points []Point
	Scheme Scheme
}

// Table is an ordered sequence of regions forming a single piecewise
// interpolation function, as decoded from an ACE `[nr, boundaries,
// schemes, np, x's, y's]` record.
type Table struct {
	Regions []Region
}

// bits reinterprets an XXS word as the unsigned integer its bit pattern
// encodes. XXS counts and locators are never stored as rounded floats.
func bits(word float64) uint64 {
	return math.Float64bits(word)
}

// Process decodes the on-disk table grammar described in spec.md §4.1:
// `[nr, boundary1..boundary_nr, scheme1..scheme_nr, np, x1..xnp, y1..ynp]`,
// with the special case that nr == 0 means a single LinLin region spanning
// all np points and the layout omits the boundary/scheme arrays.
func Process(raw []float64) (Table, error) {
	if len(raw) < 2 {
		return Table{}, paceerr.GrammarViolation("interpolation_table", "record shorter than the minimum header")
	}
	nr := int(bits(raw[0]))

	if nr == 0 {
		np := int(bits(raw[1]))
		xStart := 2
		yStart := xStart + np
		if yStart+np > len(raw) {
			return Table{}, paceerr.GrammarViolation("interpolation_table", "nr==0 record truncated")
		}
		points := make([]Point, np)
		for i := 0; i < np; i++ {
			points[i] = Point{X: raw[xStart+i], Y: raw[yStart+i]}
		}
		return Table{Regions: []Region{{Points: points, Scheme: LinLin}}}, nil
	}

	boundsStart := 1
	schemesStart := boundsStart + nr
	schemesEnd := schemesStart + nr
	if schemesEnd >= len(raw) {
		return Table{}, paceerr.GrammarViolation("interpolation_table", "region header truncated")
	}
	np := int(bits(raw[schemesEnd]))
	xStart := schemesEnd + 1
	yStart := xStart + np
	if yStart+np > len(raw) {
		return Table{}, paceerr.GrammarViolation("interpolation_table", "region data truncated")
	}

	bounds := make([]int, nr+1)
	for i := 0; i < nr; i++ {
		bounds[i+1] = int(bits(raw[boundsStart+i])) - 1
	}

	schemes := make([]Scheme, nr)
	for i := 0; i < nr; i++ {
		scheme, ok := schemeFromWord(bits(raw[schemesStart+i]))
		if !ok {
			return Table{}, paceerr.GrammarViolation("interpolation_table", "unknown interpolation scheme word")
		}
		schemes[i] = scheme
	}

	allPoints := make([]Point, np)
	for i := 0; i < np; i++ {
		allPoints[i] = Point{X: raw[xStart+i], Y: raw[yStart+i]}
	}

	regions := make([]Region, nr)
	for k := 0; k < nr; k++ {
		start, end := bounds[k], bounds[k+1]
		if start < 0 || end >= np || end < start {
			return Table{}, paceerr.GrammarViolation("interpolation_table", "region boundary out of range")
		}
		points := make([]Point, end-start+1)
		copy(points, allPoints[start:end+1])
		regions[k] = Region{Points: points, Scheme: schemes[k]}
	}

	return Table{Regions: regions}, nil
}

// TableLength computes a table's word length without materializing it, so
// callers that only need to find the next sub-record don't have to decode
// intervening tables fully.
func TableLength(offset int, whole []float64) (int, error) {
	if offset >= len(whole) {
		return 0, paceerr.GrammarViolation("interpolation_table", "length probe beyond array end")
	}
	length := 0
	nr := int(bits(whole[offset]))
	if nr == 0 {
		if offset+1 >= len(whole) {
			return 0, paceerr.GrammarViolation("interpolation_table", "nr==0 length probe truncated")
		}
		np := int(bits(whole[offset+1]))
		length += 2 + 2*np
		return length, nil
	}
	length += 1 + 2*nr
	npIdx := offset + length
	if npIdx >= len(whole) {
		return 0, paceerr.GrammarViolation("interpolation_table", "region length probe truncated")
	}
	np := int(bits(whole[npIdx]))
	length += 1 + 2*np
	return length, nil
}

// Interpolate locates the region whose x-domain contains x, then the bin
// within that region, and applies the region's scheme. Returns the exact
// node value with no arithmetic when x equals a node.
func (t Table) Interpolate(x float64) (float64, error) {
	if len(t.Regions) == 0 {
		return 0, paceerr.GrammarViolation("interpolation_table", "empty table")
	}

	var region *Region
	for i := range t.Regions {
		r := &t.Regions[i]
		if len(r.Points) == 0 {
			continue
		}
		if r.Points[0].X <= x && x <= r.Points[len(r.Points)-1].X {
			region = r
			break
		}
	}
	if region == nil {
		return 0, paceerr.OutOfRange("interpolation", x)
	}

	pts := region.Points
	idx := sort.Search(len(pts), func(i int) bool { return pts[i].X >= x })
	if idx < len(pts) && pts[idx].X == x {
		return pts[idx].Y, nil
	}
	if idx == 0 {
		return 0, paceerr.OutOfRange("interpolation", x)
	}
	start := pts[idx-1]
	end := pts[idx]

	x0, x1 := start.X, end.X
	y0, y1 := start.Y, end.Y

	switch region.Scheme {
	case Histogram:
		return y0, nil
	case LinLin:
		return y0 + (y1-y0)*(x-x0)/(x1-x0), nil
	case LinLog:
		return y0 + (y1-y0)*(math.Log10(x)-math.Log10(x0))/(math.Log10(x1)-math.Log10(x0)), nil
	case LogLin:
		return y0 * math.Exp((x-x0)*math.Log(y1/y0)/(x1-x0)), nil
	case LogLog:
		return y0 * math.Exp(math.Log(x/x0)*math.Log(y1/y0)/math.Log(x1/x0)), nil
	case Gamow:
		return 0, paceerr.Unsupported("gamow interpolation")
	default:
		return 0, paceerr.GrammarViolation("interpolation_table", "unknown scheme at evaluation")
	}
}

// FromXY builds a single-region table directly from parallel x/y slices,
// bypassing the on-disk grammar. Used to construct angular-distribution
// CDF tables, whose x/y arrays originate from distinct XXS sub-records
// rather than a single packed table record.
func FromXY(x, y []float64, scheme Scheme) Table {
	points := make([]Point, len(x))
	for i := range x {
		points[i] = Point{X: x[i], Y: y[i]}
	}
	return Table{Regions: []Region{{Points: points, Scheme: scheme}}}
}
