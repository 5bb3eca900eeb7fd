// Package blocks resolves the physics data blocks packed into an ACE file's
// XXS array, using the locators recorded in JXS and the counts in NXS.
package blocks

import (
	"math"

	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/paceerr"
)

// Arrays bundles the three index structures and the flat XXS data they
// locate blocks within. Every concrete block decoder in this package takes
// an *Arrays and returns its own typed result.
type Arrays struct {
	NXS *header.NXS
	JXS *header.JXS
	XXS []float64
}

// blockStart converts a JXS locator word (1-based, 0 meaning absent) into a
// 1-based start index, reporting false when the block is not present.
func blockStart(locator uint64) (int, bool) {
	if locator == 0 {
		return 0, false
	}
	return int(locator), true
}

// sliceBlock extracts the length-word slice of xxs starting at the 1-based
// index start1. Some block-length formulas (SIG in particular) compute a
// length exactly one word too long when the block runs to the end of XXS;
// when the resulting exclusive end would land exactly one past len(xxs),
// it is truncated to the true end rather than treated as an error.
func sliceBlock(xxs []float64, start1, length int) ([]float64, error) {
	if start1 <= 0 {
		return nil, paceerr.GrammarViolation("block", "start index must be a positive 1-based locator")
	}
	if length < 0 {
		return nil, paceerr.GrammarViolation("block", "negative block length")
	}
	start0 := start1 - 1
	end1 := start1 + length - 1 // 1-based index of the last word, inclusive
	if end1 == len(xxs)+1 {
		length--
		end1--
	}
	end0 := start0 + length
	if start0 < 0 || end0 > len(xxs) {
		return nil, paceerr.OutOfRange("block end index", float64(end0))
	}
	return xxs[start0:end0], nil
}

// bits reinterprets an XXS word as an unsigned integer. ACE packs integer
// counts and locators into the same 8-byte float words as the data itself;
// truncating via a float-to-int cast would silently corrupt large values,
// so every integer field on XXS must be recovered bit for bit.
func bits(word float64) uint64 {
	return math.Float64bits(word)
}
