// SPDX-License-Identifier: MIT

package problems

// Materials lists the blend components in column order of the composition table.
var Materials = [...]string{"sand", "fine gravel", "coarse gravel"}

// MiningRequirements returns the required volume (m³) of each material.
func MiningRequirements() []float64 {
	return []float64{4800, 5800, 5700}
}

// MiningComposition returns, per mine, the percentage of each material.
func MiningComposition() [][]float64 {
	return [][]float64{
		{55, 30, 15},
		{25, 45, 30},
		{25, 20, 55},
	}
}

// CircuitExtended returns the extended matrix (R | V) of the five mesh equations
//
//	11.5·i1 − 2.5·i2         − 4·i4          =  12
//	−2.5·i1 +   7·i2                − 3·i5   = −16
//	                   8·i3                  =  14
//	  −4·i1                  + 9·i4 − 3·i5   = −12
//	         −  3·i2         − 3·i4 + 6·i5   =  30
func CircuitExtended() [][]float64 {
	return [][]float64{
		{11.5, -2.5, 0, -4, 0, 12},
		{-2.5, 7, 0, 0, -3, -16},
		{0, 0, 8, 0, 0, 14},
		{-4, 0, 0, 9, -3, -12},
		{0, -3, 0, -3, 6, 30},
	}
}

// Default interpolation query.
const (
	InterpolationTarget = 1.1
	InterpolationDegree = 4
)

// CurrentSamples returns the measured current (x) / voltage (y) pairs.
func CurrentSamples() (x, y []float64) {
	return []float64{0.25, 0.75, 1.25, 1.5, 2.0},
		[]float64{-0.45, -0.60, 0.70, 1.88, 6.0}
}

// RiverSpacing is the distance in metres between depth soundings.
const RiverSpacing = 2.0

// RiverDepths returns the depth soundings (m) across the river.
func RiverDepths() []float64 {
	return []float64{0, 1.8, 2.0, 4.0, 4.0, 6.0, 4.0, 3.6, 3.4, 2.8, 0}
}
