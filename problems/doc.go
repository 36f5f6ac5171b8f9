// Package problems wires the numeric packages to concrete reference problems:
//
//   - Mining blend: how many m³ to extract from each mine so that the blend
//     meets the sand / fine gravel / coarse gravel requirements (Gauss).
//   - Circuit: mesh currents of a five-loop resistive network from
//     Kirchhoff's voltage law (GaussSeidel over the extended matrix).
//
// The default datasets of both, and of the interpolation and cross-section
// problems, are exposed as functions returning fresh copies.
package problems
