// Package geom maps a displacement value to plate-boundary geometry.
//
// [Map] is a pure function: given a displacement and a [Variant] it returns a
// [Frame] holding everything a renderer needs for one tick.
//
//   - Fault types ([StrikeSlip], [Normal], [Reverse]) produce two plate
//     outlines with curved fault surfaces, one fault trace and a pair of
//     stress arrows. Each plate carries an SVG-style [Transform2D].
//   - Scenario types ([TwoPlate], [ThreePlate], [FourPlate]) produce one
//     cuboid [Block] per [PlateDescriptor], projected under a fixed isometric
//     view, with per-face shading.
//
// Displacement is normalized to d in [0,1] before any formula is applied, so
// d = 0 always yields the at-rest geometry and d = 1 the full offsets.
package geom
