// Package zplane provides a morphing Z-plane resonant filter.
//
// The filter is generative: instead of storing coefficient tables it keeps
// two compact shapes of six pole pairs each (defined at a 48 kHz reference
// rate) and derives a 12th-order cascade from them on demand. Once per
// processing block the morph and intensity controls are turned into
// coefficients by geodesic pole interpolation, bilinear sample-rate
// remapping and pole-to-biquad conversion; the per-sample path then runs
// both channels through saturating biquad cascades with pre-drive and
// equal-power dry/wet mixing.
//
// Components:
//   - [PolePair], [Shape]: compact polar pole storage and the preset
//     library (vowel, bell, low, sub pairs) with GetPair lookup.
//   - WrapAngle, InterpolatePole, RemapPole, PoleToBiquad: the stateless
//     math layer.
//   - [Filter]: the orchestrator owning the per-channel cascades.
//   - [Engine]: a block driver that modulates the morph control with an
//     envelope follower, mirroring how the filter is used in practice.
//
// UpdateCoeffs and ProcessStereo are allocation-free and panic-free; they
// are meant for a single real-time audio goroutine, with UpdateCoeffs
// called at most once per block before processing that block.
package zplane
