package zplane

import "strings"

// Shape presets extracted from the original hardware units. All angles
// are radians at the 48 kHz reference rate.

// VowelA is an open "ae" formant set with natural resonances near 300 Hz,
// 850 Hz and 2.3 kHz.
var VowelA = Shape{
	{R: 0.95, Theta: 0.01047197551529928},
	{R: 0.96, Theta: 0.01963495409118615},
	{R: 0.985, Theta: 0.03926990818237230},
	{R: 0.992, Theta: 0.11780972454711690},
	{R: 0.993, Theta: 0.32724923485310250},
	{R: 0.985, Theta: 0.45814892879434435},
}

// VowelB is a closed "oo" formant set, darker and rounder, chosen to
// morph smoothly against VowelA.
var VowelB = Shape{
	{R: 0.88, Theta: 0.00523598775764964},
	{R: 0.90, Theta: 0.01047197551529928},
	{R: 0.92, Theta: 0.02094395103059856},
	{R: 0.94, Theta: 0.04188790206119712},
	{R: 0.96, Theta: 0.08377580412239424},
	{R: 0.97, Theta: 0.16755160824478848},
}

// BellA is a bright metallic timbre with high-Q resonances between
// 500 Hz and 3 kHz.
var BellA = Shape{
	{R: 0.996, Theta: 0.14398966333536510},
	{R: 0.995, Theta: 0.18325957151773740},
	{R: 0.994, Theta: 0.28797932667073020},
	{R: 0.993, Theta: 0.39269908182372300},
	{R: 0.992, Theta: 0.54977871437816500},
	{R: 0.990, Theta: 0.78539816364744630},
}

// BellB clusters several close resonances for a metallic shimmer.
var BellB = Shape{
	{R: 0.994, Theta: 0.19634954085771740},
	{R: 0.993, Theta: 0.26179938779814450},
	{R: 0.992, Theta: 0.39269908182372300},
	{R: 0.991, Theta: 0.52359877584930150},
	{R: 0.990, Theta: 0.70685834741592550},
	{R: 0.988, Theta: 0.94247779605813900},
}

// LowA is a tight bass set with controlled sub-200 Hz emphasis.
var LowA = Shape{
	{R: 0.88, Theta: 0.00392699081823723},
	{R: 0.90, Theta: 0.00785398163647446},
	{R: 0.92, Theta: 0.01570796327294893},
	{R: 0.94, Theta: 0.03272492348531062},
	{R: 0.96, Theta: 0.06544984697062124},
	{R: 0.97, Theta: 0.13089969394124100},
}

// LowB widens the bass response for pads and 808-style material.
var LowB = Shape{
	{R: 0.92, Theta: 0.00654498469706212},
	{R: 0.94, Theta: 0.01308996939412425},
	{R: 0.96, Theta: 0.02617993878824850},
	{R: 0.97, Theta: 0.05235987755649700},
	{R: 0.98, Theta: 0.10471975511299400},
	{R: 0.985, Theta: 0.20943951022598800},
}

// SubA is a clean 20-80 Hz emphasis with minimal resonance.
var SubA = Shape{
	{R: 0.85, Theta: 0.00130899694},
	{R: 0.87, Theta: 0.00261799388},
	{R: 0.89, Theta: 0.00523598776},
	{R: 0.91, Theta: 0.01047197551},
	{R: 0.93, Theta: 0.02094395103},
	{R: 0.95, Theta: 0.04188790206},
}

// SubB boosts the sub harmonics while keeping the low end controlled.
var SubB = Shape{
	{R: 0.92, Theta: 0.00872664626},
	{R: 0.94, Theta: 0.01745329252},
	{R: 0.96, Theta: 0.03490658504},
	{R: 0.97, Theta: 0.06981317008},
	{R: 0.98, Theta: 0.10471975511},
	{R: 0.97, Theta: 0.13962634016},
}

// ShapePair names one morphable A/B preset pair.
type ShapePair struct {
	Name string
	A    Shape
	B    Shape
}

// shapePairs is the static name-to-pair table. Built once; never mutated.
var shapePairs = []ShapePair{
	{Name: "Vowel", A: VowelA, B: VowelB},
	{Name: "Bell", A: BellA, B: BellB},
	{Name: "Low", A: LowA, B: LowB},
	{Name: "Sub", A: SubA, B: SubB},
}

// ShapePairs returns the available preset pairs in declaration order.
func ShapePairs() []ShapePair {
	out := make([]ShapePair, len(shapePairs))
	copy(out, shapePairs)
	return out
}

// GetPair looks up a preset pair by name, case-insensitively. "subbass"
// aliases "sub". Unrecognized names fall back to the vowel pair rather
// than failing, so a stale preset name still yields a usable filter.
func GetPair(name string) (Shape, Shape) {
	switch strings.ToLower(name) {
	case "vowel":
		return VowelA, VowelB
	case "bell":
		return BellA, BellB
	case "low":
		return LowA, LowB
	case "sub", "subbass":
		return SubA, SubB
	default:
		return VowelA, VowelB
	}
}
