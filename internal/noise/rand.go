package noise

// LCG is a deliberately small linear-congruential generator. It trades
// statistical quality for speed and exact reproducibility across builds;
// the seeded table shuffle and the mesh glitch stream both depend on its
// sequence being stable.
type LCG struct {
	state int64
}

// NewLCG seeds the generator. Any int64 is accepted; the state is folded
// into the generator's modulus.
func NewLCG(seed int64) *LCG {
	s := seed % 233280
	if s < 0 {
		s += 233280
	}
	return &LCG{state: s}
}

// Float64 advances the generator and returns a value in [0, 1).
func (l *LCG) Float64() float64 {
	l.state = (l.state*9301 + 49297) % 233280
	return float64(l.state) / 233280
}
