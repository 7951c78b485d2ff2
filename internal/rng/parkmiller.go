// Package rng provides the Park-Miller minimal standard generator used for
// reproducible preset randomization. It is not suitable for anything else.
package rng

const (
	modulus    = 2147483647 // 2^31 - 1
	multiplier = 16807
)

// ParkMiller is a Lehmer generator with multiplier 16807 modulo 2^31-1.
// The zero value is not usable; construct with New.
type ParkMiller struct {
	state int64
}

// New seeds a generator. Seeds are reduced modulo 2^31-1 and a
// non-positive result is shifted into range. Zero is a fixed point of the
// recurrence, so the one seed that would land on it (-2^31+2) starts at 1.
func New(seed int64) *ParkMiller {
	s := seed % modulus
	if s <= 0 {
		s += modulus - 1
	}
	if s == 0 {
		s = 1
	}
	return &ParkMiller{state: s}
}

// Next advances the generator and returns a value in [0, 1).
func (p *ParkMiller) Next() float64 {
	p.state = p.state * multiplier % modulus
	return float64(p.state-1) / (modulus - 1)
}

// Intn returns a value in [0, n) derived from Next. n must be positive.
func (p *ParkMiller) Intn(n int) int {
	i := int(p.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
