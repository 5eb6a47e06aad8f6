package outbound

// RandSource isolates the randomness used by reply seasoning so tests can
// force both probability boundaries deterministically.
type RandSource interface {
	// Float64 returns a draw in [0, 1).
	Float64() float64
	// IntN returns a uniform draw in [0, n). n must be positive.
	IntN(n int) int
}
