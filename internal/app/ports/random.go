package ports

// RandomSource yields uniform values in [0, 1). Implementations shared between
// concurrent ticks must be safe for concurrent use.
type RandomSource interface {
	Float64() float64
}
