package sanitizer

// Number covers the numeric types the transforms below accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp bounds value to [min, max].
func Clamp[T Number](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMin bounds value from below.
func ClampMin[T Number](value, min T) T {
	if value < min {
		return min
	}
	return value
}

// ClampMax bounds value from above.
func ClampMax[T Number](value, max T) T {
	if value > max {
		return max
	}
	return value
}
