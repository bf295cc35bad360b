package internal

func ToPointer[T any](v T) *T {
	return &v
}

// ToPointerOrNil Pointer to v, nil if v is the zero value
func ToPointerOrNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
