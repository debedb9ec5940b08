package ptr

// Ptr returns a pointer to v. Handy for optional fields in filters and DTOs.
func Ptr[T any](v T) *T {
	return &v
}
