package utils

// Ptr returns a pointer to v. It exists because Go has no address-of syntax
// for literals, which provider request structs with optional fields need
// constantly.
func Ptr[T any](v T) *T {
	return &v
}
