package normalization

import "fmt"

// EnumNormalizer wraps a Normalizer with the enum's display name for error messages.
type EnumNormalizer[T comparable] struct {
	normalizer *Normalizer[T]
	enumName   string
}

// NewEnumNormalizer creates an enum normalizer with descriptive error messages.
func NewEnumNormalizer[T comparable](enumName string, values map[string]T, defaultValue T) *EnumNormalizer[T] {
	return &EnumNormalizer[T]{
		normalizer: NewNormalizer(values, defaultValue),
		enumName:   enumName,
	}
}

// Normalize converts raw to an enum value, returning the default on invalid input.
func (e *EnumNormalizer[T]) Normalize(raw string) T {
	return e.normalizer.Normalize(raw)
}

// Parse converts raw to an enum value or reports which values are allowed.
func (e *EnumNormalizer[T]) Parse(raw string) (T, error) {
	v, err := e.normalizer.NormalizeWithError(raw)
	if err != nil {
		return v, fmt.Errorf("invalid %s: %w", e.enumName, err)
	}
	return v, nil
}

// IsValid reports whether raw names a known value.
func (e *EnumNormalizer[T]) IsValid(raw string) bool {
	_, ok := e.normalizer.Lookup(raw)
	return ok
}

// ValidValues returns all accepted spellings for help text.
func (e *EnumNormalizer[T]) ValidValues() []string {
	return e.normalizer.ValidKeys()
}
