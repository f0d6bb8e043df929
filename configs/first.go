package configs

import "errors"

// First returns the zero value when path is absent and panics on other errors.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.Decode(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
