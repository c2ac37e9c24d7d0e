package backend

// Result carries either a backend value or the fallback that replaced it.
// When Fallback is true, Err holds the cause and Value the fixed default.
type Result[T any] struct {
	Value    T
	Fallback bool
	Err      error
}

func ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func fallback[T any](value T, err error) Result[T] {
	return Result[T]{Value: value, Fallback: true, Err: err}
}
