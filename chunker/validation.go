package chunker

import "fmt"

func validateChunkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidParameter, size)
	}
	return nil
}

// validateWindow checks the constraints shared by the windowed
// strategies: a positive window and an overlap strictly smaller than
// it, so every step advances by at least one rune.
func validateWindow(size, overlap int) error {
	if err := validateChunkSize(size); err != nil {
		return err
	}
	if overlap < 0 {
		return fmt.Errorf("%w: overlap cannot be negative, got %d", ErrInvalidParameter, overlap)
	}
	if overlap >= size {
		return fmt.Errorf("%w: overlap (%d) must be less than chunk size (%d)", ErrInvalidParameter, overlap, size)
	}
	return nil
}
