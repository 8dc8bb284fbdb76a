// LingoTeach - language-teaching voice skill backend
// License: MIT

package pipeline

import "fmt"

// TranslationError reports a fault in the translate step.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string { return fmt.Sprintf("translate: %v", e.Err) }
func (e *TranslationError) Unwrap() error { return e.Err }

// SynthesisError reports a fault in the synthesize step.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string { return fmt.Sprintf("synthesize: %v", e.Err) }
func (e *SynthesisError) Unwrap() error { return e.Err }

// StorageError reports a fault in the store step.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("store: %v", e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }
