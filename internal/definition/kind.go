// SPDX-License-Identifier: MPL-2.0

package definition

import (
	"errors"
	"fmt"
)

// ErrInvalidExtension is the sentinel error wrapped by InvalidExtensionError.
var ErrInvalidExtension = errors.New("invalid definition extension")

type (
	// Kind classifies a definition file by its recognized suffix.
	Kind int

	// InvalidExtensionError is returned when a file name carries none of the
	// three recognized definition suffixes. It wraps ErrInvalidExtension for
	// errors.Is() compatibility.
	InvalidExtensionError struct {
		Path string
	}
)

const (
	// KindInterface is a base-interface definition (*.interface.yaml).
	KindInterface Kind = iota
	// KindErrors is an error-set definition (*.errors.yaml).
	KindErrors
	// KindEvents is an event-set definition (*.events.yaml).
	KindEvents
)

// kindSuffixes maps each kind to its file suffix. All three share the .yaml
// extension; the double-barreled suffix is the discriminator.
var kindSuffixes = map[Kind]string{
	KindInterface: ".interface.yaml",
	KindErrors:    ".errors.yaml",
	KindEvents:    ".events.yaml",
}

// matchOrder lists the kinds longest-suffix-first so that suffix matching
// never settles on a shorter overlap.
var matchOrder = []Kind{KindInterface, KindErrors, KindEvents}

// Kinds returns the three kinds in canonical emission order: interface,
// errors, events. Target outputs, input lists, and concatenated markdown all
// follow this order regardless of discovery order.
func Kinds() []Kind {
	return []Kind{KindInterface, KindErrors, KindEvents}
}

// String returns the short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindErrors:
		return "errors"
	case KindEvents:
		return "events"
	default:
		return "unknown"
	}
}

// Suffix returns the file suffix that marks a definition file of this kind.
func (k Kind) Suffix() string {
	return kindSuffixes[k]
}

// IsValid reports whether the Kind is one of the three recognized kinds.
func (k Kind) IsValid() bool {
	_, ok := kindSuffixes[k]
	return ok
}

// Error implements the error interface.
func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("%s: no recognized definition suffix (want %s, %s, or %s)",
		e.Path, KindInterface.Suffix(), KindErrors.Suffix(), KindEvents.Suffix())
}

// Unwrap returns ErrInvalidExtension so callers can use errors.Is.
func (e *InvalidExtensionError) Unwrap() error { return ErrInvalidExtension }

// KindOf reports the kind encoded in a file name, matching the recognized
// suffixes longest-first. The second return is false when no suffix matches.
func KindOf(name string) (Kind, bool) {
	for _, k := range matchOrder {
		suffix := kindSuffixes[k]
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return k, true
		}
	}
	return 0, false
}
