// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into guidance the user can act on.
//
// Two layers cooperate. The catalog (Get, Values) holds one markdown card
// per known failure class, rendered for the terminal with glamour. On top of
// it, ActionableError carries structured failure context (operation,
// resource, suggestions, cause) through the error chain, so the CLI can
// print remediation steps right next to the message.
package issue
