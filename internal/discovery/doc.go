// SPDX-License-Identifier: MPL-2.0

// Package discovery scans a definitions tree for interface definition files
// and folds them into an ordered index.
//
// A scan classifies every file by its definition suffix (see the definition
// package), derives the interface key from the file's location, and groups
// files that share a key into a single Record. Files whose names match no
// definition suffix are ignored. The resulting Index iterates keys in
// byte-wise lexicographic order regardless of filesystem enumeration order,
// so downstream consumers observe the same sequence on every run.
package discovery
