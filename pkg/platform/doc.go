// SPDX-License-Identifier: MPL-2.0

// Package platform names the operating systems mesonwire treats
// differently, so that runtime.GOOS comparisons share one set of
// string constants instead of repeating literals at every call site.
// The configuration directory lookup and the test fixtures for the
// home directory are the current consumers.
package platform
