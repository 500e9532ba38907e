// SPDX-License-Identifier: MPL-2.0

package platform

// runtime.GOOS values for the platforms mesonwire special-cases. Linux
// and the BSDs take the default branch wherever these are compared, so
// they need no constant of their own.
const (
	Windows = "windows"
	Darwin  = "darwin"
)
