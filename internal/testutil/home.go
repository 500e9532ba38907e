// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"mesonwire/pkg/platform"
)

// SetHomeDir points the platform's home variable at dir, so code resolving
// the user config directory lands in a test-controlled location. Windows
// reads USERPROFILE; everything else reads HOME. The returned function
// restores the previous value:
//
//	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	key := "HOME"
	if runtime.GOOS == platform.Windows {
		key = "USERPROFILE"
	}
	return MustSetenv(t, key, dir)
}
