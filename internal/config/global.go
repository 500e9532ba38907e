// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests. os.UserHomeDir does not
// honor a changed HOME on every platform, so tests point at an explicit
// directory instead of playing games with the environment.
var configDirOverride string

// SetConfigDirOverride redirects the config directory lookup to dir until
// Reset is called.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears the config directory override.
func Reset() {
	configDirOverride = ""
}
