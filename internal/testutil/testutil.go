// SPDX-License-Identifier: EPL-2.0

package testutil

import (
	"os"
	"testing"
)

// MustSetenv sets key to value and returns a function restoring the previous
// state, whether that was a different value or no value at all.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()

	prev, existed := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s: %v", key, err)
	}
	return func() {
		var err error
		if existed {
			err = os.Setenv(key, prev)
		} else {
			err = os.Unsetenv(key)
		}
		if err != nil {
			t.Errorf("restoring env %s: %v", key, err)
		}
	}
}

// MustUnsetenv removes key from the environment and returns a function that
// puts the previous value back, if there was one.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()

	prev, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
	return func() {
		if !existed {
			return
		}
		if err := os.Setenv(key, prev); err != nil {
			t.Errorf("restoring env %s: %v", key, err)
		}
	}
}

// MustChdir switches the working directory to dir and returns a function
// restoring the directory the test started in.
func MustChdir(t testing.TB, dir string) func() {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	return func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory %s: %v", prev, err)
		}
	}
}
