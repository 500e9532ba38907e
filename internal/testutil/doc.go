// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test fixtures for process-global state. Each helper
// applies one change (an environment variable, the working directory, the
// home directory) and returns the function that undoes it, shaped for
// t.Cleanup. Tests using these helpers must not run in parallel.
package testutil
