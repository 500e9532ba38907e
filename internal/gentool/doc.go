// SPDX-License-Identifier: MPL-2.0

// Package gentool drives the external code-generation tool directly for a
// single interface key. The generated build trees call back into these same
// modes, so the tool contract lives in exactly one place.
//
// The tool contract: every call is `<tool> <kind> <artifact> <dotted-key>`
// run with the definitions root as working directory, the artifact arriving
// on stdout. A non-zero exit aborts the whole mode with the tool's own exit
// code and stderr passed through verbatim; there are no retries.
//
// Execution goes through the Runner interface so tests can script the tool
// without spawning processes.
package gentool
