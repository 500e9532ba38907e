// SPDX-License-Identifier: MPL-2.0

package main

import cmd "mesonwire/cmd/mesonwire"

func main() {
	cmd.Execute()
}
