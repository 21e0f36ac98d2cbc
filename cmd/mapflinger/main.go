// Command mapflinger projects geographic data onto pixel viewports, lists
// SVG icon sheets and runs a terminal map viewer.
package main

import "mapflinger/internal/cli"

func main() {
	cli.Execute()
}
