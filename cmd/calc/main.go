// Command calc is an arithmetic calculator with plugins and file-backed
// history.
package main

import "github.com/mesh-intelligence/plugcalc/internal/cli"

func main() {
	cli.Execute()
}
