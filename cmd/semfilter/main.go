// Command semfilter filters lines of text by a typed boolean expression.
package main

import "github.com/qpanda/semfilter/cmd/semfilter/cmd"

func main() {
	cmd.Execute()
}
