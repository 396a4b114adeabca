// Command mysqlcomplete is a small CLI front-end for the completion engine:
// it reads a SQL buffer, a caret position and a metadata-cache fixture, and
// prints the ordered proposal list package completion would hand to an
// editor.
package main

import (
	"fmt"
	"os"

	"github.com/rebelice/mysqlcomplete/cmd/mysqlcomplete/command"
)

func main() {
	if err := command.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
