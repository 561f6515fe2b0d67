// Palette prints the 256-color terminal palette, for picking the
// style bytes used in render graphs.
package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

func main() {
	out := termenv.NewOutput(os.Stdout)
	for i := 0; i < 256; i++ {
		cell := out.String(fmt.Sprintf("   %3v   ", i)).
			Background(termenv.ANSI256Color(i))
		fmt.Print(cell)
		if i%6 == 3 {
			fmt.Println()
		}
	}
	fmt.Println()
}
