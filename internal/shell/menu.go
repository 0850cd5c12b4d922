package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/trainroute/internal/config"
)

// ChooseMap prints a numbered menu of maps and reads a choice from in,
// re-prompting on anything that is not a listed number. ok is false when
// the user picks 0 or input ends.
func ChooseMap(in *bufio.Scanner, out io.Writer, maps []config.MapEntry) (entry config.MapEntry, ok bool) {
	fmt.Fprintln(out, "Select a map:")
	for i, m := range maps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, m.Name)
	}
	fmt.Fprintln(out, "  0. Exit")

	for {
		fmt.Fprint(out, "Choice: ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return config.MapEntry{}, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		switch {
		case err != nil || n < 0 || n > len(maps):
			fmt.Fprintf(out, "Please enter a number from 0 to %d.\n", len(maps))
		case n == 0:
			return config.MapEntry{}, false
		default:
			return maps[n-1], true
		}
	}
}
