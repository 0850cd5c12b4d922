package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/trainroute/apsp"
	"github.com/katalvlaran/trainroute/routegraph"
)

// dump writes both index tables followed by the distance and next-hop
// matrices. Unreachable distances print as "-".
func dump(w io.Writer, g *routegraph.Graph) {
	fmt.Fprintln(w, "Index -> city:")
	for i, name := range g.CityNames() {
		fmt.Fprintf(w, "%4d  %s\n", i, name)
	}
	fmt.Fprintln(w, "City -> index:")
	for _, name := range g.SortedCityNames() {
		idx, _ := g.NameToIndex(name)
		fmt.Fprintf(w, "  %-20s %d\n", name, idx)
	}

	paths := g.ShortestPaths()
	fmt.Fprintln(w, "Distances:")
	writeMatrix(w, paths.Distances(), func(v int) string {
		if v >= apsp.Infinity {
			return "-"
		}
		return strconv.Itoa(v)
	})
	fmt.Fprintln(w, "Next hops:")
	writeMatrix(w, paths.NextHops(), strconv.Itoa)
}

func writeMatrix(w io.Writer, m [][]int, cell func(int) string) {
	width := len(strconv.Itoa(len(m)))
	cells := make([][]string, len(m))
	for i, row := range m {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = cell(v)
			if n := len(cells[i][j]); n > width {
				width = n
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width+1))
	for j := range m {
		fmt.Fprintf(&b, " %*d", width, j)
	}
	b.WriteByte('\n')
	for i, row := range cells {
		fmt.Fprintf(&b, "%*d:", width, i)
		for _, c := range row {
			fmt.Fprintf(&b, " %*s", width, c)
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
