package routegraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseMap tokenizes a map file:
//
//	N
//	cityA cityB weight
//	...
//
// Blank lines are skipped. The header must be an integer and every other
// line must have exactly three whitespace-separated fields. Weights are left
// unparsed; Load validates them.
func ParseMap(r io.Reader) (MapData, error) {
	var (
		data    MapData
		sc      = bufio.NewScanner(r)
		lineNo  int
		haveHdr bool
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !haveHdr {
			if len(fields) != 1 {
				return MapData{}, fmt.Errorf("line %d: header must be the city count: %w", lineNo, ErrMalformedInput)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return MapData{}, fmt.Errorf("line %d: city count %q: %w", lineNo, fields[0], ErrMalformedInput)
			}
			data.DeclaredCount = n
			haveHdr = true
			continue
		}
		if len(fields) != 3 {
			return MapData{}, fmt.Errorf("line %d: want \"cityA cityB weight\", got %d fields: %w", lineNo, len(fields), ErrMalformedInput)
		}
		data.Edges = append(data.Edges, EdgeSpec{CityA: fields[0], CityB: fields[1], Weight: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return MapData{}, fmt.Errorf("read map: %w", err)
	}
	if !haveHdr {
		return MapData{}, fmt.Errorf("missing city count header: %w", ErrMalformedInput)
	}

	return data, nil
}

// LoadMap parses r and loads the resulting board.
func LoadMap(r io.Reader) (*Graph, error) {
	data, err := ParseMap(r)
	if err != nil {
		return nil, err
	}

	return Load(data.Edges, data.DeclaredCount)
}

// LoadMapFile opens path and loads the board it describes.
func LoadMapFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	g, err := LoadMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
