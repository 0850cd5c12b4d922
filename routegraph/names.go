package routegraph

import (
	"fmt"
	"sort"
	"strings"
)

// ResolveCityToken maps a user token to a canonical city name.
//
// The token is lowercased. An exact name wins; otherwise the smallest name
// ≥ token is taken if it starts with token. Anything else is ErrUnknownCity.
func (g *Graph) ResolveCityToken(token string) (string, error) {
	name, _, err := g.ResolveCityTokenMatch(token)

	return name, err
}

// ResolveCityTokenMatch is ResolveCityToken that also reports whether the
// name was completed from a prefix rather than matched exactly.
func (g *Graph) ResolveCityTokenMatch(token string) (name string, completed bool, err error) {
	t := canonical(token)
	if t == "" {
		return "", false, fmt.Errorf("empty token: %w", ErrUnknownCity)
	}
	if _, ok := g.index[t]; ok {
		return t, false, nil
	}

	i := sort.SearchStrings(g.sorted, t)
	if i < len(g.sorted) && strings.HasPrefix(g.sorted[i], t) {
		return g.sorted[i], true, nil
	}

	return "", false, fmt.Errorf("%q is neither a city nor a city prefix: %w", t, ErrUnknownCity)
}
