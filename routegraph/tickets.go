package routegraph

import (
	"fmt"
	"sort"
)

// AddTicket registers the ticket cityA–cityB and bumps both usage counts.
//
// Errors: ErrIdenticalCities, ErrUnknownCity, ErrDuplicateTicket.
// The shortest-path cache is untouched.
func (g *Graph) AddTicket(cityA, cityB string) error {
	if canonical(cityA) == canonical(cityB) {
		return fmt.Errorf("%q: %w", canonical(cityA), ErrIdenticalCities)
	}
	k, err := g.pairOf(cityA, cityB)
	if err != nil {
		return err
	}
	if _, ok := g.tickets[k]; ok {
		return fmt.Errorf("%s - %s: %w", g.names[k.a], g.names[k.b], ErrDuplicateTicket)
	}

	g.tickets[k] = struct{}{}
	g.usage[k.a]++
	g.usage[k.b]++

	return nil
}

// RemoveTicket drops the ticket cityA–cityB and decrements both usage counts,
// deleting counts that reach zero.
//
// Errors: ErrUnknownCity, ErrTicketNotFound.
func (g *Graph) RemoveTicket(cityA, cityB string) error {
	k, err := g.pairOf(cityA, cityB)
	if err != nil {
		return err
	}
	if _, ok := g.tickets[k]; !ok {
		return fmt.Errorf("%s - %s: %w", g.names[k.a], g.names[k.b], ErrTicketNotFound)
	}

	delete(g.tickets, k)
	g.release(k.a)
	g.release(k.b)

	return nil
}

func (g *Graph) release(city int) {
	if g.usage[city] <= 1 {
		delete(g.usage, city)
		return
	}
	g.usage[city]--
}

// HasTicket reports whether the ticket cityA–cityB is registered.
func (g *Graph) HasTicket(cityA, cityB string) bool {
	k, err := g.pairOf(cityA, cityB)
	if err != nil {
		return false
	}
	_, ok := g.tickets[k]

	return ok
}

// ListTickets returns the tickets ordered by (A, B).
func (g *Graph) ListTickets() []CityPair { return g.listPairs(g.tickets) }

// TicketCount returns the number of registered tickets.
func (g *Graph) TicketCount() int { return len(g.tickets) }

// CityUsage returns how many tickets reference city idx.
func (g *Graph) CityUsage(idx int) int { return g.usage[idx] }

// TicketCities returns the distinct cities referenced by tickets, ascending.
func (g *Graph) TicketCities() []int {
	out := make([]int, 0, len(g.usage))
	for c := range g.usage {
		out = append(out, c)
	}
	sort.Ints(out)

	return out
}
