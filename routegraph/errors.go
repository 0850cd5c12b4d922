package routegraph

import "errors"

// Sentinel errors for session operations.
var (
	// ErrMalformedInput indicates map data inconsistent with its declared
	// structure: bad header, bad line shape, bad weight, self-loop, or more
	// cities than declared.
	ErrMalformedInput = errors.New("routegraph: malformed map input")

	// ErrUnknownCity indicates a name or token that matches no city.
	ErrUnknownCity = errors.New("routegraph: unknown city")

	// ErrIdenticalCities indicates a ticket from a city to itself.
	ErrIdenticalCities = errors.New("routegraph: cities are identical")

	// ErrDuplicateTicket indicates the ticket is already registered.
	ErrDuplicateTicket = errors.New("routegraph: ticket already in list")

	// ErrTicketNotFound indicates removal of an unregistered ticket.
	ErrTicketNotFound = errors.New("routegraph: ticket not in list")

	// ErrAlreadyBlocked indicates the route is already blocked.
	ErrAlreadyBlocked = errors.New("routegraph: route already blocked")

	// ErrAlreadyUnblocked indicates the route is not blocked.
	ErrAlreadyUnblocked = errors.New("routegraph: route already unblocked")

	// ErrNoDirectRoute indicates the two cities are not adjacent.
	ErrNoDirectRoute = errors.New("routegraph: cities not adjacent")

	// ErrEmptyTicketSet indicates a route computation with no tickets.
	ErrEmptyTicketSet = errors.New("routegraph: no tickets to route")
)
