// Package shell is the line-oriented command interpreter over a route graph
// session.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/trainroute/routegraph"
	"github.com/katalvlaran/trainroute/steiner"
)

// DefaultTrainBudget is the number of trains a player starts with.
const DefaultTrainBudget = 45

// Options configures a Shell.
type Options struct {
	Logger      zerolog.Logger
	TrainBudget int
	Prompt      string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger, the standard train budget and "> ".
func DefaultOptions() Options {
	return Options{
		Logger:      zerolog.Nop(),
		TrainBudget: DefaultTrainBudget,
		Prompt:      "> ",
	}
}

// WithLogger routes command diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithTrainBudget sets the cost above which a plan gets a warning.
// Non-positive values are ignored.
func WithTrainBudget(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.TrainBudget = n
		}
	}
}

// WithPrompt sets the prompt printed before each command.
func WithPrompt(p string) Option {
	return func(o *Options) { o.Prompt = p }
}

// Shell reads commands from a scanner and prints results to out.
type Shell struct {
	g    *routegraph.Graph
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

// New binds a shell to g. The scanner may be shared with ChooseMap so that
// menu input and commands come from one stream.
func New(g *routegraph.Graph, in *bufio.Scanner, out io.Writer, opts ...Option) *Shell {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Shell{g: g, in: in, out: out, opts: o}
}

// Run prints the banner and processes lines until exit, quit or end of input.
func (s *Shell) Run() error {
	fmt.Fprintf(s.out, "Loaded %d cities. Type \"help\" for commands.\n", s.g.CityCount())
	for {
		fmt.Fprint(s.out, s.opts.Prompt)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if s.Exec(s.in.Text()) {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the shell should stop.
func (s *Shell) Exec(line string) (quit bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	word := strings.ToLower(args[0])
	args = args[1:]
	s.opts.Logger.Debug().Str("cmd", word).Strs("args", args).Msg("command")

	if matches("exit", word) || matches("quit", word) {
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	}

	for _, c := range commands {
		if matches(c.name, word) {
			c.run(s, args)
			return false
		}
	}
	fmt.Fprintf(s.out, "Unrecognized command %q. Type \"help\" for commands.\n", word)

	return false
}

// matches reports whether word abbreviates name.
func matches(name, word string) bool {
	return strings.HasPrefix(name, word)
}

type command struct {
	name  string
	usage string
	help  string
	run   func(s *Shell, args []string)
}

// commands is in match order: an abbreviation selects the first entry it
// prefixes.
var commands []command

func init() {
	commands = []command{
		{"add", "add <city> <city>", "add a destination ticket", (*Shell).cmdAdd},
		{"rem", "rem <city> <city>", "remove a destination ticket", (*Shell).cmdRemove},
		{"reset", "reset", "remove all tickets and unblock all routes", (*Shell).cmdReset},
		{"tickets", "tickets", "list destination tickets", (*Shell).cmdTickets},
		{"block", "block [<city> <city>]", "mark a route as claimed by an opponent, or list blocked routes", (*Shell).cmdBlock},
		{"unblock", "unblock <city> <city>", "release a blocked route", (*Shell).cmdUnblock},
		{"path", "path mst|tsp|slow", "plan routes connecting every ticket city", (*Shell).cmdPath},
		{"cities", "cities", "list the cities on the board", (*Shell).cmdCities},
		{"debug", "debug", "print index tables and the shortest-path matrices", (*Shell).cmdDebug},
		{"help", "help", "show this list", (*Shell).cmdHelp},
	}
}

// cities resolves two tokens, announcing auto-completions.
func (s *Shell) cities(args []string, usage string) (string, string, bool) {
	if len(args) != 2 {
		fmt.Fprintf(s.out, "Usage: %s\n", usage)
		return "", "", false
	}
	var names [2]string
	for i, tok := range args {
		name, completed, err := s.g.ResolveCityTokenMatch(tok)
		if err != nil {
			s.opts.Logger.Debug().Err(err).Msg("command failed")
			fmt.Fprintf(s.out, "Error: unknown city %q\n", strings.ToLower(tok))
			return "", "", false
		}
		if completed {
			fmt.Fprintf(s.out, "* City %q auto-completed to %q\n", strings.ToLower(tok), name)
		}
		names[i] = name
	}

	return names[0], names[1], true
}

func (s *Shell) cmdAdd(args []string) {
	a, b, ok := s.cities(args, "add <city> <city>")
	if !ok {
		return
	}
	if err := s.g.AddTicket(a, b); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Added ticket %s - %s.\n", a, b)
}

func (s *Shell) cmdRemove(args []string) {
	a, b, ok := s.cities(args, "rem <city> <city>")
	if !ok {
		return
	}
	if err := s.g.RemoveTicket(a, b); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Removed ticket %s - %s.\n", a, b)
}

func (s *Shell) cmdReset(args []string) {
	r := s.g.Reset()
	fmt.Fprintf(s.out, "Removed %d ticket(s) and unblocked %d route(s).\n", r.TicketsRemoved, r.RoutesUnblocked)
}

func (s *Shell) cmdTickets(args []string) {
	tickets := s.g.ListTickets()
	if len(tickets) == 0 {
		fmt.Fprintln(s.out, "No tickets.")
		return
	}
	fmt.Fprintf(s.out, "%d ticket(s):\n", len(tickets))
	for _, t := range tickets {
		fmt.Fprintf(s.out, " - %s to %s\n", t.CityA, t.CityB)
	}
}

func (s *Shell) cmdBlock(args []string) {
	if len(args) == 0 {
		blocked := s.g.ListBlockedRoutes()
		if len(blocked) == 0 {
			fmt.Fprintln(s.out, "No blocked routes.")
			return
		}
		fmt.Fprintf(s.out, "%d blocked route(s):\n", len(blocked))
		for _, p := range blocked {
			fmt.Fprintf(s.out, " - %s to %s\n", p.CityA, p.CityB)
		}
		return
	}
	a, b, ok := s.cities(args, "block [<city> <city>]")
	if !ok {
		return
	}
	if err := s.g.BlockRoute(a, b); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Blocked route %s - %s.\n", a, b)
}

func (s *Shell) cmdUnblock(args []string) {
	a, b, ok := s.cities(args, "unblock <city> <city>")
	if !ok {
		return
	}
	if err := s.g.UnblockRoute(a, b); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Unblocked route %s - %s.\n", a, b)
}

func (s *Shell) cmdPath(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: path mst|tsp|slow")
		return
	}
	mode := strings.ToLower(args[0])
	switch {
	case matches("mst", mode):
		s.planMST()
	case matches("slow", mode), matches("tsp", mode):
		fmt.Fprintln(s.out, "Not supported yet.")
	default:
		fmt.Fprintf(s.out, "Unrecognized path mode %q. Usage: path mst|tsp|slow\n", mode)
	}
}

func (s *Shell) planMST() {
	res, err := s.g.ComputeSteinerRoute()
	if err != nil {
		s.fail(err)
		return
	}
	s.opts.Logger.Debug().
		Int("cost", res.Cost).
		Int("routes", len(res.Routes)).
		Int("closure_edges", len(res.Closure)).
		Msg("route planned")

	fmt.Fprintln(s.out, "Route(s) to claim:")
	for _, r := range res.Routes {
		a, _ := s.g.IndexToName(r.U)
		b, _ := s.g.IndexToName(r.V)
		fmt.Fprintf(s.out, " - %s to %s (%d)\n", a, b, r.Weight)
	}
	fmt.Fprintf(s.out, "Trains required: %d\n", res.Cost)
	if res.Cost > s.opts.TrainBudget {
		fmt.Fprintf(s.out, "Warning: this plan needs more than the %d trains available.\n", s.opts.TrainBudget)
	}
}

func (s *Shell) cmdCities(args []string) {
	names := s.g.SortedCityNames()
	fmt.Fprintf(s.out, "%d cities:\n", len(names))
	for _, n := range names {
		fmt.Fprintf(s.out, " - %s\n", n)
	}
}

func (s *Shell) cmdDebug(args []string) {
	dump(s.out, s.g)
}

func (s *Shell) cmdHelp(args []string) {
	fmt.Fprintln(s.out, "Commands (any unambiguous prefix works):")
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-24s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(s.out, "  %-24s %s\n", "exit | quit", "leave the shell")
}

// fail prints the user-facing message for err.
func (s *Shell) fail(err error) {
	s.opts.Logger.Debug().Err(err).Msg("command failed")
	fmt.Fprintf(s.out, "Error: %s\n", describe(err))
}

var messages = []struct {
	err error
	msg string
}{
	{routegraph.ErrUnknownCity, "unknown city"},
	{routegraph.ErrIdenticalCities, "cities are identical"},
	{routegraph.ErrDuplicateTicket, "ticket already in list"},
	{routegraph.ErrTicketNotFound, "ticket not in list"},
	{routegraph.ErrAlreadyBlocked, "route already blocked"},
	{routegraph.ErrAlreadyUnblocked, "route already unblocked"},
	{routegraph.ErrNoDirectRoute, "cities are not adjacent"},
	{routegraph.ErrEmptyTicketSet, "no tickets; add one first"},
	{steiner.ErrUnreachableTicketCity, "unable to connect all ticket cities"},
}

func describe(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return err.Error()
}
