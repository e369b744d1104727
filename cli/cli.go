// Package cli implements the pennywise command-line interface. Commands
// parse flags into typed values, call into the finance core and render
// the results; validation and arithmetic live in the core packages.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/mheijink/pennywise/config"
	"github.com/mheijink/pennywise/finance"
	"github.com/mheijink/pennywise/journal"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"
	warnSymbol    = "!"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FFAF00", Dark: "#FFAF00"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printWarning(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		warnStyle.Render(warnSymbol),
		warnStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalWidth returns the display width of stdout, or 0 when stdout is
// not a terminal. Tables render unclamped in the latter case.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// session bundles the hydrated journal with the configuration and the
// path it was loaded from. Commands open a session, work on the core
// objects and write changes back through save.
type session struct {
	cfg     config.Config
	path    string
	manager *finance.Manager
	budgets *finance.BudgetTracker
}

// openSession loads the configuration and hydrates the journal file.
// Records that fail to hydrate are reported as warnings on stderr and
// skipped; the session continues with everything that loaded.
func openSession(ctx *kong.Context, globals *Globals) (*session, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}

	path := globals.File
	if path == "" {
		path = cfg.Journal
	}

	f, err := journal.Load(path)
	if err != nil {
		return nil, err
	}

	store, budgets, recordErrs := journal.Hydrate(f)
	for _, recErr := range recordErrs {
		printWarning(ctx.Stderr, recErr.Error())
	}
	if len(recordErrs) > 0 {
		printInfof(ctx.Stderr, "skipped %d record(s) in %s",
			len(recordErrs), pathStyle.Render(path))
	}

	return &session{
		cfg:     cfg,
		path:    path,
		manager: finance.NewManager(store),
		budgets: budgets,
	}, nil
}

// reload re-hydrates the session from disk, discarding in-memory state.
func (s *session) reload() error {
	f, err := journal.Load(s.path)
	if err != nil {
		return err
	}

	store, budgets, _ := journal.Hydrate(f)
	s.manager = finance.NewManager(store)
	s.budgets = budgets
	return nil
}

// save serializes the store and budgets back to the journal file.
func (s *session) save() error {
	return journal.Save(s.path, journal.Dehydrate(s.manager.Store(), s.budgets))
}

// money renders an amount to two decimal places with the configured
// currency symbol, keeping the sign in front of the symbol ("-$40.00"
// rather than "$-40.00").
func (s *session) money(amount decimal.Decimal) string {
	text := amount.StringFixed(2)
	if strings.HasPrefix(text, "-") {
		return "-" + s.cfg.Currency + text[1:]
	}
	return s.cfg.Currency + text
}

// resolveID finds a transaction by full id or by unique prefix, so the
// short ids shown in listings can be pasted back in.
func resolveID(store *finance.Store, id string) (*finance.Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("empty transaction id")
	}
	if txn := store.Get(id); txn != nil {
		return txn, nil
	}

	matches := store.Filter(func(txn *finance.Transaction) bool {
		return strings.HasPrefix(txn.ID(), id)
	})

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no transaction with id %q", id)
	default:
		return nil, fmt.Errorf("transaction id %q is ambiguous (%d matches)", id, len(matches))
	}
}

// shortID truncates an id for display. Stored ids are uuids; the first
// segment is plenty to disambiguate a personal journal.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
