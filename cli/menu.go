package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/mheijink/pennywise/finance"
)

type MenuCmd struct{}

const (
	menuAdd     = "add"
	menuList    = "list"
	menuSummary = "summary"
	menuBudget  = "budget"
	menuSearch  = "search"
	menuRemove  = "remove"
	menuQuit    = "quit"
)

func (cmd *MenuCmd) Run(ctx *kong.Context, globals *Globals) error {
	if !isTerminal() {
		return fmt.Errorf("the interactive menu requires a terminal")
	}

	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	for {
		var choice string

		form := huh.NewSelect[string]().
			Title("What would you like to do?").
			Options(
				huh.NewOption("Record a transaction", menuAdd),
				huh.NewOption("List transactions", menuList),
				huh.NewOption("Show summary", menuSummary),
				huh.NewOption("Budget status", menuBudget),
				huh.NewOption("Search transactions", menuSearch),
				huh.NewOption("Remove a transaction", menuRemove),
				huh.NewOption("Quit", menuQuit),
			).
			Value(&choice)

		if err := form.Run(); err != nil {
			return fmt.Errorf("failed to read choice: %w", err)
		}

		var actionErr error
		switch choice {
		case menuAdd:
			actionErr = cmd.addTransaction(ctx, s)
		case menuList:
			renderTransactions(ctx, s, s.manager.Store().All())
		case menuSummary:
			actionErr = renderSummary(ctx.Stdout, s)
		case menuBudget:
			actionErr = renderBudgetStatus(ctx.Stdout, s)
		case menuSearch:
			actionErr = cmd.searchTransactions(ctx, s)
		case menuRemove:
			actionErr = cmd.removeTransaction(ctx, s)
		case menuQuit:
			return nil
		}

		if actionErr != nil {
			printError(ctx.Stderr, actionErr.Error())
		}
	}
}

func (cmd *MenuCmd) addTransaction(ctx *kong.Context, s *session) error {
	var (
		kindChoice  = finance.Income
		amountInput string
		category    string
		description string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[finance.Kind]().
				Title("Kind").
				Options(
					huh.NewOption("Income", finance.Income),
					huh.NewOption("Expense", finance.Expense),
				).
				Value(&kindChoice),
			huh.NewInput().
				Title("Amount").
				Validate(func(input string) error {
					_, err := decimal.NewFromString(input)
					return err
				}).
				Value(&amountInput),
			huh.NewInput().
				Title("Category").
				Value(&category),
			huh.NewInput().
				Title("Description (optional)").
				Value(&description),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read transaction: %w", err)
	}

	amount, err := decimal.NewFromString(amountInput)
	if err != nil {
		return err
	}

	var opts []finance.Option
	if description != "" {
		opts = append(opts, finance.WithDescription(description))
	}

	txn, err := finance.NewTransaction(kindChoice, amount, category, opts...)
	if err != nil {
		return err
	}

	s.manager.Store().Add(txn)
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Recorded "+txn.Label())
	return nil
}

func (cmd *MenuCmd) searchTransactions(ctx *kong.Context, s *session) error {
	var category, text string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category (optional)").
				Value(&category),
			huh.NewInput().
				Title("Description contains (optional)").
				Value(&text),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read search: %w", err)
	}

	matches := s.manager.Search(finance.Criteria{Category: category, Description: text})
	if len(matches) == 0 {
		printInfof(ctx.Stdout, "no matching transactions")
		return nil
	}

	renderTransactions(ctx, s, matches)
	return nil
}

func (cmd *MenuCmd) removeTransaction(ctx *kong.Context, s *session) error {
	transactions := s.manager.Store().All()
	if len(transactions) == 0 {
		printInfof(ctx.Stdout, "no transactions recorded")
		return nil
	}

	options := make([]huh.Option[string], 0, len(transactions))
	for _, txn := range transactions {
		options = append(options, huh.NewOption(txn.Label(), txn.ID()))
	}

	var id string
	form := huh.NewSelect[string]().
		Title("Which transaction should be removed?").
		Options(options...).
		Value(&id)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}

	txn := s.manager.Store().Get(id)
	if txn == nil {
		return fmt.Errorf("no transaction with id %q", id)
	}

	s.manager.Store().Remove(id)
	if err := s.save(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Removed "+txn.Label())
	return nil
}
