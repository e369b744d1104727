package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	File   string `help:"Journal file to use instead of the configured one." short:"f" type:"path"`
	Config string `help:"Configuration file." default:"${config_file}" type:"path"`
}

type Commands struct {
	Globals

	Add     AddCmd     `cmd:"" help:"Record an income or expense transaction."`
	List    ListCmd    `cmd:"" help:"List recorded transactions."`
	Remove  RemoveCmd  `cmd:"" help:"Remove a transaction by id."`
	Summary SummaryCmd `cmd:"" help:"Show totals, balance and per-category breakdown."`
	Search  SearchCmd  `cmd:"" help:"Search transactions by category, text, date or amount."`
	Budget  BudgetCmd  `cmd:"" help:"Manage monthly budget limits."`
	Menu    MenuCmd    `cmd:"" help:"Interactive menu for browsing and recording."`
	Watch   WatchCmd   `cmd:"" help:"Watch the journal file and re-render the summary on change."`
	Dump    DumpCmd    `cmd:"" hidden:"" help:"Dump the decoded journal file for debugging."`
}
