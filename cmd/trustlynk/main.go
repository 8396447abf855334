// Command trustlynk drives the TrustLynk insurance contract from a terminal: policy
// administration, purchases, claims and read-only queries. Results are printed to stdout as
// JSON, logs go to stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/trustlynk-backend/internal/app"
	"github.com/jessevdk/go-flags"
)

type options struct {
	LogLevel      string              `long:"log-level" env:"TRUSTLYNK_LOG_LEVEL" default:"warn" description:"log level"`
	SecretSeed    string              `long:"secret-seed" env:"TRUSTLYNK_SECRET_SEED" description:"secret seed (S...) signing state-changing calls, prefer the environment variable"`
	Yes           bool                `short:"y" long:"yes" description:"sign without asking for confirmation"`
	ClickhouseDSN string              `long:"clickhouse-dsn" env:"TRUSTLYNK_CLICKHOUSE_DSN" description:"record invocations in the ClickHouse journal"`
	Contract      app.ContractOptions `group:"contract" env-namespace:"TRUSTLYNK"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newSession(ctx, os.Stdin, os.Stdout, os.Stderr)
	if err := execute(s, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		fmt.Fprintf(os.Stderr, "trustlynk: %v\n", err)
		os.Exit(1)
	}
}

func execute(s *session, args []string) error {
	parser := flags.NewParser(&s.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		defer s.close()
		return cmd.Execute(args)
	}
	for _, c := range commands(s) {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return fmt.Errorf("register command %s: %w", c.name, err)
		}
	}
	_, err := parser.ParseArgs(args)
	return err
}

type command struct {
	name  string
	short string
	long  string
	data  flags.Commander
}

func commands(s *session) []command {
	return []command{
		{"register", "Register the wallet", "Registers the signing wallet as an admin or a policyholder.", &registerCommand{session: s}},
		{"create-policy", "Create a policy (admin)", "Publishes a new insurance policy.", &createPolicyCommand{session: s}},
		{"purchase", "Purchase a policy", "Pays the premium in XLM and mints the policy NFT.", &purchaseCommand{session: s}},
		{"claim", "File a claim", "Files a claim with an externally computed fraud score.", &claimCommand{session: s}},
		{"approve", "Approve a claim (admin)", "Approves a pending claim and pays it out.", &approveCommand{session: s}},
		{"policies", "List policies", "Lists every policy, or one policy with --id.", &policiesCommand{session: s}},
		{"my-policies", "List purchased policies", "Lists the policies an account purchased.", &myPoliciesCommand{session: s}},
		{"claims", "List claims", "Lists the claims of an account, every claim, or claims by evidence.", &claimsCommand{session: s}},
		{"claim-status", "Show a claim status", "Shows status, score and amount of a claim.", &claimStatusCommand{session: s}},
		{"role", "Show an account role", "Shows the registered role of an account.", &roleCommand{session: s}},
		{"user", "Show an account", "Shows the registration record of an account.", &userCommand{session: s}},
		{"tokens", "List policy NFTs", "Lists the NFTs of an account or a policy.", &tokensCommand{session: s}},
		{"nft", "Show NFT metadata", "Shows the on-chain metadata of a policy NFT.", &nftCommand{session: s}},
		{"overview", "Show a dashboard overview", "Shows role, policies, claims and tokens of an account.", &overviewCommand{session: s}},
		{"stats", "Show contract totals", "Shows initialization, treasury and minted token totals.", &statsCommand{session: s}},
		{"metadata", "Build NFT metadata", "Builds the metadata document to publish before a purchase.", &metadataCommand{session: s}},
		{"convert", "Convert INR and XLM", "Converts between INR and stroops at the configured rate.", &convertCommand{session: s}},
		{"history", "Show journaled invocations", "Lists recent invocations recorded in the journal.", &historyCommand{session: s}},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
