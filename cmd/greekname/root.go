package main

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/greeknames"
	"github.com/cours-de-latin/greeknames/internal/config"
	"github.com/cours-de-latin/greeknames/internal/logging"
)

var errNoName = errors.New("a name is required: pass it as an argument or with --name")

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	cfg       *config.Config
	corrector *greeknames.Corrector
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "greekname [name]",
		Short: "Correct Greek personal names and inflect them",
		Long: `greekname normalizes the spelling, capitalization and accents of Greek
personal names and puts them into the genitive, vocative or accusative case.

Rule documents (names_klitiki.md, names_aitiatiki.md) found in the rules
directory extend the built-in name tables.`,
		Example: `  greekname "γιώργος παπαδόπουλος" --case vocative
  greekname --name "giorgos papadopoulos" --transliterate greeklish-to-greek -o json
  greekname batch names.txt --workers 8`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCorrect(cmd, args)
		},
	}

	cmd.Flags().String("name", "", "Name to correct (alternative to the positional argument)")
	addOptionFlags(cmd)
	cmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")
	cmd.PersistentFlags().String("rules-dir", "", "Directory holding the rule documents (overrides RULES_DIR)")
	cmd.PersistentFlags().Bool("no-rules", false, "Use the built-in tables only")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newBatchCmd(a), newRulesCmd(a), newVersionCmd())
	return cmd
}

// init loads .env and the configuration and builds the corrector.
func (a *app) init(cmd *cobra.Command) error {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger := logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())

	var rules greeknames.RuleSource
	if cfg.Rules.Enabled && !mustGetBool(cmd, "no-rules") {
		dir := cfg.Rules.Dir
		if d := mustGetString(cmd, "rules-dir"); d != "" {
			dir = d
		}
		rules = greeknames.NewFileRuleSource(dir, logger)
	}
	a.corrector = greeknames.New(rules)
	return nil
}

func (a *app) runCorrect(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	if flagName := mustGetString(cmd, "name"); flagName != "" {
		name = flagName
	}
	if strings.TrimSpace(name) == "" {
		return errNoName
	}

	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	p, err := newPrinter(cmd.OutOrStdout(), mustGetString(cmd, "output"), mustGetBool(cmd, "no-color"))
	if err != nil {
		return err
	}

	res, err := a.corrector.Process(name, opts)
	if err != nil {
		return err
	}
	return p.result(res)
}
