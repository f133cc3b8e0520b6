package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/greeknames"
)

// ruleSummary counts what a rule document contributed.
type ruleSummary struct {
	Case                greeknames.Case `json:"case" yaml:"case"`
	Document            string          `json:"document" yaml:"document"`
	Patterns            int             `json:"patterns" yaml:"patterns"`
	Examples            int             `json:"examples" yaml:"examples"`
	SpecialCases        int             `json:"special_cases" yaml:"special_cases"`
	FirstNamesInO       int             `json:"first_names_in_o" yaml:"first_names_in_o"`
	FirstNamesInE       int             `json:"first_names_in_e" yaml:"first_names_in_e"`
	FirstNamesUnchanged int             `json:"first_names_unchanged" yaml:"first_names_unchanged"`
	SurnamesInO         int             `json:"surnames_in_o" yaml:"surnames_in_o"`
	SurnamesInE         int             `json:"surnames_in_e" yaml:"surnames_in_e"`
	Diminutives         int             `json:"diminutives" yaml:"diminutives"`
	AsExceptions        int             `json:"as_exceptions" yaml:"as_exceptions"`
}

func summarize(t *greeknames.RuleTable) ruleSummary {
	doc := greeknames.VocativeRulesFile
	if t.Case == greeknames.CaseAccusative {
		doc = greeknames.AccusativeRulesFile
	}
	return ruleSummary{
		Case:                t.Case,
		Document:            doc,
		Patterns:            len(t.Patterns),
		Examples:            len(t.Examples),
		SpecialCases:        len(t.SpecialCases),
		FirstNamesInO:       len(t.FirstNamesInO),
		FirstNamesInE:       len(t.FirstNamesInE),
		FirstNamesUnchanged: len(t.FirstNamesUnchanged),
		SurnamesInO:         len(t.SurnamesInO),
		SurnamesInE:         len(t.SurnamesInE),
		Diminutives:         len(t.Diminutives),
		AsExceptions:        len(t.AsExceptions),
	}
}

func newRulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show what the rule documents contribute",
		Long:  "Show what the rule documents contribute. --case limits the output to one table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRules(cmd)
		},
	}
	cmd.Flags().Bool("full", false, "Print the whole parsed table instead of a summary")
	return cmd
}

func (a *app) runRules(cmd *cobra.Command) error {
	cases := []greeknames.Case{greeknames.CaseVocative, greeknames.CaseAccusative}
	if s := mustGetString(cmd, "case"); s != "" {
		c, err := greeknames.ParseCase(s)
		if err != nil {
			return err
		}
		if c != greeknames.CaseVocative && c != greeknames.CaseAccusative {
			return fmt.Errorf("no rule document exists for the %s", c)
		}
		cases = []greeknames.Case{c}
	}

	format := mustGetString(cmd, "output")
	if format == "text" {
		format = "yaml"
	}
	p, err := newPrinter(cmd.OutOrStdout(), format, mustGetBool(cmd, "no-color"))
	if err != nil {
		return err
	}

	full := mustGetBool(cmd, "full")
	var out []any
	for _, c := range cases {
		t := a.corrector.Rules(c)
		if t == nil {
			continue
		}
		if full {
			out = append(out, t)
		} else {
			out = append(out, summarize(t))
		}
	}
	if len(out) == 0 {
		return fmt.Errorf("no rule documents loaded; check --rules-dir or RULES_DIR")
	}

	if p.format == "json" {
		return p.json(out)
	}
	return p.yaml(out)
}
