package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/greeknames"
)

// mustGetBool gets a bool flag value or panics if the flag doesn't exist.
// Flags are registered in the command constructors, so errors are bugs.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetInt gets an int flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetString gets a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// addOptionFlags registers the pipeline flags shared by the root and batch
// commands.
func addOptionFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("case", "", "Grammatical case to produce: vocative or accusative")
	f.String("transliterate", "", "Transliteration: greeklish-to-greek, greek-to-latin, greek-to-greeklish")
	f.Bool("genitive", false, "Also produce the genitive")
	f.Bool("preserve-original", false, "In batch JSON mode, merge every result field into the record")
	f.Bool("detect-gender", false, "Guess the gender from the name endings")
	f.Bool("detect-diminutive", false, "Report diminutive forms")
	f.Bool("suggest-corrections", false, "Replace known misspellings")
	f.Bool("katharevousa", false, "Convert learned endings such as -ιον to their modern form")
	f.Bool("database-safe", false, "Drop characters unsafe for storage")
	f.Bool("sort-key", false, "Produce a collation key")
	f.Bool("slug", false, "Produce a URL slug")
	f.Bool("statistics", false, "Report statistics about the name")
	f.Bool("general-title", false, "Prefix κ. or κα when the name has no title")
	f.Bool("accents", false, "Accent words written without a tonos")
	f.Bool("no-titles", false, "Do not recognise titles such as Δρ")
	f.Bool("no-particles", false, "Treat particles such as του as ordinary words")
	f.Bool("no-split", false, "Capitalize only the first word")
	f.Bool("strict", false, "Reject empty names and accept Greek letters only")
}

// optionsFromFlags builds pipeline options on top of the defaults.
func optionsFromFlags(cmd *cobra.Command) (greeknames.Options, error) {
	opts := greeknames.DefaultOptions()

	var err error
	if opts.ConvertToCase, err = greeknames.ParseCase(mustGetString(cmd, "case")); err != nil {
		return opts, err
	}
	if opts.Transliterate, err = greeknames.ParseTranslitMode(mustGetString(cmd, "transliterate")); err != nil {
		return opts, err
	}

	opts.ConvertToGenitive = mustGetBool(cmd, "genitive")
	opts.PreserveOriginal = mustGetBool(cmd, "preserve-original")
	opts.DetectGender = mustGetBool(cmd, "detect-gender")
	opts.DetectDiminutive = mustGetBool(cmd, "detect-diminutive")
	opts.SuggestCorrections = mustGetBool(cmd, "suggest-corrections")
	opts.RecognizeKatharevousa = mustGetBool(cmd, "katharevousa")
	opts.DatabaseSafe = mustGetBool(cmd, "database-safe")
	opts.GenerateSortKey = mustGetBool(cmd, "sort-key")
	opts.GenerateSlug = mustGetBool(cmd, "slug")
	opts.Statistics = mustGetBool(cmd, "statistics")
	opts.AddGeneralTitle = mustGetBool(cmd, "general-title")
	opts.AddAccents = mustGetBool(cmd, "accents")
	opts.HandleTitles = !mustGetBool(cmd, "no-titles")
	opts.HandleParticles = !mustGetBool(cmd, "no-particles")
	opts.SplitNames = !mustGetBool(cmd, "no-split")
	opts.StrictMode = mustGetBool(cmd, "strict")
	return opts, nil
}
