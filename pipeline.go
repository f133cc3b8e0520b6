package greeknames

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyName is returned in strict mode for blank input.
var ErrEmptyName = errors.New("empty name")

// Options configures Process. Use DefaultOptions as a starting point.
type Options struct {
	// JSONKey is the record field holding the name in ProcessRecord.
	JSONKey string `json:"json_key" yaml:"json_key"`
	// OutputKey receives the corrected name in ProcessRecord.
	OutputKey string `json:"output_key" yaml:"output_key"`
	// PreserveOriginal makes ProcessRecord merge every Result field.
	PreserveOriginal bool `json:"preserve_original" yaml:"preserve_original"`

	SplitNames            bool         `json:"split_names" yaml:"split_names"`
	DetectGender          bool         `json:"detect_gender" yaml:"detect_gender"`
	NormalizeTonotics     bool         `json:"normalize_tonotics" yaml:"normalize_tonotics"`
	HandleDiacritics      bool         `json:"handle_diacritics" yaml:"handle_diacritics"`
	StrictMode            bool         `json:"strict_mode" yaml:"strict_mode"`
	RemoveExtraSpaces     bool         `json:"remove_extra_spaces" yaml:"remove_extra_spaces"`
	HandleParticles       bool         `json:"handle_particles" yaml:"handle_particles"`
	ConvertToGenitive     bool         `json:"convert_to_genitive" yaml:"convert_to_genitive"`
	ConvertToCase         Case         `json:"convert_to_case" yaml:"convert_to_case"`
	Transliterate         TranslitMode `json:"transliterate" yaml:"transliterate"`
	DetectDiminutive      bool         `json:"detect_diminutive" yaml:"detect_diminutive"`
	HandleTitles          bool         `json:"handle_titles" yaml:"handle_titles"`
	SuggestCorrections    bool         `json:"suggest_corrections" yaml:"suggest_corrections"`
	RecognizeKatharevousa bool         `json:"recognize_katharevousa" yaml:"recognize_katharevousa"`
	DatabaseSafe          bool         `json:"database_safe" yaml:"database_safe"`
	GenerateSortKey       bool         `json:"generate_sort_key" yaml:"generate_sort_key"`
	GenerateSlug          bool         `json:"generate_slug" yaml:"generate_slug"`
	Statistics            bool         `json:"statistics" yaml:"statistics"`
	AddGeneralTitle       bool         `json:"add_general_title" yaml:"add_general_title"`
	AddAccents            bool         `json:"add_accents" yaml:"add_accents"`
}

// DefaultOptions returns the options Process uses when the caller has no
// preference.
func DefaultOptions() Options {
	return Options{
		JSONKey:           "fullname",
		OutputKey:         "correctedFullname",
		SplitNames:        true,
		NormalizeTonotics: true,
		HandleDiacritics:  true,
		RemoveExtraSpaces: true,
		HandleParticles:   true,
		HandleTitles:      true,
	}
}

// Process corrects one name and computes the derived fields opts asks for.
// Blank input is echoed back, or rejected with ErrEmptyName in strict mode.
func (c *Corrector) Process(name string, opts Options) (*Result, error) {
	if strings.TrimSpace(name) == "" {
		if opts.StrictMode {
			return nil, ErrEmptyName
		}
		return &Result{Corrected: name, Original: name}, nil
	}

	res := &Result{Original: name, requested: opts.ConvertToCase}
	processed := name

	var title string
	if opts.HandleTitles {
		title, processed = ExtractTitle(processed)
	}
	if opts.Transliterate != TranslitNone {
		processed = Transliterate(processed, opts.Transliterate)
	}
	if opts.RemoveExtraSpaces {
		processed = CollapseSpaces(processed)
	}
	if opts.RecognizeKatharevousa {
		processed = ConvertKatharevousa(processed)
	}
	if opts.SuggestCorrections {
		if s, ok := SuggestCorrection(processed); ok {
			res.WasCorrected = true
			res.SuggestedCorrection = s
			processed = s
		}
	}
	if opts.AddAccents {
		processed = AddAccents(processed)
	}
	if opts.NormalizeTonotics {
		processed = NormalizeTonotics(processed)
	}
	if opts.HandleDiacritics {
		processed = HandleDiacritics(processed)
	}
	processed = capitalizeName(processed, opts.SplitNames, opts.HandleParticles)

	caseOpts := CaseOptions{HandleParticles: opts.HandleParticles}
	if opts.ConvertToGenitive {
		res.Genitive = c.Genitive(processed, caseOpts)
	}
	switch opts.ConvertToCase {
	case CaseVocative:
		res.Vocative = withTitle(title, c.Vocative(processed, caseOpts))
	case CaseAccusative:
		res.Accusative = withTitle(title, c.Accusative(processed, caseOpts))
	}

	if opts.DatabaseSafe {
		processed = DatabaseSafe(processed)
	}
	processed = withTitle(title, processed)
	res.Title = title

	if opts.AddGeneralTitle && title == "" {
		if gt := GeneralTitle(processed); gt != "" {
			res.GeneralTitle = gt
			processed = gt + " " + processed
		}
	}

	res.Corrected = processed
	if opts.DetectGender {
		res.Gender = DetectGender(processed)
	}
	if opts.SplitNames {
		parts := SplitNameParts(processed)
		res.Parts = &parts
	}
	if opts.DetectDiminutive {
		res.Diminutives = DetectDiminutives(processed)
	}
	if opts.GenerateSortKey {
		res.SortKey = SortKey(processed)
	}
	if opts.GenerateSlug {
		res.Slug = Slug(processed)
	}
	if opts.Statistics {
		st := ComputeStatistics(processed, name)
		res.Statistics = &st
	}
	res.IsValid = ValidateName(processed, opts.StrictMode)
	return res, nil
}

// capitalizeName capitalizes every word, or only the whole string when
// split is off. Particles stay lowercase when handleParticles is set.
func capitalizeName(s string, split, handleParticles bool) string {
	if !split {
		return Capitalize(s)
	}
	parts := strings.Split(s, " ")
	for i, p := range parts {
		if handleParticles && IsParticle(p) {
			parts[i] = strings.ToLower(p)
			continue
		}
		parts[i] = Capitalize(p)
	}
	return strings.Join(parts, " ")
}

func withTitle(title, name string) string {
	switch {
	case title == "":
		return name
	case name == "":
		return title
	default:
		return title + " " + name
	}
}

// Fields returns the result as a generic map keyed like its JSON encoding.
func (r *Result) Fields() map[string]any {
	b, err := json.Marshal(r)
	if err != nil {
		return map[string]any{"corrected": r.Corrected}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{"corrected": r.Corrected}
	}
	return m
}

// ProcessRecord corrects the name found under opts.JSONKey in rec and returns
// a copy of rec with the result added. Records without a usable name are
// copied unchanged.
func (c *Corrector) ProcessRecord(rec map[string]any, opts Options) map[string]any {
	out := make(map[string]any, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	name, ok := rec[opts.JSONKey].(string)
	if !ok {
		return out
	}
	res, err := c.Process(name, opts)
	if err != nil {
		return out
	}
	if opts.PreserveOriginal {
		for k, v := range res.Fields() {
			out[k] = v
		}
		return out
	}
	out[opts.OutputKey] = res.Output()
	return out
}

// ProcessAll runs Process over names with at most workers goroutines.
// Results keep the input order. The first error cancels the batch.
func (c *Corrector) ProcessAll(ctx context.Context, names []string, opts Options, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.Process(name, opts)
			if err != nil {
				return fmt.Errorf("name %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
