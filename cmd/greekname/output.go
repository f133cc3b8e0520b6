package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/greeknames"
)

// outputRecord is a Result plus the single string the caller asked for.
type outputRecord struct {
	greeknames.Result `yaml:",inline"`
	Output            string `json:"output" yaml:"output"`
}

func newOutputRecord(res *greeknames.Result) outputRecord {
	return outputRecord{Result: *res, Output: res.Output()}
}

// printer writes results in one of the supported formats.
type printer struct {
	w      io.Writer
	format string
	label  *color.Color
	value  *color.Color
	warn   *color.Color
}

func newPrinter(w io.Writer, format string, noColor bool) (*printer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
	p := &printer{
		w:      w,
		format: format,
		label:  color.New(color.FgCyan),
		value:  color.New(color.FgGreen, color.Bold),
		warn:   color.New(color.FgYellow),
	}
	if noColor {
		p.label.DisableColor()
		p.value.DisableColor()
		p.warn.DisableColor()
	}
	return p, nil
}

// result prints one processed name.
func (p *printer) result(res *greeknames.Result) error {
	switch p.format {
	case "json":
		return p.json(newOutputRecord(res))
	case "yaml":
		return p.yaml(newOutputRecord(res))
	default:
		return p.text(res)
	}
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (p *printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// jsonLine prints v as a single JSON line.
func (p *printer) jsonLine(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (p *printer) text(res *greeknames.Result) error {
	p.value.Fprintln(p.w, res.Output())

	fields := []struct {
		label, value string
	}{
		{"Corrected", res.Corrected},
		{"Title", res.Title},
		{"General title", res.GeneralTitle},
		{"Genitive", res.Genitive},
		{"Vocative", res.Vocative},
		{"Accusative", res.Accusative},
		{"Gender", string(res.Gender)},
		{"Suggested", res.SuggestedCorrection},
		{"Sort key", res.SortKey},
		{"Slug", res.Slug},
	}
	for _, f := range fields {
		if f.value == "" || (f.label == "Corrected" && f.value == res.Output()) {
			continue
		}
		p.field(f.label, f.value)
	}
	if res.Parts != nil && res.Parts.LastName != "" {
		p.field("First name", res.Parts.FirstName)
		if res.Parts.MiddleName != "" {
			p.field("Middle name", res.Parts.MiddleName)
		}
		p.field("Last name", res.Parts.LastName)
	}
	for _, d := range res.Diminutives {
		p.field("Diminutive", fmt.Sprintf("%s (-%s, from %s)", d.Word, d.Suffix, d.PossibleBase))
	}
	if s := res.Statistics; s != nil {
		p.field("Statistics", fmt.Sprintf("%d words, %d chars (was %d)", s.WordCount, s.Length, s.OriginalLength))
	}
	if !res.IsValid {
		p.warn.Fprintln(p.w, "warning: name contains characters outside the Greek alphabet")
	}
	return nil
}

func (p *printer) field(label, value string) {
	p.label.Fprintf(p.w, "  %-12s ", label+":")
	fmt.Fprintln(p.w, value)
}
