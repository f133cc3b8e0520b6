package greeknames

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

// Rule document file names, relative to the rule source root.
const (
	VocativeRulesFile   = "names_klitiki.md"
	AccusativeRulesFile = "names_aitiatiki.md"
)

// RuleSource supplies parsed rule tables. A nil table means the built-in
// tables apply on their own.
type RuleSource interface {
	VocativeRules() *RuleTable
	AccusativeRules() *RuleTable
}

// StaticRuleSource serves fixed tables.
type StaticRuleSource struct {
	Vocative   *RuleTable
	Accusative *RuleTable
}

func (s StaticRuleSource) VocativeRules() *RuleTable   { return s.Vocative }
func (s StaticRuleSource) AccusativeRules() *RuleTable { return s.Accusative }

// FileRuleSource reads rule documents from a file system. Each document is
// parsed at most once; later edits need a new source.
type FileRuleSource struct {
	fsys   fs.FS
	logger *slog.Logger

	vocOnce sync.Once
	voc     *RuleTable
	accOnce sync.Once
	acc     *RuleTable
}

// NewFileRuleSource reads rule documents from dir. An empty dir disables
// file access and every table is nil.
func NewFileRuleSource(dir string, logger *slog.Logger) *FileRuleSource {
	if dir == "" {
		return NewFSRuleSource(nil, logger)
	}
	return NewFSRuleSource(os.DirFS(dir), logger)
}

// NewFSRuleSource reads rule documents from fsys, which may be nil.
func NewFSRuleSource(fsys fs.FS, logger *slog.Logger) *FileRuleSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileRuleSource{fsys: fsys, logger: logger}
}

func (s *FileRuleSource) VocativeRules() *RuleTable {
	s.vocOnce.Do(func() {
		s.voc = s.load(VocativeRulesFile, CaseVocative)
	})
	return s.voc
}

func (s *FileRuleSource) AccusativeRules() *RuleTable {
	s.accOnce.Do(func() {
		s.acc = s.load(AccusativeRulesFile, CaseAccusative)
	})
	return s.acc
}

func (s *FileRuleSource) load(name string, c Case) *RuleTable {
	if s.fsys == nil {
		return nil
	}
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("rule document not found, using built-in rules", "file", name)
		} else {
			s.logger.Warn("open rule document", "file", name, "error", err)
		}
		return nil
	}
	defer f.Close()

	t, err := ParseRuleDocument(f, c)
	if err != nil {
		s.logger.Warn("parse rule document", "file", name, "error", err)
		return nil
	}
	s.logger.Debug("rule document loaded",
		"file", name,
		"case", c.String(),
		"patterns", len(t.Patterns),
		"examples", len(t.Examples),
		"special_cases", len(t.SpecialCases),
	)
	return t
}
