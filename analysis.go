package greeknames

// Gender is the grammatical gender guessed from name endings.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Diminutive describes a word that ends in a diminutive suffix.
type Diminutive struct {
	// Word is the diminutive as written, capitalized.
	Word string `json:"word" yaml:"word"`
	// PossibleBase guesses the full form; "ας/ης" marks two candidates.
	PossibleBase string `json:"possible_base" yaml:"possible_base"`
	// Suffix is the diminutive suffix that matched.
	Suffix string `json:"suffix" yaml:"suffix"`
}

// NameParts splits a name into first, middle and last name. Particles and
// titles are left out.
type NameParts struct {
	FirstName  string `json:"first_name" yaml:"first_name"`
	MiddleName string `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	LastName   string `json:"last_name" yaml:"last_name"`
}

// Statistics describes the shape of a processed name.
type Statistics struct {
	Length         int  `json:"length" yaml:"length"`
	OriginalLength int  `json:"original_length" yaml:"original_length"`
	WordCount      int  `json:"word_count" yaml:"word_count"`
	HasParticles   bool `json:"has_particles" yaml:"has_particles"`
	HasAccents     bool `json:"has_accents" yaml:"has_accents"`
	HasDiaeresis   bool `json:"has_diaeresis" yaml:"has_diaeresis"`
	// IsAllCaps and IsAllLower describe the original input.
	IsAllCaps       bool `json:"is_all_caps" yaml:"is_all_caps"`
	IsAllLower      bool `json:"is_all_lower" yaml:"is_all_lower"`
	HasNumbers      bool `json:"has_numbers" yaml:"has_numbers"`
	HasSpecialChars bool `json:"has_special_chars" yaml:"has_special_chars"`
}

// Result holds everything Process produced for one name. Optional fields are
// empty when the matching option is off.
type Result struct {
	Corrected string `json:"corrected" yaml:"corrected"`
	Original  string `json:"original" yaml:"original"`
	IsValid   bool   `json:"is_valid" yaml:"is_valid"`

	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	GeneralTitle string `json:"general_title,omitempty" yaml:"general_title,omitempty"`

	Genitive   string `json:"genitive,omitempty" yaml:"genitive,omitempty"`
	Vocative   string `json:"vocative,omitempty" yaml:"vocative,omitempty"`
	Accusative string `json:"accusative,omitempty" yaml:"accusative,omitempty"`

	Gender      Gender       `json:"gender,omitempty" yaml:"gender,omitempty"`
	Parts       *NameParts   `json:"parts,omitempty" yaml:"parts,omitempty"`
	Diminutives []Diminutive `json:"diminutives,omitempty" yaml:"diminutives,omitempty"`

	WasCorrected        bool   `json:"was_corrected,omitempty" yaml:"was_corrected,omitempty"`
	SuggestedCorrection string `json:"suggested_correction,omitempty" yaml:"suggested_correction,omitempty"`

	SortKey    string      `json:"sort_key,omitempty" yaml:"sort_key,omitempty"`
	Slug       string      `json:"slug,omitempty" yaml:"slug,omitempty"`
	Statistics *Statistics `json:"statistics,omitempty" yaml:"statistics,omitempty"`

	// requested is the case asked for through Options.ConvertToCase.
	requested Case
}

// Output is the single string a caller gets for the name: the requested
// case form when one was produced, otherwise the corrected name.
func (r *Result) Output() string {
	switch r.requested {
	case CaseVocative:
		if r.Vocative != "" {
			return r.Vocative
		}
	case CaseAccusative:
		if r.Accusative != "" {
			return r.Accusative
		}
	}
	return r.Corrected
}
