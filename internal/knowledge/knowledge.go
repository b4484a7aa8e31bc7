package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpecialtyName is a closed enumeration of the specialties the router can
// recommend.  Free-form specialty strings are rejected at load time.
type SpecialtyName string

const (
	PrimaryCare        SpecialtyName = "primary_care"
	Endocrinologist    SpecialtyName = "endocrinologist"
	Gastroenterologist SpecialtyName = "gastroenterologist"
	Cardiologist       SpecialtyName = "cardiologist"
	Dermatologist      SpecialtyName = "dermatologist"
	Neurologist        SpecialtyName = "neurologist"
	Psychiatrist       SpecialtyName = "psychiatrist"
	Rheumatologist     SpecialtyName = "rheumatologist"
	Hematologist       SpecialtyName = "hematologist"
)

var validSpecialtyNames = map[SpecialtyName]bool{
	PrimaryCare:        true,
	Endocrinologist:    true,
	Gastroenterologist: true,
	Cardiologist:       true,
	Dermatologist:      true,
	Neurologist:        true,
	Psychiatrist:       true,
	Rheumatologist:     true,
	Hematologist:       true,
}

// UrgencyTier orders the urgency of a red flag.  Tiers are int-backed so
// they compare directly with > and <.
type UrgencyTier int

const (
	TierRoutine UrgencyTier = iota
	TierSoon
	TierUrgent
	TierEmergency
)

var tierNames = map[UrgencyTier]string{
	TierRoutine:   "ROUTINE",
	TierSoon:      "SOON",
	TierUrgent:    "URGENT",
	TierEmergency: "EMERGENCY",
}

func (t UrgencyTier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return fmt.Sprintf("UrgencyTier(%d)", int(t))
}

// ParseTier converts a tier label into an UrgencyTier.  Unknown labels are a
// configuration error.
func ParseTier(s string) (UrgencyTier, error) {
	for t, name := range tierNames {
		if name == s {
			return t, nil
		}
	}
	return TierRoutine, fmt.Errorf("unrecognized urgency tier %q", s)
}

// MarshalYAML / UnmarshalYAML let tiers appear as their labels in override
// files instead of bare ints.
func (t UrgencyTier) MarshalYAML() (interface{}, error) { return t.String(), nil }

func (t *UrgencyTier) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Specialty describes one medical specialty the router can recommend.
// Keywords are matched case-insensitively against the patient's symptom
// tokens; the routing engine normalizes them once at startup.
type Specialty struct {
	Name             SpecialtyName `yaml:"name" json:"name"`
	DisplayName      string        `yaml:"display_name" json:"display_name"`
	Description      string        `yaml:"description" json:"description"`
	TreatsConditions []string      `yaml:"treats_conditions" json:"treats_conditions"`
	Keywords         []string      `yaml:"keywords" json:"keywords"`
	TypicalTests     []string      `yaml:"typical_tests" json:"typical_tests"`
	WhenToSee        string        `yaml:"when_to_see" json:"when_to_see"`
	DefaultUrgency   UrgencyTier   `yaml:"default_urgency" json:"default_urgency"`
	// Priority breaks scoring ties: lower is more clinically common and wins.
	Priority int `yaml:"priority" json:"priority"`
}

// RedFlag is a symptom phrase that requires escalation independent of
// specialty scoring.  Trigger is a short phrase; the scanner matches it both
// as a token subset and as a contiguous phrase.
type RedFlag struct {
	Trigger string      `yaml:"trigger" json:"trigger"`
	Tier    UrgencyTier `yaml:"tier" json:"tier"`
	Reason  string      `yaml:"reason" json:"reason"`
	Action  string      `yaml:"action" json:"action"`
	// Specialty optionally names the specialty likely behind the flag; it is
	// surfaced as a next step even when the decision escalates.
	Specialty SpecialtyName `yaml:"specialty,omitempty" json:"specialty,omitempty"`
	// Priority breaks ties between flags of equal tier: lower wins.
	Priority int `yaml:"priority" json:"priority"`
}

// PatternRecommendation is the concrete action attached to a wellness
// pattern: exact supplement form, dose and timing, never generic advice.
type PatternRecommendation struct {
	Supplement string `yaml:"supplement" json:"supplement"`
	Dose       string `yaml:"dose" json:"dose"`
	Timing     string `yaml:"timing" json:"timing"`
	Lifestyle  string `yaml:"lifestyle" json:"lifestyle"`
}

// Pattern is a common lifestyle or nutrient pattern matched against symptom
// tokens to enrich the recommendation stage.
type Pattern struct {
	Name           string                `yaml:"name" json:"name"`
	Indicators     []string              `yaml:"indicators" json:"indicators"`
	Explanation    string                `yaml:"explanation" json:"explanation"`
	Recommendation PatternRecommendation `yaml:"recommendation" json:"recommendation"`
	Timeline       string                `yaml:"timeline" json:"timeline"`
}

// Store is the immutable knowledge snapshot the routing engine works from.
// It is built once at process start and safely shared across requests; no
// method mutates it afterwards.
type Store struct {
	Specialties []Specialty `yaml:"specialties"`
	RedFlags    []RedFlag   `yaml:"red_flags"`
	Patterns    []Pattern   `yaml:"patterns"`
}

// Load returns a Store built from the built-in tables.
func Load() (*Store, error) {
	s := &Store{
		Specialties: builtinSpecialties(),
		RedFlags:    builtinRedFlags(),
		Patterns:    builtinPatterns(),
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads a YAML override file.  Sections missing from the file fall
// back to the built-in tables, so an override may replace just the red flags
// or just the specialty list.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var s Store
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse knowledge file %s: %w", path, err)
	}
	if len(s.Specialties) == 0 {
		s.Specialties = builtinSpecialties()
	}
	if len(s.RedFlags) == 0 {
		s.RedFlags = builtinRedFlags()
	}
	if len(s.Patterns) == 0 {
		s.Patterns = builtinPatterns()
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("knowledge file %s: %w", path, err)
	}
	return &s, nil
}

// SpecialtyByName returns the specialty with the given name, or nil.
func (s *Store) SpecialtyByName(name SpecialtyName) *Specialty {
	for i := range s.Specialties {
		if s.Specialties[i].Name == name {
			return &s.Specialties[i]
		}
	}
	return nil
}

// validate fails fast on malformed tables.  It runs only at startup;
// requests never see a partially valid store.
func (s *Store) validate() error {
	if len(s.Specialties) == 0 {
		return fmt.Errorf("no specialties configured")
	}
	seen := make(map[SpecialtyName]bool, len(s.Specialties))
	for _, sp := range s.Specialties {
		if !validSpecialtyNames[sp.Name] {
			return fmt.Errorf("specialty %q: unrecognized name", sp.Name)
		}
		if seen[sp.Name] {
			return fmt.Errorf("specialty %q: duplicate entry", sp.Name)
		}
		seen[sp.Name] = true
		if len(sp.Keywords) == 0 {
			return fmt.Errorf("specialty %q: must have at least one keyword", sp.Name)
		}
		if _, ok := tierNames[sp.DefaultUrgency]; !ok {
			return fmt.Errorf("specialty %q: invalid default urgency %d", sp.Name, int(sp.DefaultUrgency))
		}
	}
	for _, f := range s.RedFlags {
		if f.Trigger == "" {
			return fmt.Errorf("red flag with empty trigger")
		}
		if _, ok := tierNames[f.Tier]; !ok {
			return fmt.Errorf("red flag %q: invalid urgency tier %d", f.Trigger, int(f.Tier))
		}
		if f.Specialty != "" && !validSpecialtyNames[f.Specialty] {
			return fmt.Errorf("red flag %q: unrecognized specialty %q", f.Trigger, f.Specialty)
		}
	}
	for _, p := range s.Patterns {
		if p.Name == "" {
			return fmt.Errorf("pattern with empty name")
		}
		if len(p.Indicators) == 0 {
			return fmt.Errorf("pattern %q: must have at least one indicator", p.Name)
		}
	}
	return nil
}
