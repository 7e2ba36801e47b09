package feature

import (
	"fmt"
	"math/rand"
)

// Kind identifies one grammatical dimension of a generated sentence.
type Kind string

// The feature kinds known to the composer.
const (
	KindDirectObject    Kind = "direct_object"
	KindIndirectPronoun Kind = "indirect_pronoun"
	KindNegation        Kind = "negation"
)

// NoneName is the name of the absent-value sentinel every kind carries.
const NoneName = "none"

// Value is one member of a feature kind's enumeration.
type Value struct {
	Kind Kind
	Name string
}

// kindEntry declares a kind's ordered member list, its none sentinel, and the
// prompt fragment used for each concrete (non-none) member.
type kindEntry struct {
	members   []string
	fragments map[string]string
}

// registry is the statically declared feature table. Member order is part of
// the composer's contract: randomized selection indexes into this order, so a
// fixed seed yields a stable choice.
var registry = map[Kind]kindEntry{
	KindDirectObject: {
		members: []string{NoneName, "masculine", "feminine", "plural"},
		fragments: map[string]string{
			"masculine": "a masculine direct object pronoun (le)",
			"feminine":  "a feminine direct object pronoun (la)",
			"plural":    "a plural direct object pronoun (les)",
		},
	},
	KindIndirectPronoun: {
		members: []string{NoneName, "singular", "plural"},
		fragments: map[string]string{
			"singular": "a singular indirect object pronoun (lui)",
			"plural":   "a plural indirect object pronoun (leur)",
		},
	},
	KindNegation: {
		members: []string{NoneName, "pas", "jamais", "rien", "personne", "plus"},
		fragments: map[string]string{
			"pas":      "a negation with \"ne ... pas\"",
			"jamais":   "a negation with \"ne ... jamais\"",
			"rien":     "a negation with \"ne ... rien\"",
			"personne": "a negation with \"ne ... personne\"",
			"plus":     "a negation with \"ne ... plus\"",
		},
	},
}

func init() {
	for kind, entry := range registry {
		if err := validateEntry(kind, entry); err != nil {
			panic(err)
		}
	}
}

// validateEntry enforces the registry invariants: at least two members, exactly
// one none sentinel, and a fragment for every concrete member.
func validateEntry(kind Kind, entry kindEntry) error {
	if len(entry.members) < 2 {
		return fmt.Errorf("feature kind %q must declare at least two members", kind)
	}

	noneCount := 0
	for _, name := range entry.members {
		if name == NoneName {
			noneCount++
			continue
		}
		if _, ok := entry.fragments[name]; !ok {
			return fmt.Errorf("feature kind %q member %q has no prompt fragment", kind, name)
		}
	}

	if noneCount != 1 {
		return fmt.Errorf("feature kind %q must declare exactly one %q member, found %d",
			kind, NoneName, noneCount)
	}

	return nil
}

// register adds a kind to the registry after validating it. It exists so tests
// can exercise selection against enumerations the built-in table does not
// declare (e.g. a kind too small to yield an incorrect substitute).
func register(kind Kind, entry kindEntry) error {
	if _, exists := registry[kind]; exists {
		return fmt.Errorf("feature kind %q already registered", kind)
	}
	if err := validateEntry(kind, entry); err != nil {
		return err
	}
	registry[kind] = entry
	return nil
}

// Kinds returns the known feature kinds.
func Kinds() []Kind {
	return []Kind{KindDirectObject, KindIndirectPronoun, KindNegation}
}

// None returns the absent-value sentinel for the given kind.
func None(kind Kind) Value {
	return Value{Kind: kind, Name: NoneName}
}

// Members returns the ordered member list for the given kind, none included.
func Members(kind Kind) []Value {
	entry, ok := registry[kind]
	if !ok {
		return nil
	}
	values := make([]Value, 0, len(entry.members))
	for _, name := range entry.members {
		values = append(values, Value{Kind: kind, Name: name})
	}
	return values
}

// Parse resolves a member name against the kind's enumeration. An empty name
// resolves to the none sentinel.
func Parse(kind Kind, name string) (Value, error) {
	entry, ok := registry[kind]
	if !ok {
		return Value{}, fmt.Errorf("unknown feature kind %q", kind)
	}
	if name == "" {
		return None(kind), nil
	}
	for _, member := range entry.members {
		if member == name {
			return Value{Kind: kind, Name: name}, nil
		}
	}
	return Value{}, fmt.Errorf("unknown member %q for feature kind %q", name, kind)
}

// IsNone reports whether the value is the kind's absent-value sentinel.
func (v Value) IsNone() bool {
	return v.Name == NoneName
}

// Fragment returns the human-readable prompt fragment for a concrete member,
// or the empty string for the none sentinel.
func (v Value) Fragment() string {
	if v.IsNone() {
		return ""
	}
	return registry[v.Kind].fragments[v.Name]
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return string(v.Kind) + "=" + v.Name
}

// Selected is a feature value resolved through Select, retaining how the
// caller asked for it. The flags drive the composer's three-way clause branch.
type Selected struct {
	Value     Value
	Incorrect bool
	Random    bool
}

// Select applies the feature-substitution contract to a requested value.
//
// With incorrect set, the result is drawn uniformly from the kind's members
// excluding none and excluding the requested value itself; ErrEmptyChoice (as
// an *EmptyChoiceError) is returned when no candidate remains. With isRandom
// set, the result is drawn uniformly from the non-none members and may equal
// the input. With neither flag the input is returned unchanged, none included.
func Select(v Value, incorrect, isRandom bool, rng *rand.Rand) (Selected, error) {
	entry, ok := registry[v.Kind]
	if !ok {
		return Selected{}, fmt.Errorf("unknown feature kind %q", v.Kind)
	}

	switch {
	case incorrect:
		candidates := candidateNames(entry, v.Name)
		if len(candidates) == 0 {
			return Selected{}, &EmptyChoiceError{Kind: v.Kind, Excluded: v.Name}
		}
		name := candidates[rng.Intn(len(candidates))]
		return Selected{Value: Value{Kind: v.Kind, Name: name}, Incorrect: true}, nil

	case isRandom:
		candidates := candidateNames(entry, "")
		if len(candidates) == 0 {
			return Selected{}, &EmptyChoiceError{Kind: v.Kind}
		}
		name := candidates[rng.Intn(len(candidates))]
		return Selected{Value: Value{Kind: v.Kind, Name: name}, Random: true}, nil

	default:
		return Selected{Value: v}, nil
	}
}

// candidateNames returns the kind's members excluding none and, when exclude
// is non-empty, excluding that member as well.
func candidateNames(entry kindEntry, exclude string) []string {
	candidates := make([]string, 0, len(entry.members))
	for _, name := range entry.members {
		if name == NoneName || name == exclude {
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates
}
