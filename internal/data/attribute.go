package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// NotAvailable is the label returned when a code has no matching label.
const NotAvailable = "NA"

// Kind is the kind of values an attribute holds.
type Kind int

const (
	// Nominal attributes hold a fixed set of labels, each mapped to a code.
	Nominal Kind = iota
	// Numeric attributes hold real numbers that are their own code.
	Numeric
)

var (
	nominalKinds = []string{"nominal", "nom", "c", "0"}
	numericKinds = []string{"numeric", "num", "n", "1"}
)

// ParseKind resolves the kind declaration of an attribute line.
func ParseKind(s string) (Kind, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	for i := range nominalKinds {
		if k == nominalKinds[i] {
			return Nominal, nil
		}
		if k == numericKinds[i] {
			return Numeric, nil
		}
	}
	return Nominal, fmt.Errorf("unknown attribute kind '%s': %w", s, FormatErr)
}

func (k Kind) String() string {
	switch k {
	case Nominal:
		return "nominal"
	case Numeric:
		return "numeric"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Attribute is a column of the data set.
// It encodes labels to numeric codes and back.
type Attribute struct {
	name   string
	kind   Kind
	labels []string
	codes  map[string]float64
}

// NewAttribute creates a new attribute.
// For nominal attributes the labels are assigned the codes 0, 1, 2 ... in the given order.
// Labels are case-insensitive; a label colliding with an earlier one after lowercasing
// takes over the mapping of the earlier one.
func NewAttribute(name string, kind Kind, labels ...string) *Attribute {
	a := &Attribute{
		name:   name,
		kind:   kind,
		labels: make([]string, 0, len(labels)),
		codes:  make(map[string]float64, len(labels)),
	}
	if kind != Nominal {
		return a
	}
	for i, label := range labels {
		l := strings.ToLower(label)
		if previous, ok := a.codes[l]; ok {
			log.Warn().
				Str("attribute", name).
				Str("label", l).
				Float64("previous", previous).
				Int("code", i).
				Msg("label collision, overwriting code")
		} else {
			a.labels = append(a.labels, l)
		}
		a.codes[l] = float64(i)
	}
	return a
}

// Name returns the attribute name.
func (a *Attribute) Name() string {
	return a.name
}

// Kind returns the attribute kind.
func (a *Attribute) Kind() Kind {
	return a.kind
}

// Labels returns the distinct lowercase labels in declaration order.
func (a *Attribute) Labels() []string {
	labels := make([]string, len(a.labels))
	copy(labels, a.labels)
	return labels
}

// Encode converts the label to its numeric code.
// A nominal label that is not declared falls back to being parsed as a number.
// Only finite numbers are accepted.
func (a *Attribute) Encode(label string) (float64, error) {
	if a.kind == Nominal {
		if code, ok := a.codes[strings.ToLower(label)]; ok {
			return code, nil
		}
	}
	v, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return 0, fmt.Errorf("could not encode '%s' for attribute '%s': %w", label, a.name, FormatErr)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non finite value '%s' for attribute '%s': %w", label, a.name, FormatErr)
	}
	return v, nil
}

// Decode converts the code back to its label.
// It returns NotAvailable if no nominal label carries the given code.
// Numeric codes are formatted as numbers.
func (a *Attribute) Decode(code float64) string {
	if a.kind == Numeric {
		return strconv.FormatFloat(code, 'g', -1, 64)
	}
	for _, label := range a.labels {
		if a.codes[label] == code {
			return label
		}
	}
	return NotAvailable
}

func (a *Attribute) String() string {
	s := fmt.Sprintf("@%s\t%s", a.name, a.kind)
	if len(a.labels) > 0 {
		s = fmt.Sprintf("%s\t%s", s, strings.Join(a.labels, " "))
	}
	return s
}
