package data

import (
	"fmt"
	"strings"
)

const (
	attributePrefix = "@"
	examplePrefix   = "#"
)

// ParseAttribute creates an attribute out of its declaration
// e.g. '@name<TAB>kind<TAB>label1 label2 label3'.
// The labels field is optional for numeric attributes.
func ParseAttribute(line string) (*Attribute, error) {
	fields := strings.Split(strings.TrimPrefix(strings.TrimSpace(line), attributePrefix), "\t")
	if len(fields) < 2 {
		return nil, fmt.Errorf("attribute declaration needs a name and a kind '%s': %w", line, FormatErr)
	}
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return nil, fmt.Errorf("attribute declaration without name '%s': %w", line, FormatErr)
	}
	kind, err := ParseKind(fields[1])
	if err != nil {
		return nil, fmt.Errorf("could not parse attribute '%s': %w", name, err)
	}
	var labels []string
	if len(fields) > 2 {
		labels = strings.Fields(strings.Join(fields[2:], " "))
	}
	if kind == Nominal && len(labels) == 0 {
		return nil, fmt.Errorf("nominal attribute '%s' declares no labels: %w", name, FormatErr)
	}
	return NewAttribute(name, kind, labels...), nil
}

// ParseAttributes creates an attribute set out of the given declarations.
func ParseAttributes(lines ...string) (*Attributes, error) {
	as := NewAttributes()
	for _, line := range lines {
		a, err := ParseAttribute(line)
		if err != nil {
			return nil, err
		}
		as.Add(a)
	}
	return as, nil
}

// ParseExample encodes an example declaration e.g. '#value1 value2 class'
// with the attributes at the same positions.
func ParseExample(attributes *Attributes, line string) (*Example, error) {
	values := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), examplePrefix))
	if len(values) != attributes.Size() {
		return nil, fmt.Errorf("example has %d values for %d attributes '%s': %w",
			len(values), attributes.Size(), line, FormatErr)
	}
	row := make([]float64, len(values))
	for i, v := range values {
		code, err := attributes.attributes[i].Encode(v)
		if err != nil {
			return nil, err
		}
		row[i] = code
	}
	return FromRow(row)
}

// ParseDataset creates a data set out of the given example declarations.
func ParseDataset(attributes *Attributes, lines ...string) (*Dataset, error) {
	ds := NewDataset()
	for _, line := range lines {
		e, err := ParseExample(attributes, line)
		if err != nil {
			return nil, err
		}
		ds.Add(e)
	}
	return ds, nil
}
