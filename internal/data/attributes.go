package data

import (
	"fmt"
	"strings"
)

// Attributes is the ordered set of attributes of a data set.
// The order is the column order of the source, the last attribute being the class.
type Attributes struct {
	attributes []*Attribute
}

// NewAttributes creates a new attribute set with the given attributes.
// Attributes already part of the set are ignored.
func NewAttributes(attributes ...*Attribute) *Attributes {
	as := &Attributes{
		attributes: make([]*Attribute, 0, len(attributes)),
	}
	for _, a := range attributes {
		as.Add(a)
	}
	return as
}

// Add appends the attribute to the set.
// It returns false if the same attribute is already in the set.
func (as *Attributes) Add(a *Attribute) bool {
	for _, existing := range as.attributes {
		if existing == a {
			return false
		}
	}
	as.attributes = append(as.attributes, a)
	return true
}

// Size returns the number of attributes, the class attribute included.
func (as *Attributes) Size() int {
	return len(as.attributes)
}

// Get returns the attribute at the given position.
func (as *Attributes) Get(i int) (*Attribute, error) {
	if i < 0 || i >= len(as.attributes) {
		return nil, fmt.Errorf("no attribute at index %d of %d: %w", i, len(as.attributes), UnknownEntityErr)
	}
	return as.attributes[i], nil
}

// All returns all attributes in column order.
func (as *Attributes) All() []*Attribute {
	all := make([]*Attribute, len(as.attributes))
	copy(all, as.attributes)
	return all
}

// Features returns the attributes describing the feature values e.g. all but the class attribute.
func (as *Attributes) Features() []*Attribute {
	if len(as.attributes) == 0 {
		return []*Attribute{}
	}
	return as.All()[:len(as.attributes)-1]
}

// Class returns the class attribute.
func (as *Attributes) Class() (*Attribute, error) {
	if len(as.attributes) == 0 {
		return nil, fmt.Errorf("no class attribute in empty set: %w", UnknownEntityErr)
	}
	return as.attributes[len(as.attributes)-1], nil
}

// IndexOf returns the position of the given attribute.
func (as *Attributes) IndexOf(a *Attribute) (int, error) {
	for i, existing := range as.attributes {
		if existing == a {
			return i, nil
		}
	}
	return -1, fmt.Errorf("attribute '%s' not in set: %w", a.Name(), UnknownEntityErr)
}

// Index returns the position of the attribute with the given name.
// Names are compared case-insensitively.
func (as *Attributes) Index(name string) (int, error) {
	for i, a := range as.attributes {
		if strings.EqualFold(a.Name(), name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("attribute '%s' not in set: %w", name, UnknownEntityErr)
}

// Kinds returns the kind of each attribute in column order.
func (as *Attributes) Kinds() []Kind {
	kinds := make([]Kind, len(as.attributes))
	for i, a := range as.attributes {
		kinds[i] = a.Kind()
	}
	return kinds
}
