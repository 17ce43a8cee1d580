package data

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes the decoded examples of the data set as a table.
func (s *Source) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", s.Name); err != nil {
		return err
	}
	return Render(w, s.Attributes, s.Examples)
}

// Render writes the examples as a table, decoding every value with its attribute.
func Render(w io.Writer, attributes *Attributes, ds *Dataset) error {
	all := attributes.All()
	if len(all) == 0 {
		return fmt.Errorf("cannot render without attributes: %w", PreconditionErr)
	}
	header := make([]string, len(all))
	for i, a := range all {
		header[i] = fmt.Sprintf("%s (%s)", a.Name(), a.Kind())
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, e := range ds.examples {
		if e.Size() != len(all)-1 {
			return fmt.Errorf("example %v does not match %d attributes: %w", e, len(all), FormatErr)
		}
		row := make([]string, len(all))
		for i, v := range e.values {
			row[i] = all[i].Decode(v)
		}
		row[len(all)-1] = all[len(all)-1].Decode(e.class)
		table.Append(row)
	}
	table.Render()
	return nil
}
