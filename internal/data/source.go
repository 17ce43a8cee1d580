package data

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Source is a data set as declared in a source file.
type Source struct {
	Name       string
	Attributes *Attributes
	Examples   *Dataset
}

// LoadFile loads the data set declared in the given file.
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open data set file '%s': %w", path, err)
	}
	defer f.Close()
	src, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("could not load data set file '%s': %w", path, err)
	}
	log.Info().
		Str("file", path).
		Str("name", src.Name).
		Int("attributes", src.Attributes.Size()).
		Int("examples", src.Examples.Size()).
		Msg("loaded data set")
	return src, nil
}

// Load reads a data set declaration.
// The first non-blank line is the data set name, attributes start with '@'
// and examples with '#'. Blank lines are ignored.
func Load(r io.Reader) (*Source, error) {
	src := &Source{
		Attributes: NewAttributes(),
		Examples:   NewDataset(),
	}
	scanner := bufio.NewScanner(r)
	n := 0
	named := false
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !named {
			src.Name = strings.TrimSpace(line)
			named = true
			continue
		}
		switch {
		case strings.HasPrefix(line, attributePrefix):
			a, err := ParseAttribute(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			src.Attributes.Add(a)
		case strings.HasPrefix(line, examplePrefix):
			e, err := ParseExample(src.Attributes, line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			src.Examples.Add(e)
		default:
			return nil, fmt.Errorf("line %d: unexpected declaration '%s': %w", n, line, FormatErr)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read data set: %w", err)
	}
	if !named {
		return nil, fmt.Errorf("empty data set declaration: %w", FormatErr)
	}
	return src, nil
}
