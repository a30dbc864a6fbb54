package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/prism/internal/gradient"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadDocument reads a gradient document from disk and validates it.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, prismerrors.NewParseError(path, 0, err)
	}

	return ParseDocument(path, data)
}

// ParseDocument decodes and validates a gradient document. path is only used
// in error messages.
func ParseDocument(path string, data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, prismerrors.NewParseError(path, extractLine(err), err)
	}

	if err := gradient.Validate(doc.State()); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// LoadState is LoadDocument followed by Document.State.
func LoadState(path string) (gradient.State, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return gradient.State{}, err
	}
	return doc.State(), nil
}

// MarshalDocument renders doc as YAML.
func MarshalDocument(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gradient document: %w", err)
	}
	return data, nil
}

// SaveDocument writes doc to path through a temporary file and a rename.
func SaveDocument(path string, doc Document) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
