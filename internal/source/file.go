package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/trainingaudit/internal/model"
	"gopkg.in/yaml.v3"
)

// JSONFile loads a roster from a JSON file.
type JSONFile struct {
	path string
}

// NewJSONFile creates a loader for the JSON roster at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load implements Loader.
func (f *JSONFile) Load(_ context.Context) ([]model.Person, error) {
	var people []model.Person
	err := readFile(f.path, func(r io.Reader) error {
		return json.NewDecoder(r).Decode(&people)
	})
	if err != nil {
		return nil, err
	}
	return people, nil
}

// YAMLFile loads a roster from a YAML file.
type YAMLFile struct {
	path string
}

// NewYAMLFile creates a loader for the YAML roster at path.
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

// Load implements Loader.
func (f *YAMLFile) Load(_ context.Context) ([]model.Person, error) {
	var people []model.Person
	err := readFile(f.path, func(r io.Reader) error {
		err := yaml.NewDecoder(r).Decode(&people)
		if err == io.EOF {
			// An empty document is an empty roster.
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return people, nil
}

// readFile opens path, hands it to decode and closes it.
func readFile(path string, decode func(io.Reader) error) error {
	f, err := os.Open(path) //nolint:gosec // User-provided roster path is intentional
	if err != nil {
		return fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer f.Close()

	if err := decode(f); err != nil {
		return fmt.Errorf("failed to decode roster %s: %w", path, err)
	}
	return nil
}
