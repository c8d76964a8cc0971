// Package config loads exercise definitions from YAML or JSON files so a
// cantus firmus and its generation parameters can be kept together on disk.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/descant/pkg/notation"
	"github.com/aretw0/descant/pkg/theory"
)

// Exercise describes one generation task: the cantus firmus and the
// parameters the engine needs to harmonize it.
type Exercise struct {
	Name      string `yaml:"name" json:"name"`
	Cantus    string `yaml:"cantus" json:"cantus"`
	Root      string `yaml:"root" json:"root"`
	Mode      string `yaml:"mode" json:"mode"`
	Direction string `yaml:"direction" json:"direction"`
	Seed      *int64 `yaml:"seed" json:"seed"`
	Budget    int    `yaml:"budget" json:"budget"`
}

// File represents the structure of an exercises file.
type File struct {
	Exercises []Exercise `yaml:"exercises" json:"exercises"`
}

// Load reads an exercises file (YAML or JSON by extension).
func Load(path string) ([]Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercises file: %w", err)
	}

	var f File
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse exercises JSON: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse exercises YAML: %w", err)
		}
	}

	if len(f.Exercises) == 0 {
		return nil, fmt.Errorf("no exercises defined in %s", path)
	}

	for i := range f.Exercises {
		if f.Exercises[i].Name == "" {
			f.Exercises[i].Name = fmt.Sprintf("exercise-%d", i+1)
		}
	}

	return f.Exercises, nil
}

// Resolved is an Exercise with its text fields parsed into theory values.
type Resolved struct {
	Name      string
	Cantus    []theory.Pitch
	Scale     theory.Scale
	Direction theory.Direction
	Seed      *int64
	Budget    int
}

// Resolve validates and parses the exercise fields.
func (e Exercise) Resolve() (*Resolved, error) {
	cantus, err := notation.Parse(e.Cantus)
	if err != nil {
		return nil, fmt.Errorf("exercise %q: invalid cantus: %w", e.Name, err)
	}
	if len(cantus) == 0 {
		return nil, fmt.Errorf("exercise %q: cantus is empty", e.Name)
	}

	root, err := notation.ParseNote(e.Root)
	if err != nil {
		return nil, fmt.Errorf("exercise %q: invalid root: %w", e.Name, err)
	}

	mode, err := theory.ParseMode(e.Mode)
	if err != nil {
		return nil, fmt.Errorf("exercise %q: %w", e.Name, err)
	}

	dir, err := theory.ParseDirection(e.Direction)
	if err != nil {
		return nil, fmt.Errorf("exercise %q: %w", e.Name, err)
	}

	return &Resolved{
		Name:      e.Name,
		Cantus:    cantus,
		Scale:     theory.Scale{Root: root, Mode: mode},
		Direction: dir,
		Seed:      e.Seed,
		Budget:    e.Budget,
	}, nil
}
