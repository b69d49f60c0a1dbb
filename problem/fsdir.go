package problem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ReadProblemDir reads a problem laid out on disk as
//
//	problem.toml      id, name and constraints
//	statement.md      optional, overrides the text field
//	tests/NAME.in     input of a case
//	tests/NAME.out    expected output of the same case
//
// Cases are ordered by NAME.
func ReadProblemDir(dir string) (Problem, []TestCase, error) {
	p, err := readProblemToml(filepath.Join(dir, "problem.toml"))
	if err != nil {
		return Problem{}, nil, err
	}

	statement, err := os.ReadFile(filepath.Join(dir, "statement.md"))
	if err == nil {
		p.Text = string(statement)
	} else if !errors.Is(err, os.ErrNotExist) {
		return Problem{}, nil, fmt.Errorf("failed to read statement: %w", err)
	}

	cases, err := readTestsDir(filepath.Join(dir, "tests"))
	if err != nil {
		return Problem{}, nil, err
	}
	return p, cases, nil
}

func readProblemToml(path string) (Problem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("failed to read problem.toml: %w", err)
	}

	tomlStruct := struct {
		ID          string `toml:"id"`
		Name        string `toml:"name"`
		Text        string `toml:"text"`
		Constraints struct {
			TimeSeconds     int `toml:"time_seconds"`
			MemoryMegabytes int `toml:"memory_megabytes"`
		} `toml:"constraints"`
	}{}
	err = toml.Unmarshal(content, &tomlStruct)
	if err != nil {
		return Problem{}, fmt.Errorf("failed to unmarshal problem.toml: %w", err)
	}
	if tomlStruct.ID == "" {
		return Problem{}, fmt.Errorf("problem.toml has no id")
	}

	return Problem{
		ID:          tomlStruct.ID,
		Name:        tomlStruct.Name,
		Text:        tomlStruct.Text,
		TimeLimit:   tomlStruct.Constraints.TimeSeconds,
		MemoryLimit: tomlStruct.Constraints.MemoryMegabytes,
	}, nil
}

func readTestsDir(testDirPath string) ([]TestCase, error) {
	entries, err := os.ReadDir(testDirPath)
	if err != nil {
		return nil, fmt.Errorf("error reading tests directory: %w", err)
	}

	inputs := map[string]string{}
	outputs := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		var target map[string]string
		switch ext {
		case ".in":
			target = inputs
		case ".out", ".ans":
			target = outputs
		default:
			continue
		}
		content, err := os.ReadFile(filepath.Join(testDirPath, name))
		if err != nil {
			return nil, fmt.Errorf("error reading test file %s: %w", name, err)
		}
		target[base] = string(content)
	}

	names := make([]string, 0, len(inputs))
	for name := range inputs {
		if _, ok := outputs[name]; !ok {
			return nil, fmt.Errorf("test %s has no output file", name)
		}
		names = append(names, name)
	}
	for name := range outputs {
		if _, ok := inputs[name]; !ok {
			return nil, fmt.Errorf("test %s has no input file", name)
		}
	}
	sort.Strings(names)

	cases := make([]TestCase, 0, len(names))
	for _, name := range names {
		cases = append(cases, TestCase{Input: inputs[name], Output: outputs[name]})
	}
	return cases, nil
}
