package parser

import (
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ParseYAMLFile opens a YAML file from the given fs.FS and unmarshals it into out
func ParseYAMLFile(fsys fs.FS, filename string, out interface{}) error {
	file, err := fsys.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	return nil
}
