package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
)

type Renderer struct {
	Template *template.Template
}

// Render executes the template with the given data
func (r *Renderer) Render(data interface{}) (string, error) {
	if r.Template == nil {
		return "", fmt.Errorf("template is nil")
	}

	buf := new(bytes.Buffer)
	if err := r.Template.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GetHTMLRenderer returns a Renderer for a template file, optionally parsing
// extra directories of shared fragments alongside it.
func GetHTMLRenderer(pathStr string, filename string, fsys fs.FS, extraDirs ...string) (*Renderer, error) {
	fullPath := path.Join(pathStr, filename)

	// Check if the file exists in the provided fs.FS using fs.Open
	file, err := fsys.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	file.Close()

	patterns := []string{fullPath}
	for _, dir := range extraDirs {
		patterns = append(patterns, path.Join(dir, "*.gohtml"))
	}

	tmpl, err := template.New(filename).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return &Renderer{Template: tmpl}, nil
}
