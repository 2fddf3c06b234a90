package templates

import (
	"embed"
	"fmt"
	"io"
	"sync"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

var (
	mu     sync.Mutex
	parsed = make(map[string]*template.Template)
)

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Execute renders the named template with data into w.
// Parsed templates are cached for the life of the process.
func Execute(w io.Writer, name string, data any) error {
	t, err := lookup(name)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

func lookup(name string) (*template.Template, error) {
	mu.Lock()
	defer mu.Unlock()

	if t, ok := parsed[name]; ok {
		return t, nil
	}
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	t, err := template.New(name).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	parsed[name] = t
	return t, nil
}
