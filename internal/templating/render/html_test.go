package render

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTMLRendererWithFragments(t *testing.T) {
	fsys := fstest.MapFS{
		"html/pages/page.gohtml":    {Data: []byte(`{{template "header" .}}<p>{{.Body}}</p>`)},
		"html/fragments/hdr.gohtml": {Data: []byte(`{{define "header"}}<h1>{{.Title}}</h1>{{end}}`)},
	}

	renderer, err := GetHTMLRenderer("html/pages", "page.gohtml", fsys, "html/fragments")
	require.NoError(t, err)

	out, err := renderer.Render(map[string]interface{}{"Title": "Hello", "Body": "World"})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1><p>World</p>", out)
}

func TestGetHTMLRendererMissingTemplate(t *testing.T) {
	_, err := GetHTMLRenderer("html/pages", "missing.gohtml", fstest.MapFS{})
	assert.Error(t, err)
}

func TestRenderNilTemplate(t *testing.T) {
	r := &Renderer{}
	_, err := r.Render(nil)
	assert.Error(t, err)
}
