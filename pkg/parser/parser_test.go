package parser

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLFile(t *testing.T) {
	fsys := fstest.MapFS{
		"conf.yml": {Data: []byte("name: ortobahn\nport: 8080\n")},
	}

	var out struct {
		Name string `yaml:"name"`
		Port int    `yaml:"port"`
	}
	require.NoError(t, ParseYAMLFile(fsys, "conf.yml", &out))
	assert.Equal(t, "ortobahn", out.Name)
	assert.Equal(t, 8080, out.Port)
}

func TestParseYAMLFileMissing(t *testing.T) {
	var out map[string]interface{}
	err := ParseYAMLFile(fstest.MapFS{}, "missing.yml", &out)
	assert.Error(t, err)
}

func TestParseYAMLFileInvalid(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yml": {Data: []byte("name: [unclosed")},
	}
	var out map[string]interface{}
	err := ParseYAMLFile(fsys, "bad.yml", &out)
	assert.Error(t, err)
}
