package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKey(t *testing.T) {
	preamble, err := Get("detection.json", "preamble")
	require.NoError(t, err)
	assert.Contains(t, preamble, "{{.Title}}")
	assert.Contains(t, preamble, "{{.Content}}")
	assert.Contains(t, preamble, "{{.Domain}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("detection.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "preamble")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Rule {{.Index}}: {{.Name}}", map[string]string{"Index": "3", "Name": "grammar"})
	assert.Equal(t, "Rule 3: grammar", out)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("detection.json", "does-not-exist") })
}
