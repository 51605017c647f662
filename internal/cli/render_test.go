package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := renderTable(&buf, []string{"NAME", "QTY"}, [][]string{
		{"Basmati Rice 5kg", "40"},
		{"Dal", "8"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Basmati Rice 5kg")
	assert.Contains(t, out, "8")
}

func TestRenderJSONIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, map[string]int{"quantity": 8}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 8, decoded["quantity"])
	assert.Contains(t, buf.String(), "\n") // indented, multi-line
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(nil))
	empty := ""
	assert.Equal(t, "-", orDash(&empty))
	v := "27AAPFU0939F1ZV"
	assert.Equal(t, v, orDash(&v))
}
