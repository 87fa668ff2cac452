package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pushup.dev/pkg/pushup/internal/model"
)

func hostItem(value string) m.StringResource {
	return m.StringResource{Name: m.HostResourceName, Value: value}
}

func TestLocalStringsXMLAdapter_SetString(t *testing.T) {
	adapter := NewLocalStringsXMLAdapter()

	t.Run("creates document when empty", func(t *testing.T) {
		out, changed, err := adapter.SetString(nil, hostItem("https://bundles.example.com"))
		require.NoError(t, err)

		assert.True(t, changed)
		assert.Contains(t, string(out), "<resources>")
		assert.Contains(t, string(out), `<string name="PushupHost" translatable="false">https://bundles.example.com</string>`)
	})

	t.Run("appends to existing resources", func(t *testing.T) {
		in := `<resources>
    <string name="app_name">example</string>
</resources>
`
		out, changed, err := adapter.SetString([]byte(in), hostItem("https://bundles.example.com"))
		require.NoError(t, err)

		assert.True(t, changed)
		assert.Contains(t, string(out), `<string name="app_name">example</string>`)
		assert.Contains(t, string(out), `<string name="PushupHost" translatable="false">https://bundles.example.com</string>`)
	})

	t.Run("overwrites existing item", func(t *testing.T) {
		in := `<resources><string name="PushupHost" translatable="false">http://old</string></resources>`

		out, changed, err := adapter.SetString([]byte(in), hostItem("http://new"))
		require.NoError(t, err)

		assert.True(t, changed)
		assert.Equal(t, 1, strings.Count(string(out), `name="PushupHost"`))
		assert.Contains(t, string(out), ">http://new<")
		assert.NotContains(t, string(out), "http://old")
	})

	t.Run("identical item is left alone", func(t *testing.T) {
		in := "<resources>\n    <string name=\"PushupHost\" translatable=\"false\">http://same</string>\n</resources>\n"

		out, changed, err := adapter.SetString([]byte(in), hostItem("http://same"))
		require.NoError(t, err)

		assert.False(t, changed)
		assert.Equal(t, in, string(out))
	})

	t.Run("rejects other root", func(t *testing.T) {
		_, _, err := adapter.SetString([]byte("<manifest/>"), hostItem("http://x"))
		assert.ErrorIs(t, err, ErrUnexpectedRoot)
	})
}
