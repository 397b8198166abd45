package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "Paris", "<p>Paris</p>"},
		{"emphasis", "**bold** and `code`", "<p><strong>bold</strong> and <code>code</code></p>"},
		{"hard wraps", "Red\nBlue", "<p>Red<br>\nBlue</p>"},
		{"strikethrough", "~~old~~", "<p><del>old</del></p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderDropsScripts(t *testing.T) {
	got, err := NewRenderer().Render("hi <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "alert")
	assert.Contains(t, got, "hi")
}

func TestRenderDropsEventHandlers(t *testing.T) {
	got, err := NewRenderer().Render(`<img src="x.png" onerror="alert(1)">`)
	require.NoError(t, err)
	assert.NotContains(t, got, "onerror")
	assert.Contains(t, got, `src="x.png"`)
}

func TestSanitize(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, `<a href="https://go.dev" rel="nofollow">go</a>`,
		r.Sanitize(`<a href="https://go.dev" onclick="x()">go</a>`))
	assert.Equal(t, "", r.Sanitize(`<script>alert(1)</script>`))
}
