package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEscapesEveryDangerousCharacter(t *testing.T) {
	assert.Equal(t, "&amp;", Sanitize("&"))
	assert.Equal(t, "&lt;", Sanitize("<"))
	assert.Equal(t, "&gt;", Sanitize(">"))
	assert.Equal(t, "&quot;", Sanitize(`"`))
	assert.Equal(t, "&#39;", Sanitize("'"))
	assert.Equal(t, "&#x2F;", Sanitize("/"))
}

func TestSanitizeScriptTag(t *testing.T) {
	out := Sanitize(`<script>alert("xss")</script>`)

	assert.Equal(t, "&lt;script&gt;alert(&quot;xss&quot;)&lt;&#x2F;script&gt;", out)
	for _, c := range []string{"<", ">", `"`, "'", "/"} {
		assert.NotContains(t, out, c)
	}
}

func TestSanitizeLeavesCleanInputAlone(t *testing.T) {
	assert.Equal(t, "Jo Bloggs 123", Sanitize("Jo Bloggs 123"))
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitizeIsSinglePass(t *testing.T) {
	// Entities produced by one pass are not re-escaped within that pass,
	// but a second application would be. Callers sanitize exactly once.
	once := Sanitize("<")
	assert.Equal(t, "&lt;", once)

	twice := Sanitize(once)
	assert.Equal(t, "&amp;lt;", twice)
	assert.True(t, strings.Contains(twice, "&amp;"))
}
