package jobfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PrefersJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Menu Menu Menu</nav>
		<div class="job-description"><p>Senior Go Engineer</p><p>Build distributed systems.</p></div>
		<footer>Legal stuff</footer>
	</body></html>`

	text, err := extractText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "distributed systems")
	assert.NotContains(t, text, "Menu")
	assert.NotContains(t, text, "Legal stuff")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p><script>var x = 1;</script></body></html>`

	text, err := extractText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text.")
	assert.NotContains(t, text, "var x")
}

func TestCleanWhitespace(t *testing.T) {
	in := "  line one  \n\n\n   line two\n   \n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(in))
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, needsBrowser("short"))
	assert.False(t, needsBrowser(strings.Repeat("long enough content ", 50)))
}

func TestPostingText(t *testing.T) {
	body := `<html><body><main>` + strings.Repeat("<p>We are hiring a Go engineer.</p>", 40) + `</main></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	text, err := PostingText(context.Background(), srv.URL, false)
	require.NoError(t, err)
	assert.Contains(t, text, "hiring a Go engineer")
}

func TestPostingText_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := PostingText(context.Background(), srv.URL, false)
	require.Error(t, err)

	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Message, "404")
}

func TestPostingText_InvalidURL(t *testing.T) {
	_, err := PostingText(context.Background(), "not a url", false)
	assert.Error(t, err)
}
