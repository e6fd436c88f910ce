package ucd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// pad grows a page past the not-found size threshold.
func pad(page string) string {
	return page + "\n<!-- " + strings.Repeat("descriptor page padding ", 60) + " -->\n"
}

func TestConnector_Fetch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"p_tag":    q.Get("p_tag"),
			"MODULE":   q.Get("MODULE"),
			"ARCHIVE":  q.Get("ARCHIVE"),
			"TERMCODE": q.Get("TERMCODE"),
		}
		w.Write([]byte(pad(samplePage))) //nolint:errcheck
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL, Term: "202400"})
	defer c.Close()

	m, err := c.Fetch(context.Background(), "COMP10010")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "COMP10010", m.Code)
	assert.Contains(t, m.URL, "MODULE=COMP10010")
	assert.Equal(t, "Introduction to Programming (COMP10010)", m.Title)
	assert.Len(t, m.LearningOutcomes, 2)

	assert.Equal(t, map[string]string{
		"p_tag":    "MODULE",
		"MODULE":   "COMP10010",
		"ARCHIVE":  "Y",
		"TERMCODE": "202400",
	}, gotQuery)
}

func TestConnector_FetchAbsentModule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(pad("<html><body>No data found for this module.</body></html>"))) //nolint:errcheck
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	m, err := c.Fetch(context.Background(), "COMP99999")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestConnector_FetchThinPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body></body></html>")) //nolint:errcheck
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	m, err := c.Fetch(context.Background(), "COMP99999")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestConnector_FetchUntitledPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(pad("<html><body><p>Large page with no recognisable descriptor.</p></body></html>"))) //nolint:errcheck
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	m, err := c.Fetch(context.Background(), "COMP99999")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestConnector_FetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	_, err := c.Fetch(context.Background(), "COMP10010")
	assert.ErrorIs(t, err, domain.ErrCatalogueUnavailable)
}

func TestConnector_FetchRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	_, err := c.Fetch(context.Background(), "COMP10010")
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestConnector_CodesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.txt")
	content := "COMP10010\n# a comment\n\nCOMP20080\n  COMP30010  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	c := New(Config{ModulesFile: path})
	codes, err := c.Codes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"COMP10010", "COMP20080", "COMP30010"}, codes)
}

func TestConnector_CodesTestMode(t *testing.T) {
	c := New(Config{ModulesFile: filepath.Join(t.TempDir(), "absent.txt"), TestMode: true})
	codes, err := c.Codes(context.Background())
	require.NoError(t, err)

	// 2 levels x 2 series x 10 numbers, plus 4 level-3 and 4 level-4 samples.
	assert.Len(t, codes, 48)
	assert.Equal(t, "COMP10000", codes[0])
	assert.Contains(t, codes, "COMP11090")
	assert.Contains(t, codes, "COMP30030")
	assert.Contains(t, codes, "COMP40030")
	assert.NotContains(t, codes, "COMP20100")
}

func TestConnector_CodesFullMode(t *testing.T) {
	c := New(Config{ModulesFile: filepath.Join(t.TempDir(), "absent.txt")})
	codes, err := c.Codes(context.Background())
	require.NoError(t, err)

	// 4 levels x 6 series x 20 numbers.
	assert.Len(t, codes, 480)
	assert.Contains(t, codes, "COMP10000")
	assert.Contains(t, codes, "COMP47190")
	assert.NotContains(t, codes, "COMP15000")
}

func TestConnector_DescriptorURL(t *testing.T) {
	c := New(Config{})
	u := c.descriptorURL("COMP10010")

	assert.True(t, strings.HasPrefix(u, DefaultBaseURL+"?"))
	assert.Contains(t, u, "MODULE=COMP10010")
	assert.Contains(t, u, "TERMCODE="+DefaultTerm)
	assert.Contains(t, u, "ARCHIVE=Y")
}
