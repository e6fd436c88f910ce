package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeCmd_Use(t *testing.T) {
	assert.Equal(t, "scrape", scrapeCmd.Use)
}

func TestScrapeCmd_HasMaxModulesFlag(t *testing.T) {
	flag := scrapeCmd.Flags().Lookup("max-modules")
	require.NotNil(t, flag, "max-modules flag should exist")
	assert.Equal(t, "m", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestScrapeCmd_HasTermFlag(t *testing.T) {
	flag := scrapeCmd.Flags().Lookup("term")
	require.NotNil(t, flag, "term flag should exist")
	assert.Equal(t, "t", flag.Shorthand)
}

func TestScrapeCmd_PrintsSummary(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"scrape"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Tried 48 candidate codes")
	assert.Contains(t, out, "found 1 modules")
	assert.Contains(t, out, "1 with learning outcomes")
	assert.Contains(t, out, "COMP10010")
	assert.Contains(t, out, "Introduction to Programming")
}

func TestScrapeCmd_PassesFlagsToOrchestrator(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := scrapeOrchestrator.(*mockScrapeOrchestrator)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"scrape", "--max-modules", "5", "--term", "202400"})
	defer func() {
		rootCmd.SetArgs(nil)
		scrapeMaxModules = 0
		scrapeTerm = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 5, mock.gotOpts.MaxModules)
	assert.Equal(t, "202400", mock.gotOpts.Term)
}

func TestScrapeCmd_PropagatesError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	scrapeOrchestrator = &mockScrapeOrchestrator{err: errors.New("catalogue unreachable")}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"scrape"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scrape failed")
}

func TestScrapeCmd_RequiresService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	scrapeOrchestrator = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"scrape"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
