package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/threepipe/huey/cmd/huey"
)

const murderPage = `<html>
<head>
<title>RS 14:30 Murder</title>
<meta name="description" content="First degree murder">
<meta name="sortcode" content="RS0000001400000300">
</head>
<body>
<p class="00003">Text A</p>
<p class="00003">Text B</p>
</body>
</html>`

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "huey")
	assert.Contains(t, stdout.String(), "scrape")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"harvest"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_PostgresRequiresDSN(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"scrape", "--driver=postgres"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_ScrapeAndExport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("doc") {
		case "1":
			_, _ = w.Write([]byte(murderPage))
		default:
			// The retrieval service's placeholder for unassigned IDs.
			_, _ = w.Write([]byte("File not found."))
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "huey.db")
	outDir := filepath.Join(dir, "laws")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"scrape",
		"--min=1", "--max=3",
		"--db=" + dbPath,
		"--base-url=" + srv.URL,
		"--rate=1000",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "3 urls scanned")
	assert.Contains(t, stdout.String(), "1 statutes added")

	stdout.Reset()
	err = m.Run(context.Background(), []string{
		"export",
		"--db=" + dbPath,
		"--out=" + outDir,
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Exported 1 laws")

	content, err := os.ReadFile(filepath.Join(outDir, "rs", "title-14-criminal-law", "rs-14-30-murder.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "catch_line: First degree murder")
	assert.Contains(t, string(content), "Text A")
}
