package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vahedctl/pkg/scraper"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.html"), "b")
	writeFile(t, filepath.Join(dir, "a.HTM"), "a")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")
	writeFile(t, filepath.Join(dir, "noext"), "skip")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.html"), 0755))

	docs, err := ScanDir(dir, []string{".html", "htm"}, zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "a.HTM", docs[0].Name)
	assert.Equal(t, []byte("a"), docs[0].Body)
	assert.Equal(t, "b.html", docs[1].Name)
}

func TestScanDir_UnreadableFileIsReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.html"), "ok")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "broken.html")))

	var buf bytes.Buffer
	docs, err := ScanDir(dir, []string{".html"}, zerolog.New(&buf))
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "good.html", docs[0].Name)
	assert.Contains(t, buf.String(), "broken.html")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestScanDir_MissingDirectory(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "raw_data"), []string{".html"}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrNoInputDir)
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=windows-1256")
		w.Write([]byte("<p>ok</p>"))
	}))
	defer server.Close()

	var buf bytes.Buffer
	urls := []string{server.URL + "/broken", server.URL + "/export"}
	docs, err := Fetch(context.Background(), scraper.NewClient(), urls, zerolog.New(&buf))
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, server.URL+"/export", docs[0].Name)
	assert.Equal(t, "text/html; charset=windows-1256", docs[0].ContentType)
	assert.Contains(t, buf.String(), "/broken")
}

func TestFetch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, scraper.NewClient(), []string{"http://127.0.0.1:1/"}, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestDecode(t *testing.T) {
	persian := "<td>علي</td>"
	encoded, err := charmap.Windows1256.NewEncoder().String(persian)
	require.NoError(t, err)

	t.Run("meta charset", func(t *testing.T) {
		body := `<html><head><meta charset="windows-1256"></head><body>` + encoded + `</body></html>`
		r, name := Decode(Document{Name: "a.html", Body: []byte(body)})
		assert.Equal(t, "windows-1256", name)
		assert.Contains(t, readAll(t, r), persian)
	})

	t.Run("content type", func(t *testing.T) {
		r, name := Decode(Document{Name: "u", Body: []byte(encoded), ContentType: "text/html; charset=windows-1256"})
		assert.Equal(t, "windows-1256", name)
		assert.Equal(t, persian, readAll(t, r))
	})

	t.Run("undeclared utf-8 after a long ascii head", func(t *testing.T) {
		body := "<html><head>" + strings.Repeat("<!-- padding -->", 200) + "</head><body>" + persian + "</body></html>"
		r, name := Decode(Document{Name: "b.html", Body: []byte(body)})
		assert.Equal(t, "utf-8", name)
		assert.Equal(t, body, readAll(t, r))
	})
}

func TestDocumentError(t *testing.T) {
	err := &DocumentError{Name: "x.html", Err: os.ErrPermission}
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "x.html")
}
