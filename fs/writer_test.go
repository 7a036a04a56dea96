package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tilefeed/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteFeed(t *testing.T) {
	t.Parallel()

	t.Run("writes feed and index pair", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		rssPath := filepath.Join(dir, "feed.xml")

		indexPath, err := fs.NewWriter().WriteFeed(rssPath, "<rss/>")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "index.html"), indexPath)

		feed, err := os.ReadFile(rssPath)
		require.NoError(t, err)
		assert.Equal(t, "<rss/>", string(feed))

		index, err := os.ReadFile(indexPath)
		require.NoError(t, err)
		assert.Contains(t, string(index), `<a href="feed.xml">`)
		assert.Contains(t, string(index), "Trading Economics Summary")
	})

	t.Run("index links feed.xml even for another feed filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		rssPath := filepath.Join(dir, "economics.xml")

		indexPath, err := fs.NewWriter().WriteFeed(rssPath, "<rss/>")
		require.NoError(t, err)

		index, err := os.ReadFile(indexPath)
		require.NoError(t, err)
		assert.Contains(t, string(index), `<a href="feed.xml">`)
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		t.Parallel()

		rssPath := filepath.Join(t.TempDir(), "missing", "feed.xml")

		_, err := fs.NewWriter().WriteFeed(rssPath, "<rss/>")
		require.Error(t, err)
	})
}
