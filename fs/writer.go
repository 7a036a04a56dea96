// Package fs writes the published feed and its companion index page to disk.
package fs

import (
	"os"
	"path/filepath"
)

// indexHTML is the static index page published next to the feed. The
// hyperlink target is the literal feed.xml regardless of the feed's actual
// filename; callers choosing another name get a dangling link.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Trading Economics Summary</title></head>
<body>
<h1>Trading Economics Summary</h1>
<p>Subscribe to the <a href="feed.xml">RSS feed</a> for hourly updates.</p>
</body>
</html>
`

// Writer writes a feed document and its index page to a directory.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFeed writes the RSS document to rssPath and the static index page to
// index.html in the same directory, returning the index path. Writes are
// plain whole-buffer writes with no atomicity between the pair; a failure
// after the first write can leave the feed without an index. The tool is
// re-run on a schedule, so the next run repairs it.
func (w *Writer) WriteFeed(rssPath, feedXML string) (string, error) {
	if err := os.WriteFile(rssPath, []byte(feedXML), 0644); err != nil {
		return "", err
	}

	indexPath := filepath.Join(filepath.Dir(rssPath), "index.html")
	if err := os.WriteFile(indexPath, []byte(indexHTML), 0644); err != nil {
		return "", err
	}

	return indexPath, nil
}
