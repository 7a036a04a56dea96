// Package html provides a streaming implementation of tilefeed.Extractor
// built on the golang.org/x/net/html tokenizer. It walks real-world,
// frequently malformed markup in a single forward pass without building a
// DOM tree.
package html

import (
	"strings"

	"github.com/fwojciec/tilefeed"
	xhtml "golang.org/x/net/html"
)

// Default marker classes and title element for the Trading Economics
// homepage. Matching is substring containment on the raw class attribute,
// which tolerates adjacent or renamed sibling classes at the cost of
// possible false positives.
const (
	DefaultContainerClass   = "home-tile-outside"
	DefaultDescriptionClass = "home-tile-description"

	titleTag   = "b"
	descEndTag = "div"
)

// Ensure Extractor implements tilefeed.Extractor at compile time.
var _ tilefeed.Extractor = (*Extractor)(nil)

// Extractor extracts summary tiles from HTML using a depth-tracked state
// machine over tokenizer events. One Extractor is safe for reuse; all scan
// state is local to a single Extract call.
type Extractor struct {
	containerClass string
	descClass      string
	limit          int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContainerClass sets the class marker identifying a tile container.
func WithContainerClass(class string) Option {
	return func(e *Extractor) {
		e.containerClass = class
	}
}

// WithDescriptionClass sets the class marker identifying a tile description.
func WithDescriptionClass(class string) Option {
	return func(e *Extractor) {
		e.descClass = class
	}
}

// WithLimit sets the maximum number of tiles returned.
// Defaults to tilefeed.MaxTiles.
func WithLimit(n int) Option {
	return func(e *Extractor) {
		e.limit = n
	}
}

// NewExtractor creates a new Extractor with the Trading Economics defaults.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		containerClass: DefaultContainerClass,
		descClass:      DefaultDescriptionClass,
		limit:          tilefeed.MaxTiles,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract scans the document and returns up to the configured limit of
// tiles in document order. Malformed markup never yields an error: an
// unclosed container is discarded at end of input, a container without a
// bold title is dropped silently, and a missing description leaves the
// summary empty.
func (e *Extractor) Extract(doc string) ([]tilefeed.Tile, error) {
	z := xhtml.NewTokenizer(strings.NewReader(doc))

	var (
		tiles   []tilefeed.Tile
		current tilefeed.Tile
		inTile  bool
		inTitle bool
		inDesc  bool
		depth   int
	)

	// The depth counter increments on every start tag while inside a tile,
	// including void tags the source never closes. That keeps the counter
	// symmetric with end tags on well-formed markup and merely shifts a
	// tile's boundary on broken markup instead of derailing the whole scan.
	startTag := func(name, class string) {
		if strings.Contains(class, e.containerClass) && !inTile {
			inTile = true
			current = tilefeed.Tile{}
			depth = 0
		}
		if !inTile {
			return
		}
		depth++
		if name == titleTag && current.Title == "" {
			inTitle = true
		}
		if strings.Contains(class, e.descClass) {
			inDesc = true
		}
	}

	endTag := func(name string) {
		if !inTile {
			return
		}
		depth--
		if name == titleTag {
			inTitle = false
		}
		if inDesc && name == descEndTag {
			inDesc = false
		}
		if depth <= 0 {
			inTile = false
			if current.Title != "" {
				tiles = append(tiles, current)
			}
		}
	}

scan:
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			// End of input, or an input error the tokenizer could not
			// recover from. Either way the scan is over; an in-progress
			// tile never saw its closing tag and is discarded.
			break scan
		case xhtml.StartTagToken:
			startTag(tagNameAndClass(z))
		case xhtml.SelfClosingTagToken:
			// A self-closing tag is a start immediately followed by its
			// own end, so the depth counter nets out to zero.
			name, class := tagNameAndClass(z)
			startTag(name, class)
			endTag(name)
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			endTag(string(name))
		case xhtml.TextToken:
			// Verbatim append: text split across adjacent nodes by
			// intervening inline markup concatenates in document order.
			if inTitle {
				current.Title += string(z.Text())
			} else if inDesc {
				current.Summary += string(z.Text())
			}
		}
	}

	for i := range tiles {
		tiles[i].Title = tilefeed.NormalizeSpace(tiles[i].Title)
		tiles[i].Summary = tilefeed.NormalizeSpace(tiles[i].Summary)
	}
	if len(tiles) > e.limit {
		tiles = tiles[:e.limit]
	}
	return tiles, nil
}

// tagNameAndClass reads the current tag's lowercased name and its raw
// class attribute value. A duplicated class attribute keeps the last value.
func tagNameAndClass(z *xhtml.Tokenizer) (name, class string) {
	tag, hasAttr := z.TagName()
	name = string(tag)
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == "class" {
			class = string(val)
		}
	}
	return name, class
}
