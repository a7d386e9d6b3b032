// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// ParseFeed extracts raw items from an RSS or Atom document. The first
// feed category becomes the item category and all categories become tags.
func ParseFeed(r io.Reader) ([]RawItem, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	raws := make([]RawItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		raw := RawItem{
			ID:    item.GUID,
			Title: item.Title,
			Body:  plainText(item.Description),
			Tags:  item.Categories,
			Link:  item.Link,
		}
		if raw.Body == "" {
			raw.Body = plainText(item.Content)
		}
		if len(item.Categories) > 0 {
			raw.Category = item.Categories[0]
		}
		if item.Author != nil {
			raw.Author = item.Author.Name
		} else if len(item.Authors) > 0 && item.Authors[0] != nil {
			raw.Author = item.Authors[0].Name
		}
		switch {
		case item.PublishedParsed != nil:
			raw.Date = item.PublishedParsed.UTC().Format(time.RFC3339)
		case item.UpdatedParsed != nil:
			raw.Date = item.UpdatedParsed.UTC().Format(time.RFC3339)
		default:
			raw.Date = item.Published
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// plainText strips markup from a feed description.
func plainText(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return collapseSpace(doc.Text())
}
