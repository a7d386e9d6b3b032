// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// cardSelectors are the listing cards rendered on the news and partner pages.
var cardSelectors = map[types.Kind]string{
	types.KindNews:    ".news-card, .article-card",
	types.KindPartner: ".partner-card",
}

// ParseMarkup extracts raw items from rendered page markup. Each card
// contributes its data-* attributes (id, category or type, date,
// popularity, tags, author), its heading as the title and its first
// excerpt or paragraph as the body.
func ParseMarkup(r io.Reader, kind types.Kind) ([]RawItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	selector, ok := cardSelectors[kind]
	if !ok {
		return nil, fmt.Errorf("no card selector for listing kind %q", kind)
	}

	var raws []RawItem
	doc.Find(selector).Each(func(_ int, card *goquery.Selection) {
		raw := RawItem{
			ID:       attr(card, "data-id"),
			Category: attr(card, "data-category"),
			Type:     attr(card, "data-type"),
			Date:     attr(card, "data-date"),
			Author:   attr(card, "data-author"),
			Title:    firstText(card, "h2, h3, .card-title"),
			Body:     firstText(card, ".card-excerpt, .partner-description, .excerpt, p"),
		}
		if raw.Date == "" {
			if dt, ok := card.Find("time").First().Attr("datetime"); ok {
				raw.Date = dt
			} else {
				raw.Date = firstText(card, "time, .date, .news-date")
			}
		}
		if raw.Author == "" {
			raw.Author = firstText(card, ".author, .news-author")
		}
		if tags := attr(card, "data-tags"); tags != "" {
			raw.Tags = strings.Split(tags, ",")
		}
		if pop := attr(card, "data-popularity"); pop != "" {
			if n, err := strconv.Atoi(pop); err == nil {
				raw.Popularity = &n
			}
		}
		if href, ok := card.Find("a[href]").First().Attr("href"); ok {
			raw.Link = strings.TrimSpace(href)
		}
		raws = append(raws, raw)
	})
	return raws, nil
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

func firstText(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}
