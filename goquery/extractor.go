// Package goquery implements field and metadata extraction over the
// Legislature's law pages using the goquery HTML parsing library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/threepipe/huey"
)

// lawParagraphClass is the fixed class marker that distinguishes
// statutory body paragraphs from headers and footers in the source
// markup.
const lawParagraphClass = "00003"

// nbsp is the decoded form of the &nbsp; entity, which by convention
// separates a chapter/section label from the descriptive sentence that
// follows it.
const nbsp = " "

// Ensure Extractor implements huey.Extractor at compile time.
var _ huey.Extractor = (*Extractor)(nil)

// Extractor extracts structured law fields from raw page HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page and returns the extracted fields and meta
// tag mapping.
//
// The retrieval service answers unknown document IDs with a "file not
// found" placeholder that carries no html element at all; that case is
// reported as ENOTFOUND. A page with structure but no title element
// yields empty title-derived fields, which downstream assembly treats
// as a skip.
func (e *Extractor) Extract(html string) (*huey.FieldSet, huey.Metadata, error) {
	if !strings.Contains(strings.ToLower(html), "<html") {
		return nil, nil, huey.Errorf(huey.ENOTFOUND, "placeholder page with no document structure")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, huey.Errorf(huey.EINVALID, "failed to parse HTML: %v", err)
	}

	fields := &huey.FieldSet{}

	if title := doc.Find("title").First(); title.Length() > 0 {
		text := strings.TrimSpace(title.Text())
		fields.TitleText = text
		fields.SectionNumber = text
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		if raw, err := body.Html(); err == nil {
			fields.BodyRaw = raw
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if sel.HasClass(lawParagraphClass) {
			paragraphs = append(paragraphs, strings.TrimSpace(sel.Text()))
		}
	})
	fields.BodyText = strings.Join(paragraphs, "\n")

	fields.AltDescription = altDescription(doc)

	return fields, extractMetadata(doc), nil
}

// extractMetadata collects the page's meta name/content pairs. Keys
// keep their source casing; the sortcode tag in particular appears in
// two casings across the corpus.
func extractMetadata(doc *goquery.Document) huey.Metadata {
	meta := huey.Metadata{}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok || name == "" {
			return
		}
		content, _ := sel.Attr("content")
		meta[name] = content
	})
	return meta
}

// altDescription derives a fallback catch line from the first
// justify-aligned paragraph. Most pages carry the description in their
// first paragraph, but chapter openers put the centered chapter name
// there instead; only the justify-aligned ones hold descriptive text.
// The label before the first non-breaking space is dropped.
//
// This is a best-effort heuristic carried over from the source corpus;
// assembly only consults it when the meta description is absent.
func altDescription(doc *goquery.Document) string {
	para := doc.Find(`p[align="justify"]`).First()
	if para.Length() == 0 {
		return ""
	}
	parts := strings.SplitN(para.Text(), nbsp, 3)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
