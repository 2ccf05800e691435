package scrape

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

// Website is the structural report for a generic (non-YouTube) page.
type Website struct {
	Record    engine.Record       `json:"record"`
	Keywords  []string            `json:"keywords,omitempty"`
	Headings  map[string][]string `json:"headings"`
	Images    int                 `json:"images"`
	Links     int                 `json:"links"`
	Structure ContentStructure    `json:"content_structure"`
	Checklist SEOChecklist        `json:"seo_checklist"`
}

// ContentStructure counts the building blocks of the page body.
type ContentStructure struct {
	Paragraphs  int `json:"paragraphs"`
	Lists       int `json:"lists"`
	Tables      int `json:"tables"`
	Forms       int `json:"forms"`
	Scripts     int `json:"scripts"`
	Stylesheets int `json:"stylesheets"`
}

// SEOChecklist is the basic on-page SEO audit.
type SEOChecklist struct {
	HasTitle              bool `json:"has_title"`
	TitleLength           int  `json:"title_length"`
	HasMetaDescription    bool `json:"has_meta_description"`
	MetaDescriptionLength int  `json:"meta_description_length"`
	H1Count               int  `json:"h1_count"`
	HasOGTags             bool `json:"has_og_tags"`
	HasTwitterCards       bool `json:"has_twitter_cards"`
}

var (
	websiteTitleSelectors = []string{
		`meta[property="og:title"]`,
		`meta[name="title"]`,
		`title`,
		`h1`,
	}
	websiteDescSelectors = []string{
		`meta[property="og:description"]`,
		`meta[name="description"]`,
		`meta[name="Description"]`,
	}

	ogPropRe      = regexp.MustCompile(`^og:`)
	twitterNameRe = regexp.MustCompile(`^twitter:`)
)

// ParseWebsitePage builds the full structural report from page HTML.
func ParseWebsitePage(pageURL string, body []byte) (Website, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return Website{}, fmt.Errorf("parse website page: %w", err)
	}

	site := Website{
		Record: engine.Record{
			Kind:        engine.KindWebsite,
			URL:         pageURL,
			Title:       firstSelector(doc, websiteTitleSelectors, "Unknown Title"),
			Description: firstSelector(doc, websiteDescSelectors, ""),
		},
		Keywords: splitList(metaContent(doc, `meta[name="keywords"]`)),
		Headings: extractHeadings(doc),
		Images:   countWithAttr(doc, "img", "src"),
		Links:    countWithAttr(doc, "a", "href"),
		Structure: ContentStructure{
			Paragraphs:  doc.Find("p").Length(),
			Lists:       doc.Find("ul, ol").Length(),
			Tables:      doc.Find("table").Length(),
			Forms:       doc.Find("form").Length(),
			Scripts:     doc.Find("script").Length(),
			Stylesheets: doc.Find(`link[rel="stylesheet"]`).Length(),
		},
	}
	site.Record.Tags = site.Keywords
	site.Checklist = auditSEO(doc)

	return site, nil
}

// extractHeadings collects h1 through h6 text in document order. Every
// level is present in the map, empty levels as empty slices.
func extractHeadings(doc *goquery.Document) map[string][]string {
	headings := make(map[string][]string, 6)
	for i := 1; i <= 6; i++ {
		tag := fmt.Sprintf("h%d", i)
		texts := []string{}
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				texts = append(texts, t)
			}
		})
		headings[tag] = texts
	}
	return headings
}

// countWithAttr counts elements matching sel that carry a non-empty attr.
func countWithAttr(doc *goquery.Document, sel, attr string) int {
	n := 0
	doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok && v != "" {
			n++
		}
	})
	return n
}

func auditSEO(doc *goquery.Document) SEOChecklist {
	title := doc.Find("title").First().Text()
	desc := metaContent(doc, `meta[name="description"]`)

	hasOG := false
	hasTwitter := false
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if prop, ok := s.Attr("property"); ok && ogPropRe.MatchString(prop) {
			hasOG = true
		}
		if name, ok := s.Attr("name"); ok && twitterNameRe.MatchString(name) {
			hasTwitter = true
		}
		return !(hasOG && hasTwitter)
	})

	return SEOChecklist{
		HasTitle:              title != "",
		TitleLength:           utf8.RuneCountInString(title),
		HasMetaDescription:    desc != "",
		MetaDescriptionLength: utf8.RuneCountInString(desc),
		H1Count:               doc.Find("h1").Length(),
		HasOGTags:             hasOG,
		HasTwitterCards:       hasTwitter,
	}
}
