// Package exporter persists a finished article to the output directory as a
// human-readable Markdown document, a flat JSON record, and an HTML preview.
package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"

	"github.com/dialagents/seogen/generator"
)

// maxBaseLen bounds the keyword part of the filename before the timestamp
// suffix.
const maxBaseLen = 30

// Exporter writes export documents under a fixed output directory.
type Exporter struct {
	dir string
	log *logrus.Logger
}

// Result reports where one save landed.
type Result struct {
	MDPath   string `json:"md_path"`
	JSONPath string `json:"json_path"`
	HTMLPath string `json:"html_path"`
}

func New(dir string, logger *logrus.Logger) *Exporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Exporter{dir: dir, log: logger}
}

// Save renders and writes the three export documents. The output directory
// is created if absent. Any I/O failure is returned as-is; partially written
// files are not cleaned up.
func (e *Exporter) Save(c generator.Context, sections generator.SectionSet) (Result, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	now := time.Now()
	base := sanitizeBase(c.PrimaryKeyword) + "_" + now.Format("20060102_150405")

	res := Result{
		MDPath:   filepath.Join(e.dir, base+".md"),
		JSONPath: filepath.Join(e.dir, base+".json"),
		HTMLPath: filepath.Join(e.dir, base+".html"),
	}

	if err := os.WriteFile(res.MDPath, []byte(renderMarkdown(c, sections, now)), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing markdown: %w", err)
	}

	record, err := json.MarshalIndent(exportRecord(c, sections, now), "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("encoding record: %w", err)
	}
	if err := os.WriteFile(res.JSONPath, record, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing record: %w", err)
	}

	page, err := renderHTML(sections)
	if err != nil {
		return Result{}, fmt.Errorf("rendering preview: %w", err)
	}
	if err := os.WriteFile(res.HTMLPath, page, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing preview: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"keyword": c.PrimaryKeyword,
		"md":      res.MDPath,
	}).Info("article exported")
	return res, nil
}

// sanitizeBase derives the filename stem from the primary keyword: spaces
// become underscores, slashes become hyphens, truncated to maxBaseLen bytes.
func sanitizeBase(keyword string) string {
	if keyword == "" {
		keyword = "article"
	}
	s := strings.ReplaceAll(keyword, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	if len(s) > maxBaseLen {
		s = s[:maxBaseLen]
	}
	return s
}

func renderMarkdown(c generator.Context, s generator.SectionSet, now time.Time) string {
	notes := c.KeywordsOutput
	if notes == "" {
		notes = "N/A"
	}
	return fmt.Sprintf(`# SEO ARTICLE OUTPUT

**Primary Keyword:** %s
**Generated:** %s

---

## SEO META DATA

**Title Tag:** %s

**Meta Description:** %s

**Keywords Used:** %s

---

## ARTICLE

%s

---

## FREQUENTLY ASKED QUESTIONS

%s

---

## KEYWORD RESEARCH NOTES

%s

---
*Generated by seogen*
`, c.PrimaryKeyword, now.Format("02 January 2006, 15:04"),
		s.TitleTag, s.MetaDesc, s.Keywords, s.ArticleCopy, s.FAQs, notes)
}

// exportRecord flattens the context, a generation timestamp, and the
// sections into one mapping. Every key is always present.
func exportRecord(c generator.Context, s generator.SectionSet, now time.Time) map[string]string {
	return map[string]string{
		"generated_at":    now.Format(time.RFC3339),
		"primary_keyword": c.PrimaryKeyword,
		"industry":        c.Industry,
		"target_audience": c.TargetAudience,
		"tone":            c.Tone,
		"brand_name":      c.BrandName,
		"user_notes":      c.UserNotes,
		"keywords_output": c.KeywordsOutput,
		"keywords":        s.Keywords,
		"title_tag":       s.TitleTag,
		"meta_desc":       s.MetaDesc,
		"article_title":   s.ArticleTitle,
		"article_copy":    s.ArticleCopy,
		"faqs":            s.FAQs,
	}
}

// renderHTML converts the article body to a standalone preview page.
func renderHTML(s generator.SectionSet) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(s.ArticleCopy), &body); err != nil {
		return nil, err
	}

	title := s.ArticleTitle
	if title == "" {
		title = s.TitleTag
	}

	var page bytes.Buffer
	page.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(title))
	if s.MetaDesc != "" {
		fmt.Fprintf(&page, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(s.MetaDesc))
	}
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
