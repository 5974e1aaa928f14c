package exporter

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialagents/seogen/generator"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSanitizeBase(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    string
	}{
		{"spaces become underscores", "best running shoes", "best_running_shoes"},
		{"slashes become hyphens", "24/7 gym access", "24-7_gym_access"},
		{"empty keyword falls back", "", "article"},
		{"truncated to 30 bytes", "a very long primary keyword that keeps going", "a_very_long_primary_keyword_th"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeBase(tt.keyword)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), maxBaseLen)
			assert.NotContains(t, got, " ")
			assert.NotContains(t, got, "/")
		})
	}
}

func TestSaveWritesAllDocuments(t *testing.T) {
	dir := t.TempDir()
	exp := New(filepath.Join(dir, "articles"), quietLogger())

	ctx := generator.Context{
		PrimaryKeyword: "best running shoes",
		Industry:       "Sportswear",
		KeywordsOutput: "| running shoes | 10000 | commercial |",
	}
	sections := generator.SectionSet{
		Keywords:     "foo, bar",
		TitleTag:     "Best Running Shoes 2026",
		MetaDesc:     "Find the best running shoes.",
		ArticleTitle: "The Best Running Shoes",
		ArticleCopy:  "# The Best Running Shoes\n\n## Why Fit Matters\n\nBody text.",
		FAQs:         "Q1: q\nA1: a",
	}

	res, err := exp.Save(ctx, sections)
	require.NoError(t, err)

	namePattern := regexp.MustCompile(`^best_running_shoes_\d{8}_\d{6}\.(md|json|html)$`)
	for _, path := range []string{res.MDPath, res.JSONPath, res.HTMLPath} {
		assert.Regexp(t, namePattern, filepath.Base(path))
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	}

	md, err := os.ReadFile(res.MDPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# SEO ARTICLE OUTPUT")
	assert.Contains(t, string(md), "**Title Tag:** Best Running Shoes 2026")
	assert.Contains(t, string(md), "## ARTICLE\n\n# The Best Running Shoes")
	assert.Contains(t, string(md), "## FREQUENTLY ASKED QUESTIONS\n\nQ1: q\nA1: a")
	// Stage-1 research is echoed verbatim for traceability.
	assert.Contains(t, string(md), "| running shoes | 10000 | commercial |")
}

func TestSaveRecordMergesContextAndSections(t *testing.T) {
	exp := New(t.TempDir(), quietLogger())

	res, err := exp.Save(
		generator.Context{PrimaryKeyword: "trail shoes", Tone: "playful"},
		generator.SectionSet{Keywords: "a, b", TitleTag: "T"},
	)
	require.NoError(t, err)

	data, err := os.ReadFile(res.JSONPath)
	require.NoError(t, err)

	var record map[string]string
	require.NoError(t, json.Unmarshal(data, &record))

	assert.Equal(t, "trail shoes", record["primary_keyword"])
	assert.Equal(t, "playful", record["tone"])
	assert.Equal(t, "a, b", record["keywords"])
	assert.Equal(t, "T", record["title_tag"])
	assert.NotEmpty(t, record["generated_at"])
	// Flat mapping: every field present even when empty.
	for _, key := range []string{"industry", "target_audience", "brand_name", "user_notes",
		"keywords_output", "meta_desc", "article_title", "article_copy", "faqs"} {
		_, ok := record[key]
		assert.True(t, ok, "missing key %s", key)
	}
}

func TestSaveMissingSectionsStillRenders(t *testing.T) {
	exp := New(t.TempDir(), quietLogger())

	res, err := exp.Save(generator.Context{PrimaryKeyword: "x"}, generator.SectionSet{})
	require.NoError(t, err)

	md, err := os.ReadFile(res.MDPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "## KEYWORD RESEARCH NOTES\n\nN/A")
}

func TestSaveHTMLPreview(t *testing.T) {
	exp := New(t.TempDir(), quietLogger())

	res, err := exp.Save(generator.Context{PrimaryKeyword: "x"}, generator.SectionSet{
		ArticleTitle: "Trail Shoes",
		MetaDesc:     "All about trail shoes.",
		ArticleCopy:  "# Trail Shoes\n\n## Grip\n\nSticky rubber.",
	})
	require.NoError(t, err)

	page, err := os.ReadFile(res.HTMLPath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Trail Shoes</title>")
	assert.Contains(t, string(page), `<meta name="description" content="All about trail shoes.">`)
	assert.Contains(t, string(page), "<h2>Grip</h2>")
}

func TestSaveCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "out")
	exp := New(dir, quietLogger())

	_, err := exp.Save(generator.Context{PrimaryKeyword: "x"}, generator.SectionSet{})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveFailsWhenDirectoryUnwritable(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	exp := New(filepath.Join(file, "out"), quietLogger())
	_, err := exp.Save(generator.Context{PrimaryKeyword: "x"}, generator.SectionSet{})
	assert.Error(t, err)
}
