package generator

import "strings"

// Section delimiter markers the article and refine stages are instructed to
// emit, in document order. See OutputFormat.
const (
	MarkerKeywords     = "---KEYWORDS---"
	MarkerTitleTag     = "---TITLETAG---"
	MarkerMetaDesc     = "---METADESC---"
	MarkerArticleTitle = "---ARTICLETITLE---"
	MarkerArticleCopy  = "---ARTICLECOPY---"
	MarkerFAQs         = "---FAQS---"
	MarkerEnd          = "---END---"
)

// ExtractSections slices a delimiter-tagged article blob into its six named
// sections. Each marker pair is searched independently from the start of the
// blob; a missing start or end marker degrades that section to "". Never
// errors, and is idempotent over the same blob.
func ExtractSections(raw string) SectionSet {
	return SectionSet{
		Keywords:     extractBetween(raw, MarkerKeywords, MarkerTitleTag),
		TitleTag:     extractBetween(raw, MarkerTitleTag, MarkerMetaDesc),
		MetaDesc:     extractBetween(raw, MarkerMetaDesc, MarkerArticleTitle),
		ArticleTitle: extractBetween(raw, MarkerArticleTitle, MarkerArticleCopy),
		ArticleCopy:  extractBetween(raw, MarkerArticleCopy, MarkerFAQs),
		FAQs:         extractBetween(raw, MarkerFAQs, MarkerEnd),
	}
}

// extractBetween returns the trimmed text strictly between the first
// occurrence of start and the first occurrence of end after it. Only first
// occurrences count, so a model that echoes a marker early truncates that
// section rather than failing.
func extractBetween(raw, start, end string) string {
	s := strings.Index(raw, start)
	if s < 0 {
		return ""
	}
	s += len(start)
	e := strings.Index(raw[s:], end)
	if e < 0 {
		return ""
	}
	return strings.TrimSpace(raw[s : s+e])
}
