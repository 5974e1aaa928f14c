package generator

// Context carries the caller-supplied inputs for one workflow stage. The
// server is stateless: the browser round-trips prior-stage outputs (such as
// KeywordsOutput) back in on each call.
type Context struct {
	PrimaryKeyword string `json:"primary_keyword"`
	Industry       string `json:"industry,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
	Tone           string `json:"tone,omitempty"`
	BrandName      string `json:"brand_name,omitempty"`
	UserNotes      string `json:"user_notes,omitempty"`
	KeywordsOutput string `json:"keywords_output,omitempty"`
}

// Documented defaults for the optional Context fields.
const (
	DefaultIndustry = "General"
	DefaultAudience = "General audience"
	DefaultTone     = "expert, informative, conversational"
)

func (c Context) withDefaults() Context {
	if c.Industry == "" {
		c.Industry = DefaultIndustry
	}
	if c.TargetAudience == "" {
		c.TargetAudience = DefaultAudience
	}
	if c.Tone == "" {
		c.Tone = DefaultTone
	}
	return c
}

// SectionSet holds the six named sections sliced out of a finished article
// blob. Every field is always populated; a section whose markers were missing
// is the empty string, so rendering never has to guard against absent keys.
type SectionSet struct {
	Keywords     string `json:"keywords"`
	TitleTag     string `json:"title_tag"`
	MetaDesc     string `json:"meta_desc"`
	ArticleTitle string `json:"article_title"`
	ArticleCopy  string `json:"article_copy"`
	FAQs         string `json:"faqs"`
}
