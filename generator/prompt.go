package generator

import "fmt"

// Prompt is one request to the model. MaxTokens of zero means the provider
// default.
type Prompt struct {
	System    string
	User      string
	MaxTokens int
}

// BuildKeywordsPrompt produces the LSI keyword research prompt (stage 1).
// Never fails; missing optional context fields get the documented defaults.
func BuildKeywordsPrompt(c Context) Prompt {
	c = c.withDefaults()
	user := fmt.Sprintf(`
%s

PRIMARY KEYWORD: %q
INDUSTRY/NICHE: %s
TARGET AUDIENCE: %s

Following the SEO Semantic Keywords Best Practice Guide, generate a comprehensive LSI keyword list.

Output in this EXACT format (use the pipe-separated table):

PRIMARY KEYWORD: %s

KEYWORD INTENT: [informational / commercial / both] — [brief explanation of why]

BEST CONTENT ANGLE: [1-2 sentences on the best angle to take for this keyword]

LSI KEYWORDS TABLE:
| Keyword | Est. Monthly Searches | Intent |
|---|---|---|
[10-15 rows]

TOP 5 KEYWORDS TO WEAVE INTO ARTICLE:
1. [keyword] — [why it matters for this topic]
2. [keyword] — [why]
3. [keyword] — [why]
4. [keyword] — [why]
5. [keyword] — [why]

Note: Search volume estimates are indicative — verify with Google Keyword Planner or Ahrefs.
`, SemanticKeywordsGuide, c.PrimaryKeyword, c.Industry, c.TargetAudience, c.PrimaryKeyword)

	return Prompt{User: user}
}

// BuildBriefPrompt produces the content research / article brief prompt
// (stage 2). keywordsOutput is the completed stage-1 text, echoed back by
// the caller.
func BuildBriefPrompt(c Context, keywordsOutput string) Prompt {
	c = c.withDefaults()
	user := fmt.Sprintf(`
%s

PRIMARY KEYWORD: %q
INDUSTRY: %s
TARGET AUDIENCE: %s

KEYWORD RESEARCH COMPLETED:
%s

Based on the SEO Content Research Best Practice Guide, produce a concise article brief.

Output in this EXACT format:

SEARCH INTENT: [informational / commercial / navigational / transactional]
USER PROBLEM: [What problem is the user trying to solve with this search?]

RECOMMENDED ARTICLE TITLE (H1):
[Compelling title containing primary keyword]

TITLE TAG (max 60 chars):
[Title tag]

META DESCRIPTION (150-160 chars):
[Meta description — include primary keyword, make it clickable]

TARGET WORD COUNT: [specific number between 800-2000]

ARTICLE OUTLINE:
## [H2 Heading 1] — [brief note on what this section covers, which LSI keywords to use]
### [H3 sub-heading if needed]
## [H2 Heading 2] — [note]
## [H2 Heading 3] — [note]
## [H2 Heading 4] — [note]
## [H2 Heading 5 — optional]
## Frequently Asked Questions
## [Definitions if complex terms expected]

FAQ SUGGESTIONS (5 questions a real reader would ask):
1. [Question]
2. [Question]
3. [Question]
4. [Question]
5. [Question]
`, ContentResearchGuide, c.PrimaryKeyword, c.Industry, c.TargetAudience, keywordsOutput)

	return Prompt{User: user}
}

// articleSystem pins the model to the delimiter output contract.
const articleSystem = "You are a world-class SEO copywriter who strictly follows best practice guidelines. " +
	"Always produce the article in the exact output format requested. " +
	"Never truncate or summarise — write the full article."

// BuildArticlePrompt produces the full article draft prompt (stage 3) from
// the context plus the stage-1 and stage-2 outputs.
func BuildArticlePrompt(c Context, keywordsOutput, briefOutput string) Prompt {
	c = c.withDefaults()
	brand := c.BrandName
	if brand == "" {
		brand = "Not specified"
	}
	notes := c.UserNotes
	if notes == "" {
		notes = "None"
	}

	user := fmt.Sprintf(`
%s

You are writing a complete, publish-ready SEO article. Follow ALL guidelines above precisely.

INPUTS:
- Primary Keyword: %q
- Industry/Niche: %s
- Target Audience: %s
- Tone of Voice: %s
- Brand/Website: %s
- Additional Notes from User: %s

KEYWORD RESEARCH:
%s

ARTICLE BRIEF & OUTLINE:
%s

CRITICAL REQUIREMENTS CHECKLIST:
✅ Flesch-Kincaid readability: AIM FOR 50-60 (short sentences, plain language)
✅ Total word count: 800–2000 words
✅ Each section: 120–300 words
✅ Primary keyword in: H1 title, first paragraph, at least 2 subheadings, conclusion
✅ LSI keywords woven naturally — NO keyword stuffing
✅ Short paragraphs: 2–4 sentences max
✅ Use numbers, statistics, examples where relevant
✅ Emotional trigger words where appropriate
✅ Include Definitions section at bottom if complex terms are used
✅ Strong hook in the introduction (first 2 sentences must grab attention)
✅ Strong conclusion with a clear takeaway or CTA
✅ 5 FAQs with full answers at the end

%s
`, ArticleCopyGuide, c.PrimaryKeyword, c.Industry, c.TargetAudience, c.Tone, brand, notes,
		keywordsOutput, briefOutput, OutputFormat)

	return Prompt{System: articleSystem, User: user}
}

// BuildRefinePrompt produces the refinement prompt: apply one requested
// change to the current article while preserving the delimiter format.
func BuildRefinePrompt(currentArticle, refinement, primaryKeyword string) Prompt {
	user := fmt.Sprintf(`
Here is the current SEO article:

%s

REFINEMENT REQUEST: %s

Apply ONLY the requested refinement. Maintain all SEO best practices:
- Primary keyword: %q
- Keep the exact same output format (---KEYWORDS--- ... ---END---)
- Maintain Flesch-Kincaid 50-60 readability
- Keep word count 800-2000 words
- Preserve all section delimiters exactly as they are

Output the complete refined article in the same format.
`, currentArticle, refinement, primaryKeyword)

	return Prompt{User: user}
}
