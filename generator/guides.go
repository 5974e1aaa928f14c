package generator

// The SEO best-practice guides below are embedded verbatim into the stage
// prompts. They are the product content of this tool; edit with care since
// the article output format contract lives in OutputFormat.

// SemanticKeywordsGuide drives the keyword research stage.
const SemanticKeywordsGuide = `
SEO SEMANTIC KEYWORDS BEST PRACTICE GUIDE (LSI):
Objective: Enhance webpage relevancy using Latent Semantic Indexing (LSI) keywords.

Instructions:
1. Identify the primary keyword as the focal point.
2. Generate 10-15 LSI keywords semantically related to it.
3. Maintain topical relevance — keywords must establish page authority on the subject.
4. Assign estimated monthly search volume to each keyword.
5. Identify keyword intent: informational, commercial, or both.

Tips:
- Clearly identify primary vs secondary keywords.
- Indicate low confidence where uncertain.
- Estimate search volumes based on typical industry patterns.
- Focus on keywords that will genuinely improve topical authority.
`

// CategoryTaggingGuide describes keyword intent/category tagging. No stage
// prompts with it today; it ships for parity with the published guide set.
const CategoryTaggingGuide = `
SEO CATEGORY TAGGING BEST PRACTICE GUIDE:
Objective: Tag keywords by intent and category for grouping and performance tracking.

Steps:
1. Tag 1 - Keyword Intent:
   - Commercial: Direct, purchase-focused, typically ≤4 words.
   - Informational: Usually >4 words, questions or comparisons.
   - Tag as: informational, commercial, or both.
2. Tags 2-4 - Category Hierarchy:
   - Tag 2: Top-level category
   - Tag 3: Sub-category of Tag 2
   - Tag 4: Sub-category of Tag 3
3. Tags 5+ - Specific differentiation: features, material, colour, size, gender, etc.
4. Mark uncertain keywords as [untagged].

Key Considerations:
- Understand full context before creating categories.
- Do not invent information if unsure.
- Avoid rude or explicit terms.
`

// ContentResearchGuide drives the article brief stage.
const ContentResearchGuide = `
SEO CONTENT RESEARCH BEST PRACTICE GUIDE:
Steps:
1. Understand the topic and what the article should comprehensively cover.
2. Understand the target audience — their needs, questions, and search behaviour.
3. Brainstorm content angles not commonly covered.
4. Ensure relevance to primary keyword and audience intent.
5. For each content angle, identify 2-3 supporting keywords with search volumes.

Key Considerations:
- Be knowledgeable and useful above all else.
- Ensure topical relevance throughout.
- Indicate low confidence where uncertain.
- Search volumes should reflect monthly data.
`

// ArticleCopyGuide drives the article draft stage.
const ArticleCopyGuide = `
SEO ARTICLE COPYWRITING BEST PRACTICE GUIDE:

GENERAL GUIDELINES:
1. Readability: Flesch-Kincaid score of 50-60. For complex terms scoring below 50,
   provide a definitions glossary at the bottom of the article with clear referencing.
2. Expert Tone: Write as a subject-matter expert. Comprehensive and clearly structured.
3. FAQs: Include a FAQ section at the bottom with 4-5 questions and answers.
4. Structure:
   - H1 (#): Article title
   - H2 (##), H3 (###), H4 (####): Nested headings — H3 goes deeper than H2, H4 deeper than H3.
   - Maximum 4 heading levels.

CONTENT REQUIREMENTS:
1. Keywords: Use LSI keywords naturally in copy and headings. No keyword stuffing.
2. Word Count: 800–2000 words total. Each section: 120–300 words.
3. Title Tag: Must contain primary keyword. Max 60 characters.
4. Meta Description: 150–160 characters, includes primary keyword, compelling and clickable.

BEST PRACTICES:
- Readability is paramount — short paragraphs (2–4 sentences).
- Answer common questions and solve real problems.
- Use emotional trigger words where appropriate.
- Use numbers, statistics, and data points — cite sources where possible.
- Avoid false claims; indicate uncertainty clearly.
- Hook readers immediately in the introduction.
- Strong conclusion with a clear takeaway or call to action.

NEIL PATEL PRINCIPLES:
- Write for humans first, search engines second.
- Use the primary keyword in: title, first paragraph, 2+ subheadings, conclusion.
- Match search intent: informational, navigational, commercial, or transactional.
- Use bucket brigades (transitional phrases) to keep readers engaged.
- Use power words to drive emotion and action.
`

// OutputFormat is the delimiter contract the article and refine stages must
// follow. The section extractor depends on these exact marker strings.
const OutputFormat = `
OUTPUT FORMAT — use these exact section delimiters:

---KEYWORDS---
[comma-separated list of all keywords used]

---TITLETAG---
[Title tag - max 60 characters, must include primary keyword]

---METADESC---
[Meta description - 150-160 characters, includes primary keyword, compelling]

---ARTICLETITLE---
[H1 main title of the article]

---ARTICLECOPY---
[Full article body in Markdown using # ## ### #### headings]
[Minimum 800 words. Each section 120-300 words.]
[End with a Definitions section if complex terms were used]

---FAQS---
Q1: [Question]
A1: [Answer — 2-4 sentences]

Q2: [Question]
A2: [Answer]

Q3: [Question]
A3: [Answer]

Q4: [Question]
A4: [Answer]

Q5: [Question]
A5: [Answer]

---END---
`
