package oracle

// LLM prompt templates — data only, no logic.

// titlePrompt asks for one improved title.
// Args: current title, views, likes, duration.
const titlePrompt = `Analyze this YouTube video title and suggest an improved version that will get more clicks and views.

Current title: "%s"
Video performance: %d views, %d likes
Duration: %s

Suggest a better title that:
1. Is 40-60 characters long
2. Uses emotional triggers
3. Includes power words
4. Is SEO-friendly
5. Creates curiosity or urgency

Respond with just the improved title, no explanation.`

// descriptionPrompt asks for a rewritten description.
// Args: title, current description (truncated).
const descriptionPrompt = `Improve this YouTube video description for better SEO and engagement:

Current title: "%s"
Current description: "%s"

Create an improved description that:
1. Starts with a compelling hook
2. Includes relevant keywords naturally
3. Has proper structure with line breaks
4. Includes a call-to-action
5. Is 200-300 words long
6. Uses timestamps if appropriate

Respond with just the improved description.`

// tagsPrompt asks for a comma-separated tag list.
// Args: title, current tags (joined), description snippet.
const tagsPrompt = `Suggest better YouTube tags for this video:

Title: "%s"
Current tags: %s
Description snippet: "%s"

Suggest 10-15 optimized tags that:
1. Include the main topic
2. Have good search volume
3. Mix broad and specific keywords
4. Include trending terms
5. Are relevant to the content

Respond with tags separated by commas, no explanation.`

// ideasPrompt asks for a numbered list of follow-up video ideas.
// Args: title, description snippet, views, likes.
const ideasPrompt = `Based on this YouTube video, suggest 5 related content ideas for future videos:

Video title: "%s"
Description: "%s"
Performance: %d views, %d likes

Suggest content ideas that:
1. Are related to the original topic
2. Would appeal to the same audience
3. Have viral potential
4. Are actionable and specific
5. Build on successful elements

Format as a numbered list, one idea per line.`

// seoPrompt asks for a structured SEO assessment.
// Args: title, description snippet, tags (joined).
const seoPrompt = `Analyze the SEO aspects of this YouTube video:

Title: "%s"
Description: "%s"
Tags: %s

Provide analysis on:
1. Title SEO score (1-10)
2. Description SEO score (1-10)
3. Tags effectiveness (1-10)
4. Main keywords identified
5. Missing keywords that should be added

Respond with valid JSON only (no markdown block), with keys:
title_score, description_score, tags_score, main_keywords, missing_keywords`

// deepPrompt asks for a full markdown performance review.
// Args: title, description snippet, tags (joined), views, engagement rate.
const deepPrompt = `Provide a deep, comprehensive analysis of this YouTube video for performance improvement.

Video Context:
- Title: "%s"
- Description: "%s"
- Tags: %s
- Views: %d
- Engagement Rate: %.2f%%

Analysis sections:

1. Title Analysis: critique the current title's clarity, SEO, and click-through potential; provide 3-5 alternative optimized titles with reasons.
2. Description Analysis: critique structure, SEO, and calls-to-action; provide a rewritten description ready to paste.
3. Tags Analysis: critique relevance, broad/specific mix, and volume; provide 15-20 optimized tags.
4. Thumbnail Analysis: critique the likely thumbnail concept and suggest 3 specific improvements to increase CTR.
5. Content & Pacing: suggest an improved structure (hook, intro, main points, CTA, outro) and pacing feedback.
6. Audience Persona: describe the likely target audience and how to tailor the content for them.
7. Engagement Strategy: suggest 3 specific hooks or questions to increase likes, comments, and shares.
8. Monetization Potential: 2-3 creative ideas for monetizing this content or audience.
9. Overall Score & Summary: an optimization score out of 100 and the top 3 most critical changes.

Format the entire response in Markdown with a heading per section.`
