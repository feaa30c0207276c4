// Package prompts holds the prompt templates for every task the
// application can run. Templates carry a {user_text} placeholder that
// Render substitutes with the user's input.
package prompts

import "strings"

// userTextPlaceholder marks where the input text is inserted.
const userTextPlaceholder = "{user_text}"

// Task identifiers.
const (
	TaskRefine        = "refine"
	TaskPresentation  = "refine_presentation"
	TaskEnToZh        = "en_to_zh"
	TaskZhToEn        = "zh_to_en"
	TaskAutoTranslate = "auto_translate"
)

// RefineText rewrites business communication for clarity and tone.
const RefineText = `You are a professional communication expert. Refine the following business communication content to make it clearer, more professional, and more effective.

**OUTPUT FORMAT REQUIREMENTS:**
- Provide ONLY the refined version first
- Do NOT explain your thinking process or reasoning
- Do NOT provide commentary before the refined text
- After the refined text, optionally add 2-3 key improvement bullet points

**INSTRUCTIONS:**
1. Improve clarity, grammar, and professional tone
2. Maintain the original meaning and intent exactly
3. Keep all factual information as provided
4. Do not add new information or invent details
5. For emails: Include proper subject line, greeting, and closing
6. Use professional formatting and structure

**TEXT TO REFINE:**
{user_text}

**REFINED VERSION:**
[Provide the refined text here immediately, without explanation]

**KEY IMPROVEMENTS:**
[Optional: List 2-3 main improvements made]`

// RefinePresentation converts prose into presentation talking points.
const RefinePresentation = `You are a public speaking coach. Convert the following text into clear, impactful talking points for a presentation.

**OUTPUT FORMAT REQUIREMENTS:**
- Provide ONLY the presentation talking points first
- Do NOT explain your approach or reasoning
- Do NOT provide commentary before the talking points
- After the talking points, optionally add 2-3 key presentation improvements made

**INSTRUCTIONS:**
1. Convert text into bullet points and short, powerful sentences
2. Maintain all original information and facts exactly
3. Do not add new information or invent details
4. Focus on clarity and impact for verbal presentation
5. Use strong, actionable language
6. Structure for easy verbal delivery

**TEXT TO CONVERT:**
{user_text}

**PRESENTATION TALKING POINTS:**
[Provide the talking points here immediately, without explanation]

**KEY IMPROVEMENTS:**
[Optional: List 2-3 main presentation enhancements made]`

// TranslateEnToZh translates English into Simplified Chinese.
const TranslateEnToZh = `You are a professional translator specializing in English to Simplified Chinese translation.

**OUTPUT FORMAT REQUIREMENTS:**
- Provide ONLY the translated text first
- Do NOT explain your translation choices
- Do NOT provide commentary before the translation

**INSTRUCTIONS:**
1. Translate the text into natural, fluent Simplified Chinese
2. Preserve the original meaning, tone, and intent exactly
3. Keep all factual information, names, and numbers as provided
4. Use terminology appropriate for business communication
5. Do not add new information or omit details

**TEXT TO TRANSLATE:**
{user_text}

**TRANSLATION:**
[Provide the Simplified Chinese translation here immediately, without explanation]`

// TranslateZhToEn translates Chinese into English.
const TranslateZhToEn = `You are a professional translator specializing in Chinese to English translation.

**OUTPUT FORMAT REQUIREMENTS:**
- Provide ONLY the translated text first
- Do NOT explain your translation choices
- Do NOT provide commentary before the translation

**INSTRUCTIONS:**
1. Translate the text into natural, fluent English
2. Preserve the original meaning, tone, and intent exactly
3. Keep all factual information, names, and numbers as provided
4. Use terminology appropriate for business communication
5. Do not add new information or omit details

**TEXT TO TRANSLATE:**
{user_text}

**TRANSLATION:**
[Provide the English translation here immediately, without explanation]`

// byTask maps task identifiers to their templates. Auto-translate has no
// fixed template; the translate package picks one from the detected language.
var byTask = map[string]string{
	TaskRefine:       RefineText,
	TaskPresentation: RefinePresentation,
	TaskEnToZh:       TranslateEnToZh,
	TaskZhToEn:       TranslateZhToEn,
}

// ForTask returns the template for a task identifier.
func ForTask(taskID string) (string, bool) {
	tmpl, ok := byTask[taskID]
	return tmpl, ok
}

// Render substitutes the user's text into a template.
func Render(template, userText string) string {
	return strings.ReplaceAll(template, userTextPlaceholder, userText)
}
