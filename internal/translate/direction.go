package translate

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/yourusername/airefiner/internal/prompts"
)

// Direction describes the translation decision for a piece of text.
type Direction struct {
	SourceLanguage string
	TargetLanguage string
	TaskID         string
	Prompt         string
	Confidence     float64
	AutoDetected   bool
	DetectedCode   string
}

// Determine decides the translation direction for text. Chinese input
// translates to English, English to Simplified Chinese, and anything
// else falls back to text refinement.
func Determine(text string) Direction {
	code, confidence := Detect(text)

	dir := Direction{
		SourceLanguage: "unknown",
		TargetLanguage: "unknown",
		TaskID:         prompts.TaskRefine,
		Prompt:         prompts.RefineText,
		Confidence:     confidence,
		AutoDetected:   true,
		DetectedCode:   code,
	}

	switch code {
	case LangChinese:
		dir.SourceLanguage = "Chinese"
		dir.TargetLanguage = "English"
		dir.TaskID = prompts.TaskZhToEn
		dir.Prompt = prompts.TranslateZhToEn
		log.Info("auto-translation: Chinese -> English")
	case LangEnglish:
		dir.SourceLanguage = "English"
		dir.TargetLanguage = "Simplified Chinese"
		dir.TaskID = prompts.TaskEnToZh
		dir.Prompt = prompts.TranslateEnToZh
		log.Info("auto-translation: English -> Simplified Chinese")
	default:
		dir.SourceLanguage = fmt.Sprintf("Unknown (%s)", code)
		dir.TargetLanguage = "Refined Text"
		dir.AutoDetected = false
		log.WithField("lang", code).Warn("unsupported language, falling back to refinement")
	}

	return dir
}

// Summary formats a human-readable description of the decision for
// display before the task runs.
func (d Direction) Summary(textPreview string) string {
	if !d.AutoDetected {
		return "Language auto-detection failed. Using text refinement instead."
	}

	var sb strings.Builder
	sb.WriteString("AUTO-TRANSLATION DETECTED\n")
	fmt.Fprintf(&sb, "Language Detection: %s (confidence: %.0f%% - %s)\n",
		d.SourceLanguage, d.Confidence*100, ConfidenceLevel(d.Confidence))
	fmt.Fprintf(&sb, "Translation Direction: %s -> %s\n", d.SourceLanguage, d.TargetLanguage)
	fmt.Fprintf(&sb, "Task: %s", d.TaskID)

	// Truncate on runes so CJK input is not cut mid-character.
	if runes := []rune(textPreview); len(runes) > 50 {
		fmt.Fprintf(&sb, "\nText Preview: %s...", string(runes[:50]))
	}
	return sb.String()
}
