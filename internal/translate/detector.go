// Package translate detects the language of input text and decides the
// translation direction for the auto-translate task.
package translate

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	log "github.com/sirupsen/logrus"
)

// Confidence calculation constants.
const (
	baseConfidence  = 0.7
	maxLengthBonus  = 0.2
	maxPatternBonus = 0.1
	lengthDivisor   = 100.0

	// Thresholds for labeling the confidence score.
	highConfidence   = 0.8
	mediumConfidence = 0.6
)

// Language codes returned by Detect.
const (
	LangEnglish = "en"
	LangChinese = "zh"
	LangUnknown = "unknown"
)

// commonEnglishWords boosts confidence when detected text looks English.
var commonEnglishWords = map[string]struct{}{
	"the": {}, "and": {}, "to": {}, "of": {}, "a": {},
	"in": {}, "is": {}, "it": {}, "you": {}, "that": {},
}

// Detect returns the language code of text and a confidence score in
// [0, 1]. Empty or undetectable input yields ("unknown", 0).
func Detect(text string) (string, float64) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return LangUnknown, 0
	}

	info := whatlanggo.Detect(clean)
	code := languageCode(info.Lang)
	if code == LangUnknown {
		log.WithField("lang", info.Lang.String()).Warn("language detection inconclusive")
		return LangUnknown, 0
	}

	confidence := calculateConfidence(clean, code)
	log.WithFields(log.Fields{
		"lang":       code,
		"confidence": confidence,
	}).Debug("detected language")

	return code, confidence
}

func languageCode(lang whatlanggo.Lang) string {
	switch lang {
	case whatlanggo.Eng:
		return LangEnglish
	case whatlanggo.Cmn:
		return LangChinese
	default:
		return LangUnknown
	}
}

// calculateConfidence starts from a base score and adds bonuses for text
// length and language-specific patterns.
func calculateConfidence(text, code string) float64 {
	lengthBonus := float64(len(text)) / lengthDivisor
	if lengthBonus > maxLengthBonus {
		lengthBonus = maxLengthBonus
	}

	var patternBonus float64
	switch code {
	case LangChinese:
		runes := []rune(text)
		var han int
		for _, r := range runes {
			if r >= 0x4e00 && r <= 0x9fff {
				han++
			}
		}
		if han > 0 {
			patternBonus = float64(han) / float64(len(runes))
		}
	case LangEnglish:
		var hits int
		for _, w := range strings.Fields(strings.ToLower(text)) {
			if _, ok := commonEnglishWords[strings.Trim(w, ".,!?;:'\"")]; ok {
				hits++
			}
		}
		if hits > 0 {
			patternBonus = float64(hits) / 10
		}
	}
	if patternBonus > maxPatternBonus {
		patternBonus = maxPatternBonus
	}

	confidence := baseConfidence + lengthBonus + patternBonus
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// ConfidenceLevel labels a confidence score as High, Medium, or Low.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence > highConfidence:
		return "High"
	case confidence > mediumConfidence:
		return "Medium"
	default:
		return "Low"
	}
}
