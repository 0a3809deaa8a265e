package mood

import "github.com/jonreiter/govader"

// Sentiment is a polarity in [-1, 1] and a subjectivity in [0, 1].
type Sentiment struct {
	Polarity     float64
	Subjectivity float64
}

// SentimentScorer scores free text. Implementations must be safe for
// concurrent use.
type SentimentScorer interface {
	Score(text string) Sentiment
}

// VaderScorer scores text with the VADER lexicon.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score uses the compound score as polarity. VADER has no subjectivity
// measure, so the share of non-neutral lexicon weight stands in for it.
func (v *VaderScorer) Score(text string) Sentiment {
	s := v.analyzer.PolarityScores(text)
	subjectivity := 1 - s.Neutral
	if subjectivity < 0 {
		subjectivity = 0
	}
	if subjectivity > 1 {
		subjectivity = 1
	}
	return Sentiment{Polarity: s.Compound, Subjectivity: subjectivity}
}

// ScorerFunc adapts a plain function to SentimentScorer.
type ScorerFunc func(text string) Sentiment

func (f ScorerFunc) Score(text string) Sentiment { return f(text) }
