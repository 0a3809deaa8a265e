package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

// fixed returns a scorer that ignores its input.
func fixed(polarity, subjectivity float64) SentimentScorer {
	return ScorerFunc(func(string) Sentiment {
		return Sentiment{Polarity: polarity, Subjectivity: subjectivity}
	})
}

func TestInferGreeting(t *testing.T) {
	c := NewClassifier(fixed(0.9, 0.9))

	for _, text := range []string{"Hi", "hello!", "Hey there", "Hi there!", "  good morning...  ", "HOWDY?"} {
		assert.Equal(t, domain.MoodGreeting, c.Infer(text), text)
	}
	assert.NotEqual(t, domain.MoodGreeting, c.Infer("hi, I had a long day at work"))
}

func TestInferKeywords(t *testing.T) {
	c := NewClassifier(fixed(0, 0))

	tests := []struct {
		text string
		want domain.Mood
	}{
		{"I'm feeling really happy today! Everything is going well.", domain.MoodJoy},
		{"I'm feeling very sad today. Nothing is going right.", domain.MoodSadness},
		{"I'm so angry about what happened at work today!", domain.MoodAnger},
		{"I'm feeling very stressed today. Everything is overwhelming.", domain.MoodStress},
		{"I'm so grateful for all the support I've received.", domain.MoodGratitude},
		{"I was stunned by the news", domain.MoodSurprise},
		{"I am puzzled by her reply", domain.MoodConfusion},
		{"I wonder where this goes", domain.MoodCurious},
		{"My whole week felt blue", domain.MoodSadness},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Infer(tt.text), tt.text)
	}
}

func TestInferKeywordOrderWins(t *testing.T) {
	c := NewClassifier(fixed(-0.9, 0))
	// joy is checked before stress, and keywords beat a negative score.
	assert.Equal(t, domain.MoodJoy, c.Infer("I'm excited but also worried"))
}

func TestInferBlueAsColor(t *testing.T) {
	c := NewClassifier(fixed(0, 0))

	assert.Equal(t, domain.MoodNeutral, c.Infer("The sky is blue. The grass is green."))
	assert.Equal(t, domain.MoodNeutral, c.Infer("the sky looked blue this morning"))
	assert.NotEqual(t, domain.MoodSadness, c.Infer("my favourite color is blue"))
}

func TestInferSkyGrassLiteralBeatsKeywords(t *testing.T) {
	c := NewClassifier(fixed(0, 0))
	assert.Equal(t, domain.MoodNeutral, c.Infer("I'm happy: the sky is blue and the grass is green"))
}

func TestInferFactualStatements(t *testing.T) {
	c := NewClassifier(fixed(0.8, 0.8))

	for _, text := range []string{"The car is red and fast and new", "It is raining again this evening", "Today is monday for everyone here"} {
		assert.Equal(t, domain.MoodNeutral, c.Infer(text), text)
	}
}

func TestInferSentimentThresholds(t *testing.T) {
	const long = "we walked along the river this morning"

	tests := []struct {
		name         string
		polarity     float64
		subjectivity float64
		text         string
		want         domain.Mood
	}{
		{"strong positive", 0.5, 0, long, domain.MoodJoy},
		{"mild positive", 0.2, 0, long, domain.MoodPositive},
		{"strong negative", -0.5, 0, long, domain.MoodStress},
		{"mild negative", -0.2, 0, long, domain.MoodNegative},
		{"subjective", 0, 0.6, long, domain.MoodReflection},
		{"objective", 0, 0.5, long, domain.MoodNeutral},
		{"short and flat", 0.15, 0.9, "went out", domain.MoodNeutral},
		{"short but strong", 0.5, 0, "went out", domain.MoodJoy},
		{"short but negative", -0.25, 0, "went out", domain.MoodNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(fixed(tt.polarity, tt.subjectivity))
			assert.Equal(t, tt.want, c.Infer(tt.text))
		})
	}
}

func TestInferEmptyIsNeutral(t *testing.T) {
	assert.Equal(t, domain.MoodNeutral, NewClassifier(nil).Infer(""))
}

func TestVaderScorer(t *testing.T) {
	s := NewVaderScorer().Score("This is a terrible, horrible, awful plan")
	assert.Less(t, s.Polarity, -0.3)
	assert.Greater(t, s.Subjectivity, 0.0)
	assert.LessOrEqual(t, s.Subjectivity, 1.0)
}
