package domain

import "time"

type SessionID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Mood is the emotional label attached to one journal entry.
type Mood string

const (
	MoodJoy        Mood = "joy"
	MoodStress     Mood = "stress"
	MoodSadness    Mood = "sadness"
	MoodAnger      Mood = "anger"
	MoodSurprise   Mood = "surprise"
	MoodGratitude  Mood = "gratitude"
	MoodConfusion  Mood = "confusion"
	MoodCurious    Mood = "curious"
	MoodGreeting   Mood = "greeting"
	MoodReflection Mood = "reflection"
	MoodNeutral    Mood = "neutral"
	MoodPositive   Mood = "positive"
	MoodNegative   Mood = "negative"
)

func (m Mood) String() string { return string(m) }

type Timestamp = time.Time
