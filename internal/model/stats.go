package model

import "time"

// UserStats aggregates every attempt ever submitted.
type UserStats struct {
	TotalScore             int       `json:"total_score"`
	TotalQuizzesTaken      int       `json:"total_quizzes_taken"`
	TotalCorrectAnswers    int       `json:"total_correct_answers"`
	TotalQuestionsAnswered int       `json:"total_questions_answered"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// BadgeType names a score tier.
type BadgeType string

const (
	BadgeGold        BadgeType = "gold"
	BadgeSilver      BadgeType = "silver"
	BadgeBronze      BadgeType = "bronze"
	BadgeParticipant BadgeType = "participant"
)

// Badge is awarded for an attempt based on its percentage score.
type Badge struct {
	Type          BadgeType `json:"type"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	MinPercentage int       `json:"min_percentage"`
}

// Badges is ordered from the highest tier down.
var Badges = []Badge{
	{Type: BadgeGold, Name: "Gold Medal", Description: "Outstanding!", MinPercentage: 90},
	{Type: BadgeSilver, Name: "Silver Medal", Description: "Great job!", MinPercentage: 70},
	{Type: BadgeBronze, Name: "Bronze Medal", Description: "Good effort!", MinPercentage: 50},
	{Type: BadgeParticipant, Name: "Participant", Description: "Keep practicing!", MinPercentage: 0},
}

// BadgeFor returns the highest badge whose threshold the percentage reaches.
func BadgeFor(percentage int) Badge {
	for _, b := range Badges {
		if percentage >= b.MinPercentage {
			return b
		}
	}
	return Badges[len(Badges)-1]
}

// StatsPayload is queued for every submitted attempt and folded into quiz and user
// stats by the stats worker.
type StatsPayload struct {
	QuizID  string `json:"quiz_id"`
	Score   int    `json:"score"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}
