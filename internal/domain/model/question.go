package model

import (
	"time"
)

type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

// QuestionCategories is the fixed vocabulary offered by the quiz form and the
// category filter.
var QuestionCategories = []string{"general", "science", "history", "sports", "entertainment"}

// QuizQuestion mirrors the admin API's question document.
// CorrectAnswerIndex is a 0-based index into Options.
type QuizQuestion struct {
	ID                 string             `json:"_id"`
	Question           string             `json:"question"`
	Options            []string           `json:"options"`
	CorrectAnswerIndex int                `json:"correctAnswerIndex"`
	Category           string             `json:"category"`
	Difficulty         QuestionDifficulty `json:"difficulty"`
	Reward             int                `json:"reward"`
	TimeLimit          int                `json:"timeLimit"`
	IsActive           bool               `json:"isActive"`
	CreatedAt          time.Time          `json:"createdAt"`
}

type QuestionPayload struct {
	Question           string             `json:"question"`
	Options            []string           `json:"options"`
	CorrectAnswerIndex int                `json:"correctAnswerIndex"`
	Category           string             `json:"category"`
	Difficulty         QuestionDifficulty `json:"difficulty"`
	Reward             int                `json:"reward"`
	TimeLimit          int                `json:"timeLimit"`
}

type QuestionStatusPayload struct {
	IsActive bool `json:"isActive"`
}
