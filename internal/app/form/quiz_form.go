package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"quiz_admin_console/internal/domain/model"
)

// OptionCount is fixed: every question carries exactly four answer options.
const OptionCount = 4

// QuizForm is the draft for creating or editing a quiz question.
type QuizForm struct {
	Question           string
	Options            []string
	CorrectAnswerIndex int
	Category           string
	Difficulty         string
	Reward             int
	TimeLimit          int
}

// NewQuizForm returns the empty draft with the same defaults the create
// dialog opens with.
func NewQuizForm() QuizForm {
	return QuizForm{
		Options:            make([]string, OptionCount),
		CorrectAnswerIndex: 0,
		Category:           "general",
		Difficulty:         string(model.DifficultyMedium),
		Reward:             10,
		TimeLimit:          5,
	}
}

// QuizFormFromQuestion seeds the draft from an existing question for editing.
// The draft is a copy; the list's snapshot is never mutated through it.
func QuizFormFromQuestion(q model.QuizQuestion) QuizForm {
	options := make([]string, OptionCount)
	copy(options, q.Options)
	return QuizForm{
		Question:           q.Question,
		Options:            options,
		CorrectAnswerIndex: q.CorrectAnswerIndex,
		Category:           q.Category,
		Difficulty:         string(q.Difficulty),
		Reward:             q.Reward,
		TimeLimit:          q.TimeLimit,
	}
}

// ParseQuizForm reads the draft back out of submitted form values.
func ParseQuizForm(values url.Values) QuizForm {
	f := NewQuizForm()
	f.Question = strings.TrimSpace(values.Get("question"))
	for i := 0; i < OptionCount; i++ {
		f.Options[i] = strings.TrimSpace(values.Get(fmt.Sprintf("option%d", i)))
	}
	f.CorrectAnswerIndex, _ = strconv.Atoi(values.Get("correctAnswerIndex"))
	if c := values.Get("category"); c != "" {
		f.Category = c
	}
	if d := values.Get("difficulty"); d != "" {
		f.Difficulty = d
	}
	f.Reward, _ = strconv.Atoi(values.Get("reward"))
	f.TimeLimit, _ = strconv.Atoi(values.Get("timeLimit"))
	return f
}

func (f QuizForm) Validate() Errors {
	errs := Errors{}

	if f.Question == "" {
		errs["question"] = "Question is required"
	}
	for i, option := range f.Options {
		if strings.TrimSpace(option) == "" {
			errs[fmt.Sprintf("option%d", i)] = fmt.Sprintf("Option %d is required", i+1)
		}
	}
	if f.CorrectAnswerIndex < 0 || f.CorrectAnswerIndex >= len(f.Options) {
		errs["correctAnswerIndex"] = "Correct answer must reference one of the options"
	}
	if !oneOf(f.Category, model.QuestionCategories) {
		errs["category"] = "Category is not recognized"
	}
	switch model.QuestionDifficulty(f.Difficulty) {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		errs["difficulty"] = "Difficulty must be easy, medium or hard"
	}
	if f.Reward < 1 {
		errs["reward"] = "Reward must be at least 1"
	}
	if f.TimeLimit < 5 {
		errs["timeLimit"] = "Time limit must be at least 5 seconds"
	}

	return errs
}

// Payload builds the mutation body. Call only after Validate passes.
func (f QuizForm) Payload() model.QuestionPayload {
	options := make([]string, len(f.Options))
	copy(options, f.Options)
	return model.QuestionPayload{
		Question:           f.Question,
		Options:            options,
		CorrectAnswerIndex: f.CorrectAnswerIndex,
		Category:           f.Category,
		Difficulty:         model.QuestionDifficulty(f.Difficulty),
		Reward:             f.Reward,
		TimeLimit:          f.TimeLimit,
	}
}
