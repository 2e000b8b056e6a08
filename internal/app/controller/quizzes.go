package controller

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"sync"

	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/upstream"
)

const questionsBasePath = "/api/v1/admin/quiz/questions"

// bulkUploadPath is the one surviving operation of the legacy questions
// surface; it has no counterpart under the canonical path.
const bulkUploadPath = "/api/v1/admin/questions/bulk-upload"

// QuizzesQuery is the quizzes page filter state. Empty fields are omitted
// from the query string.
type QuizzesQuery struct {
	Category   string
	Difficulty string
	Active     string // "", "true", "false"
	Page       int
}

func (q QuizzesQuery) params(pageSize int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(pageSize))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}
	if q.Active != "" {
		params.Set("isActive", q.Active)
	}
	return params
}

type QuizzesView struct {
	Questions  []model.QuizQuestion
	Pagination Pagination
	Query      QuizzesQuery
}

type questionsListResponse struct {
	Questions  []model.QuizQuestion `json:"questions"`
	Pagination Pagination           `json:"pagination"`
}

type QuizzesController struct {
	client   *upstream.Client
	pageSize int

	guard   fetchGuard
	mu      sync.Mutex
	last    QuizzesView
	hasLast bool
}

func NewQuizzesController(client *upstream.Client, pageSize int) *QuizzesController {
	return &QuizzesController{client: client, pageSize: pageSize}
}

func (c *QuizzesController) Load(ctx context.Context, token string, q QuizzesQuery) (QuizzesView, error) {
	q.Page = clampPage(q.Page)
	seq := c.guard.begin()

	var resp questionsListResponse
	if err := c.client.Get(ctx, token, questionsBasePath+"?"+q.params(c.pageSize).Encode(), &resp); err != nil {
		return c.snapshot(q), err
	}

	view := QuizzesView{Questions: resp.Questions, Pagination: resp.Pagination, Query: q}
	if view.Pagination.Current == 0 {
		view.Pagination = Pagination{Current: q.Page, Pages: 1, Total: len(resp.Questions)}
	}

	if !c.guard.tryApply(seq) {
		return c.snapshot(q), nil
	}
	c.mu.Lock()
	c.last = view
	c.hasLast = true
	c.mu.Unlock()
	return view, nil
}

func (c *QuizzesController) snapshot(q QuizzesQuery) QuizzesView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasLast {
		return QuizzesView{Query: q, Pagination: Pagination{Current: 1, Pages: 1}}
	}
	view := c.last
	view.Query = q
	return view
}

func (c *QuizzesController) Create(ctx context.Context, token string, payload model.QuestionPayload) error {
	if err := c.client.Post(ctx, token, questionsBasePath, payload, nil); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (c *QuizzesController) Update(ctx context.Context, token, questionID string, payload model.QuestionPayload) error {
	if err := c.client.Put(ctx, token, questionsBasePath+"/"+url.PathEscape(questionID), payload, nil); err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return nil
}

func (c *QuizzesController) SetActive(ctx context.Context, token, questionID string, active bool) error {
	path := questionsBasePath + "/" + url.PathEscape(questionID)
	if err := c.client.Put(ctx, token, path, model.QuestionStatusPayload{IsActive: active}, nil); err != nil {
		return fmt.Errorf("failed to toggle question status: %w", err)
	}
	return nil
}

func (c *QuizzesController) Delete(ctx context.Context, token, questionID string) error {
	if err := c.client.Delete(ctx, token, questionsBasePath+"/"+url.PathEscape(questionID)); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

// BulkUpload forwards a multipart CSV body untouched.
func (c *QuizzesController) BulkUpload(ctx context.Context, token, contentType string, body io.Reader) error {
	if err := c.client.PostMultipart(ctx, token, bulkUploadPath, contentType, body, nil); err != nil {
		return fmt.Errorf("failed to bulk upload questions: %w", err)
	}
	return nil
}

// Find returns one question from the current snapshot, for the edit form and
// the delete confirmation page.
func (c *QuizzesController) Find(questionID string) (model.QuizQuestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, q := range c.last.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return model.QuizQuestion{}, false
}
