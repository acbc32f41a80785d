package backend

import (
	"context"
	"net/http"
	"net/url"
)

// CreateParentEvaluation submits a country-specific survey input and returns
// the id of the stored evaluation.
func (c *Client) CreateParentEvaluation(ctx context.Context, req EvaluationRequest) (*Created, error) {
	var out Created
	if err := c.call(ctx, "create_parent_evaluation", http.MethodPost, "/evals/parent", nil, req, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, newAPIError(ErrorBadData, "create_parent_evaluation", http.StatusOK, "response carries no id", nil)
	}
	return &out, nil
}

func (c *Client) GetParentEvaluation(ctx context.Context, id string) (*EvaluationRecord, error) {
	var out EvaluationRecord
	if err := c.call(ctx, "get_parent_evaluation", http.MethodGet, "/evals/parent/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListParentEvaluations(ctx context.Context, userID string) ([]EvaluationRecord, error) {
	var out []EvaluationRecord
	if err := c.call(ctx, "list_parent_evaluations", http.MethodGet, "/evals/parent/user/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateStudentTest(ctx context.Context, req StudentTestRequest) (*Created, error) {
	var out Created
	if err := c.call(ctx, "create_student_test", http.MethodPost, "/evals/student", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStudentTest(ctx context.Context, id string) (*StudentTestRecord, error) {
	var out StudentTestRecord
	if err := c.call(ctx, "get_student_test", http.MethodGet, "/evals/student/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListStudentTests(ctx context.Context, userID string) ([]StudentTestRecord, error) {
	var out []StudentTestRecord
	if err := c.call(ctx, "list_student_tests", http.MethodGet, "/evals/student/user/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
