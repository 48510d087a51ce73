package client

import (
	"context"
)

type WorkflowService struct {
	Options []RequestOption
}

func NewWorkflowService(opts ...RequestOption) WorkflowService {
	return WorkflowService{
		Options: opts,
	}
}

type workflowRequest struct {
	Name     string   `json:"name"`
	Elements []string `json:"elements"`
}

// Workflow runs elements through the named workflow.
func (r *WorkflowService) Workflow(ctx context.Context, name string, elements []string, opts ...RequestOption) ([]string, error) {
	body := workflowRequest{
		Name:     name,
		Elements: nonNil(elements),
	}

	return invoke[[]string](ctx, [][]RequestOption{r.Options, opts}, "workflow", post("workflow", body))
}
