package client

import (
	"context"
)

type SegmentService struct {
	Options []RequestOption
}

func NewSegmentService(opts ...RequestOption) SegmentService {
	return SegmentService{
		Options: opts,
	}
}

// Segment splits text into semantic units. Depending on the pipeline the
// result is a single string or a list.
func (r *SegmentService) Segment(ctx context.Context, text string, opts ...RequestOption) (Text, error) {
	return invoke[Text](ctx, [][]RequestOption{r.Options, opts}, "segment", get("segment", Param{"text", text}))
}

func (r *SegmentService) BatchSegment(ctx context.Context, texts []string, opts ...RequestOption) ([]Text, error) {
	return invoke[[]Text](ctx, [][]RequestOption{r.Options, opts}, "batchsegment", post("batchsegment", nonNil(texts)))
}
