package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/GeekPO11/dlulu/internal/planner"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

// stubPlannerClient returns canned text or a canned error without any
// network involvement.
type stubPlannerClient struct {
	text string
	err  error
}

func (c *stubPlannerClient) Generate(_ context.Context, _ planner.GenerateRequest) (*planner.GenerateResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &planner.GenerateResponse{Text: c.text}, nil
}

func (c *stubPlannerClient) Available(context.Context) bool {
	return c.err == nil
}

// sequentialIDs yields ev-1, ev-2, ... so tests can assert on exact IDs.
func sequentialIDs(prefix string) scheduler.IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
