package providers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const MockClientName = "mock"

// MockClient is an LLMClient for testing.
type MockClient struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	FailAfter    int // Fail after N requests (0 = never)
	ResponseText string
	NotReady     bool // Report Configured() == false

	// State
	requestCount atomic.Int64
}

// NewMockClient creates a new mock client with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		Latency:      time.Millisecond,
		ResponseText: `{"correctedText": "mock response", "improvements": []}`,
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string { return MockClientName }

// Configured reports the configured readiness flag.
func (c *MockClient) Configured() bool { return !c.NotReady }

// RequestCount returns how many Chat calls were made.
func (c *MockClient) RequestCount() int64 { return c.requestCount.Load() }

// Chat returns the canned response, honoring latency, failure flags, and
// context cancellation.
func (c *MockClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	count := c.requestCount.Add(1)

	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if c.ShouldFail {
		return nil, fmt.Errorf("mock failure")
	}
	if c.FailAfter > 0 && count > int64(c.FailAfter) {
		return nil, fmt.Errorf("mock failure after %d requests", c.FailAfter)
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &ChatResult{
		Content:   c.ResponseText,
		Provider:  MockClientName,
		ModelUsed: "mock-model",
		RequestID: requestID,
		Attempts:  1,
	}, nil
}
