package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumely/internal/port"
	"resumely/mocks"
)

func systemPromptIs(want string) interface{} {
	return mock.MatchedBy(func(req port.CompletionRequest) bool {
		return len(req.Messages) == 2 &&
			req.Messages[0].Role == port.RoleSystem &&
			req.Messages[0].Content == want
	})
}

func TestParseFirstAttemptSuccess(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, systemPromptIs(extractionPrompt)).
		Return(`{"skills":["Go","Rust"],"summary":"engineer"}`, nil).Once()

	p := New(client, "test-model", nil)
	prof, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, prof.Skills)
	assert.Equal(t, "engineer", prof.Summary)
	client.AssertExpectations(t)
	client.AssertNumberOfCalls(t, "Complete", 1)
}

func TestParseRequestsJSONModeWithLowTemperature(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
		return req.JSONMode && req.Temperature > 0 && req.Temperature <= 0.3 &&
			req.Model == "test-model"
	})).Return(`{"skills":["Go"]}`, nil).Once()

	p := New(client, "test-model", nil)
	_, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestParseSparseFirstAttemptRetriesStrict(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, systemPromptIs(extractionPrompt)).
		Return(`{}`, nil).Once()
	client.On("Complete", mock.Anything, systemPromptIs(strictExtractionPrompt)).
		Return(`{"skills":["Go"]}`, nil).Once()

	p := New(client, "test-model", nil)
	prof, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, prof.Skills)
	client.AssertExpectations(t)
	client.AssertNumberOfCalls(t, "Complete", 2)
}

func TestParseSparseSecondAttemptIsSuccess(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, systemPromptIs(extractionPrompt)).
		Return(`{}`, nil).Once()
	client.On("Complete", mock.Anything, systemPromptIs(strictExtractionPrompt)).
		Return(`{}`, nil).Once()

	p := New(client, "test-model", nil)
	prof, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	assert.Empty(t, prof.Skills)
	client.AssertNumberOfCalls(t, "Complete", 2)
}

func TestParseMalformedOutputTriggersOneRepair(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, systemPromptIs(extractionPrompt)).
		Return("Sure! Here is the JSON you asked for.", nil).Once()
	// The repair call resends the malformed output at temperature zero.
	client.On("Complete", mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
		return req.Messages[0].Content == repairPrompt &&
			req.Messages[1].Content == "Sure! Here is the JSON you asked for." &&
			req.Temperature == 0
	})).Return(`{"skills":["Go"]}`, nil).Once()

	p := New(client, "test-model", nil)
	prof, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, prof.Skills)
	client.AssertExpectations(t)
	client.AssertNumberOfCalls(t, "Complete", 2)
}

func TestParseNeverExceedsFourCalls(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return("not json", nil)

	p := New(client, "test-model", nil)
	_, err := p.Parse(context.Background(), "resume text")

	require.Error(t, err)
	var aiErr *AIParseError
	require.ErrorAs(t, err, &aiErr)
	assert.Contains(t, aiErr.Preview, "not json")
	client.AssertNumberOfCalls(t, "Complete", 4)
}

func TestParsePreviewIsBounded(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Return(strings.Repeat("x", 2000), nil)

	p := New(client, "test-model", nil)
	_, err := p.Parse(context.Background(), "resume text")

	var aiErr *AIParseError
	require.ErrorAs(t, err, &aiErr)
	assert.LessOrEqual(t, len([]rune(aiErr.Preview)), PreviewChars+3)
}

func TestParseTruncatesPromptText(t *testing.T) {
	long := strings.Repeat("r", MaxPromptChars*2)
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
		return len([]rune(req.Messages[1].Content)) <= MaxPromptChars+3
	})).Return(`{"skills":["Go"]}`, nil).Once()

	p := New(client, "test-model", nil)
	_, err := p.Parse(context.Background(), long)

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestParseTransportErrorsSurfaceAfterBothAttempts(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	p := New(client, "test-model", nil)
	_, err := p.Parse(context.Background(), "resume text")

	var aiErr *AIParseError
	require.ErrorAs(t, err, &aiErr)
	assert.ErrorContains(t, aiErr.Err, "connection refused")
	// Transport failures skip the repair call.
	client.AssertNumberOfCalls(t, "Complete", 2)
}

func TestParseCanceledContextStopsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Return("", context.Canceled)

	p := New(client, "test-model", nil)
	_, err := p.Parse(ctx, "resume text")

	require.ErrorIs(t, err, context.Canceled)
	client.AssertNumberOfCalls(t, "Complete", 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héllo", Truncate("héllo", 5))
}
