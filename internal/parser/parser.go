package parser

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"resumely/internal/domain"
	"resumely/internal/port"
	"resumely/internal/profile"
)

const (
	// MaxPromptChars caps the résumé text actually sent to the completion
	// service, independently of the extraction-layer cap.
	MaxPromptChars = 15000

	// primaryTemperature biases the model toward literal extraction.
	primaryTemperature float32 = 0.1
	// repairTemperature is fixed at zero so repairs are deterministic.
	repairTemperature float32 = 0
)

// Parser implements port.ProfileParser against a completion service, with a
// repair step for malformed JSON and a stricter second attempt for sparse
// results. At most two primary calls are made per Parse, each followed by at
// most one repair call.
type Parser struct {
	client port.CompletionClient
	model  string
	logger *zap.Logger
}

// New creates a Parser. The client is required; callers without a completion
// backend use the heuristic builder instead of constructing a Parser.
func New(client port.CompletionClient, model string, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{client: client, model: model, logger: logger}
}

// Parse sends the extracted résumé text to the completion service and
// normalizes the response into a canonical profile.
//
// Attempt 1 uses the standard extraction prompt. If its response is not
// JSON, one repair call reformats the raw output; if the normalized result
// is still sparse, attempt 2 repeats the exchange with a stricter prompt.
// Attempt 2's sparse-but-valid result is returned as success — the parser
// never loops beyond two attempts. When no attempt yields parseable JSON,
// Parse fails with *AIParseError carrying a bounded output preview.
func (p *Parser) Parse(ctx context.Context, text string) (*domain.CanonicalProfile, error) {
	prompt := Truncate(text, MaxPromptChars)

	var lastRaw string
	var lastErr error

	for attempt, system := range []string{extractionPrompt, strictExtractionPrompt} {
		raw, err := p.complete(ctx, system, prompt, primaryTemperature)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			p.logger.Warn("completion attempt failed",
				zap.Int("attempt", attempt+1), zap.Error(err))
			lastErr = err
			continue
		}
		lastRaw = raw

		obj, ok := decodeObject(raw)
		if !ok {
			// One repair call per attempt: resend the malformed output
			// itself, not the résumé.
			repaired, rerr := p.complete(ctx, repairPrompt, raw, repairTemperature)
			if rerr != nil {
				if ctx.Err() != nil {
					return nil, rerr
				}
				p.logger.Warn("repair call failed",
					zap.Int("attempt", attempt+1), zap.Error(rerr))
			} else {
				lastRaw = repaired
				obj, ok = decodeObject(repaired)
			}
		}
		if !ok {
			continue
		}

		prof := profile.Normalize(obj, text)
		if attempt == 0 && profile.IsSparse(prof) {
			p.logger.Info("sparse profile from first attempt, retrying with strict prompt")
			continue
		}
		return prof, nil
	}

	return nil, &AIParseError{Preview: Truncate(lastRaw, PreviewChars), Err: lastErr}
}

func (p *Parser) complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	return p.client.Complete(ctx, port.CompletionRequest{
		Model:       p.model,
		Temperature: temperature,
		JSONMode:    true,
		Messages: []port.Message{
			{Role: port.RoleSystem, Content: system},
			{Role: port.RoleUser, Content: user},
		},
	})
}

// decodeObject parses a model response as a JSON object. Responses are
// expected to be raw JSON without markdown fencing; anything else is handled
// by the repair path rather than lenient parsing here.
func decodeObject(raw string) (map[string]interface{}, bool) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &obj); err != nil {
		return nil, false
	}
	return obj, true
}
