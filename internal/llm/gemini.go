package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient using the Gemini API.
type geminiClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// ClientOption customizes a Gemini client.
type ClientOption func(*geminiClient)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *geminiClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewGeminiClient creates an LLMClient that talks to the hosted Gemini API.
// The API key travels with each request, so one client serves a
// credential that changes during the session.
func NewGeminiClient(cfg LLMConfig, observer Observer, opts ...ClientOption) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if strings.TrimSpace(req.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	start := time.Now()
	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	text, err := c.generate(ctx, req)
	latency := time.Since(start).Milliseconds()

	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyResponse):
		case ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = ErrTimeout
		default:
			err = fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		c.observe(req, latency, err)
		return nil, err
	}

	c.observe(req, latency, nil)
	return &GenerateResponse{
		Text:      text,
		Model:     c.cfg.Model,
		LatencyMs: latency,
	}, nil
}

func (c *geminiClient) generate(ctx context.Context, req GenerateRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      req.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.http,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.cfg.Endpoint},
	})
	if err != nil {
		return "", fmt.Errorf("creating gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: req.ResponseMIMEType,
		ResponseSchema:   toGenaiSchema(req.ResponseSchema),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemPrompt}}}
	}
	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = req.Temperature
	}
	if temp != nil {
		t := float32(*temp)
		config.Temperature = &t
	}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.UserPrompt), config)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

func (c *geminiClient) observe(req GenerateRequest, latency int64, err error) {
	c.observer.OnCallComplete(LLMCallEvent{
		RequestID: req.RequestID,
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

// responseText concatenates the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genai.Type(s.Type),
		Description: s.Description,
		Items:       toGenaiSchema(s.Items),
		Required:    s.Required,
		MinItems:    s.MinItems,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	case errors.Is(err, ErrRequestFailed):
		return "REQUEST_FAILED"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
