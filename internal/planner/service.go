// Package planner turns a student profile into a structured career plan
// with a single call to the generative-AI service.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathwise/internal/credential"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/google/uuid"
)

// PlanService requests career plans.
type PlanService interface {
	// RequestPlan resolves the API key, sends one request built from the
	// profile and returns the parsed plan. It never returns a plan with an
	// empty roadmap or weekly schedule.
	RequestPlan(ctx context.Context, profile domain.Profile) (*domain.Plan, error)
}

// KeySource resolves the API key at request time.
type KeySource interface {
	Resolve(ctx context.Context) (credential.Resolution, error)
}

type planService struct {
	client   llm.LLMClient
	keys     KeySource
	observer UseCaseObserver
}

// NewPlanService creates a PlanService backed by an LLM client.
func NewPlanService(client llm.LLMClient, keys KeySource, observer UseCaseObserver) PlanService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &planService{client: client, keys: keys, observer: observer}
}

func (s *planService) RequestPlan(ctx context.Context, profile domain.Profile) (*domain.Plan, error) {
	start := time.Now()
	requestID := uuid.NewString()

	plan, err := s.requestPlan(ctx, requestID, profile)

	fields := map[string]any{
		"request_id": requestID,
		"stage":      string(profile.Stage),
	}
	if err != nil {
		fields["error_kind"] = string(Kind(err))
	} else {
		fields["steps"] = len(plan.Roadmap)
		fields["days"] = len(plan.WeeklySchedule)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "request_plan",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})

	return plan, err
}

func (s *planService) requestPlan(ctx context.Context, requestID string, profile domain.Profile) (*domain.Plan, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	key, err := s.keys.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:             llm.TaskPlan,
		RequestID:        requestID,
		APIKey:           key.Value,
		SystemPrompt:     planSystemPrompt,
		UserPrompt:       BuildPrompt(profile),
		ResponseMIMEType: planMIMEType,
		ResponseSchema:   PlanSchema(),
	})
	if err != nil {
		if errors.Is(err, llm.ErrEmptyResponse) {
			return nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrService, err)
	}

	plan, err := llm.ExtractJSON(resp.Text, validatePlan)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	return &plan, nil
}

func validatePlan(p domain.Plan) error {
	return p.Validate()
}
