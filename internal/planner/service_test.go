package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/pathwise/internal/credential"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLLMClient returns a fixed response and records every call.
type mockLLMClient struct {
	response string
	err      error
	calls    int
	lastReq  llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gemini-test"}, nil
}

type staticKeys struct {
	value string
	err   error
}

func (k staticKeys) Resolve(context.Context) (credential.Resolution, error) {
	if k.err != nil {
		return credential.Resolution{}, k.err
	}
	return credential.Resolution{Value: k.value, Source: "test"}, nil
}

type captureUseCase struct {
	events []UseCaseEvent
}

func (c *captureUseCase) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.events = append(c.events, e)
}

func TestRequestPlan_Success(t *testing.T) {
	client := &mockLLMClient{response: testutil.PlanJSON(testutil.NewTestPlan())}
	svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, nil)

	plan, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile())

	require.NoError(t, err)
	assert.Len(t, plan.Roadmap, 3)
	assert.Len(t, plan.WeeklySchedule, 7)
	assert.NotEmpty(t, plan.MotivationalQuote)
	assert.Equal(t, 1, client.calls)
}

func TestRequestPlan_RequestShape(t *testing.T) {
	client := &mockLLMClient{response: testutil.PlanJSON(testutil.NewTestPlan())}
	svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, nil)
	profile := testutil.NewTestProfile()

	_, err := svc.RequestPlan(context.Background(), profile)
	require.NoError(t, err)

	req := client.lastReq
	assert.Equal(t, llm.TaskPlan, req.Task)
	assert.Equal(t, "AIzaSyExampleKey42", req.APIKey)
	assert.Equal(t, "application/json", req.ResponseMIMEType)
	assert.Equal(t, BuildPrompt(profile), req.UserPrompt)
	assert.Contains(t, req.SystemPrompt, "India")
	assert.NotEmpty(t, req.RequestID)
	require.NotNil(t, req.ResponseSchema)
	assert.Contains(t, req.ResponseSchema.Required, "roadmap")
}

func TestRequestPlan_NoCredential_NeverCallsClient(t *testing.T) {
	client := &mockLLMClient{response: testutil.PlanJSON(testutil.NewTestPlan())}
	svc := NewPlanService(client, staticKeys{err: credential.ErrNoCredential}, nil)

	plan, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile())

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, credential.ErrNoCredential)
	assert.Equal(t, KindConfiguration, Kind(err))
	assert.True(t, NeedsCredential(err))
	assert.Zero(t, client.calls)
}

func TestRequestPlan_IncompleteProfile_NeverCallsClient(t *testing.T) {
	client := &mockLLMClient{}
	svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, nil)

	_, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile(testutil.WithGoal("  ")))

	assert.ErrorIs(t, err, domain.ErrIncompleteProfile)
	assert.Equal(t, KindInvalidProfile, Kind(err))
	assert.Zero(t, client.calls)
}

func TestRequestPlan_TransportError(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrRequestFailed}
	svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, nil)

	_, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile())

	assert.ErrorIs(t, err, ErrService)
	assert.NotErrorIs(t, err, ErrNoResponse)
	assert.Equal(t, KindService, Kind(err))
	assert.True(t, NeedsCredential(err))
	assert.Equal(t, 1, client.calls)
}

func TestRequestPlan_EmptyResponse(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrEmptyResponse}
	svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, nil)

	_, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile())

	assert.ErrorIs(t, err, ErrNoResponse)
	assert.NotErrorIs(t, err, ErrService)
	assert.False(t, NeedsCredential(err))
}

func TestRequestPlan_MalformedJSON(t *testing.T) {
	client := &mockLLMClient{response: "Sorry, I can't produce that right now."}
	svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, nil)

	_, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile())

	assert.ErrorIs(t, err, ErrNoResponse)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestRequestPlan_StructurallyInvalidPlanRejected(t *testing.T) {
	cases := map[string]domain.Plan{
		"empty roadmap":  testutil.NewTestPlan(testutil.WithSteps(0)),
		"empty schedule": testutil.NewTestPlan(testutil.WithoutSchedule()),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			client := &mockLLMClient{response: testutil.PlanJSON(p)}
			svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, nil)

			plan, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile())

			assert.Nil(t, plan)
			assert.ErrorIs(t, err, ErrNoResponse)
		})
	}
}

func TestRequestPlan_ObservesOutcome(t *testing.T) {
	obs := &captureUseCase{}
	client := &mockLLMClient{response: testutil.PlanJSON(testutil.NewTestPlan())}
	svc := NewPlanService(client, staticKeys{value: "AIzaSyExampleKey42"}, obs)

	_, err := svc.RequestPlan(context.Background(), testutil.NewTestProfile())
	require.NoError(t, err)

	client.err = errors.New("connection reset")
	_, err = svc.RequestPlan(context.Background(), testutil.NewTestProfile())
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "request_plan", obs.events[0].Name)
	assert.Equal(t, 3, obs.events[0].Fields["steps"])
	assert.Equal(t, client.lastReq.RequestID, obs.events[1].Fields["request_id"])
	assert.False(t, obs.events[1].Success)
	assert.Equal(t, "service", obs.events[1].Fields["error_kind"])
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	for _, err := range []error{ErrConfiguration, ErrService, ErrNoResponse} {
		assert.Contains(t, UserMessage(err), "check your network connection")
	}
}
