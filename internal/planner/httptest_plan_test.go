package planner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/pathwise/internal/credential"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

func geminiBody(text string) string {
	data, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role":  "model",
				"parts": []any{map[string]any{"text": text}},
			},
			"finishReason": "STOP",
		}},
	})
	return string(data)
}

func ashaProfile(t *testing.T) domain.Profile {
	t.Helper()
	p, err := domain.NewProfile(domain.StageSchool, "Asha", "10th", "coding", "become a software engineer")
	require.NoError(t, err)
	return p
}

func httpService(endpoint string, keys KeySource, opts ...llm.ClientOption) PlanService {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Model = "gemini-test"
	return NewPlanService(llm.NewGeminiClient(cfg, llm.NoopObserver{}, opts...), keys, nil)
}

// envKeys returns a chain whose only populated source is the given env map.
func envKeys(t *testing.T, env map[string]string) credential.Chain {
	t.Helper()
	repo := repository.NewSQLiteSettingRepo(testutil.NewTestDB(t))
	return credential.Chain{
		credential.StoreResolver{Settings: repo},
		credential.StaticResolver{Label: "build"},
		credential.EnvResolver{Vars: credential.EnvVars, Lookup: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}},
	}
}

func TestRequestPlan_HTTP_ValidPlan(t *testing.T) {
	var hits atomic.Int32
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "become a software engineer")
		assert.Contains(t, string(body), "weeklySchedule")
		assert.Contains(t, string(body), `"minItems"`)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, geminiBody(testutil.PlanJSON(testutil.NewTestPlan())))
	})
	defer srv.Close()

	svc := httpService(srv.URL, envKeys(t, map[string]string{"GEMINI_API_KEY": "AIzaSyExampleKey42"}))
	plan, err := svc.RequestPlan(context.Background(), ashaProfile(t))

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(plan.Roadmap), 1)
	assert.Len(t, plan.WeeklySchedule, 7)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRequestPlan_HTTP_ErrorStatus(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"error":{"code":403,"message":"permission denied","status":"PERMISSION_DENIED"}}`)
	})
	defer srv.Close()

	svc := httpService(srv.URL, envKeys(t, map[string]string{"API_KEY": "AIzaSyExampleKey42"}))
	plan, err := svc.RequestPlan(context.Background(), ashaProfile(t))

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrService)
	assert.Equal(t, KindService, Kind(err))
}

func TestRequestPlan_HTTP_EmptyText(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, geminiBody(""))
	})
	defer srv.Close()

	svc := httpService(srv.URL, envKeys(t, map[string]string{"API_KEY": "AIzaSyExampleKey42"}))
	_, err := svc.RequestPlan(context.Background(), ashaProfile(t))

	assert.ErrorIs(t, err, ErrNoResponse)
	assert.NotErrorIs(t, err, ErrService)
	assert.Equal(t, KindNoResponse, Kind(err))
}

func TestRequestPlan_HTTP_NoCredentialSkipsTransport(t *testing.T) {
	rt := &recordingTransport{}
	svc := httpService("http://127.0.0.1:1", envKeys(t, nil),
		llm.WithHTTPClient(&http.Client{Transport: rt}))

	_, err := svc.RequestPlan(context.Background(), ashaProfile(t))

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Zero(t, rt.calls.Load(), "transport must not be invoked without a credential")
}

type recordingTransport struct {
	calls atomic.Int32
}

func (r *recordingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	r.calls.Add(1)
	return nil, http.ErrHandlerTimeout
}
