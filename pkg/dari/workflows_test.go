package dari

import (
	"context"
	"net/http"
	"testing"
)

func TestStartWorkflowOmitsUnsetOptions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/public/workflows/start/wf-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body := decodeBody(t, r)
		vars, _ := body["input_variables"].(map[string]any)
		if vars["city"] != "Berlin" {
			t.Errorf("input_variables = %v", body["input_variables"])
		}
		if got := body["timeout_minutes"]; got != float64(5) {
			t.Errorf("timeout_minutes = %v, want 5", got)
		}
		for _, key := range []string{
			"should_update_cache", "allow_public_live_view", "browser_profile_id",
			"use_proxy", "proxy_city", "proxy_server", "proxy_server_username",
			"proxy_server_password", "user_agent",
		} {
			if _, ok := body[key]; ok {
				t.Errorf("unset optional %q present in body", key)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"workflow_execution_id":"ex-1","status":"running"}`))
	})

	result, err := client.StartWorkflow(context.Background(), "wf-1",
		map[string]any{"city": "Berlin"},
		&StartWorkflowOptions{TimeoutMinutes: Int(5)})
	if err != nil {
		t.Fatalf("StartWorkflow: %v", err)
	}
	if result["workflow_execution_id"] != "ex-1" {
		t.Fatalf("result = %v", result)
	}
}

func TestListWorkflowExecutionsPath(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/public/workflows/wf-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"executions":[]}`))
	})

	if _, err := client.ListWorkflowExecutions(context.Background(), "wf-1"); err != nil {
		t.Fatalf("ListWorkflowExecutions: %v", err)
	}
}

func TestGetExecutionDetailsPath(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/public/workflows/wf-1/executions/ex-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"completed"}`))
	})

	if _, err := client.GetExecutionDetails(context.Background(), "wf-1", "ex-1"); err != nil {
		t.Fatalf("GetExecutionDetails: %v", err)
	}
}

func TestResumeWorkflowSkipsAuthAndUsesURLVerbatim(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resume/abc" {
			t.Errorf("path = %s, want /resume/abc", r.URL.Path)
		}
		if _, ok := r.Header["X-Api-Key"]; ok {
			t.Errorf("X-API-Key sent on resume call")
		}
		if got := r.Header.Get("User-Agent"); got != "dari-go/"+Version {
			t.Errorf("User-Agent = %q", got)
		}
		body := decodeBody(t, r)
		vars, _ := body["variables"].(map[string]any)
		if vars["approved"] != true {
			t.Errorf("variables = %v", body["variables"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"resumed"}`))
	})

	result, err := client.ResumeWorkflow(context.Background(), srv.URL+"/resume/abc",
		map[string]any{"approved": true})
	if err != nil {
		t.Fatalf("ResumeWorkflow: %v", err)
	}
	if result["status"] != "resumed" {
		t.Fatalf("result = %v", result)
	}
}

func TestRunSingleActionPayloadAndPath(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/public/single-actions/run-action" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["action"] != "click the login button" {
			t.Errorf("action = %v", body["action"])
		}
		if body["session_id"] != "s1" {
			t.Errorf("session_id = %v", body["session_id"])
		}
		for _, key := range []string{"id", "variables", "screen_config", "set_cache"} {
			if _, ok := body[key]; ok {
				t.Errorf("unset optional %q present in body", key)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"result":"done"}`))
	})

	result, err := client.RunSingleAction(context.Background(), "click the login button",
		&RunSingleActionOptions{SessionID: String("s1")})
	if err != nil {
		t.Fatalf("RunSingleAction: %v", err)
	}
	if result["success"] != true {
		t.Fatalf("result = %v", result)
	}
}
