package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

// Without a database URL the process keeps serving: reads degrade to empty
// payloads, writes answer 503.
func TestDegradedModeReadsComeBackEmpty(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doRequest(t, app, "GET", "/api/status", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %s", raw)
	}

	resp, raw = doRequest(t, app, "GET", "/api/registration/0xAAA", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeMap(t, raw)
	if body["success"] != false || body["message"] != "Database not available" {
		t.Fatalf("unexpected registration response: %s", raw)
	}

	resp, raw = doRequest(t, app, "GET", "/api/tasks/0xAAA", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body = decodeMap(t, raw)
	if body["success"] != true || len(body["data"].([]any)) != 0 {
		t.Fatalf("unexpected tasks response: %s", raw)
	}

	resp, raw = doRequest(t, app, "GET", "/api/giveaway-status", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body = decodeMap(t, raw)
	if body["success"] != true || body["started"] != false || body["start_time"] != nil {
		t.Fatalf("unexpected giveaway status: %s", raw)
	}

	for _, path := range []string{"/api/admin/registrations", "/api/admin/tasks"} {
		resp, raw = doRequest(t, app, "GET", path, nil, adminHeader)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.StatusCode)
		}
		body = decodeMap(t, raw)
		if body["success"] != true || len(body["data"].([]any)) != 0 {
			t.Fatalf("%s: unexpected response: %s", path, raw)
		}
	}
}

func TestDegradedModeWritesAreUnavailable(t *testing.T) {
	app := newTestApp(nil)

	writes := []struct {
		path string
		body any
	}{
		{"/api/status", map[string]any{"client_name": "probe"}},
		{"/api/save-ticket", registrationBody("0xAAA")},
		{"/api/task-click", map[string]any{"wallet": "0xAAA", "platform": "x"}},
	}
	for _, w := range writes {
		resp, raw := doRequest(t, app, "POST", w.path, w.body, nil)
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Fatalf("POST %s: expected 503, got %d: %s", w.path, resp.StatusCode, raw)
		}
		body := decodeMap(t, raw)
		if body["error"] != "Database not available" {
			t.Fatalf("POST %s: unexpected body: %s", w.path, raw)
		}
	}

	resp, raw := doRequest(t, app, "POST", "/api/admin/start-giveaway", nil, adminHeader)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("start-giveaway: expected 503, got %d: %s", resp.StatusCode, raw)
	}
}
