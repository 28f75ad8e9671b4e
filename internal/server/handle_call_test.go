package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/yusrlabs/yusr/internal/sim"
)

func TestCallEndpoints(t *testing.T) {
	h := testHandler(t)
	id := createSession(t, h)
	base := "/api/sessions/" + id

	rec := doJSON(t, h, http.MethodPost, base+"/call", CallRequest{SheikhID: "99"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown sheikh status = %d, want 404", rec.Code)
	}

	// Sheikh 3 is seeded busy.
	rec = doJSON(t, h, http.MethodPost, base+"/call", CallRequest{SheikhID: "3"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("busy sheikh status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/call", CallRequest{SheikhID: "1"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("call status = %d", rec.Code)
	}
	var st sim.CallStatus
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.State != sim.CallConnecting || st.SheikhID != "1" {
		t.Errorf("status = %+v", st)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/call", CallRequest{SheikhID: "2"})
	if rec.Code != http.StatusConflict {
		t.Errorf("second call status = %d, want 409", rec.Code)
	}

	// Wait for the connecting delay to elapse.
	deadline := time.After(2 * time.Second)
	for {
		rec = doJSON(t, h, http.MethodGet, base+"/call", nil)
		if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if st.State == sim.CallConnected {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("call never connected: %+v", st)
		case <-time.After(5 * time.Millisecond):
		}
	}

	rec = doJSON(t, h, http.MethodPost, base+"/call/end", nil)
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.State != sim.CallIdle {
		t.Errorf("state after end = %s, want idle", st.State)
	}
}

func TestSupportMessage(t *testing.T) {
	h := testHandler(t)
	id := createSession(t, h)
	base := "/api/sessions/" + id

	rec := doJSON(t, h, http.MethodPost, base+"/support/message", SupportMessageRequest{Message: "  "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank message status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/support/message", SupportMessageRequest{Message: "I lost my group"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("send status = %d", rec.Code)
	}
	var resp SupportMessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.State != string(sim.MessageSending) {
		t.Errorf("state = %s, want sending", resp.State)
	}
}
