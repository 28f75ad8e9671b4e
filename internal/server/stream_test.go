package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/yusrlabs/yusr/internal/screen"
)

func liveServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewServer(testHandler(t))
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	defer resp.Body.Close()
	var sess SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return srv, sess.ID
}

func TestEventStream(t *testing.T) {
	srv, id := liveServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/sessions/"+id+"/events", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Fatalf("content-type = %q", ct)
	}

	// Trigger a mutation once the stream is up.
	go func() {
		time.Sleep(50 * time.Millisecond)
		body := bytes.NewBufferString(`{"screen":"tawaf"}`)
		r, err := http.Post(srv.URL+"/api/sessions/"+id+"/navigate", "application/json", body)
		if err == nil {
			r.Body.Close()
		}
	}()

	scanner := bufio.NewScanner(resp.Body)
	var sawEvent, sawData bool
	for scanner.Scan() {
		line := scanner.Text()
		if line == "event: state" {
			sawEvent = true
		}
		if strings.HasPrefix(line, "data: ") && strings.Contains(line, `"navigate"`) {
			sawData = true
			break
		}
	}
	if !sawEvent || !sawData {
		t.Errorf("stream incomplete: event %v data %v", sawEvent, sawData)
	}
}

func TestWSViewStream(t *testing.T) {
	srv, id := liveServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + srv.URL[len("http"):] + "/ws/" + id + "/view"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	// Initial push is the current view.
	var view screen.View
	if err := wsjson.Read(ctx, conn, &view); err != nil {
		t.Fatalf("read initial view: %v", err)
	}
	if view.Screen != "welcome" {
		t.Errorf("initial screen = %s, want welcome", view.Screen)
	}

	// A navigation pushes a freshly rendered view.
	body := bytes.NewBufferString(`{"screen":"settings"}`)
	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/navigate", "application/json", body)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	resp.Body.Close()

	deadline := time.After(2 * time.Second)
	for view.Screen != "settings" {
		select {
		case <-deadline:
			t.Fatalf("never saw settings view, last %s", view.Screen)
		default:
		}
		if err := wsjson.Read(ctx, conn, &view); err != nil {
			t.Fatalf("read view: %v", err)
		}
	}

	conn.Close(websocket.StatusNormalClosure, "done")
}
