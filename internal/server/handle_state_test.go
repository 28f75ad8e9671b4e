package server

import (
	"net/http"
	"testing"
)

func TestTawafEndpoints(t *testing.T) {
	h := testHandler(t)
	id := createSession(t, h)
	base := "/api/sessions/" + id

	doJSON(t, h, http.MethodPost, base+"/navigate", NavigateRequest{Screen: "tawaf"})

	rec := doJSON(t, h, http.MethodPost, base+"/tawaf/increment", nil)
	rec = doJSON(t, h, http.MethodPost, base+"/tawaf/increment", nil)
	_, body := viewBody(t, rec)
	if body["count"].(float64) != 2 {
		t.Errorf("count = %v, want 2", body["count"])
	}

	// Clamp at seven and stop tracking.
	for i := 0; i < 10; i++ {
		rec = doJSON(t, h, http.MethodPost, base+"/tawaf/increment", nil)
	}
	_, body = viewBody(t, rec)
	if body["count"].(float64) != 7 || body["complete"] != true {
		t.Errorf("after overcount: count %v complete %v", body["count"], body["complete"])
	}
	if body["active"] != false {
		t.Error("tracking still on at completion")
	}

	rec = doJSON(t, h, http.MethodPost, base+"/tawaf/reset", nil)
	_, body = viewBody(t, rec)
	if body["count"].(float64) != 0 || body["complete"] != false {
		t.Errorf("after reset: %v", body)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/tawaf/toggle", nil)
	_, body = viewBody(t, rec)
	if body["active"] != true {
		t.Error("toggle did not start tracking")
	}
}

func TestTaskToggle(t *testing.T) {
	h := testHandler(t)
	id := createSession(t, h)
	base := "/api/sessions/" + id

	doJSON(t, h, http.MethodPost, base+"/navigate", NavigateRequest{Screen: "dailyGuide"})

	rec := doJSON(t, h, http.MethodPost, base+"/tasks/toggle", TaskToggleRequest{TaskID: "d8-1"})
	_, body := viewBody(t, rec)
	if body["done"].(float64) != 1 {
		t.Errorf("done = %v, want 1", body["done"])
	}

	// Toggling again undoes it.
	rec = doJSON(t, h, http.MethodPost, base+"/tasks/toggle", TaskToggleRequest{TaskID: "d8-1"})
	_, body = viewBody(t, rec)
	if body["done"].(float64) != 0 {
		t.Errorf("done = %v, want 0", body["done"])
	}

	rec = doJSON(t, h, http.MethodPost, base+"/tasks/toggle", TaskToggleRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty taskId status = %d, want 400", rec.Code)
	}
}

func TestWalletEndpoints(t *testing.T) {
	h := testHandler(t)
	id := createSession(t, h)
	base := "/api/sessions/" + id

	doJSON(t, h, http.MethodPost, base+"/mode", ModeRequest{Mode: "pilgrim"})
	doJSON(t, h, http.MethodPost, base+"/navigate", NavigateRequest{Screen: "wallet"})

	rec := doJSON(t, h, http.MethodPost, base+"/wallet/pay", WalletRequest{Pin: "0000", Amount: 100})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong pin status = %d, want 403", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/wallet/pay", WalletRequest{Pin: "1234", Amount: 100})
	if rec.Code != http.StatusOK {
		t.Fatalf("pay status = %d", rec.Code)
	}
	_, body := viewBody(t, rec)
	if body["balance"].(float64) != 2400 {
		t.Errorf("balance = %v, want 2400", body["balance"])
	}

	rec = doJSON(t, h, http.MethodPost, base+"/wallet/charge", WalletRequest{Pin: "1234", Amount: 200})
	_, body = viewBody(t, rec)
	if body["balance"].(float64) != 2600 {
		t.Errorf("balance = %v, want 2600", body["balance"])
	}

	// Demo money may go negative.
	rec = doJSON(t, h, http.MethodPost, base+"/wallet/pay", WalletRequest{Pin: "1234", Amount: 5000})
	_, body = viewBody(t, rec)
	if body["balance"].(float64) != -2400 {
		t.Errorf("balance = %v, want -2400", body["balance"])
	}

	rec = doJSON(t, h, http.MethodPost, base+"/wallet/pay", WalletRequest{Pin: "1234", Amount: 0})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero amount status = %d, want 400", rec.Code)
	}
}

func TestPinChange(t *testing.T) {
	h := testHandler(t)
	id := createSession(t, h)
	base := "/api/sessions/" + id

	doJSON(t, h, http.MethodPost, base+"/mode", ModeRequest{Mode: "pilgrim"})
	doJSON(t, h, http.MethodPost, base+"/navigate", NavigateRequest{Screen: "wallet"})

	rec := doJSON(t, h, http.MethodPost, base+"/pin", PinRequest{Pin: "12"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("short pin status = %d, want 422", rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, base+"/pin", PinRequest{Pin: "12ab"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("non-digit pin status = %d, want 422", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/pin", PinRequest{Pin: "9999"})
	if rec.Code != http.StatusOK {
		t.Fatalf("set pin status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/wallet/pay", WalletRequest{Pin: "1234", Amount: 10})
	if rec.Code != http.StatusForbidden {
		t.Errorf("old pin status = %d, want 403", rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, base+"/wallet/pay", WalletRequest{Pin: "9999", Amount: 10})
	if rec.Code != http.StatusOK {
		t.Errorf("new pin status = %d, want 200", rec.Code)
	}
}

func TestDestinationEndpoints(t *testing.T) {
	h := testHandler(t)
	id := createSession(t, h)
	base := "/api/sessions/" + id

	rec := doJSON(t, h, http.MethodPost, base+"/destination", DestinationRequest{ID: "nowhere"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown destination status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/destination", DestinationRequest{ID: "kaaba"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	v, body := viewBody(t, rec)
	if v.Screen != "route" {
		t.Errorf("screen = %s, want route", v.Screen)
	}
	if body["destination"] != "الكعبة المشرفة" {
		t.Errorf("destination = %v", body["destination"])
	}

	// Clearing the selection bounces route back to the picker.
	rec = doJSON(t, h, http.MethodDelete, base+"/destination", nil)
	if v := decodeView(t, rec); v.Screen != "navigation" {
		t.Errorf("screen after clear = %s, want navigation", v.Screen)
	}
}
