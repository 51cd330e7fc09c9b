package onesignal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testNotification() Notification {
	return Notification{
		TagKey: "fav_leidsa_quiniela_dia",
		Title:  "Quiniela Leidsa • Mediodia — Leidsa",
		Body:   "Números: 4  17  29",
		Data: map[string]interface{}{
			"favKey": "leidsa|quiniela|dia",
			"date":   "2025-03-07",
		},
	}
}

func TestSendPayload(t *testing.T) {
	var got map[string]interface{}
	var auth, contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "app-123", "rest-key", quietLogger())
	accepted, err := client.Send(context.Background(), testNotification())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !accepted {
		t.Error("Expected accepted == true")
	}

	if auth != "Basic rest-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if got["app_id"] != "app-123" {
		t.Errorf("app_id = %v", got["app_id"])
	}

	headings, _ := got["headings"].(map[string]interface{})
	if headings["es"] != "Quiniela Leidsa • Mediodia — Leidsa" || headings["en"] != headings["es"] {
		t.Errorf("headings = %v", headings)
	}
	contents, _ := got["contents"].(map[string]interface{})
	if contents["es"] != "Números: 4  17  29" {
		t.Errorf("contents = %v", contents)
	}

	filters, _ := got["filters"].([]interface{})
	if len(filters) != 1 {
		t.Fatalf("filters = %v", filters)
	}
	f, _ := filters[0].(map[string]interface{})
	if f["field"] != "tag" || f["key"] != "fav_leidsa_quiniela_dia" || f["relation"] != "=" || f["value"] != "1" {
		t.Errorf("filter = %v", f)
	}

	data, _ := got["data"].(map[string]interface{})
	if data["favKey"] != "leidsa|quiniela|dia" {
		t.Errorf("data = %v", data)
	}
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":["invalid app_id"]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "app-123", "rest-key", quietLogger())
	accepted, err := client.Send(context.Background(), testNotification())
	if err != nil {
		t.Fatalf("Send: a rejection is not a transport error, got %v", err)
	}
	if accepted {
		t.Error("Expected accepted == false on 400")
	}
}

func TestSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, "app-123", "rest-key", quietLogger())
	accepted, err := client.Send(context.Background(), testNotification())
	if err == nil {
		t.Fatal("Expected transport error")
	}
	if accepted {
		t.Error("Expected accepted == false on transport error")
	}
}
