package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/char5742/input-hub/internal/config"
	"github.com/char5742/input-hub/internal/hub"
	"github.com/char5742/input-hub/internal/props"
)

// stubHub はテスト用のDeviceSource実装
type stubHub struct {
	devices []hub.DeviceInfo
	err     error
}

func (s *stubHub) ListDevices() []hub.DeviceInfo { return s.devices }
func (s *stubHub) ErrorCheck() error             { return s.err }

func newTestServer(h *stubHub, store props.Store) *httptest.Server {
	s := NewServer(h, store, config.DefaultConfig(), 0)
	router := http.NewServeMux()
	s.setupRoutes(router)
	return httptest.NewServer(router)
}

func TestHandleGetDevices(t *testing.T) {
	stub := &stubHub{devices: []hub.DeviceInfo{
		{ID: 0x10000, Path: "/dev/input/event0", Name: "omap-keypad", Classes: 0x23},
	}}
	ts := newTestServer(stub, props.NewMemoryStore())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/devices")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var devices []hub.DeviceInfo
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		t.Fatal(err)
	}
	if len(devices) != 1 || devices[0].Name != "omap-keypad" {
		t.Errorf("devices = %v", devices)
	}
}

func TestHandleGetProperties(t *testing.T) {
	store := props.NewMemoryStore()
	store.Set("hw.keyboards.0.devname", "omap-keypad")

	ts := newTestServer(&stubHub{}, store)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/properties")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var values map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&values); err != nil {
		t.Fatal(err)
	}
	if values["hw.keyboards.0.devname"] != "omap-keypad" {
		t.Errorf("properties = %v", values)
	}
}

func TestHandleHealthCheck(t *testing.T) {
	ts := newTestServer(&stubHub{}, props.NewMemoryStore())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestHandleHealthCheckReportsError(t *testing.T) {
	ts := newTestServer(&stubHub{err: errors.New("not ready")}, props.NewMemoryStore())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}
