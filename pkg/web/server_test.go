package web

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/teslashibe/go-framegrab/pkg/store"
)

func newTestServer(t *testing.T) (*Server, string, *store.Session) {
	t.Helper()
	dir := t.TempDir()
	session := store.NewSession()
	return NewServer(":0", dir, session, nil), dir, session
}

func TestHandleStatus(t *testing.T) {
	srv, _, session := newTestServer(t)

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/api/status", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var stats store.Stats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.ID != session.ID() {
		t.Errorf("ID = %q, want %q", stats.ID, session.ID())
	}
	if stats.Saved != 0 {
		t.Errorf("Saved = %d, want 0", stats.Saved)
	}
}

func TestHandleFrames(t *testing.T) {
	srv, dir, session := newTestServer(t)

	path := filepath.Join(dir, "frame_20240601_100000_0.jpg")
	if err := os.WriteFile(path, []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	session.RecordSave(path)

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/api/frames", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Count  int                `json:"count"`
		Frames []store.SavedFrame `json:"frames"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || len(body.Frames) != 1 {
		t.Fatalf("count = %d, frames = %d, want 1/1", body.Count, len(body.Frames))
	}
	if body.Frames[0].Name != "frame_20240601_100000_0.jpg" {
		t.Errorf("frame name = %q", body.Frames[0].Name)
	}
}

func TestHandleFrameFile(t *testing.T) {
	srv, dir, _ := newTestServer(t)

	content := []byte("jpeg bytes")
	if err := os.WriteFile(filepath.Join(dir, "frame_20240601_100000_0.jpg"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{"existing frame", "/frames/frame_20240601_100000_0.jpg", 200},
		{"missing frame", "/frames/frame_20990101_000000_0.jpg", 404},
		{"dotfile rejected", "/frames/.hidden", 400},
		{"dot-dot name rejected", "/frames/..hidden.jpg", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.app.Test(httptest.NewRequest("GET", tt.url, nil))
			if err != nil {
				t.Fatalf("Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus == 200 {
				got, _ := io.ReadAll(resp.Body)
				if string(got) != string(content) {
					t.Errorf("body = %q, want %q", got, content)
				}
			}
		})
	}
}
