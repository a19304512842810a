package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/medlifequest/internal/kv"
	"github.com/terraincognita07/medlifequest/internal/logging"
	"github.com/terraincognita07/medlifequest/internal/random"
)

var testNow = time.Date(2026, time.May, 4, 12, 0, 0, 0, time.UTC)

type brokenStore struct {
	*kv.MemoryStore
}

func (store brokenStore) Set(string, []byte) error {
	return errors.New("read-only filesystem")
}

func (store brokenStore) Delete(string) error {
	return errors.New("read-only filesystem")
}

func newTestApp(t *testing.T, store kv.Store) *fiber.App {
	t.Helper()

	handler, err := NewHandler(Dependencies{
		Store:    store,
		Logger:   logging.Discard(),
		Random:   random.NewSeeded(9, 3),
		Location: time.UTC,
		Clock:    func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return response, raw
}

func expectStatus(t *testing.T, response *http.Response, raw []byte, want int) {
	t.Helper()
	if response.StatusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(raw))
	}
}

func decodeBody[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
	return value
}

func readAPIError(t *testing.T, raw []byte) string {
	t.Helper()
	return decodeBody[map[string]string](t, raw)["error"]
}
