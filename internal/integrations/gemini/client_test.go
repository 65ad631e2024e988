package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testApartments() []domain.Apartment {
	return []domain.Apartment{
		{ID: 1001, Name: "Apartamento Moderno en la Rambla", City: "Barcelona"},
		{ID: 1003, Name: "Suite de Lujo en Diagonal", City: "Barcelona"},
	}
}

func newStubServer(t *testing.T, answer string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		resp := generateContentResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{
			{Content: content{Parts: []part{{Text: answer}}}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestFindBestApartment(t *testing.T) {
	srv := newStubServer(t, "1003")
	defer srv.Close()

	client := NewClient(srv.URL, "gemini-2.0-flash", "test-key", 5*time.Second, nopLogger{})

	apt, err := client.FindBestApartment(context.Background(), "quiero algo de lujo", testApartments())
	require.NoError(t, err)
	assert.Equal(t, int64(1003), apt.ID)
}

func TestFindBestApartment_NoisyAnswer(t *testing.T) {
	// Модель обернула ID лишним текстом, регулярка должна его вытащить
	srv := newStubServer(t, "The best match is apartment 1001.")
	defer srv.Close()

	client := NewClient(srv.URL, "gemini-2.0-flash", "test-key", 5*time.Second, nopLogger{})

	apt, err := client.FindBestApartment(context.Background(), "algo moderno", testApartments())
	require.NoError(t, err)
	assert.Equal(t, int64(1001), apt.ID)
}

func TestFindBestApartment_FallbackOnUnknownID(t *testing.T) {
	srv := newStubServer(t, "42")
	defer srv.Close()

	client := NewClient(srv.URL, "gemini-2.0-flash", "test-key", 5*time.Second, nopLogger{})

	apt, err := client.FindBestApartment(context.Background(), "cualquiera", testApartments())
	require.NoError(t, err)
	assert.Equal(t, int64(1001), apt.ID)
}

func TestFindBestApartment_MissingAPIKey(t *testing.T) {
	client := NewClient("http://localhost", "gemini-2.0-flash", "", time.Second, nopLogger{})

	_, err := client.FindBestApartment(context.Background(), "algo", testApartments())
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestFindBestApartment_EmptyCatalog(t *testing.T) {
	client := NewClient("http://localhost", "gemini-2.0-flash", "key", time.Second, nopLogger{})

	_, err := client.FindBestApartment(context.Background(), "algo", nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestFindBestApartment_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "gemini-2.0-flash", "test-key", 5*time.Second, nopLogger{})

	_, err := client.FindBestApartment(context.Background(), "algo", testApartments())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
