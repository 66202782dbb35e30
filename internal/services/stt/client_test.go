package stt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lexivox/speech-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(config.STTConfig{
		APIKey:      "test-key",
		APIURL:      serverURL,
		Model:       "whisper-1",
		Timeout:     5 * time.Second,
		MaxFileSize: 1 << 20,
	})
}

func TestClient_TranscribePrimaryPath(t *testing.T) {
	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "verbose_json", r.FormValue("response_format"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "rec.m4a", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":"transcribe","language":"english","duration":1.0,"text":"hello","segments":[{"avg_logprob":-0.1}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	result, err := client.Transcribe(context.Background(), []byte("fake-audio"), "rec.m4a", "en")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "hello", result.Transcript)
	assert.True(t, result.LanguageMatch)
	assert.False(t, result.FallbackUsed)
}

func TestClient_TranscribeMalformedBodyTakesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with a body that misses the structured schema
		w.Write([]byte(`{"text":"partial words","confidence":0.9}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	result, err := client.Transcribe(context.Background(), []byte("fake-audio"), "rec.m4a", "en")

	require.NoError(t, err)
	assert.True(t, result.FallbackUsed)
	assert.Equal(t, "partial words", result.Transcript)
	assert.False(t, result.LanguageMatch)
	assert.LessOrEqual(t, result.Confidence, 0.4)
}

func TestClient_TranscribeServerErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Transcribe(context.Background(), []byte("fake-audio"), "rec.m4a", "en")

	assert.ErrorIs(t, err, ErrTranscriptionUnavailable)
}

func TestClient_TranscribeUnreachableBackend(t *testing.T) {
	client := testClient(t, "http://127.0.0.1:1")
	_, err := client.Transcribe(context.Background(), []byte("fake-audio"), "rec.m4a", "en")

	assert.ErrorIs(t, err, ErrTranscriptionUnavailable)
}

func TestClient_TranscribeRejectsOversizedAudio(t *testing.T) {
	client := NewClient(config.STTConfig{
		APIURL:      "http://example.invalid",
		MaxFileSize: 10,
		Timeout:     time.Second,
	})

	_, err := client.Transcribe(context.Background(), make([]byte, 11), "rec.m4a", "en")
	assert.ErrorIs(t, err, ErrAudioTooLarge)
}

func TestClient_TranscribeRespectsContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts background reads and can
		// observe the client disconnect; otherwise r.Context() is never
		// cancelled and server.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Transcribe(ctx, []byte("fake-audio"), "rec.m4a", "en")
	assert.ErrorIs(t, err, ErrTranscriptionUnavailable)
}
