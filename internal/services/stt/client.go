package stt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/lexivox/speech-api/pkg/config"
)

// Client calls a Whisper-style transcription endpoint over HTTP
type Client struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	maxFileSize int64
	httpClient  *http.Client
}

// NewClient creates a transcription client from STT configuration. The
// HTTP timeout comes from config and should be longer than ordinary
// request timeouts since audio payloads are larger.
func NewClient(cfg config.STTConfig) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxFileSize: cfg.MaxFileSize,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Transcribe uploads the audio and parses the response through the
// fallback policy. Transport failures return
// ErrTranscriptionUnavailable; response bodies never fail, they degrade.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string, expectedLanguage string) (*Result, error) {
	if c.maxFileSize > 0 && int64(len(audio)) > c.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrAudioTooLarge, len(audio), c.maxFileSize)
	}

	body, contentType, err := c.buildRequestBody(audio, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcription request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscriptionUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTranscriptionUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[DEBUG] transcription backend returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrTranscriptionUnavailable, resp.StatusCode)
	}

	return Parse(respBody, expectedLanguage), nil
}

// buildRequestBody assembles the multipart form the backend expects
func (c *Client) buildRequestBody(audio []byte, filename string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, "", err
	}

	if err := writer.WriteField("model", c.model); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("temperature", strconv.FormatFloat(c.temperature, 'f', -1, 64)); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}
