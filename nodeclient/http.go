package nodeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// MultipartFile is the single file part uploaded to the media endpoint.
type MultipartFile struct {
	Filename string
	MIME     string
	Data     []byte
}

// Transport performs raw HTTP calls against the node. It returns the
// response body on 2xx and a classified *WalletError otherwise.
type Transport interface {
	Get(ctx context.Context, endpoint Endpoint) ([]byte, error)
	PostJSON(ctx context.Context, endpoint Endpoint, body any) ([]byte, error)
	PostMultipart(ctx context.Context, endpoint Endpoint, file MultipartFile) ([]byte, error)
}

type httpTransport struct {
	baseURL string
	token   string
	apiKey  string
	client  *http.Client
	logger  log.Logger
}

// NewHTTPTransport builds the default transport for the configured node
// base URL. The auth token, when set, is sent as a bearer token.
func NewHTTPTransport(baseURL, token string, timeout time.Duration, logger log.Logger) Transport {
	return &httpTransport{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.NewSystem("node-http"),
	}
}

// NewFaucetTransport builds a transport for the external faucet service,
// which authenticates with an x-api-key header instead of a bearer token.
func NewFaucetTransport(baseURL, apiKey string, timeout time.Duration, logger log.Logger) Transport {
	return &httpTransport{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.NewSystem("faucet-http"),
	}
}

func (t *httpTransport) Get(ctx context.Context, endpoint Endpoint) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+string(endpoint), nil)
	if err != nil {
		return nil, wrapError(KindRequestFailed, "building request", err)
	}
	return t.roundTrip(req, endpoint)
}

func (t *httpTransport) PostJSON(ctx context.Context, endpoint Endpoint, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, wrapError(KindRequestFailed, "encoding request body", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+string(endpoint), reader)
	if err != nil {
		return nil, wrapError(KindRequestFailed, "building request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return t.roundTrip(req, endpoint)
}

func (t *httpTransport) PostMultipart(ctx context.Context, endpoint Endpoint, file MultipartFile) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Filename),
	}
	header["Content-Type"] = []string{file.MIME}
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, wrapError(KindRequestFailed, "building multipart body", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, wrapError(KindRequestFailed, "writing multipart body", err)
	}
	if err := writer.Close(); err != nil {
		return nil, wrapError(KindRequestFailed, "closing multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+string(endpoint), &buf)
	if err != nil {
		return nil, wrapError(KindRequestFailed, "building request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return t.roundTrip(req, endpoint)
}

func (t *httpTransport) roundTrip(req *http.Request, endpoint Endpoint) ([]byte, error) {
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	if t.apiKey != "" {
		req.Header.Set("x-api-key", t.apiKey)
	}

	started := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, t.classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(KindRequestFailed, "reading response body", err)
	}
	t.logger.Debug("request completed",
		"method", req.Method,
		"endpoint", string(endpoint),
		"status", resp.StatusCode,
		"took", time.Since(started).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseNodeError(resp.StatusCode, body)
	}
	return body, nil
}

func (t *httpTransport) classifyTransportError(endpoint Endpoint, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		t.logger.Error("request timed out", "endpoint", string(endpoint), "error", err)
		return wrapError(KindTimeout, "request timed out", err)
	}
	t.logger.Error("request failed", "endpoint", string(endpoint), "error", err)
	return wrapError(KindConnectionFailed, "unable to connect to node", err)
}

// nodeErrorPayload is the error envelope returned by the node daemon.
type nodeErrorPayload struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func parseNodeError(status int, body []byte) *WalletError {
	var payload nodeErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		return &WalletError{
			Kind:    KindHTTPStatus,
			Message: fmt.Sprintf("node returned status %d", status),
			Status:  status,
		}
	}
	return classifyNodeError(status, payload.Error)
}
