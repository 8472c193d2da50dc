package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/httpclient"
)

// maxBodySize limits how much of a response body is read.
const maxBodySize = 1 << 20 // 1 MB

// ContentType is the response media type a caller expects.
type ContentType string

// Supported content types.
const (
	ContentTypeJSON      ContentType = "application/json"
	ContentTypePlainText ContentType = "text/plain"
)

// Request describes one call to the downstream API. Endpoint is joined to the
// client's base URL with a single "/". Body is JSON-encoded when non-nil.
// Expect defaults to ContentTypeJSON.
type Request struct {
	Method   string
	Endpoint string
	Body     any
	Expect   ContentType
}

// RequestOption customizes a Request built by Get or Post.
type RequestOption func(*Request)

// WithExpect declares the response content type the caller accepts as success.
func WithExpect(ct ContentType) RequestOption {
	return func(r *Request) {
		r.Expect = ct
	}
}

// Transport centralizes the HTTP request lifecycle for ACL clients: URL
// construction, JSON encoding, execution via httpclient.Client, content
// negotiation, and error typing. Cancellation is carried by the context passed
// to each call and surfaces as a TransportError of KindCancelled.
type Transport struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewTransport creates a Transport backed by the given HTTP client and logger.
func NewTransport(client *httpclient.Client, logger *slog.Logger) *Transport {
	return &Transport{client: client, logger: logger}
}

// Get issues a GET for endpoint.
func (t *Transport) Get(ctx context.Context, endpoint string, opts ...RequestOption) (json.RawMessage, error) {
	return t.Send(ctx, newRequest(http.MethodGet, endpoint, nil, opts))
}

// Post issues a POST for endpoint with body encoded as JSON.
func (t *Transport) Post(ctx context.Context, endpoint string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return t.Send(ctx, newRequest(http.MethodPost, endpoint, body, opts))
}

func newRequest(method, endpoint string, body any, opts []RequestOption) Request {
	r := Request{Method: method, Endpoint: endpoint, Body: body, Expect: ContentTypeJSON}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Send executes req and returns the success payload as raw JSON.
//
// A plain-text success is wrapped as {"message": text} when req.Expect is
// ContentTypePlainText. Failures are *TransportError for unacceptable
// responses and cancellation. Network and circuit breaker errors are returned
// unchanged.
func (t *Transport) Send(ctx context.Context, req Request) (json.RawMessage, error) {
	if req.Expect == "" {
		req.Expect = ContentTypeJSON
	}

	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	t.logger.DebugContext(ctx, "sending request",
		slog.String("method", req.Method),
		slog.String("endpoint", req.Endpoint),
	)

	resp, err := t.client.Do(ctx, httpReq)
	if resp == nil {
		if err == nil {
			err = fmt.Errorf("%s %s: no response", req.Method, req.Endpoint)
		}
		return nil, cancelledError(err)
	}
	// httpclient.Do returns both resp and err when retries are exhausted on a
	// retryable status; the response is still negotiated so the caller sees
	// the server's message.
	defer t.closeBody(ctx, resp)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, cancelledError(fmt.Errorf("reading response from %s %s: %w", req.Method, req.Endpoint, err))
	}

	payload, err := negotiate(resp, body, req.Expect)

	t.logger.DebugContext(ctx, "received response",
		slog.String("method", req.Method),
		slog.String("endpoint", req.Endpoint),
		slog.Int("status", resp.StatusCode),
		slog.String("content_type", resp.Header.Get("Content-Type")),
		slog.Bool("ok", err == nil),
	)

	return payload, err
}

// BaseURL returns the base URL from the underlying HTTP client.
func (t *Transport) BaseURL() string {
	return t.client.BaseURL()
}

func (t *Transport) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := t.client.BaseURL() + "/" + req.Endpoint

	if req.Body == nil {
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", req.Method, req.Endpoint, err)
		}
		return httpReq, nil
	}

	body, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", req.Method, req.Endpoint, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", req.Method, req.Endpoint, err)
	}
	httpReq.Header.Set("Content-Type", string(ContentTypeJSON))

	return httpReq, nil
}

func (t *Transport) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		t.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// negotiate selects a parser from the declared Content-Type header and turns
// the response into a payload or a *TransportError.
func negotiate(resp *http.Response, body []byte, expect ContentType) (json.RawMessage, error) {
	status := resp.StatusCode
	ok := status >= http.StatusOK && status < http.StatusMultipleChoices

	switch mediaType(resp.Header.Get("Content-Type")) {
	case ContentTypeJSON:
		if !json.Valid(body) {
			return nil, parseError(status, fmt.Errorf("invalid JSON body (%d bytes)", len(body)))
		}
		if ok {
			return json.RawMessage(body), nil
		}
		var m messageBody
		_ = json.Unmarshal(body, &m)
		return nil, httpError(status, m.Message, http.StatusText(status))

	case ContentTypePlainText:
		text := string(body)
		if ok && expect == ContentTypePlainText {
			payload, err := json.Marshal(messageBody{Message: text})
			if err != nil {
				return nil, parseError(status, err)
			}
			return payload, nil
		}
		return nil, httpError(status, strings.TrimSpace(text), MsgUnexpectedPlainText)

	default:
		return nil, httpError(status, strings.TrimSpace(string(body)), MsgUnexpectedType)
	}
}

// messageBody is the {"message": ...} shape used both for JSON error bodies and
// for wrapped plain-text successes.
type messageBody struct {
	Message string `json:"message"`
}

// mediaType strips parameters such as charset from a Content-Type header.
// A malformed parameter list still yields the declared media type.
func mediaType(header string) ContentType {
	if header == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil && !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return ""
	}
	return ContentType(mt)
}

// Decode unmarshals a raw payload returned by Transport into T. Decoding
// failures are KindParse errors.
func Decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, parseError(0, err)
	}
	return v, nil
}
