package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-onboarding-service/internal/domain"
)

func TestTransport_Get_BuildsURLFromBaseAndEndpoint(t *testing.T) {
	t.Parallel()

	var gotPath, gotMethod string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		respond(w, "application/json", http.StatusOK, `{"ok":true}`)
	}))
	t.Cleanup(ts.Close)

	tr := newTestTransport(t, ts.URL+"/api")

	raw, err := tr.Get(context.Background(), "corporation-number/826417395")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %q, want GET", gotMethod)
	}
	if gotPath != "/api/corporation-number/826417395" {
		t.Errorf("path = %q, want %q", gotPath, "/api/corporation-number/826417395")
	}
	if len(gotBody) != 0 {
		t.Errorf("GET body = %q, want empty", gotBody)
	}
	if string(raw) != `{"ok":true}` {
		t.Errorf("payload = %s, want %s", raw, `{"ok":true}`)
	}
}

func TestTransport_Post_EncodesJSONBody(t *testing.T) {
	t.Parallel()

	var gotContentType string
	var gotBody map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		respond(w, "application/json", http.StatusCreated, `{}`)
	}))
	t.Cleanup(ts.Close)

	tr := newTestTransport(t, ts.URL)

	_, err := tr.Post(context.Background(), "profile-details", map[string]string{"firstName": "Ada"})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody["firstName"] != "Ada" {
		t.Errorf("body firstName = %q, want %q", gotBody["firstName"], "Ada")
	}
}

func TestTransport_ContentNegotiation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		status      int
		body        string
		expect      ContentType
		wantPayload string
		wantKind    ErrorKind
		wantStatus  int
		wantMsg     string
	}{
		{
			name:        "json success returns payload",
			contentType: "application/json",
			status:      http.StatusOK,
			body:        `{"valid":true}`,
			expect:      ContentTypeJSON,
			wantPayload: `{"valid":true}`,
		},
		{
			name:        "json with charset parameter",
			contentType: "application/json; charset=utf-8",
			status:      http.StatusOK,
			body:        `{"valid":true}`,
			expect:      ContentTypeJSON,
			wantPayload: `{"valid":true}`,
		},
		{
			name:        "json with malformed parameter is still json",
			contentType: "application/json; charset",
			status:      http.StatusOK,
			body:        `{"valid":true,"corporationNumber":"826417395"}`,
			expect:      ContentTypeJSON,
			wantPayload: `{"valid":true,"corporationNumber":"826417395"}`,
		},
		{
			name:        "plain text with stray semicolons is still plain text",
			contentType: "text/plain;;",
			status:      http.StatusOK,
			body:        "OK",
			expect:      ContentTypePlainText,
			wantPayload: `{"message":"OK"}`,
		},
		{
			name:        "json success while expecting plain text still succeeds",
			contentType: "application/json",
			status:      http.StatusOK,
			body:        `{"message":"saved"}`,
			expect:      ContentTypePlainText,
			wantPayload: `{"message":"saved"}`,
		},
		{
			name:        "json error uses message field",
			contentType: "application/json",
			status:      http.StatusUnprocessableEntity,
			body:        `{"message":"Invalid phone number"}`,
			expect:      ContentTypeJSON,
			wantKind:    KindHTTP,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMsg:     "Invalid phone number",
		},
		{
			name:        "json error without message falls back to status text",
			contentType: "application/json",
			status:      http.StatusNotFound,
			body:        `{"code":"missing"}`,
			expect:      ContentTypeJSON,
			wantKind:    KindHTTP,
			wantStatus:  http.StatusNotFound,
			wantMsg:     "Not Found",
		},
		{
			name:        "unparseable json is a parse error",
			contentType: "application/json",
			status:      http.StatusOK,
			body:        `{"valid":`,
			expect:      ContentTypeJSON,
			wantKind:    KindParse,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "plain text success when expected is wrapped",
			contentType: "text/plain",
			status:      http.StatusOK,
			body:        "OK",
			expect:      ContentTypePlainText,
			wantPayload: `{"message":"OK"}`,
		},
		{
			name:        "plain text success when json expected is an error",
			contentType: "text/plain; charset=utf-8",
			status:      http.StatusOK,
			body:        "OK",
			expect:      ContentTypeJSON,
			wantKind:    KindHTTP,
			wantStatus:  http.StatusOK,
			wantMsg:     "OK",
		},
		{
			name:        "plain text failure uses text",
			contentType: "text/plain",
			status:      http.StatusBadRequest,
			body:        "Phone is malformed",
			expect:      ContentTypePlainText,
			wantKind:    KindHTTP,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     "Phone is malformed",
		},
		{
			name:        "empty plain text failure falls back",
			contentType: "text/plain",
			status:      http.StatusInternalServerError,
			body:        "",
			expect:      ContentTypePlainText,
			wantKind:    KindHTTP,
			wantStatus:  http.StatusInternalServerError,
			wantMsg:     MsgUnexpectedPlainText,
		},
		{
			name:        "unknown content type uses raw text",
			contentType: "text/html",
			status:      http.StatusBadGateway,
			body:        "<h1>Bad gateway</h1>",
			expect:      ContentTypeJSON,
			wantKind:    KindHTTP,
			wantStatus:  http.StatusBadGateway,
			wantMsg:     "<h1>Bad gateway</h1>",
		},
		{
			name:        "unknown content type on success is still an error",
			contentType: "application/xml",
			status:      http.StatusOK,
			body:        "",
			expect:      ContentTypeJSON,
			wantKind:    KindHTTP,
			wantStatus:  http.StatusOK,
			wantMsg:     MsgUnexpectedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				respond(w, tt.contentType, tt.status, tt.body)
			}))
			t.Cleanup(ts.Close)

			tr := newTestTransport(t, ts.URL)

			raw, err := tr.Send(context.Background(), Request{
				Method:   http.MethodGet,
				Endpoint: "any",
				Expect:   tt.expect,
			})

			if tt.wantKind == 0 {
				if err != nil {
					t.Fatalf("Send() error = %v, want nil", err)
				}
				if string(raw) != tt.wantPayload {
					t.Errorf("payload = %s, want %s", raw, tt.wantPayload)
				}
				return
			}

			var te *TransportError
			if !errors.As(err, &te) {
				t.Fatalf("Send() error = %v, want *TransportError", err)
			}
			if raw != nil {
				t.Errorf("payload = %s, want nil on error", raw)
			}
			if te.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", te.Kind, tt.wantKind)
			}
			if te.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", te.Status, tt.wantStatus)
			}
			if tt.wantMsg != "" && te.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", te.Message, tt.wantMsg)
			}
		})
	}
}

func TestTransport_MissingContentType(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Suppress Go's content sniffing so the header is truly absent.
		w.Header()["Content-Type"] = nil
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	tr := newTestTransport(t, ts.URL)

	_, err := tr.Get(context.Background(), "any")

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Get() error = %v, want *TransportError", err)
	}
	if te.Kind != KindHTTP || te.Message != MsgUnexpectedType {
		t.Errorf("error = {%v %q}, want {%v %q}", te.Kind, te.Message, KindHTTP, MsgUnexpectedType)
	}
}

func TestTransport_CancelledRequestIsTyped(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		respond(w, "application/json", http.StatusOK, `{}`)
	}))
	t.Cleanup(ts.Close)
	t.Cleanup(func() { close(release) })

	tr := newTestTransport(t, ts.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := tr.Get(ctx, "slow")

	if !IsCancelled(err) {
		t.Fatalf("Get() error = %v, want KindCancelled", err)
	}
	if !errors.Is(err, domain.ErrCancelled) {
		t.Error("errors.Is(err, domain.ErrCancelled) = false, want true")
	}

	var te *TransportError
	if errors.As(err, &te) && te.Kind == KindHTTP {
		t.Error("cancellation surfaced as KindHTTP")
	}
}

func TestTransport_NetworkErrorReturnedUnchanged(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	tr := newTestTransport(t, url)

	_, err := tr.Get(context.Background(), "any")
	if err == nil {
		t.Fatal("Get() error = nil, want network error")
	}

	var te *TransportError
	if errors.As(err, &te) {
		t.Errorf("network failure typed as TransportError{%v}, want it unchanged", te.Kind)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	got, err := Decode[messageBody](json.RawMessage(`{"message":"OK"}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Message != "OK" {
		t.Errorf("Message = %q, want %q", got.Message, "OK")
	}

	_, err = Decode[messageBody](json.RawMessage(`[1,2]`))
	var te *TransportError
	if !errors.As(err, &te) || te.Kind != KindParse {
		t.Errorf("Decode([1,2]) error = %v, want KindParse", err)
	}
}

func TestTransport_HealthCheck(t *testing.T) {
	t.Parallel()

	tr := newTestTransport(t, "http://localhost")

	if got := tr.Name(); got != ProfileAPIName {
		t.Errorf("Name() = %q, want %q", got, ProfileAPIName)
	}
	if err := tr.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for closed breaker", err)
	}
}
