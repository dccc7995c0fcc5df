package registration

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDoer is a mock implementation of HTTPDoer
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

type capturedRequest struct {
	method      string
	contentType string
	auth        string
	body        string
}

func newUpstream(t *testing.T, status int) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()
	captured := make(chan capturedRequest, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		captured <- capturedRequest{
			method:      r.Method,
			contentType: r.Header.Get("Content-Type"),
			auth:        r.Header.Get("Authorization"),
			body:        string(b),
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"message":"ignored"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestClientSubmitBody(t *testing.T) {
	srv, captured := newUpstream(t, http.StatusCreated)
	client := NewClient(srv.URL+"/register", srv.Client())

	err := client.Submit(context.Background(), Payload{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.NoError(t, err)

	req := <-captured
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "application/json", req.contentType)
	assert.Empty(t, req.auth)
	assert.JSONEq(t, `{"username":"alice","email":"a@x.com","password":"secret"}`, req.body)
}

func TestClientSubmitEmptyFields(t *testing.T) {
	srv, captured := newUpstream(t, http.StatusOK)
	client := NewClient(srv.URL, srv.Client())

	require.NoError(t, client.Submit(context.Background(), Payload{}))

	req := <-captured
	assert.JSONEq(t, `{"username":"","email":"","password":""}`, req.body)
}

func TestClientSubmitNon2xx(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv, _ := newUpstream(t, status)
			client := NewClient(srv.URL, srv.Client())

			err := client.Submit(context.Background(), Payload{Username: "alice"})
			require.Error(t, err)
			assert.True(t, IsRequestFailure(err))

			var failure *RequestFailure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, status, failure.StatusCode)
			assert.Contains(t, err.Error(), http.StatusText(status))
		})
	}
}

func TestClientSubmitNetworkError(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK)
	url := srv.URL
	srv.Close()

	client := NewClient(url, nil)
	err := client.Submit(context.Background(), Payload{Username: "alice"})
	require.Error(t, err)

	var failure *RequestFailure
	require.True(t, errors.As(err, &failure))
	assert.Zero(t, failure.StatusCode)
	assert.NotNil(t, failure.Unwrap())
}

func TestClientSubmitDoerError(t *testing.T) {
	doer := new(MockDoer)
	cause := errors.New("connection reset by peer")
	doer.On("Do", mock.AnythingOfType("*http.Request")).Return(nil, cause)

	client := NewClient("http://registry.invalid/register", doer)
	err := client.Submit(context.Background(), Payload{Username: "alice"})

	assert.True(t, IsRequestFailure(err))
	assert.ErrorIs(t, err, cause)
	doer.AssertNumberOfCalls(t, "Do", 1)
}

func TestNewClientDefaultEndpoint(t *testing.T) {
	client := NewClient("", nil)
	assert.Equal(t, DefaultEndpointURL, client.EndpointURL())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusFor(nil))
	assert.Equal(t, StatusFailure, StatusFor(&RequestFailure{StatusCode: 500}))
	assert.Equal(t, StatusFailure, StatusFor(errors.New("boom")))

	assert.Equal(t, "Registration successful!", StatusSuccess.Text)
	assert.Equal(t, "green", StatusSuccess.Color)
	assert.Equal(t, "Error during registration!", StatusFailure.Text)
	assert.Equal(t, "red", StatusFailure.Color)
}
