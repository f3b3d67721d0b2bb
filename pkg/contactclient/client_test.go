package contactclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostContact_Success(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := New(srv.URL+"/").PostContact(context.Background(), Request{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello there, this is a valid message.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestPostContact_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Validation failed","errors":{"name":["Name must be at least 2 characters"],"email":["Please enter a valid email address"]}}`))
	}))
	defer srv.Close()

	err := New(srv.URL).PostContact(context.Background(), Request{Name: "J", Email: "bad", Message: "short"})

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, []string{"Name must be at least 2 characters"}, apiErr.FieldErrors()["name"])
	assert.Equal(t, []string{"Please enter a valid email address"}, apiErr.FieldErrors()["email"])
}

func TestPostContact_Throttled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":false,"message":"Too many requests. Please try again later."}`))
	}))
	defer srv.Close()

	err := New(srv.URL).PostContact(context.Background(), Request{})

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Too many requests. Please try again later.", apiErr.UserMessage())
	assert.Equal(t, 42*time.Second, apiErr.RetryAfter)
	assert.Empty(t, apiErr.FieldErrors())
}

func TestPostContact_NonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).PostContact(context.Background(), Request{})

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.UserMessage())
}

func TestPostContact_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(url).PostContact(context.Background(), Request{})

	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}
