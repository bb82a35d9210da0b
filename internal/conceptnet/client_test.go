package conceptnet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEdges = `{
  "edges": [
    {"rel": {"@id": "/r/IsA"}, "end": {"label": "Fruit"}},
    {"rel": {"@id": "/r/RelatedTo"}, "end": {"label": "monkey"}},
    {"rel": {"@id": "/r/IsA"}, "end": {"label": "food"}},
    {"rel": {"@id": "/r/IsA"}, "end": {"label": "fruit"}},
    {"rel": {"@id": "/r/IsA"}, "end": {"label": "  "}}
  ]
}`

func TestClientRelated(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleEdges))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	labels, err := client.Related(context.Background(), "banana")
	require.NoError(t, err)

	// Only "is-a" edges survive, lowercased, deduplicated, sorted.
	assert.Equal(t, []string{"food", "fruit"}, labels)
	assert.Equal(t, "/c/en/banana", requestedPath)
}

func TestClientRelatedEscapesTerm(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"edges": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	labels, err := client.Related(context.Background(), "ice cream")
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Equal(t, "/c/en/ice%20cream", requestedPath)
}

func TestClientRelatedServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.Related(context.Background(), "banana")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClientRelatedMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.Related(context.Background(), "banana")
	assert.Error(t, err)
}

func TestClientRelatedContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 2*time.Second)
	_, err := client.Related(ctx, "banana")
	assert.Error(t, err)
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	client := NewClient("", time.Second)
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
}
