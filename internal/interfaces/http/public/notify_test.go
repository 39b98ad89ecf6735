package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formgate/formgate-services/api/internal/intake/domain"
)

func sampleSubmission() domain.Submission {
	return domain.Submission{
		ID:        "65f0c0ffee0000000000beef",
		Name:      "Gaurav",
		Email:     "gaurav@example.com",
		Message:   "Hello, I love your website!",
		CreatedAt: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotifySubmissionReceipt(t *testing.T) {
	type received struct {
		UserID      string `json:"userId"`
		Text        string `json:"text"`
		Destination string `json:"destination"`
	}

	var got received
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "/messages", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h := NewHandler(Config{
		HTTPClient:        server.Client(),
		NotifyEndpoint:    server.URL,
		NotifyDestination: "discord",
	})

	h.notifySubmissionReceipt(context.Background(), sampleSubmission())

	assert.Equal(t, "65f0c0ffee0000000000beef", got.UserID)
	assert.Equal(t, "discord", got.Destination)
	assert.Contains(t, got.Text, "Gaurav")
	assert.Contains(t, got.Text, "gaurav@example.com")
	assert.Contains(t, got.Text, "Hello, I love your website!")
}

func TestNotifySubmissionReceiptRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	h := NewHandler(Config{
		HTTPClient:     server.Client(),
		NotifyEndpoint: server.URL,
	})

	h.notifySubmissionReceipt(context.Background(), sampleSubmission())

	assert.Equal(t, int32(3), calls.Load(), "failed sends retry up to three attempts")
}

func TestNotifySubmissionReceiptDisabled(t *testing.T) {
	h := NewHandler(Config{HTTPClient: &http.Client{}})

	// エンドポイント未設定なら何も送らない。パニックしないことだけ確認する。
	h.notifySubmissionReceipt(context.Background(), sampleSubmission())
}
