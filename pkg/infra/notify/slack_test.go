package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/issuedigest/pkg/infra/notify"
)

func TestSlack_Notify(t *testing.T) {
	t.Run("posts message text", func(t *testing.T) {
		bodyCh := make(chan map[string]any, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			bodyCh <- body
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := notify.NewSlack(server.URL).Notify(context.Background(), "digest run failed")
		gt.NoError(t, err)

		body := <-bodyCh
		gt.Equal(t, body["text"], any("digest run failed"))
	})

	t.Run("error status is returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		err := notify.NewSlack(server.URL).Notify(context.Background(), "x")
		gt.Error(t, err)
	})
}

func TestNop_Notify(t *testing.T) {
	gt.NoError(t, notify.NewNop().Notify(context.Background(), "ignored"))
}
