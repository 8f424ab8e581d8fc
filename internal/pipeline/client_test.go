package pipeline_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/pipeline"
)

func TestUpdateStatusSendsPatch(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"lead-1","status":"qualified"}`))
	}))
	defer srv.Close()

	client := pipeline.NewClient(srv.URL)
	err := client.UpdateStatus(context.Background(), "lead-1", "qualified")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/leads/lead-1/status", gotPath)
	assert.Equal(t, "qualified", gotBody["status"])
}

// The error message comes from the {"error"} envelope, then the raw body,
// then a generic fallback.
func TestUpdateStatusErrorMessages(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"json envelope", http.StatusBadRequest, `{"error":"invalid status \"won\""}`, `invalid status "won"`},
		{"raw text body", http.StatusNotFound, "lead not found", "lead not found"},
		{"empty body", http.StatusInternalServerError, "", "Request failed (500)"},
		{"unparseable json", http.StatusBadGateway, "<html>bad gateway</html>", "<html>bad gateway</html>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := pipeline.NewClient(srv.URL)
			err := client.UpdateStatus(context.Background(), "lead-1", "closed")

			require.Error(t, err)
			assert.Equal(t, tc.wantMessage, err.Error())
		})
	}
}

func TestFetchLeads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leads", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"lead-1","name":"Ada","email":"ada@x.com","status":"new"}]`))
	}))
	defer srv.Close()

	client := pipeline.NewClient(srv.URL)
	leads, err := client.FetchLeads(context.Background())

	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Ada", leads[0].Name)
	assert.Equal(t, entity.StatusNew, leads[0].Status)
}
