package opendota

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_FetchLiveMatches_FiltersNonPro(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"match_id":"1","league_id":15000,"radiant_score":5},
			{"match_id":"2","league_id":0,"team_name_radiant":""},
			{"match_id":"3","league_id":0,"team_name_radiant":"Spirit"}
		]`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := NewAdapter(srv.URL)
	matches, err := a.FetchLiveMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].MatchID)
	assert.Equal(t, int64(3), matches[1].MatchID)
}

func TestAdapter_FetchLiveMatches_ErrorOnNon2xx(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := &Adapter{client: &client{http: srv.Client(), base: srv.URL, limiter: newClient(srv.URL).limiter}}
	_, err := a.FetchLiveMatches(context.Background())
	assert.Error(t, err)
}
