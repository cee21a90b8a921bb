package ghapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUserRepos(t *testing.T) {
	var gotPath, gotPerPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPerPage = r.URL.Query().Get("per_page")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"name":"alpha","clone_url":"https://github.com/octocat/alpha.git"},
			{"name":"beta","clone_url":"https://github.com/octocat/beta.git"}
		]`)
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), "", nil, WithBaseURL(srv.URL))
	require.NoError(t, err)

	urls, err := c.ListUserRepos(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Equal(t, "100", gotPerPage)
	assert.Equal(t, []string{
		"https://github.com/octocat/alpha.git",
		"https://github.com/octocat/beta.git",
	}, urls)
}

func TestListUserRepos_SendsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), "tok123", nil, WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.ListUserRepos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestListUserRepos_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), "", nil, WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.ListUserRepos(context.Background(), "octocat")
	assert.Error(t, err)
}
