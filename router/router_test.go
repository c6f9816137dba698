// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/vota-locales/handlers"
	"github.com/danielhkuo/vota-locales/models"
	"github.com/danielhkuo/vota-locales/testutil"
)

func TestRouterEndToEnd(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestService(t, conn, cfg), cfg)

	localeID := testutil.CreateTestLocale(t, conn, "Bar Uno")
	token := testutil.AdminToken(cfg)

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		headers        map[string]string
		expectedStatus int
	}{
		{"health check", "GET", "/health", nil, nil, http.StatusOK},
		{"metrics scrape", "GET", "/metrics", nil, nil, http.StatusOK},
		{"root banner", "GET", "/", nil, nil, http.StatusOK},
		{"list locales", "GET", "/locales", nil, nil, http.StatusOK},
		{"ranking", "GET", "/ranking", nil, nil, http.StatusOK},
		{"submit vote", "POST", "/locales/" + localeID + "/votes",
			models.SubmitVoteRequest{Name: "Ana", Contact: "5551234567"}, nil, http.StatusCreated},
		{"vote on wrong method", "GET", "/locales/" + localeID + "/votes", nil, nil, http.StatusMethodNotAllowed},
		{"admin login", "POST", "/admin/login",
			models.LoginRequest{PIN: cfg.AdminPIN}, nil, http.StatusOK},
		{"purge without token", "POST", "/locales/" + localeID + "/purge-fraud", nil, nil, http.StatusUnauthorized},
		{"purge with token", "POST", "/locales/" + localeID + "/purge-fraud", nil,
			map[string]string{handlers.AdminTokenHeader: token}, http.StatusOK},
		{"inject votes", "POST", "/locales/" + localeID + "/votes/inject",
			models.InjectVotesRequest{Amount: 5},
			map[string]string{handlers.AdminTokenHeader: token}, http.StatusCreated},
		{"remove votes", "POST", "/locales/" + localeID + "/votes/remove",
			models.RemoveVotesRequest{Amount: 5},
			map[string]string{handlers.AdminTokenHeader: token}, http.StatusOK},
		{"unknown route", "POST", "/nope", nil, nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(tt.method, tt.path, tt.body, tt.headers)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestRouterLocaleAdminFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestService(t, conn, cfg), cfg)
	token := testutil.AdminToken(cfg)

	// Create
	req := testutil.MakeRequest("POST", "/locales",
		models.CreateLocaleRequest{Name: "Bar Nuevo"},
		map[string]string{handlers.AdminTokenHeader: token})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateLocaleResponse
	testutil.AssertJSON(t, w, &created)

	// Edit
	req = testutil.MakeRequest("PUT", "/locales/"+created.LocaleID,
		models.EditLocaleRequest{Name: "Bar Editado", ImageURL: "/editado.png"},
		map[string]string{handlers.AdminTokenHeader: token})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Delete
	req = testutil.MakeRequest("DELETE", "/locales/"+created.LocaleID, nil,
		map[string]string{handlers.AdminTokenHeader: token})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Gone
	req = testutil.MakeRequest("DELETE", "/locales/"+created.LocaleID, nil,
		map[string]string{handlers.AdminTokenHeader: token})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
