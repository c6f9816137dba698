// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/vota-locales/models"
	"github.com/danielhkuo/vota-locales/testutil"
)

func TestGetRanking(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewRankingHandler(testutil.NewTestService(t, conn, cfg), cfg)

	first := testutil.CreateTestLocale(t, conn, "Bar Uno")
	second := testutil.CreateTestLocale(t, conn, "Bar Dos")
	testutil.CreateTestLocale(t, conn, "Bar Tres")

	for i := 0; i < 2; i++ {
		testutil.AddTestVote(t, conn, first, "v", fmt.Sprintf("555111000%d", i))
	}
	for i := 0; i < 5; i++ {
		testutil.AddTestVote(t, conn, second, "v", fmt.Sprintf("555222000%d", i))
	}

	req := testutil.MakeRequest("GET", "/ranking", nil, nil)
	w := httptest.NewRecorder()
	handler.GetRanking(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var ranking []models.RankedLocale
	testutil.AssertJSON(t, w, &ranking)

	if len(ranking) != 3 {
		t.Fatalf("Expected 3 ranked locales, got %d", len(ranking))
	}
	if ranking[0].Name != "Bar Dos" || ranking[0].Votes != 5 {
		t.Errorf("Expected Bar Dos with 5 votes first, got %q with %d", ranking[0].Name, ranking[0].Votes)
	}
	if ranking[1].Name != "Bar Uno" || ranking[1].Votes != 2 {
		t.Errorf("Expected Bar Uno with 2 votes second, got %q with %d", ranking[1].Name, ranking[1].Votes)
	}
	if ranking[2].Name != "Bar Tres" || ranking[2].Votes != 0 {
		t.Errorf("Expected Bar Tres with 0 votes last, got %q with %d", ranking[2].Name, ranking[2].Votes)
	}
}

func TestGetRankingEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewRankingHandler(testutil.NewTestService(t, conn, cfg), cfg)

	req := testutil.MakeRequest("GET", "/ranking", nil, nil)
	w := httptest.NewRecorder()
	handler.GetRanking(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var ranking []models.RankedLocale
	testutil.AssertJSON(t, w, &ranking)
	if len(ranking) != 0 {
		t.Errorf("Expected an empty ranking, got %d entries", len(ranking))
	}
}
