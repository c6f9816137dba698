// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"testing"

	"github.com/danielhkuo/vota-locales/models"
)

func TestCreateLocale(t *testing.T) {
	tests := []struct {
		name       string
		isAdmin    bool
		localeName string
		imageURL   string
		wantCode   string
		wantImage  string
	}{
		{"not admin", false, "Bar Uno", "", models.CodeUnauthorized, ""},
		{"empty name", true, "  ", "", models.CodeValidation, ""},
		{"default image", true, "Bar Uno", "", "", models.DefaultImageURL},
		{"explicit image", true, "Bar Uno", "https://cdn/x.png", "", "https://cdn/x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newFakeGateway()
			svc := newTestService(gw)

			id, err := svc.CreateLocale(context.Background(), tt.isAdmin, tt.localeName, "desc", tt.imageURL)

			if tt.wantCode != "" {
				if err == nil || AsError(err).Code != tt.wantCode {
					t.Fatalf("Expected code %q, got %v", tt.wantCode, err)
				}
				if len(gw.locales) != 0 {
					t.Error("Expected no locale created")
				}
				return
			}

			if err != nil {
				t.Fatalf("Expected success, got %v", err)
			}
			if id == "" {
				t.Error("Expected a locale id")
			}
			if gw.locales[0].ImageURL != tt.wantImage {
				t.Errorf("Expected image %q, got %q", tt.wantImage, gw.locales[0].ImageURL)
			}
		})
	}
}

func TestEditLocale(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)

	id, err := svc.CreateLocale(context.Background(), true, "Bar Uno", "d", "")
	if err != nil {
		t.Fatalf("Failed to create locale: %v", err)
	}

	if err := svc.EditLocale(context.Background(), false, id, "Bar Dos", "d", ""); AsError(err).Code != models.CodeUnauthorized {
		t.Errorf("Expected unauthorized, got %v", err)
	}
	if err := svc.EditLocale(context.Background(), true, "", "Bar Dos", "d", ""); AsError(err).Code != models.CodeValidation {
		t.Errorf("Expected validation error for empty id, got %v", err)
	}
	if err := svc.EditLocale(context.Background(), true, id, "", "d", ""); AsError(err).Code != models.CodeValidation {
		t.Errorf("Expected validation error for empty name, got %v", err)
	}

	if err := svc.EditLocale(context.Background(), true, id, "Bar Dos", "nueva", ""); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if gw.locales[0].Name != "Bar Dos" {
		t.Errorf("Expected updated name, got %q", gw.locales[0].Name)
	}
}

func TestDeleteLocaleCascadesVotes(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)

	id, _ := svc.CreateLocale(context.Background(), true, "Bar Uno", "d", "")
	other, _ := svc.CreateLocale(context.Background(), true, "Bar Dos", "d", "")
	gw.addVote(id, "Ana", "5551110001")
	gw.addVote(id, "Luis", "5552220002")
	gw.addVote(other, "Marta", "5553330003")

	if err := svc.DeleteLocale(context.Background(), false, id); AsError(err).Code != models.CodeUnauthorized {
		t.Errorf("Expected unauthorized, got %v", err)
	}

	if err := svc.DeleteLocale(context.Background(), true, id); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if len(gw.locales) != 1 || gw.locales[0].ID != other {
		t.Error("Expected only the other locale to remain")
	}
	for _, v := range gw.votes {
		if v.LocaleID == id {
			t.Error("Expected the deleted locale's votes to be gone")
		}
	}
	if len(gw.votes) != 1 {
		t.Errorf("Expected the other locale's vote to survive, got %d votes", len(gw.votes))
	}
}
