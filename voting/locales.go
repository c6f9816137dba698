// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/danielhkuo/vota-locales/cache"
	"github.com/danielhkuo/vota-locales/models"
)

// ListLocales returns all locales ordered by name, for the public
// voting page.
func (s *Service) ListLocales(ctx context.Context) ([]models.Locale, error) {
	locales, err := s.store.ListLocales(ctx)
	if err != nil {
		return nil, storeError("Error de conexión. Intenta de nuevo.", err)
	}
	return locales, nil
}

// CreateLocale adds a contest participant. Admin only. An empty image
// URL falls back to the placeholder asset.
func (s *Service) CreateLocale(ctx context.Context, isAdmin bool, name, description, imageURL string) (string, error) {
	if !isAdmin {
		return "", unauthorizedError()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationError("El nombre es obligatorio")
	}
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	id, err := s.store.InsertLocale(ctx, name, description, imageURL)
	if err != nil {
		return "", storeError("Error al crear el participante.", err)
	}

	s.invalidateViews(ctx, cache.ViewHome, cache.ViewAdmin)
	slog.Info("locale created", "locale_id", id, "name", name)
	return id, nil
}

// EditLocale updates a participant's fields. Admin only.
func (s *Service) EditLocale(ctx context.Context, isAdmin bool, id, name, description, imageURL string) error {
	if !isAdmin {
		return unauthorizedError()
	}
	if id == "" {
		return validationError("ID no válido")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("El nombre es obligatorio")
	}
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	if err := s.store.UpdateLocale(ctx, id, name, description, imageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundError("Participante no encontrado.")
		}
		return storeError("Error al actualizar el participante.", err)
	}

	s.invalidateViews(ctx, cache.ViewHome, cache.ViewAdmin)
	return nil
}

// DeleteLocale removes a participant and all of its votes. Votes go
// first so a vote never outlives its locale even on backends with
// foreign keys disabled.
func (s *Service) DeleteLocale(ctx context.Context, isAdmin bool, id string) error {
	if !isAdmin {
		return unauthorizedError()
	}
	if id == "" {
		return validationError("ID no válido")
	}

	if err := s.store.DeleteVotesByLocale(ctx, id); err != nil {
		slog.Error("error deleting votes for locale", "locale_id", id, "error", err)
		return storeError("Error borrando votos asociados.", err)
	}

	if err := s.store.DeleteLocale(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundError("Participante no encontrado.")
		}
		return storeError("Error al eliminar el participante.", err)
	}

	s.invalidateViews(ctx, cache.ViewHome, cache.ViewRanking, cache.ViewAdmin)
	slog.Info("locale deleted", "locale_id", id)
	return nil
}
