// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/vota-locales/cache"
	"github.com/danielhkuo/vota-locales/models"
)

// Placeholder identity for injected votes. The contact gains a unique
// suffix per row because of the (locale_id, voter_contact) constraint;
// the prefix keeps injected rows trivially attributable.
const (
	injectedVoterName     = "Carga administrativa"
	injectedContactPrefix = "carga-admin-"
)

// InjectVotes inserts amount synthetic votes for load testing or manual
// correction, in batches of insertBatchSize. A failed batch aborts the
// remaining ones; earlier batches stay committed and the result reports
// the failing batch index.
func (s *Service) InjectVotes(ctx context.Context, isAdmin bool, localeID string, amount int) (models.InjectResponse, error) {
	if !isAdmin {
		return models.InjectResponse{}, unauthorizedError()
	}
	if amount <= 0 || amount > MaxInjectAmount {
		return models.InjectResponse{}, validationError(
			fmt.Sprintf("La cantidad debe estar entre 1 y %d.", MaxInjectAmount))
	}

	inserted := 0
	for start := 0; start < amount; start += insertBatchSize {
		size := min(insertBatchSize, amount-start)
		batch := make([]models.Vote, size)
		for i := range batch {
			batch[i] = models.Vote{
				LocaleID:     localeID,
				VoterName:    injectedVoterName,
				VoterContact: injectedContactPrefix + uuid.NewString(),
			}
		}

		n, err := s.store.InsertVotesBatch(ctx, batch)
		inserted += n
		if err != nil {
			batchIndex := start / insertBatchSize
			slog.Error("vote injection batch failed",
				"locale_id", localeID, "batch", batchIndex, "inserted", inserted, "error", err)
			return models.InjectResponse{
				Inserted: inserted,
				Message: fmt.Sprintf("Inserción interrumpida en el lote %d: se insertaron %s de %s votos.",
					batchIndex, humanize.Comma(int64(inserted)), humanize.Comma(int64(amount))),
			}, storeError("Error al insertar votos.", err)
		}
	}

	s.metrics.VotesInjected.Add(float64(inserted))
	s.invalidateViews(ctx, cache.ViewHome, cache.ViewRanking, cache.ViewAdmin)
	slog.Info("votes injected", "locale_id", localeID, "amount", inserted)

	return models.InjectResponse{
		Inserted: inserted,
		Message:  "Se insertaron " + humanize.Comma(int64(inserted)) + " votos.",
	}, nil
}

// RemoveVotes deletes the amount most recently created votes for the
// locale in one operation. Requires the elevated service-role key in
// addition to the admin capability; its absence is a configuration
// failure, not an authorization one. Removing from a locale with no
// votes is NotFound; having fewer votes than requested is not.
func (s *Service) RemoveVotes(ctx context.Context, isAdmin bool, localeID string, amount int) (models.RemoveResponse, error) {
	if !isAdmin {
		return models.RemoveResponse{}, unauthorizedError()
	}
	if s.serviceRoleKey == "" {
		return models.RemoveResponse{}, configurationError("Falta la credencial de servicio en el servidor.")
	}
	if amount <= 0 {
		return models.RemoveResponse{}, validationError("La cantidad debe ser mayor que cero.")
	}

	ids, err := s.store.RecentVoteIDs(ctx, localeID, amount)
	if err != nil {
		return models.RemoveResponse{}, storeError("Error de conexión. Intenta de nuevo.", err)
	}
	if len(ids) == 0 {
		return models.RemoveResponse{}, notFoundError("No hay votos para eliminar.")
	}

	removed, err := s.store.DeleteVotesByID(ctx, ids)
	if err != nil {
		return models.RemoveResponse{}, storeError("Error al eliminar votos.", err)
	}

	s.metrics.VotesRemoved.Add(float64(removed))
	s.invalidateViews(ctx, cache.ViewHome, cache.ViewRanking, cache.ViewAdmin)
	slog.Info("votes removed", "locale_id", localeID, "requested", amount, "removed", removed)

	return models.RemoveResponse{
		Removed: removed,
		Message: "Se eliminaron " + humanize.Comma(int64(removed)) + " votos.",
	}, nil
}
