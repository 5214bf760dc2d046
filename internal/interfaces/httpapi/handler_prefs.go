package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/fplpulse/fplpulse/internal/usecase"
)

type cardPrefsPayload struct {
	Order []string `json:"order"`
}

type cardPrefsRequest struct {
	Order []string `json:"order" validate:"required,min=1,dive,required"`
}

type themePrefPayload struct {
	Theme string `json:"theme"`
}

type themePrefRequest struct {
	Theme string `json:"theme" validate:"required,oneof=system light dark"`
}

func (h *Handler) GetCardPrefs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCardPrefs")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, cardPrefsPayload{Order: h.cards.Order()})
}

func (h *Handler) PutCardPrefs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutCardPrefs")
	defer span.End()

	var req cardPrefsRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	order, err := h.cards.SetOrder(req.Order)
	if err != nil {
		h.logger.ErrorContext(ctx, "persist card order failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cardPrefsPayload{Order: order})
}

func (h *Handler) GetThemePref(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetThemePref")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, themePrefPayload{Theme: h.prefs.Theme()})
}

func (h *Handler) PutThemePref(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutThemePref")
	defer span.End()

	var req themePrefRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.prefs.SetTheme(req.Theme); err != nil {
		h.logger.ErrorContext(ctx, "persist theme failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, themePrefPayload{Theme: h.prefs.Theme()})
}
