package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	GetState(w http.ResponseWriter, r *http.Request)
	ActivateCell(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	ToggleMode(w http.ResponseWriter, r *http.Request)
}

type gameSession interface {
	View() usecase.View
	Activate(ctx context.Context, cell int) usecase.View
	Reset(ctx context.Context) usecase.View
	ToggleCPUMode(ctx context.Context) usecase.View
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger  *slog.Logger
	session gameSession
}

func NewHandlers(logger *slog.Logger, session gameSession) Handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		session: session,
	}
}

func (that *handlers) GetState(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.View())
}

// ActivateCell - a click on a cell. An ignored click still answers 200 with accepted=false.
func (that *handlers) ActivateCell(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell index must be a number"})
		return
	}

	that.writeJSON(w, http.StatusOK, that.session.Activate(r.Context(), cell))
}

func (that *handlers) Reset(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.Reset(r.Context()))
}

func (that *handlers) ToggleMode(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.ToggleCPUMode(r.Context()))
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
