package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/FightBet_Go/internal/betting"
	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/fight"
	"github.com/osse101/FightBet_Go/internal/logger"
	"github.com/osse101/FightBet_Go/internal/process"
	"github.com/osse101/FightBet_Go/internal/settlement"
)

// FightHandler serves the fight lifecycle, betting and cash-out endpoints
type FightHandler struct {
	fights     fight.Service
	ledger     betting.Service
	controller process.Controller
	settlement settlement.Service
}

// NewFightHandler creates a new FightHandler
func NewFightHandler(fights fight.Service, ledger betting.Service, controller process.Controller, settle settlement.Service) *FightHandler {
	return &FightHandler{
		fights:     fights,
		ledger:     ledger,
		controller: controller,
		settlement: settle,
	}
}

// ListFightsResponse wraps the fights page
type ListFightsResponse struct {
	Fights []domain.FightView `json:"fights"`
}

// PlaceBetRequest represents a wager on one side of a fight
type PlaceBetRequest struct {
	Side   string `json:"side" validate:"required,side"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

// PlaceBetResponse echoes the accepted wager with the new totals
type PlaceBetResponse struct {
	FightID string      `json:"fight_id"`
	Side    domain.Side `json:"side"`
	Amount  int64       `json:"amount"`
	Bets    domain.Bets `json:"bets"`
}

// TotalsResponse holds the per-side pool of a fight
type TotalsResponse struct {
	FightID string      `json:"fight_id"`
	Bets    domain.Bets `json:"bets"`
	Total   int64       `json:"total"`
}

// StartFightRequest carries the capability token needed to start a fight
type StartFightRequest struct {
	SecureID string `json:"secure_id" validate:"required"`
}

// StartFightResponse is returned once the match process is running
type StartFightResponse struct {
	Fight     domain.FightView `json:"fight"`
	StreamURL string           `json:"stream_url"`
}

// UpdateStatusRequest is posted by the match process or an operator
type UpdateStatusRequest struct {
	SecureID     string               `json:"secure_id" validate:"required"`
	Status       string               `json:"status" validate:"required,fightstatus"`
	CurrentState *domain.CurrentState `json:"current_state"`
	Winner       string               `json:"winner" validate:"omitempty,side"`
	Reason       string               `json:"reason" validate:"max=256"`
}

// CashoutRequest optionally names the wallet asking for payout
type CashoutRequest struct {
	WalletAddress string `json:"wallet_address" validate:"max=128"`
}

// HandleCreateFight opens a new betting round
// @Summary Create fight
// @Description Creates a fight in betting_open. The response is the only place the secure_id is returned.
// @Tags fights
// @Produce json
// @Success 201 {object} domain.Fight
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/fights [post]
func (h *FightHandler) HandleCreateFight(w http.ResponseWriter, r *http.Request) {
	f, err := h.fights.CreateFight(r.Context())
	if err != nil {
		respondServiceError(w, r, OpCreateFight, err)
		return
	}
	respondJSON(w, http.StatusCreated, f)
}

// HandleGetFight returns the public view of a fight
// @Summary Get fight
// @Tags fights
// @Produce json
// @Param id path string true "Fight ID"
// @Success 200 {object} domain.FightView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/fights/{id} [get]
func (h *FightHandler) HandleGetFight(w http.ResponseWriter, r *http.Request) {
	id, ok := GetFightIDParam(r, w)
	if !ok {
		return
	}
	f, err := h.fights.GetFight(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetFight, err)
		return
	}
	respondJSON(w, http.StatusOK, f.View())
}

// HandleListFights returns the most recent fights
// @Summary List fights
// @Tags fights
// @Produce json
// @Param limit query int false "Maximum number of fights"
// @Success 200 {object} ListFightsResponse
// @Router /api/v1/fights [get]
func (h *FightHandler) HandleListFights(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}
	fights, err := h.fights.ListFights(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, OpListFights, err)
		return
	}
	views := make([]domain.FightView, 0, len(fights))
	for _, f := range fights {
		views = append(views, f.View())
	}
	respondJSON(w, http.StatusOK, ListFightsResponse{Fights: views})
}

// HandleGetActiveFight returns the fight currently open or running
// @Summary Active fight
// @Description Returns 404 with status no_fight when nothing is open or running
// @Tags fights
// @Produce json
// @Success 200 {object} domain.FightView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/fights/active [get]
func (h *FightHandler) HandleGetActiveFight(w http.ResponseWriter, r *http.Request) {
	f, err := h.fights.GetActiveFight(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   domain.KindNotFound,
			Message: ErrMsgNoActiveFight,
			Status:  string(domain.FightStatusNoFight),
		})
		return
	}
	if err != nil {
		respondServiceError(w, r, OpGetActiveFight, err)
		return
	}
	respondJSON(w, http.StatusOK, f.View())
}

// HandlePlaceBet adds a wager while betting is open
// @Summary Place bet
// @Tags bets
// @Accept json
// @Produce json
// @Param id path string true "Fight ID"
// @Param request body PlaceBetRequest true "Bet"
// @Success 200 {object} PlaceBetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/fights/{id}/bets [post]
func (h *FightHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetFightIDParam(r, w)
	if !ok {
		return
	}
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPlaceBet); err != nil {
		return
	}

	side := domain.Side(req.Side)
	f, err := h.ledger.PlaceBet(r.Context(), id, side, req.Amount)
	if err != nil {
		respondServiceError(w, r, OpPlaceBet, err)
		return
	}
	respondJSON(w, http.StatusOK, PlaceBetResponse{
		FightID: f.ID,
		Side:    side,
		Amount:  req.Amount,
		Bets:    f.Bets,
	})
}

// HandleGetTotals returns the pool per side
// @Summary Bet totals
// @Tags bets
// @Produce json
// @Param id path string true "Fight ID"
// @Success 200 {object} TotalsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/fights/{id}/bets [get]
func (h *FightHandler) HandleGetTotals(w http.ResponseWriter, r *http.Request) {
	id, ok := GetFightIDParam(r, w)
	if !ok {
		return
	}
	bets, err := h.ledger.GetTotals(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetTotals, err)
		return
	}
	respondJSON(w, http.StatusOK, TotalsResponse{FightID: id, Bets: bets, Total: bets.Total()})
}

// HandleStartFight closes betting and launches the match process
// @Summary Start fight
// @Tags fights
// @Accept json
// @Produce json
// @Param id path string true "Fight ID"
// @Param request body StartFightRequest true "Capability token"
// @Success 200 {object} StartFightResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/fights/{id}/start [post]
func (h *FightHandler) HandleStartFight(w http.ResponseWriter, r *http.Request) {
	id, ok := GetFightIDParam(r, w)
	if !ok {
		return
	}
	var req StartFightRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpStartFight); err != nil {
		return
	}

	res, err := h.controller.StartFight(r.Context(), id, req.SecureID)
	if err != nil {
		respondServiceError(w, r, OpStartFight, err)
		return
	}
	respondJSON(w, http.StatusOK, StartFightResponse{Fight: res.Fight.View(), StreamURL: res.StreamURL})
}

// HandleUpdateStatus applies a status report from the match process.
// A completed report without a winner is decided by the health of the state that gets stored.
// @Summary Update fight status
// @Tags fights
// @Accept json
// @Produce json
// @Param id path string true "Fight ID"
// @Param request body UpdateStatusRequest true "Status report"
// @Success 200 {object} domain.FightView
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/fights/{id}/status [post]
func (h *FightHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := GetFightIDParam(r, w)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpUpdateStatus); err != nil {
		return
	}

	f, err := h.applyStatus(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, OpUpdateStatus, err)
		return
	}
	respondJSON(w, http.StatusOK, f.View())
}

func (h *FightHandler) applyStatus(ctx context.Context, id string, req UpdateStatusRequest) (*domain.Fight, error) {
	status := domain.FightStatus(req.Status)
	patch := domain.FightPatch{CurrentState: req.CurrentState}

	switch status {
	case domain.FightStatusInProgress:
		// in_progress is only entered through StartFight; reports here just carry state
		if req.CurrentState == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTransition, ErrMsgStartThroughController)
		}
		f, applied, err := h.fights.RecordState(ctx, id, req.SecureID, *req.CurrentState)
		if err != nil {
			return nil, err
		}
		if !applied {
			logger.FromContext(ctx).Debug(LogMsgStaleStateIgnored, logger.AttrKeyFightID, id, "round", req.CurrentState.Round)
		}
		return f, nil
	case domain.FightStatusCompleted:
		if req.Winner != "" {
			side := domain.Side(req.Winner)
			patch.Winner = &side
		} else {
			patch.InferWinner = true
		}
	case domain.FightStatusFailed:
		patch.ClearStream = true
		if req.Reason != "" {
			reason := req.Reason
			patch.FailureReason = &reason
		}
	}

	return h.fights.UpdateStatus(ctx, id, req.SecureID, status, patch)
}

// HandleVerifyCashout checks that a fight is settled with a winner
// @Summary Verify cash-out
// @Description Succeeds only for a completed fight with a winner. Draws are not cashable.
// @Tags settlement
// @Accept json
// @Produce json
// @Param id path string true "Fight ID"
// @Param request body CashoutRequest false "Wallet"
// @Success 200 {object} settlement.CashoutResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/fights/{id}/cashout [post]
func (h *FightHandler) HandleVerifyCashout(w http.ResponseWriter, r *http.Request) {
	id, ok := GetFightIDParam(r, w)
	if !ok {
		return
	}
	var req CashoutRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, OpVerifyCashout); err != nil {
			return
		}
	}

	res, err := h.settlement.VerifyCashout(r.Context(), id, req.WalletAddress)
	if err != nil {
		respondServiceError(w, r, OpVerifyCashout, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
