package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/process"
	"github.com/osse101/FightBet_Go/internal/settlement"
	"github.com/osse101/FightBet_Go/mocks"
)

const (
	testFightID  = "0192b3c4-0000-7000-8000-000000000001"
	testSecureID = "123456789"
)

type fightMocks struct {
	fights     *mocks.MockFightService
	ledger     *mocks.MockBettingService
	controller *mocks.MockProcessController
	settlement *mocks.MockSettlementService
}

func newFightHandlerWithMocks(t *testing.T) (*FightHandler, fightMocks) {
	m := fightMocks{
		fights:     mocks.NewMockFightService(t),
		ledger:     mocks.NewMockBettingService(t),
		controller: mocks.NewMockProcessController(t),
		settlement: mocks.NewMockSettlementService(t),
	}
	return NewFightHandler(m.fights, m.ledger, m.controller, m.settlement), m
}

func newTestRequest(t *testing.T, method, target, id string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func testFight(status domain.FightStatus) *domain.Fight {
	f := &domain.Fight{
		ID:           testFightID,
		SecureID:     testSecureID,
		Status:       status,
		Timestamp:    1700000000000,
		CreatedAt:    1700000000000,
		Bets:         domain.Bets{Player1: 30, Player2: 10},
		CurrentState: domain.DefaultState(1700000000000),
	}
	return f
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleCreateFight(t *testing.T) {
	t.Run("Success returns secure id", func(t *testing.T) {
		h, m := newFightHandlerWithMocks(t)
		m.fights.On("CreateFight", mock.Anything).Return(testFight(domain.FightStatusBettingOpen), nil)

		rec := httptest.NewRecorder()
		h.HandleCreateFight(rec, newTestRequest(t, "POST", "/api/v1/fights", "", nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"secure_id":"`+testSecureID+`"`)
		assert.Contains(t, rec.Body.String(), `"status":"betting_open"`)
	})

	t.Run("Store error does not leak details", func(t *testing.T) {
		h, m := newFightHandlerWithMocks(t)
		m.fights.On("CreateFight", mock.Anything).
			Return(nil, fmt.Errorf("%w: create fight: dial tcp 10.0.0.1:5432", domain.ErrStore))

		rec := httptest.NewRecorder()
		h.HandleCreateFight(rec, newTestRequest(t, "POST", "/api/v1/fights", "", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, domain.KindStoreError, resp.Error)
		assert.NotContains(t, rec.Body.String(), "10.0.0.1")
	})
}

func TestHandleGetFight(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockFightService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Found",
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("GetFight", mock.Anything, testFightID).Return(testFight(domain.FightStatusInProgress), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"in_progress"`,
		},
		{
			name: "Not Found",
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("GetFight", mock.Anything, testFightID).Return(nil, fmt.Errorf("%w: %s", domain.ErrNotFound, testFightID))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"NotFound"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newFightHandlerWithMocks(t)
			tt.setupMocks(m.fights)

			rec := httptest.NewRecorder()
			h.HandleGetFight(rec, newTestRequest(t, "GET", "/api/v1/fights/"+testFightID, testFightID, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "secure_id")
		})
	}
}

func TestHandleListFights(t *testing.T) {
	t.Run("Passes limit", func(t *testing.T) {
		h, m := newFightHandlerWithMocks(t)
		m.fights.On("ListFights", mock.Anything, 5).
			Return([]*domain.Fight{testFight(domain.FightStatusCompleted), testFight(domain.FightStatusFailed)}, nil)

		rec := httptest.NewRecorder()
		h.HandleListFights(rec, newTestRequest(t, "GET", "/api/v1/fights?limit=5", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp ListFightsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Fights, 2)
		assert.NotContains(t, rec.Body.String(), "secure_id")
	})

	t.Run("Invalid limit", func(t *testing.T) {
		h, _ := newFightHandlerWithMocks(t)

		rec := httptest.NewRecorder()
		h.HandleListFights(rec, newTestRequest(t, "GET", "/api/v1/fights?limit=abc", "", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidLimit)
	})

	t.Run("Empty list encodes as array", func(t *testing.T) {
		h, m := newFightHandlerWithMocks(t)
		m.fights.On("ListFights", mock.Anything, 0).Return([]*domain.Fight{}, nil)

		rec := httptest.NewRecorder()
		h.HandleListFights(rec, newTestRequest(t, "GET", "/api/v1/fights", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"fights":[]}`, rec.Body.String())
	})
}

func TestHandleGetActiveFight(t *testing.T) {
	t.Run("Active", func(t *testing.T) {
		h, m := newFightHandlerWithMocks(t)
		m.fights.On("GetActiveFight", mock.Anything).Return(testFight(domain.FightStatusBettingOpen), nil)

		rec := httptest.NewRecorder()
		h.HandleGetActiveFight(rec, newTestRequest(t, "GET", "/api/v1/fights/active", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testFightID)
	})

	t.Run("No fight sentinel", func(t *testing.T) {
		h, m := newFightHandlerWithMocks(t)
		m.fights.On("GetActiveFight", mock.Anything).Return(nil, fmt.Errorf("%w: no active fight", domain.ErrNotFound))

		rec := httptest.NewRecorder()
		h.HandleGetActiveFight(rec, newTestRequest(t, "GET", "/api/v1/fights/active", "", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, domain.KindNotFound, resp.Error)
		assert.Equal(t, string(domain.FightStatusNoFight), resp.Status)
	})
}

func TestHandlePlaceBet(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*mocks.MockBettingService)
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedKind:   KindBadRequest,
		},
		{
			name:           "Invalid Side",
			reqBody:        PlaceBetRequest{Side: "player3", Amount: 5},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   domain.KindInvalidSide,
		},
		{
			name:           "Invalid Amount",
			reqBody:        PlaceBetRequest{Side: "player1", Amount: -1},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   domain.KindInvalidAmount,
		},
		{
			name:    "Betting Closed",
			reqBody: PlaceBetRequest{Side: "player1", Amount: 5},
			setupMocks: func(ml *mocks.MockBettingService) {
				ml.On("PlaceBet", mock.Anything, testFightID, domain.SidePlayer1, int64(5)).Return(nil, domain.ErrBettingClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedKind:   domain.KindBettingClosed,
		},
		{
			name:    "Not Found",
			reqBody: PlaceBetRequest{Side: "player2", Amount: 5},
			setupMocks: func(ml *mocks.MockBettingService) {
				ml.On("PlaceBet", mock.Anything, testFightID, domain.SidePlayer2, int64(5)).Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   domain.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newFightHandlerWithMocks(t)
			if tt.setupMocks != nil {
				tt.setupMocks(m.ledger)
			}

			rec := httptest.NewRecorder()
			h.HandlePlaceBet(rec, newTestRequest(t, "POST", "/api/v1/fights/"+testFightID+"/bets", testFightID, tt.reqBody))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedKind, decodeError(t, rec).Error)
		})
	}

	t.Run("Success", func(t *testing.T) {
		h, m := newFightHandlerWithMocks(t)
		f := testFight(domain.FightStatusBettingOpen)
		f.Bets = domain.Bets{Player1: 40, Player2: 10}
		m.ledger.On("PlaceBet", mock.Anything, testFightID, domain.SidePlayer1, int64(10)).Return(f, nil)

		rec := httptest.NewRecorder()
		h.HandlePlaceBet(rec, newTestRequest(t, "POST", "/x", testFightID, PlaceBetRequest{Side: "player1", Amount: 10}))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp PlaceBetResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domain.SidePlayer1, resp.Side)
		assert.Equal(t, int64(10), resp.Amount)
		assert.Equal(t, int64(40), resp.Bets.Player1)
	})
}

func TestHandleGetTotals(t *testing.T) {
	h, m := newFightHandlerWithMocks(t)
	m.ledger.On("GetTotals", mock.Anything, testFightID).Return(domain.Bets{Player1: 7, Player2: 3}, nil)

	rec := httptest.NewRecorder()
	h.HandleGetTotals(rec, newTestRequest(t, "GET", "/x", testFightID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"fight_id":"`+testFightID+`","bets":{"player1":7,"player2":3},"total":10}`, rec.Body.String())
}

func TestHandleStartFight(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*mocks.MockProcessController)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing secure id",
			reqBody:        StartFightRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   KindValidation,
		},
		{
			name:    "Wrong secure id",
			reqBody: StartFightRequest{SecureID: "nope"},
			setupMocks: func(mc *mocks.MockProcessController) {
				mc.On("StartFight", mock.Anything, testFightID, "nope").Return(nil, domain.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   domain.KindUnauthorized,
		},
		{
			name:    "Already started",
			reqBody: StartFightRequest{SecureID: testSecureID},
			setupMocks: func(mc *mocks.MockProcessController) {
				mc.On("StartFight", mock.Anything, testFightID, testSecureID).Return(nil, domain.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   domain.KindInvalidTransition,
		},
		{
			name:    "Launch error",
			reqBody: StartFightRequest{SecureID: testSecureID},
			setupMocks: func(mc *mocks.MockProcessController) {
				mc.On("StartFight", mock.Anything, testFightID, testSecureID).
					Return(nil, fmt.Errorf("%w: exec: \"python3\": executable file not found", domain.ErrLaunch))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   domain.KindLaunchError,
		},
		{
			name:    "Success",
			reqBody: StartFightRequest{SecureID: testSecureID},
			setupMocks: func(mc *mocks.MockProcessController) {
				f := testFight(domain.FightStatusInProgress)
				url := "https://stream.example/hls/" + testFightID + "/output"
				f.StreamURL = &url
				mc.On("StartFight", mock.Anything, testFightID, testSecureID).
					Return(&process.StartResult{Fight: f, StreamURL: url}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"stream_url":"https://stream.example/hls/` + testFightID + `/output"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newFightHandlerWithMocks(t)
			if tt.setupMocks != nil {
				tt.setupMocks(m.controller)
			}

			rec := httptest.NewRecorder()
			h.HandleStartFight(rec, newTestRequest(t, "POST", "/x", testFightID, tt.reqBody))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "executable file not found")
		})
	}
}

func TestHandleUpdateStatus(t *testing.T) {
	state := func(round, p1, p2 int) *domain.CurrentState {
		return &domain.CurrentState{Round: round, P1Health: p1, P2Health: p2}
	}
	p1 := domain.SidePlayer1

	tests := []struct {
		name           string
		reqBody        UpdateStatusRequest
		setupMocks     func(*mocks.MockFightService)
		expectedStatus int
	}{
		{
			name:    "State report on running fight",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "in_progress", CurrentState: state(3, 80, 60)},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("RecordState", mock.Anything, testFightID, testSecureID, *state(3, 80, 60)).
					Return(testFight(domain.FightStatusInProgress), true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Stale state report is accepted",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "in_progress", CurrentState: state(1, 80, 60)},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("RecordState", mock.Anything, testFightID, testSecureID, *state(1, 80, 60)).
					Return(testFight(domain.FightStatusInProgress), false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "State report on betting fight is rejected",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "in_progress", CurrentState: state(0, 120, 120)},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("RecordState", mock.Anything, testFightID, testSecureID, *state(0, 120, 120)).
					Return(nil, false, fmt.Errorf("%w: fight is not in progress (betting_open)", domain.ErrInvalidTransition))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "In progress without state is rejected",
			reqBody:        UpdateStatusRequest{SecureID: testSecureID, Status: "in_progress"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "Completed infers winner from stored health",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "completed", CurrentState: state(9, 10, 40)},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("UpdateStatus", mock.Anything, testFightID, testSecureID, domain.FightStatusCompleted,
					domain.FightPatch{CurrentState: state(9, 10, 40), InferWinner: true}).
					Return(testFight(domain.FightStatusCompleted), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Completed without state still infers",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "completed"},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("UpdateStatus", mock.Anything, testFightID, testSecureID, domain.FightStatusCompleted,
					domain.FightPatch{InferWinner: true}).
					Return(testFight(domain.FightStatusCompleted), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Explicit winner wins over health",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "completed", Winner: "player1", CurrentState: state(9, 10, 40)},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("UpdateStatus", mock.Anything, testFightID, testSecureID, domain.FightStatusCompleted,
					domain.FightPatch{CurrentState: state(9, 10, 40), Winner: &p1}).
					Return(testFight(domain.FightStatusCompleted), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Failed clears stream and records reason",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "failed", Reason: "emulator crashed"},
			setupMocks: func(mf *mocks.MockFightService) {
				reason := "emulator crashed"
				mf.On("UpdateStatus", mock.Anything, testFightID, testSecureID, domain.FightStatusFailed,
					domain.FightPatch{ClearStream: true, FailureReason: &reason}).
					Return(testFight(domain.FightStatusFailed), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Wrong secure id",
			reqBody: UpdateStatusRequest{SecureID: "bad", Status: "failed"},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("UpdateStatus", mock.Anything, testFightID, "bad", domain.FightStatusFailed,
					domain.FightPatch{ClearStream: true}).
					Return(nil, domain.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "Reopening betting is rejected",
			reqBody: UpdateStatusRequest{SecureID: testSecureID, Status: "betting_open"},
			setupMocks: func(mf *mocks.MockFightService) {
				mf.On("UpdateStatus", mock.Anything, testFightID, testSecureID, domain.FightStatusBettingOpen,
					domain.FightPatch{}).
					Return(nil, domain.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Unknown status",
			reqBody:        UpdateStatusRequest{SecureID: testSecureID, Status: "finished"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newFightHandlerWithMocks(t)
			if tt.setupMocks != nil {
				tt.setupMocks(m.fights)
			}

			rec := httptest.NewRecorder()
			h.HandleUpdateStatus(rec, newTestRequest(t, "POST", "/x", testFightID, tt.reqBody))

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleVerifyCashout(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*mocks.MockSettlementService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Winner decided",
			reqBody: CashoutRequest{WalletAddress: "wallet-1"},
			setupMocks: func(ms *mocks.MockSettlementService) {
				ms.On("VerifyCashout", mock.Anything, testFightID, "wallet-1").Return(&settlement.CashoutResult{
					OK: true, FightID: testFightID, SecureID: testSecureID, Winner: domain.SidePlayer1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"secure_id":"` + testSecureID + `"`,
		},
		{
			name:    "Empty body is allowed",
			reqBody: nil,
			setupMocks: func(ms *mocks.MockSettlementService) {
				ms.On("VerifyCashout", mock.Anything, testFightID, "").Return(&settlement.CashoutResult{OK: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"ok":true`,
		},
		{
			name:    "Not completed",
			reqBody: CashoutRequest{},
			setupMocks: func(ms *mocks.MockSettlementService) {
				ms.On("VerifyCashout", mock.Anything, testFightID, "").Return(nil, domain.ErrNotCompleted)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   domain.KindNotCompleted,
		},
		{
			name:    "Draw",
			reqBody: CashoutRequest{},
			setupMocks: func(ms *mocks.MockSettlementService) {
				ms.On("VerifyCashout", mock.Anything, testFightID, "").Return(nil, domain.ErrNoWinner)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   domain.KindNoWinner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newFightHandlerWithMocks(t)
			tt.setupMocks(m.settlement)

			rec := httptest.NewRecorder()
			h.HandleVerifyCashout(rec, newTestRequest(t, "POST", "/x", testFightID, tt.reqBody))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
