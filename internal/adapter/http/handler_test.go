package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/instruction"
	"adcustody/internal/core/port"
	"adcustody/internal/core/port/mocks"
)

type testServer struct {
	svc     *mocks.MockCampaignUseCase
	handler http.Handler
	program solana.PublicKey
}

func newTestServer(t *testing.T) *testServer {
	svc := mocks.NewMockCampaignUseCase(t)
	program := solana.NewWallet().PublicKey()
	svc.EXPECT().ProgramID().Return(program).Maybe()
	return &testServer{
		svc:     svc,
		handler: NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Router(),
		program: program,
	}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// decoded returns the decoded arguments and accounts of the instruction a
// handler submitted.
func decoded(t *testing.T, ix solana.Instruction) (instruction.Decoded, []*solana.AccountMeta) {
	t.Helper()
	data, err := ix.Data()
	require.NoError(t, err)
	dec, err := instruction.Decode(data)
	require.NoError(t, err)
	return dec, ix.Accounts()
}

func TestInitializeCampaignBuildsSignedInstruction(t *testing.T) {
	s := newTestServer(t)
	advertiser, publisher := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	receipt := &domain.Receipt{ID: uuid.New(), Operation: domain.OpInitializeCampaign, CampaignID: 3, Amount: 1_000}

	s.svc.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ix solana.Instruction) (*domain.Receipt, error) {
			require.Equal(t, s.program, ix.ProgramID())
			dec, accounts := decoded(t, ix)
			require.Equal(t, port.InitializeCampaignArgs{
				CampaignID:   3,
				Name:         "Launch",
				Advertiser:   advertiser,
				CostPerClick: 10,
				Publishers:   []solana.PublicKey{publisher},
				LockedValue:  1_000,
			}, dec.Args)
			require.Equal(t, advertiser, accounts[2].PublicKey)
			require.True(t, accounts[2].IsSigner)
			return receipt, nil
		})

	rec := s.do(t, http.MethodPost, "/api/v1/campaigns", map[string]any{
		"campaign_id":    3,
		"name":           "Launch",
		"advertiser":     advertiser.String(),
		"cost_per_click": 10,
		"publishers":     []string{publisher.String()},
		"locked_value":   1_000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got receiptResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, receipt.ID, got.ID)
	require.Equal(t, uint64(1_000), got.Amount)
}

func TestPayPublisher(t *testing.T) {
	s := newTestServer(t)
	publisher := solana.NewWallet().PublicKey()
	s.svc.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ix solana.Instruction) (*domain.Receipt, error) {
			dec, accounts := decoded(t, ix)
			require.Equal(t, port.PayPublisherArgs{CampaignID: 7, Clicks: 5}, dec.Args)
			require.Equal(t, publisher, accounts[2].PublicKey)
			return &domain.Receipt{Operation: domain.OpPayPublisher, CampaignID: 7, Amount: 500, Recipient: publisher, Clicks: 5}, nil
		})

	rec := s.do(t, http.MethodPost, "/api/v1/campaigns/7/payouts", map[string]any{"publisher": publisher.String(), "clicks": 5})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPayCommissionDefaultsToOperator(t *testing.T) {
	s := newTestServer(t)
	operator := solana.NewWallet().PublicKey()
	s.svc.EXPECT().Operator().Return(operator)
	s.svc.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ix solana.Instruction) (*domain.Receipt, error) {
			_, accounts := decoded(t, ix)
			require.Equal(t, operator, accounts[2].PublicKey)
			return &domain.Receipt{Operation: domain.OpPayCommission, Amount: 5_000}, nil
		})

	rec := s.do(t, http.MethodPost, "/api/v1/campaigns/7/commission", map[string]any{"percentage": 100})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   domain.Code
	}{
		{domain.ErrInvalidAmount, http.StatusBadRequest, domain.CodeInvalidAmount},
		{fmt.Errorf("pay: %w", domain.ErrMathOverflow), http.StatusBadRequest, domain.CodeMathOverflow},
		{domain.ErrAccountMismatch, http.StatusBadRequest, domain.CodeAccountMismatch},
		{domain.ErrUnauthorizedPublisher, http.StatusForbidden, domain.CodeUnauthorizedPublisher},
		{domain.ErrMissingSignature, http.StatusForbidden, domain.CodeMissingSignature},
		{domain.ErrCampaignNotFound, http.StatusNotFound, domain.CodeCampaignNotFound},
		{domain.ErrVaultNotEmpty, http.StatusConflict, domain.CodeVaultNotEmpty},
		{domain.ErrNothingToWithdraw, http.StatusConflict, domain.CodeNothingToWithdraw},
		{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity, domain.CodeInsufficientFunds},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError, domain.CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			s := newTestServer(t)
			closer := solana.NewWallet().PublicKey()
			s.svc.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := s.do(t, http.MethodDelete, "/api/v1/campaigns/1?closer="+closer.String(), nil)
			require.Equal(t, tt.status, rec.Code)
			var body errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Equal(t, tt.code, body.Code)
			if tt.status == http.StatusInternalServerError {
				require.Equal(t, "internal error", body.Message)
			}
		})
	}
}

func TestBadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		method, target string
		body           any
	}{
		{http.MethodGet, "/api/v1/campaigns/abc", nil},
		{http.MethodDelete, "/api/v1/campaigns/1/vault?advertiser=nope", nil},
		{http.MethodPost, "/api/v1/campaigns/1/payouts", map[string]any{"clicks": 1, "extra": true}},
		{http.MethodGet, "/api/v1/campaigns/1/stats?from=yesterday", nil},
		{http.MethodGet, "/api/v1/accounts/0OIl", nil},
		{http.MethodPost, "/api/v1/instructions", map[string]any{"data": "AAAA", "encoding": "hex"}},
	}
	for _, tt := range tests {
		rec := s.do(t, tt.method, tt.target, tt.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, tt.target)
		var body errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Equal(t, codeInvalidRequest, body.Code)
	}
}

func TestGetCampaign(t *testing.T) {
	s := newTestServer(t)
	view := &port.CampaignView{
		Campaign: domain.Campaign{
			CampaignID:     9,
			Name:           "Spring",
			CostPerClick:   10,
			LockedValue:    100,
			RemainingValue: 40,
			CreatedAt:      1_767_225_600,
		},
		VaultBalance: 40,
	}
	s.svc.EXPECT().GetCampaign(mock.Anything, uint64(9)).Return(view, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/campaigns/9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got campaignResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, "Spring", got.Name)
	require.Equal(t, uint64(40), got.VaultBalance)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestGetStats(t *testing.T) {
	s := newTestServer(t)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)
	s.svc.EXPECT().
		GetStats(mock.Anything, port.StatsReq{CampaignID: 2, From: from, To: to}).
		Return(&domain.Stats{CampaignID: 2, From: from, To: to, Payouts: 3, Clicks: 12}, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/campaigns/2/stats?from=2026-01-01T00:00:00Z&to=2026-01-03T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got statsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, int64(3), got.Payouts)
	require.Equal(t, uint64(12), got.Clicks)
	require.Equal(t, to, got.To)
}

func TestGetStatsLeavesDefaultPeriodToService(t *testing.T) {
	s := newTestServer(t)
	to := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	s.svc.EXPECT().
		GetStats(mock.Anything, port.StatsReq{CampaignID: 2}).
		Return(&domain.Stats{CampaignID: 2, From: to.Add(-port.StatsWindow), To: to}, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/campaigns/2/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got statsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, to.Add(-port.StatsWindow), got.From)
	require.Equal(t, to, got.To)

	s.svc.EXPECT().
		GetStats(mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidPeriod)
	rec = s.do(t, http.MethodGet, "/api/v1/campaigns/2/stats?from=2026-01-03T00:00:00Z&to=2026-01-01T00:00:00Z", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, domain.CodeInvalidPeriod, body.Code)
}

func TestGetAccount(t *testing.T) {
	s := newTestServer(t)
	addr := solana.NewWallet().PublicKey()
	s.svc.EXPECT().Balance(mock.Anything, addr).Return(uint64(77), nil)

	rec := s.do(t, http.MethodGet, "/api/v1/accounts/"+addr.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got accountResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, addr, got.Address)
	require.Equal(t, uint64(77), got.Lamports)
}

func TestRawInstruction(t *testing.T) {
	s := newTestServer(t)
	advertiser := solana.NewWallet().PublicKey()
	ix, err := instruction.BuildCloseVault(s.program, advertiser, port.CloseVaultArgs{CampaignID: 4})
	require.NoError(t, err)
	wire, err := NewInstructionRequest(ix)
	require.NoError(t, err)
	data, err := ix.Data()
	require.NoError(t, err)

	s.svc.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, got solana.Instruction) (*domain.Receipt, error) {
			gotData, err := got.Data()
			require.NoError(t, err)
			require.Equal(t, data, gotData)
			require.Equal(t, ix.Accounts(), got.Accounts())
			return &domain.Receipt{Operation: domain.OpCloseVault}, nil
		}).
		Twice()

	rec := s.do(t, http.MethodPost, "/api/v1/instructions", wire)
	require.Equal(t, http.StatusOK, rec.Code)

	wire.Encoding = "base58"
	wire.Data = base58.Encode(data)
	rec = s.do(t, http.MethodPost, "/api/v1/instructions", wire)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
