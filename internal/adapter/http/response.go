package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/port"
)

// codeInvalidRequest reports requests rejected before reaching the program.
const codeInvalidRequest domain.Code = "INVALID_REQUEST"

type errorResponse struct {
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
}

type receiptResponse struct {
	ID         uuid.UUID        `json:"id"`
	Operation  domain.Operation `json:"operation"`
	CampaignID uint64           `json:"campaign_id"`
	Amount     uint64           `json:"amount"`
	Recipient  solana.PublicKey `json:"recipient"`
	Clicks     uint64           `json:"clicks,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func toReceiptResponse(r *domain.Receipt) receiptResponse {
	return receiptResponse{
		ID:         r.ID,
		Operation:  r.Operation,
		CampaignID: r.CampaignID,
		Amount:     r.Amount,
		Recipient:  r.Recipient,
		Clicks:     r.Clicks,
		CreatedAt:  r.CreatedAt,
	}
}

type campaignResponse struct {
	CampaignID       uint64             `json:"campaign_id"`
	Name             string             `json:"name"`
	Advertiser       solana.PublicKey   `json:"advertiser"`
	CostPerClick     uint64             `json:"cost_per_click"`
	AdDurationDays   uint64             `json:"ad_duration_days"`
	Publishers       []solana.PublicKey `json:"publishers"`
	LockedValue      uint64             `json:"locked_value"`
	RemainingValue   uint64             `json:"remaining_value"`
	TotalClicks      uint64             `json:"total_clicks"`
	CommissionClicks uint64             `json:"commission_clicks"`
	TransactionCount uint64             `json:"transaction_count"`
	CreatedAt        time.Time          `json:"created_at"`
	CampaignAddress  solana.PublicKey   `json:"campaign_address"`
	VaultAddress     solana.PublicKey   `json:"vault_address"`
	VaultBalance     uint64             `json:"vault_balance"`
}

func toCampaignResponse(v *port.CampaignView) campaignResponse {
	c := v.Campaign
	return campaignResponse{
		CampaignID:       c.CampaignID,
		Name:             c.Name,
		Advertiser:       c.Advertiser,
		CostPerClick:     c.CostPerClick,
		AdDurationDays:   c.AdDurationDays,
		Publishers:       c.Publishers,
		LockedValue:      c.LockedValue,
		RemainingValue:   c.RemainingValue,
		TotalClicks:      c.TotalClicks,
		CommissionClicks: c.CommissionClicks,
		TransactionCount: c.TransactionCount,
		CreatedAt:        c.CreatedTime(),
		CampaignAddress:  v.CampaignAddress,
		VaultAddress:     v.VaultAddress,
		VaultBalance:     v.VaultBalance,
	}
}

// statusOf maps a ledger error code to an HTTP status.
func statusOf(code domain.Code) int {
	switch code {
	case domain.CodeInvalidAmount, domain.CodeMathOverflow, domain.CodeInvalidName,
		domain.CodeNameTooLong, domain.CodeNoPublishers, domain.CodeTooManyPublishers,
		domain.CodeInvalidUpdate, domain.CodeInvalidPercentage, domain.CodeAccountMismatch,
		domain.CodeInvalidInstruction, domain.CodeInvalidPeriod:
		return http.StatusBadRequest
	case domain.CodeUnauthorizedPublisher, domain.CodeUnauthorizedCloser,
		domain.CodeUnauthorizedAdvertiser, domain.CodeMissingSignature, domain.CodeInvalidOperator:
		return http.StatusForbidden
	case domain.CodeCampaignNotFound:
		return http.StatusNotFound
	case domain.CodeCampaignExists, domain.CodeVaultNotEmpty,
		domain.CodeNoClicksForCommission, domain.CodeNothingToWithdraw:
		return http.StatusConflict
	case domain.CodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a JSON error body. Errors that carry no ledger
// code are logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	code := domain.CodeOf(err)
	status := statusOf(code)
	msg := err.Error()
	var de *domain.Error
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		msg = "internal error"
	} else if errors.As(err, &de) {
		msg = de.Message
	}
	h.writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Code: codeInvalidRequest, Message: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// execute submits ix and writes the resulting receipt with status.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request, op string, status int, ix solana.Instruction, err error) {
	if err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}
	receipt, err := h.svc.Execute(r.Context(), ix)
	if err != nil {
		h.writeError(w, op, err)
		return
	}
	h.writeJSON(w, status, toReceiptResponse(receipt))
}
