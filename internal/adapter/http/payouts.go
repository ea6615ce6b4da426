package httpadapter

import (
	"net/http"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/core/instruction"
	"adcustody/internal/core/port"
)

type payPublisherRequest struct {
	Publisher solana.PublicKey `json:"publisher"`
	Clicks    uint64           `json:"clicks"`
}

// handlePayPublisher pays a publisher for verified clicks.
func (h *Handler) handlePayPublisher(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	var req payPublisherRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	ix, err := instruction.BuildPayPublisher(h.svc.ProgramID(), req.Publisher, port.PayPublisherArgs{
		CampaignID: id,
		Clicks:     req.Clicks,
	})
	h.execute(w, r, "pay publisher", http.StatusOK, ix, err)
}

type payCommissionRequest struct {
	Percentage uint64 `json:"percentage"`
	// Operator defaults to the configured operator.
	Operator solana.PublicKey `json:"operator"`
}

// handlePayCommission settles the operator commission.
func (h *Handler) handlePayCommission(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	var req payCommissionRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	operator := req.Operator
	if operator.IsZero() {
		operator = h.svc.Operator()
	}
	ix, err := instruction.BuildPayCommission(h.svc.ProgramID(), operator, port.PayCommissionArgs{
		CampaignID: id,
		Percentage: req.Percentage,
	})
	h.execute(w, r, "pay commission", http.StatusOK, ix, err)
}
