package httpadapter

import (
	"net/http"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/core/instruction"
	"adcustody/internal/core/port"
)

type initializeCampaignRequest struct {
	CampaignID     uint64             `json:"campaign_id"`
	Name           string             `json:"name"`
	Advertiser     solana.PublicKey   `json:"advertiser"`
	CostPerClick   uint64             `json:"cost_per_click"`
	AdDurationDays uint64             `json:"ad_duration_days"`
	Publishers     []solana.PublicKey `json:"publishers"`
	LockedValue    uint64             `json:"locked_value"`
	// Funder pays the locked value and storage deposit. Defaults to the
	// advertiser.
	Funder solana.PublicKey `json:"funder"`
}

// handleInitializeCampaign creates a campaign and funds its vault. It
// responds with HTTP 201 and the receipt of the operation.
func (h *Handler) handleInitializeCampaign(w http.ResponseWriter, r *http.Request) {
	var req initializeCampaignRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	funder := req.Funder
	if funder.IsZero() {
		funder = req.Advertiser
	}
	ix, err := instruction.BuildInitializeCampaign(h.svc.ProgramID(), funder, port.InitializeCampaignArgs{
		CampaignID:     req.CampaignID,
		Name:           req.Name,
		Advertiser:     req.Advertiser,
		CostPerClick:   req.CostPerClick,
		AdDurationDays: req.AdDurationDays,
		Publishers:     req.Publishers,
		LockedValue:    req.LockedValue,
	})
	h.execute(w, r, "initialize campaign", http.StatusCreated, ix, err)
}

// handleGetCampaign returns the record and vault balance of a campaign.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(view))
}

type updateCampaignRequest struct {
	Advertiser     solana.PublicKey `json:"advertiser"`
	AdDurationDays uint64           `json:"ad_duration_days"`
	LockedValue    uint64           `json:"locked_value"`
}

// handleUpdateCampaign extends the duration and/or tops up the vault.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	var req updateCampaignRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	ix, err := instruction.BuildUpdateCampaign(h.svc.ProgramID(), req.Advertiser, port.UpdateCampaignArgs{
		CampaignID:     id,
		AdDurationDays: req.AdDurationDays,
		LockedValue:    req.LockedValue,
	})
	h.execute(w, r, "update campaign", http.StatusOK, ix, err)
}

// handleCloseCampaign closes the record on behalf of the identity in the
// closer query parameter.
func (h *Handler) handleCloseCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	closer, err := solana.PublicKeyFromBase58(r.URL.Query().Get("closer"))
	if err != nil {
		h.writeBadRequest(w, "invalid closer")
		return
	}
	ix, err := instruction.BuildCloseCampaign(h.svc.ProgramID(), closer, port.CloseCampaignArgs{CampaignID: id})
	h.execute(w, r, "close campaign", http.StatusOK, ix, err)
}

// handleCloseVault drains the vault to the advertiser named in the query.
func (h *Handler) handleCloseVault(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	advertiser, err := solana.PublicKeyFromBase58(r.URL.Query().Get("advertiser"))
	if err != nil {
		h.writeBadRequest(w, "invalid advertiser")
		return
	}
	ix, err := instruction.BuildCloseVault(h.svc.ProgramID(), advertiser, port.CloseVaultArgs{CampaignID: id})
	h.execute(w, r, "close vault", http.StatusOK, ix, err)
}
