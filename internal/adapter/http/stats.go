package httpadapter

import (
	"net/http"
	"time"

	"adcustody/internal/core/port"
)

type statsResponse struct {
	CampaignID     uint64    `json:"campaign_id"`
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	Payouts        int64     `json:"payouts"`
	Clicks         uint64    `json:"clicks"`
	PublisherPaid  uint64    `json:"publisher_paid"`
	CommissionPaid uint64    `json:"commission_paid"`
	ToppedUp       uint64    `json:"topped_up"`
	Refunded       uint64    `json:"refunded"`
}

// handleStats returns aggregated receipts of a campaign over a period. It
// accepts optional `from` and `to` RFC3339 timestamps; the service fills in
// missing bounds (the last 24 hours by default). Invalid parameters result
// in HTTP 400.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeBadRequest(w, "invalid campaign id")
		return
	}
	var (
		q   = r.URL.Query()
		req = port.StatsReq{CampaignID: id}
	)

	if fromStr := q.Get("from"); fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.writeBadRequest(w, "invalid 'from' timestamp")
			return
		}
	}

	if toStr := q.Get("to"); toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.writeBadRequest(w, "invalid 'to' timestamp")
			return
		}
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{
		CampaignID:     stats.CampaignID,
		From:           stats.From,
		To:             stats.To,
		Payouts:        stats.Payouts,
		Clicks:         stats.Clicks,
		PublisherPaid:  stats.PublisherPaid,
		CommissionPaid: stats.CommissionPaid,
		ToppedUp:       stats.ToppedUp,
		Refunded:       stats.Refunded,
	})
}
