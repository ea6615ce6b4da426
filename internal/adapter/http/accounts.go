package httpadapter

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
)

type accountResponse struct {
	Address  solana.PublicKey `json:"address"`
	Lamports uint64           `json:"lamports"`
}

// handleGetAccount returns the balance of any ledger account.
func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	addr, err := solana.PublicKeyFromBase58(chi.URLParam(r, "address"))
	if err != nil {
		h.writeBadRequest(w, "invalid address")
		return
	}
	lamports, err := h.svc.Balance(r.Context(), addr)
	if err != nil {
		h.writeError(w, "get account", err)
		return
	}
	h.writeJSON(w, http.StatusOK, accountResponse{Address: addr, Lamports: lamports})
}
