package server

import (
	"net/http"

	"github.com/yusrlabs/yusr/internal/screen"
)

type WalletRequest struct {
	Pin    string `json:"pin"`
	Amount int64  `json:"amount"`
}

// handleWalletPay deducts amount after PIN verification. The balance may
// go negative; this is demo money.
func handleWalletPay(router *screen.Router) http.HandlerFunc {
	return walletOp(router, func(amount int64) int64 { return -amount })
}

// handleWalletCharge tops up amount after PIN verification.
func handleWalletCharge(router *screen.Router) http.HandlerFunc {
	return walletOp(router, func(amount int64) int64 { return amount })
}

func walletOp(router *screen.Router, delta func(int64) int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WalletRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "amount must be positive")
			return
		}

		sess := sessionFrom(r)
		if err := sess.Store.VerifyPin(req.Pin); err != nil {
			writeDomainError(w, err)
			return
		}
		sess.Store.AdjustWalletBalance(delta(req.Amount))
		renderView(w, r, router)
	}
}
