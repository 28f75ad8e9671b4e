package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/app"
)

// quickAmounts are the preset SAR amounts on the pay and charge sheets.
var quickAmounts = []int64{50, 100, 200}

type walletBody struct {
	BalanceLabel     string  `json:"balanceLabel"`
	Balance          int64   `json:"balance"`
	Currency         string  `json:"currency"`
	ConvertingLabel  string  `json:"convertingLabel"`
	OriginalBalance  int64   `json:"originalBalance"`
	OriginalCurrency string  `json:"originalCurrency"`
	ExchangeRate     float64 `json:"exchangeRate"`
	QuickAmounts     []int64 `json:"quickAmounts"`
	PayLabel         string  `json:"payLabel"`
	ChargeLabel      string  `json:"chargeLabel"`
	PinPrompt        string  `json:"pinPrompt"`
}

func renderWallet(_ context.Context, rc renderContext) (any, error) {
	body := walletBody{
		BalanceLabel:    rc.t("balance"),
		Currency:        rc.t("sar"),
		ConvertingLabel: rc.t("yourCurrency"),
		QuickAmounts:    quickAmounts,
		PayLabel:        rc.t("pay"),
		ChargeLabel:     rc.t("charge"),
		PinPrompt:       rc.t("enterPin"),
	}
	if p := rc.state.PilgrimData; p != nil {
		body.Balance = p.WalletBalance
		body.OriginalBalance = app.OriginalBalance(*p)
		body.OriginalCurrency = p.OriginalCurrency
		body.ExchangeRate = p.ExchangeRate
	}
	return body, nil
}
