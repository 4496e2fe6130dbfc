package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/authordash/internal/domain"
)

// RawAmount keeps the amount exactly as typed. It accepts a JSON number or a
// JSON string; parsing and range checks happen in the payout workflow.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(strings.TrimSpace(s))
		return nil
	}
	*a = RawAmount(data)
	return nil
}

type PayoutRequestDTO struct {
	Amount        RawAmount `json:"amount" swaggertype:"string" example:"500"`
	PaymentMethod string    `json:"paymentMethod" example:"bank_transfer"`
}

type TabRequestDTO struct {
	Tab string `json:"tab" validate:"required,oneof=request history" example:"history"`
}

type PayoutStateDTO struct {
	Phase         string          `json:"phase" example:"success"`
	Tab           string          `json:"tab" example:"request"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"number" example:"1500.5"`
	BalanceLoaded bool            `json:"balanceLoaded"`
	Amount        string          `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" example:"bank_transfer"`
	Filter        string          `json:"filter" example:"all"`
	Payouts       []domain.Payout `json:"payouts"`
	Loading       bool            `json:"loading"`
	Error         string          `json:"error,omitempty"`
	Success       string          `json:"success,omitempty"`
	Warning       string          `json:"warning,omitempty"`
}
