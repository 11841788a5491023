package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Deposit struct {
	ID          string
	Amount      decimal.Decimal
	Description *string
	DepositDate time.Time
	BankID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
