package domain

import "time"

type Bank struct {
	ID            string
	Name          string
	AccountNumber string
	RoutingNumber string
	Address       string
	City          string
	State         string
	ZipCode       string
	Country       string
	MasjidID      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BankWithLatestDeposit struct {
	Bank
	// LatestDeposit is nil for a bank with no deposits on record.
	LatestDeposit *Deposit
}
