package domain

import "time"

type Masjid struct {
	ID        string
	Name      string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Phone     *string
	Email     *string
	Website   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MasjidWithBanks is the shaped read model: a masjid with its banks, each
// carrying only its most recent deposit instead of the full deposit history.
type MasjidWithBanks struct {
	Masjid
	Banks []BankWithLatestDeposit
}
