package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type seedMasjid struct {
	id      string
	name    string
	address string
	city    string
	state   string
	zipCode string
	country string
	phone   string
	email   string
	website string
}

type seedBank struct {
	id            string
	name          string
	accountNumber string
	routingNumber string
	address       string
	city          string
	state         string
	zipCode       string
	country       string
	masjidID      string
}

type seedDeposit struct {
	id          string
	amount      decimal.Decimal
	description string
	depositDate time.Time
	bankID      string
}

var seedMasjids = []seedMasjid{
	{"clm1", "Masjid Al-Noor", "123 Main Street", "New York", "NY", "10001", "USA", "212-555-1234", "info@masjidalnoor.org", "https://masjidalnoor.org"},
	{"clm2", "Masjid Al-Iman", "456 Oak Avenue", "Chicago", "IL", "60601", "USA", "312-555-6789", "contact@masjid-aliman.org", "https://masjid-aliman.org"},
	{"clm3", "Masjid Al-Taqwa", "789 Pine Boulevard", "Los Angeles", "CA", "90001", "USA", "213-555-9876", "info@masjidaltaqwa.org", "https://masjidaltaqwa.org"},
	{"clm4", "Masjid Al-Rahman", "321 Islamic Center Way", "Houston", "TX", "77001", "USA", "713-555-4321", "info@masjidalrahman.org", "https://masjidalrahman.org"},
	{"clm5", "Masjid Al-Huda", "567 Faith Street", "Miami", "FL", "33101", "USA", "305-555-8765", "contact@masjidalhuda.org", "https://masjidalhuda.org"},
	{"clm6", "Masjid Al-Salam", "890 Peace Avenue", "Seattle", "WA", "98101", "USA", "206-555-2468", "info@masjidalsalam.org", "https://masjidalsalam.org"},
}

var seedBanks = []seedBank{
	{"clb1", "Chase Bank", "1234567890", "021000021", "100 Park Avenue", "New York", "NY", "10001", "USA", "clm1"},
	{"clb2", "Bank of America", "0987654321", "026009593", "200 Broadway", "New York", "NY", "10001", "USA", "clm1"},
	{"clb3", "Wells Fargo", "1122334455", "121000248", "300 Michigan Avenue", "Chicago", "IL", "60601", "USA", "clm2"},
	{"clb4", "Citibank", "5566778899", "021000089", "400 Wilshire Boulevard", "Los Angeles", "CA", "90001", "USA", "clm3"},
	{"clb5", "US Bank", "9876543210", "123456789", "500 Banking Street", "Houston", "TX", "77001", "USA", "clm4"},
	{"clb6", "TD Bank", "5432109876", "987654321", "600 Finance Road", "Miami", "FL", "33101", "USA", "clm5"},
	{"clb7", "KeyBank", "1357924680", "246813579", "700 Money Lane", "Seattle", "WA", "98101", "USA", "clm6"},
}

var seedDeposits = []seedDeposit{
	{"cld1", decimal.NewFromFloat(5000.00), "Monthly donation", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), "clb1"},
	{"cld2", decimal.NewFromFloat(7500.00), "Ramadan donation", time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC), "clb1"},
	{"cld3", decimal.NewFromFloat(3000.00), "Weekly collection", time.Date(2023, 2, 5, 0, 0, 0, 0, time.UTC), "clb2"},
	{"cld4", decimal.NewFromFloat(10000.00), "Eid donation", time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC), "clb3"},
	{"cld5", decimal.NewFromFloat(15000.00), "Construction fund", time.Date(2023, 3, 25, 0, 0, 0, 0, time.UTC), "clb4"},
	{"cld6", decimal.NewFromFloat(12000.00), "Annual donation", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "clb5"},
	{"cld7", decimal.NewFromFloat(8500.00), "Community fundraiser", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), "clb6"},
	{"cld8", decimal.NewFromFloat(20000.00), "Expansion project", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "clb7"},
}

// Seed inserts the fixed sample rows. Rows keep their original ids and
// inserts conflict-skip on id, so running seed repeatedly is a no-op.
func Seed(ctx context.Context, db *sql.DB) error {
	for _, m := range seedMasjids {
		const query = `
INSERT INTO masjids (id, name, address, city, state, zip_code, country, phone, email, website)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO NOTHING`

		if _, err := db.ExecContext(ctx, query,
			m.id, m.name, m.address, m.city, m.state, m.zipCode, m.country, m.phone, m.email, m.website,
		); err != nil {
			return fmt.Errorf("seed masjid %q: %w", m.id, err)
		}
	}

	for _, b := range seedBanks {
		const query = `
INSERT INTO banks (id, name, account_number, routing_number, address, city, state, zip_code, country, masjid_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO NOTHING`

		if _, err := db.ExecContext(ctx, query,
			b.id, b.name, b.accountNumber, b.routingNumber, b.address, b.city, b.state, b.zipCode, b.country, b.masjidID,
		); err != nil {
			return fmt.Errorf("seed bank %q: %w", b.id, err)
		}
	}

	for _, d := range seedDeposits {
		const query = `
INSERT INTO deposits (id, amount, description, deposit_date, bank_id)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`

		if _, err := db.ExecContext(ctx, query,
			d.id, d.amount, d.description, d.depositDate, d.bankID,
		); err != nil {
			return fmt.Errorf("seed deposit %q: %w", d.id, err)
		}
	}

	return nil
}
