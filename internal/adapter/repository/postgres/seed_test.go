package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSeedFixturesReferentialIntegrity(t *testing.T) {
	masjidIDs := map[string]bool{}
	for _, m := range seedMasjids {
		assert.False(t, masjidIDs[m.id], "duplicate masjid id %q", m.id)
		masjidIDs[m.id] = true
	}

	bankIDs := map[string]bool{}
	for _, b := range seedBanks {
		assert.False(t, bankIDs[b.id], "duplicate bank id %q", b.id)
		bankIDs[b.id] = true
		assert.True(t, masjidIDs[b.masjidID], "bank %q references unknown masjid %q", b.id, b.masjidID)
	}

	depositIDs := map[string]bool{}
	for _, d := range seedDeposits {
		assert.False(t, depositIDs[d.id], "duplicate deposit id %q", d.id)
		depositIDs[d.id] = true
		assert.True(t, bankIDs[d.bankID], "deposit %q references unknown bank %q", d.id, d.bankID)
		assert.True(t, d.amount.GreaterThan(decimal.Zero), "deposit %q amount must be positive", d.id)
		assert.False(t, d.depositDate.IsZero(), "deposit %q needs a deposit date", d.id)
	}
}
