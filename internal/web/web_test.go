package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/models"
)

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$500.00", formatUSD("500.00"))
	assert.Equal(t, "$5,000.00", formatUSD("5000.00"))
	assert.Equal(t, "$12,000.00", formatUSD("12000.00"))
	assert.Equal(t, "$1,234,567.89", formatUSD("1234567.89"))
	assert.Equal(t, "-$250.00", formatUSD("-250.00"))
	assert.Equal(t, "$42.00", formatUSD("42"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2023", formatDate("2023-01-15T00:00:00Z"))
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
}

func directoryFixture() []models.MasjidWithBanks {
	description := "Monthly donation"
	return []models.MasjidWithBanks{
		{
			Masjid: models.Masjid{ID: "clm1", Name: "Masjid Al-Noor", Address: "123 Main Street", City: "New York", State: "NY", ZipCode: "10001", Country: "USA"},
			Banks: []models.BankWithLatestDeposit{
				{
					ID:            "clb1",
					Name:          "Chase Bank",
					AccountNumber: "1234567890",
					LatestDeposit: &models.Deposit{
						ID:          "cld1",
						Amount:      "5000.00",
						Description: &description,
						DepositDate: "2023-01-15T00:00:00Z",
					},
				},
				{
					ID:            "clb2",
					Name:          "Bank of America",
					AccountNumber: "0987654321",
				},
			},
		},
		{
			Masjid: models.Masjid{ID: "clm2", Name: "Masjid Al-Iman", City: "Chicago", State: "IL"},
			Banks:  []models.BankWithLatestDeposit{},
		},
	}
}

func TestIndexRendersSelection(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	masjids := directoryFixture()
	var buf bytes.Buffer
	err = renderer.Index(&buf, IndexView{Masjids: masjids, Selected: &masjids[0]})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Masjid Al-Noor")
	assert.Contains(t, html, "Masjid Al-Iman")
	assert.Contains(t, html, `class="selected"`)
	assert.Contains(t, html, "Chase Bank")
	assert.Contains(t, html, "$5,000.00")
	assert.Contains(t, html, "Jan 15, 2023")
	assert.Contains(t, html, "Monthly donation")
	assert.Contains(t, html, "No deposits yet")
}

func TestIndexRendersWithoutSelection(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Index(&buf, IndexView{Masjids: directoryFixture()})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Select a masjid")
	assert.NotContains(t, html, `class="selected"`)
}

func TestIndexRendersEmptyDirectory(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Index(&buf, IndexView{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No masjids yet.")
}
