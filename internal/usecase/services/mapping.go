package services

import (
	"time"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/models"
	"github.com/RiyadTangil/masjid-directory/internal/domain"
)

func toMasjid(m domain.Masjid) models.Masjid {
	return models.Masjid{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		ZipCode:   m.ZipCode,
		Country:   m.Country,
		Phone:     m.Phone,
		Email:     m.Email,
		Website:   m.Website,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func toMasjidWithBanks(m domain.MasjidWithBanks) models.MasjidWithBanks {
	banks := make([]models.BankWithLatestDeposit, 0, len(m.Banks))
	for _, b := range m.Banks {
		banks = append(banks, toBankWithLatestDeposit(b))
	}

	return models.MasjidWithBanks{
		Masjid: toMasjid(m.Masjid),
		Banks:  banks,
	}
}

func toBankWithLatestDeposit(b domain.BankWithLatestDeposit) models.BankWithLatestDeposit {
	dto := models.BankWithLatestDeposit{
		ID:            b.ID,
		Name:          b.Name,
		AccountNumber: b.AccountNumber,
		RoutingNumber: b.RoutingNumber,
		Address:       b.Address,
		City:          b.City,
		State:         b.State,
		ZipCode:       b.ZipCode,
		Country:       b.Country,
		MasjidID:      b.MasjidID,
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
	if b.LatestDeposit != nil {
		d := toDeposit(*b.LatestDeposit)
		dto.LatestDeposit = &d
	}
	return dto
}

func toDeposit(d domain.Deposit) models.Deposit {
	return models.Deposit{
		ID:          d.ID,
		Amount:      d.Amount.StringFixed(2),
		Description: d.Description,
		DepositDate: formatTime(d.DepositDate),
		BankID:      d.BankID,
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}
}

// formatTime leaves unselected (zero) timestamps empty so they drop out of
// the JSON shape.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
