package models

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/RiyadTangil/masjid-directory/internal/commons"
)

type CreateMasjidRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zipCode"`
	Country string  `json:"country"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`
}

// Validate reports every failing field; path is the JSON field name.
func (r CreateMasjidRequest) Validate() []commons.FieldError {
	var errs []commons.FieldError

	required := []struct {
		path    string
		value   string
		message string
	}{
		{"name", r.Name, "Name is required"},
		{"address", r.Address, "Address is required"},
		{"city", r.City, "City is required"},
		{"state", r.State, "State is required"},
		{"zipCode", r.ZipCode, "Zip code is required"},
		{"country", r.Country, "Country is required"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, commons.FieldError{Path: f.path, Message: f.message})
		}
	}

	if r.Email != nil && !isValidEmail(*r.Email) {
		errs = append(errs, commons.FieldError{Path: "email", Message: "Invalid email address"})
	}
	if r.Website != nil && !isValidWebsiteURL(*r.Website) {
		errs = append(errs, commons.FieldError{Path: "website", Message: "Invalid website URL"})
	}

	return errs
}

func isValidEmail(raw string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	return err == nil && addr.Address == strings.TrimSpace(raw)
}

func isValidWebsiteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type Masjid struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	ZipCode   string  `json:"zipCode,omitempty"`
	Country   string  `json:"country,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Website   *string `json:"website,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

type MasjidWithBanks struct {
	Masjid
	Banks []BankWithLatestDeposit `json:"banks"`
}

type BankWithLatestDeposit struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zipCode,omitempty"`
	Country       string `json:"country,omitempty"`
	MasjidID      string `json:"masjidId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
	// LatestDeposit is an explicit null for a bank with no deposits yet.
	LatestDeposit *Deposit `json:"latestDeposit"`
}

type Deposit struct {
	ID          string  `json:"id"`
	Amount      string  `json:"amount,omitempty"`
	Description *string `json:"description"`
	DepositDate string  `json:"depositDate,omitempty"`
	BankID      string  `json:"bankId,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}
