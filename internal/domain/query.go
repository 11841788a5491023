package domain

// MasjidWhere filters masjids. Zero-value fields are ignored; a zero-value
// filter matches every masjid.
type MasjidWhere struct {
	ID           string
	City         string
	State        string
	NameContains string
}

type MasjidOrderBy string

const (
	OrderByName      MasjidOrderBy = "name"
	OrderByCreatedAt MasjidOrderBy = "created_at"
)

type MasjidOrder struct {
	By   MasjidOrderBy
	Desc bool
}

// MasjidSelect enumerates the masjid fields a caller wants back. The masjid
// id is always fetched regardless of the selection.
type MasjidSelect struct {
	ID        bool
	Name      bool
	Address   bool
	City      bool
	State     bool
	ZipCode   bool
	Country   bool
	Phone     bool
	Email     bool
	Website   bool
	CreatedAt bool
	UpdatedAt bool
}

type BankSelect struct {
	ID            bool
	Name          bool
	AccountNumber bool
	RoutingNumber bool
	Address       bool
	City          bool
	State         bool
	ZipCode       bool
	Country       bool
	MasjidID      bool
	CreatedAt     bool
	UpdatedAt     bool
}

type DepositSelect struct {
	ID          bool
	Amount      bool
	Description bool
	DepositDate bool
	BankID      bool
	CreatedAt   bool
	UpdatedAt   bool
}

func AllMasjidFields() MasjidSelect {
	return MasjidSelect{
		ID: true, Name: true, Address: true, City: true, State: true,
		ZipCode: true, Country: true, Phone: true, Email: true, Website: true,
		CreatedAt: true, UpdatedAt: true,
	}
}

func AllBankFields() BankSelect {
	return BankSelect{
		ID: true, Name: true, AccountNumber: true, RoutingNumber: true,
		Address: true, City: true, State: true, ZipCode: true, Country: true,
		MasjidID: true, CreatedAt: true, UpdatedAt: true,
	}
}

func AllDepositFields() DepositSelect {
	return DepositSelect{
		ID: true, Amount: true, Description: true, DepositDate: true,
		BankID: true, CreatedAt: true, UpdatedAt: true,
	}
}

// DefaultBankSelect is the minimal bank shape returned when a caller does not
// ask for specific bank fields.
func DefaultBankSelect() BankSelect {
	return BankSelect{ID: true, Name: true, AccountNumber: true}
}

// DefaultDepositSelect is the minimal deposit shape returned when a caller
// does not ask for specific deposit fields.
func DefaultDepositSelect() DepositSelect {
	return DepositSelect{ID: true, Amount: true, DepositDate: true, Description: true}
}

// MasjidQuery describes one shaped read: which masjids, which of their
// fields, and which bank/deposit fields to carry along.
type MasjidQuery struct {
	Where    MasjidWhere
	Select   MasjidSelect
	Banks    BankSelect
	Deposits DepositSelect
	OrderBy  []MasjidOrder
	Offset   int
	Limit    int
}

// WithDefaults fills in the projection defaults: an empty masjid selection
// means every field, empty bank/deposit selections mean their minimal sets.
func (q MasjidQuery) WithDefaults() MasjidQuery {
	if q.Select == (MasjidSelect{}) {
		q.Select = AllMasjidFields()
	}
	if q.Banks == (BankSelect{}) {
		q.Banks = DefaultBankSelect()
	}
	if q.Deposits == (DepositSelect{}) {
		q.Deposits = DefaultDepositSelect()
	}
	return q
}
