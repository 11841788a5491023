package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RiyadTangil/masjid-directory/internal/domain"
)

// The shaped read is one composed statement: the page of masjids, their
// banks, and for each bank at most one deposit picked by a LATERAL subquery
// ordered newest-first. Deposits with the same deposit date fall back to
// created_at and then id so the pick is deterministic.
const latestDepositJoin = `
LEFT JOIN banks b ON b.masjid_id = m.id
LEFT JOIN LATERAL (
	SELECT * FROM deposits
	WHERE deposits.bank_id = b.id
	ORDER BY deposit_date DESC, created_at DESC, id DESC
	LIMIT 1
) d ON true`

type masjidScan struct {
	id        string
	name      sql.NullString
	address   sql.NullString
	city      sql.NullString
	state     sql.NullString
	zipCode   sql.NullString
	country   sql.NullString
	phone     sql.NullString
	email     sql.NullString
	website   sql.NullString
	createdAt sql.NullTime
	updatedAt sql.NullTime
}

type bankScan struct {
	id            sql.NullString
	name          sql.NullString
	accountNumber sql.NullString
	routingNumber sql.NullString
	address       sql.NullString
	city          sql.NullString
	state         sql.NullString
	zipCode       sql.NullString
	country       sql.NullString
	masjidID      sql.NullString
	createdAt     sql.NullTime
	updatedAt     sql.NullTime
}

type depositScan struct {
	id          sql.NullString
	amount      decimal.NullDecimal
	description sql.NullString
	depositDate sql.NullTime
	bankID      sql.NullString
	createdAt   sql.NullTime
	updatedAt   sql.NullTime
}

type joinedScan struct {
	masjid  masjidScan
	bank    bankScan
	deposit depositScan
}

// joinedRow is one flat result row after scanning: the masjid plus at most
// one bank and that bank's latest deposit.
type joinedRow struct {
	masjid  domain.Masjid
	bank    *domain.Bank
	deposit *domain.Deposit
}

func buildMasjidQuery(q domain.MasjidQuery, scan *joinedScan) (string, []any) {
	q = q.WithDefaults()

	var args []any
	inner := "SELECT * FROM masjids"
	if where := masjidWhereClause(q.Where, &args); where != "" {
		inner += " " + where
	}
	if order := masjidOrderClause(q.OrderBy, ""); order != "" {
		inner += " " + order
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		inner += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		inner += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	cols := masjidColumns(q.Select, &scan.masjid)
	cols = append(cols, bankColumns(q.Banks, &scan.bank)...)
	cols = append(cols, depositColumns(q.Deposits, &scan.deposit)...)

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}

	query := fmt.Sprintf("SELECT %s\nFROM (%s) m%s\n%s",
		strings.Join(names, ", "), inner, latestDepositJoin, outerOrderClause(q.OrderBy))

	return query, args
}

// outerOrderClause repeats the masjid ordering on the joined rows and keeps
// each masjid's banks in a stable order.
func outerOrderClause(orders []domain.MasjidOrder) string {
	terms := orderTerms(orders, "m.")
	terms = append(terms, "m.id ASC", "b.created_at ASC", "b.id ASC")
	return "ORDER BY " + strings.Join(terms, ", ")
}

func masjidOrderClause(orders []domain.MasjidOrder, prefix string) string {
	terms := orderTerms(orders, prefix)
	if len(terms) == 0 {
		return ""
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}

func orderTerms(orders []domain.MasjidOrder, prefix string) []string {
	var terms []string
	for _, o := range orders {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		switch o.By {
		case domain.OrderByName:
			terms = append(terms, prefix+"name "+dir)
		case domain.OrderByCreatedAt:
			terms = append(terms, prefix+"created_at "+dir)
		}
	}
	return terms
}

func masjidWhereClause(w domain.MasjidWhere, args *[]any) string {
	var conds []string
	if w.ID != "" {
		*args = append(*args, w.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(*args)))
	}
	if w.City != "" {
		*args = append(*args, w.City)
		conds = append(conds, fmt.Sprintf("city = $%d", len(*args)))
	}
	if w.State != "" {
		*args = append(*args, w.State)
		conds = append(conds, fmt.Sprintf("state = $%d", len(*args)))
	}
	if w.NameContains != "" {
		*args = append(*args, w.NameContains)
		conds = append(conds, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(*args)))
	}
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

type column struct {
	name string
	dest any
}

func masjidColumns(sel domain.MasjidSelect, s *masjidScan) []column {
	cols := []column{{"m.id", &s.id}}
	if sel.Name {
		cols = append(cols, column{"m.name", &s.name})
	}
	if sel.Address {
		cols = append(cols, column{"m.address", &s.address})
	}
	if sel.City {
		cols = append(cols, column{"m.city", &s.city})
	}
	if sel.State {
		cols = append(cols, column{"m.state", &s.state})
	}
	if sel.ZipCode {
		cols = append(cols, column{"m.zip_code", &s.zipCode})
	}
	if sel.Country {
		cols = append(cols, column{"m.country", &s.country})
	}
	if sel.Phone {
		cols = append(cols, column{"m.phone", &s.phone})
	}
	if sel.Email {
		cols = append(cols, column{"m.email", &s.email})
	}
	if sel.Website {
		cols = append(cols, column{"m.website", &s.website})
	}
	if sel.CreatedAt {
		cols = append(cols, column{"m.created_at", &s.createdAt})
	}
	if sel.UpdatedAt {
		cols = append(cols, column{"m.updated_at", &s.updatedAt})
	}
	return cols
}

func bankColumns(sel domain.BankSelect, s *bankScan) []column {
	cols := []column{{"b.id", &s.id}}
	if sel.Name {
		cols = append(cols, column{"b.name", &s.name})
	}
	if sel.AccountNumber {
		cols = append(cols, column{"b.account_number", &s.accountNumber})
	}
	if sel.RoutingNumber {
		cols = append(cols, column{"b.routing_number", &s.routingNumber})
	}
	if sel.Address {
		cols = append(cols, column{"b.address", &s.address})
	}
	if sel.City {
		cols = append(cols, column{"b.city", &s.city})
	}
	if sel.State {
		cols = append(cols, column{"b.state", &s.state})
	}
	if sel.ZipCode {
		cols = append(cols, column{"b.zip_code", &s.zipCode})
	}
	if sel.Country {
		cols = append(cols, column{"b.country", &s.country})
	}
	if sel.MasjidID {
		cols = append(cols, column{"b.masjid_id", &s.masjidID})
	}
	if sel.CreatedAt {
		cols = append(cols, column{"b.created_at", &s.createdAt})
	}
	if sel.UpdatedAt {
		cols = append(cols, column{"b.updated_at", &s.updatedAt})
	}
	return cols
}

func depositColumns(sel domain.DepositSelect, s *depositScan) []column {
	cols := []column{{"d.id", &s.id}}
	if sel.Amount {
		cols = append(cols, column{"d.amount", &s.amount})
	}
	if sel.Description {
		cols = append(cols, column{"d.description", &s.description})
	}
	if sel.DepositDate {
		cols = append(cols, column{"d.deposit_date", &s.depositDate})
	}
	if sel.BankID {
		cols = append(cols, column{"d.bank_id", &s.bankID})
	}
	if sel.CreatedAt {
		cols = append(cols, column{"d.created_at", &s.createdAt})
	}
	if sel.UpdatedAt {
		cols = append(cols, column{"d.updated_at", &s.updatedAt})
	}
	return cols
}

func scanDests(q domain.MasjidQuery, scan *joinedScan) []any {
	q = q.WithDefaults()
	cols := masjidColumns(q.Select, &scan.masjid)
	cols = append(cols, bankColumns(q.Banks, &scan.bank)...)
	cols = append(cols, depositColumns(q.Deposits, &scan.deposit)...)

	dests := make([]any, len(cols))
	for i, c := range cols {
		dests[i] = c.dest
	}
	return dests
}

func (s *joinedScan) row() joinedRow {
	r := joinedRow{masjid: s.masjid.toMasjid()}
	if s.bank.id.Valid {
		b := s.bank.toBank()
		r.bank = &b
	}
	if s.deposit.id.Valid {
		d := s.deposit.toDeposit()
		r.deposit = &d
	}
	return r
}

func (s masjidScan) toMasjid() domain.Masjid {
	m := domain.Masjid{
		ID:      s.id,
		Name:    s.name.String,
		Address: s.address.String,
		City:    s.city.String,
		State:   s.state.String,
		ZipCode: s.zipCode.String,
		Country: s.country.String,
	}
	if s.phone.Valid {
		v := s.phone.String
		m.Phone = &v
	}
	if s.email.Valid {
		v := s.email.String
		m.Email = &v
	}
	if s.website.Valid {
		v := s.website.String
		m.Website = &v
	}
	if s.createdAt.Valid {
		m.CreatedAt = s.createdAt.Time
	}
	if s.updatedAt.Valid {
		m.UpdatedAt = s.updatedAt.Time
	}
	return m
}

func (s bankScan) toBank() domain.Bank {
	b := domain.Bank{
		ID:            s.id.String,
		Name:          s.name.String,
		AccountNumber: s.accountNumber.String,
		RoutingNumber: s.routingNumber.String,
		Address:       s.address.String,
		City:          s.city.String,
		State:         s.state.String,
		ZipCode:       s.zipCode.String,
		Country:       s.country.String,
		MasjidID:      s.masjidID.String,
	}
	if s.createdAt.Valid {
		b.CreatedAt = s.createdAt.Time
	}
	if s.updatedAt.Valid {
		b.UpdatedAt = s.updatedAt.Time
	}
	return b
}

func (s depositScan) toDeposit() domain.Deposit {
	d := domain.Deposit{
		ID:     s.id.String,
		BankID: s.bankID.String,
	}
	if s.amount.Valid {
		d.Amount = s.amount.Decimal
	}
	if s.description.Valid {
		v := s.description.String
		d.Description = &v
	}
	if s.depositDate.Valid {
		d.DepositDate = s.depositDate.Time
	}
	if s.createdAt.Valid {
		d.CreatedAt = s.createdAt.Time
	}
	if s.updatedAt.Valid {
		d.UpdatedAt = s.updatedAt.Time
	}
	return d
}

// assembleMasjids reshapes the flat join rows into the masjid → banks →
// latestDeposit tree. It is a single pass over already-fetched rows and never
// goes back to the database. A masjid with no banks keeps an empty, non-nil
// bank list.
func assembleMasjids(rows []joinedRow) []domain.MasjidWithBanks {
	out := []domain.MasjidWithBanks{}
	index := map[string]int{}

	for _, r := range rows {
		i, ok := index[r.masjid.ID]
		if !ok {
			out = append(out, domain.MasjidWithBanks{
				Masjid: r.masjid,
				Banks:  []domain.BankWithLatestDeposit{},
			})
			i = len(out) - 1
			index[r.masjid.ID] = i
		}
		if r.bank == nil {
			continue
		}
		out[i].Banks = append(out[i].Banks, domain.BankWithLatestDeposit{
			Bank:          *r.bank,
			LatestDeposit: r.deposit,
		})
	}

	return out
}
