package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RiyadTangil/masjid-directory/internal/domain"
)

type MasjidRepository struct {
	db *sql.DB
}

func NewMasjidRepository(db *sql.DB) *MasjidRepository {
	return &MasjidRepository{db: db}
}

func (r *MasjidRepository) FindManyWithLatestDeposits(ctx context.Context, q domain.MasjidQuery) ([]domain.MasjidWithBanks, error) {
	var scan joinedScan
	query, args := buildMasjidQuery(q, &scan)
	dests := scanDests(q, &scan)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query masjids with latest deposits: %w", err)
	}
	defer rows.Close()

	var flat []joinedRow
	for rows.Next() {
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scan masjid row: %w", err)
		}
		flat = append(flat, scan.row())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate masjid rows: %w", err)
	}

	return assembleMasjids(flat), nil
}

func (r *MasjidRepository) FindOneWithLatestDeposits(ctx context.Context, q domain.MasjidQuery) (*domain.MasjidWithBanks, error) {
	if q.Limit == 0 {
		q.Limit = 1
	}

	masjids, err := r.FindManyWithLatestDeposits(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(masjids) == 0 {
		return nil, nil
	}

	return &masjids[0], nil
}

func (r *MasjidRepository) Count(ctx context.Context, where domain.MasjidWhere) (int64, error) {
	var args []any
	query := "SELECT COUNT(*) FROM masjids"
	if clause := masjidWhereClause(where, &args); clause != "" {
		query += " " + clause
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count masjids: %w", err)
	}

	return total, nil
}

func (r *MasjidRepository) Create(ctx context.Context, masjid domain.Masjid) (domain.Masjid, error) {
	const query = `
INSERT INTO masjids (
	name,
	address,
	city,
	state,
	zip_code,
	country,
	phone,
	email,
	website
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`

	var id string
	var createdAt time.Time
	var updatedAt time.Time

	if err := r.db.QueryRowContext(
		ctx,
		query,
		masjid.Name,
		masjid.Address,
		masjid.City,
		masjid.State,
		masjid.ZipCode,
		masjid.Country,
		masjid.Phone,
		masjid.Email,
		masjid.Website,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		return domain.Masjid{}, fmt.Errorf("create masjid: %w", err)
	}

	masjid.ID = id
	masjid.CreatedAt = createdAt
	masjid.UpdatedAt = updatedAt

	return masjid, nil
}
