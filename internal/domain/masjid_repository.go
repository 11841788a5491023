package domain

import "context"

type MasjidRepository interface {
	// FindOneWithLatestDeposits returns the first masjid matching the query,
	// shaped per MasjidQuery, or nil when nothing matches.
	FindOneWithLatestDeposits(ctx context.Context, q MasjidQuery) (*MasjidWithBanks, error)
	// FindManyWithLatestDeposits returns every masjid matching the query in
	// storage order, shaped per MasjidQuery.
	FindManyWithLatestDeposits(ctx context.Context, q MasjidQuery) ([]MasjidWithBanks, error)
	Count(ctx context.Context, where MasjidWhere) (int64, error)
	Create(ctx context.Context, masjid Masjid) (Masjid, error)
}
