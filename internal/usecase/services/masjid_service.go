package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/models"
	"github.com/RiyadTangil/masjid-directory/internal/commons"
	"github.com/RiyadTangil/masjid-directory/internal/domain"
)

type MasjidService struct {
	repo domain.MasjidRepository
	log  *zap.Logger
}

func NewMasjidService(repo domain.MasjidRepository, log *zap.Logger) *MasjidService {
	return &MasjidService{repo: repo, log: log}
}

// ListMasjids returns one page of masjids with their banks and latest
// deposits, plus pagination metadata. The page fetch and the total count run
// concurrently and are awaited together.
func (s *MasjidService) ListMasjids(ctx context.Context, page, limit int) (commons.Response[[]models.MasjidWithBanks], error) {
	var (
		masjids []domain.MasjidWithBanks
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		masjids, err = s.repo.FindManyWithLatestDeposits(gctx, domain.MasjidQuery{
			Select:   domain.AllMasjidFields(),
			Banks:    domain.AllBankFields(),
			Deposits: domain.AllDepositFields(),
			OrderBy:  []domain.MasjidOrder{{By: domain.OrderByName}},
			Offset:   (page - 1) * limit,
			Limit:    limit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, domain.MasjidWhere{})
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("list masjids failed", zap.Int("page", page), zap.Int("limit", limit), zap.Error(err))
		return commons.ErrorResponse[[]models.MasjidWithBanks]("failed to list masjids"), err
	}

	data := make([]models.MasjidWithBanks, 0, len(masjids))
	for _, m := range masjids {
		data = append(data, toMasjidWithBanks(m))
	}

	return commons.PagedResponse(data, commons.NewPagination(total, page, limit)), nil
}

func (s *MasjidService) CreateMasjid(ctx context.Context, req models.CreateMasjidRequest) (commons.Response[models.Masjid], error) {
	if errs := req.Validate(); len(errs) > 0 {
		return commons.ValidationErrorResponse[models.Masjid](errs), errors.New("create masjid validation failed")
	}

	created, err := s.repo.Create(ctx, domain.Masjid{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
		Phone:   req.Phone,
		Email:   req.Email,
		Website: req.Website,
	})
	if err != nil {
		s.log.Error("create masjid failed", zap.String("name", req.Name), zap.Error(err))
		return commons.ErrorResponse[models.Masjid]("failed to create masjid"), err
	}

	s.log.Info("masjid created", zap.String("id", created.ID), zap.String("name", created.Name))

	return commons.SuccessResponse(toMasjid(created)), nil
}

// DirectoryMasjids is the narrow read behind the server-rendered directory
// page: every masjid ordered by name, with the minimal bank and deposit
// shapes.
func (s *MasjidService) DirectoryMasjids(ctx context.Context) ([]models.MasjidWithBanks, error) {
	masjids, err := s.repo.FindManyWithLatestDeposits(ctx, domain.MasjidQuery{
		Select:  domain.MasjidSelect{ID: true, Name: true, Address: true, City: true, State: true},
		OrderBy: []domain.MasjidOrder{{By: domain.OrderByName}},
	})
	if err != nil {
		s.log.Error("directory masjids failed", zap.Error(err))
		return nil, err
	}

	data := make([]models.MasjidWithBanks, 0, len(masjids))
	for _, m := range masjids {
		data = append(data, toMasjidWithBanks(m))
	}

	return data, nil
}

// GetMasjid returns one masjid with all fields, or nil when the id is
// unknown.
func (s *MasjidService) GetMasjid(ctx context.Context, id string) (*models.MasjidWithBanks, error) {
	masjid, err := s.repo.FindOneWithLatestDeposits(ctx, domain.MasjidQuery{
		Where:    domain.MasjidWhere{ID: id},
		Select:   domain.AllMasjidFields(),
		Banks:    domain.AllBankFields(),
		Deposits: domain.AllDepositFields(),
	})
	if err != nil {
		s.log.Error("get masjid failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if masjid == nil {
		return nil, nil
	}

	dto := toMasjidWithBanks(*masjid)
	return &dto, nil
}
