package catalog

import (
	"context"
	"strings"

	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/model"
	catalogrepo "github.com/srisatyasai136/review/repository/catalog"
	txrepo "github.com/srisatyasai136/review/repository/tx"
	"github.com/srisatyasai136/review/utils/errors"
	"github.com/srisatyasai136/review/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	CreateTrainer(ctx context.Context, req *model.CreateTrainerRequest) (*model.TrainerEntity, error)
	ListTrainers(ctx context.Context, search string) ([]model.TrainerEntity, error)
	CreateClass(ctx context.Context, req *model.CreateClassRequest) (*model.DemoClassEntity, error)
	SetClassActive(ctx context.Context, classID uint64, active bool) error
}

type catalogAppImpl struct {
	txRepo      txrepo.TxRepository
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(txRepo txrepo.TxRepository, catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{txRepo: txRepo, catalogRepo: catalogRepo}
}

func (s *catalogAppImpl) CreateTrainer(ctx context.Context, req *model.CreateTrainerRequest) (*model.TrainerEntity, error) {
	trainer, err := s.catalogRepo.CreateTrainer(ctx, &model.TrainerEntity{
		Name:      strings.TrimSpace(req.Name),
		Expertise: strings.TrimSpace(req.Expertise),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	})
	if err != nil {
		logger.Error("[CreateTrainer] err catalogRepo.CreateTrainer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return trainer, nil
}

func (s *catalogAppImpl) ListTrainers(ctx context.Context, search string) ([]model.TrainerEntity, error) {
	trainers, err := s.catalogRepo.ListTrainers(ctx, strings.TrimSpace(search))
	if err != nil {
		logger.Error("[ListTrainers] err catalogRepo.ListTrainers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return trainers, nil
}

func (s *catalogAppImpl) CreateClass(ctx context.Context, req *model.CreateClassRequest) (*model.DemoClassEntity, error) {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = constant.DefaultClassDurationMinutes
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateClass] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// lock the trainer so it cannot disappear before the insert lands
	trainer, err := s.catalogRepo.GetTrainerForUpdateTx(ctx, tx, req.TrainerID)
	if err != nil {
		logger.Error("[CreateClass] get trainer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if trainer == nil {
		return nil, errors.SetDetailError(constant.ErrNotFound, "trainer not found")
	}

	class := &model.DemoClassEntity{
		Title:           strings.TrimSpace(req.Title),
		TrainerID:       trainer.ID,
		ScheduledAt:     req.ScheduledAt.UTC(),
		DurationMinutes: duration,
		Description:     req.Description,
		IsActive:        active,
	}
	classID, err := s.catalogRepo.InsertClassTx(ctx, tx, class)
	if err != nil {
		logger.Error("[CreateClass] insert class", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateClass] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	class.ID = classID
	return class, nil
}

func (s *catalogAppImpl) SetClassActive(ctx context.Context, classID uint64, active bool) error {
	class, err := s.catalogRepo.GetClassByID(ctx, classID)
	if err != nil {
		logger.Error("[SetClassActive] err catalogRepo.GetClassByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if class == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.catalogRepo.UpdateClassActive(ctx, classID, active); err != nil {
		logger.Error("[SetClassActive] err catalogRepo.UpdateClassActive", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	logger.Info("[SetClassActive] class updated", zap.Uint64("class_id", classID), zap.Bool("is_active", active))
	return nil
}
