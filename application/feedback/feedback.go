package feedback

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/model"
	catalogrepo "github.com/srisatyasai136/review/repository/catalog"
	feedbackrepo "github.com/srisatyasai136/review/repository/feedback"
	userrepo "github.com/srisatyasai136/review/repository/user"
	"github.com/srisatyasai136/review/thirdparty/rabbitmq"
	"github.com/srisatyasai136/review/utils/errors"
	"github.com/srisatyasai136/review/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

type FeedbackApp interface {
	ListActiveClasses(ctx context.Context) ([]model.DemoClassDetail, error)
	GetClassForm(ctx context.Context, classID uint64) (*model.DemoClassDetail, error)
	Submit(ctx context.Context, userID uint64, req *model.SubmitFeedbackRequest) (*model.SubmitFeedbackResponse, error)
	ThankYou(ctx context.Context, classID uint64) (*model.ThankYouResponse, error)
	Summarize(ctx context.Context) (*model.SummaryResponse, error)
	ListFeedback(ctx context.Context, filter *model.FeedbackFilter, page, perPage int) (*model.FeedbackListResponse, error)
}

// EventPublisher is satisfied by *rabbitmq.Publisher.
type EventPublisher interface {
	PublishFeedbackSubmitted(ctx context.Context, msg rabbitmq.FeedbackSubmittedMessage) error
}

type feedbackAppImpl struct {
	userRepo     userrepo.UserRepository
	catalogRepo  catalogrepo.CatalogRepository
	feedbackRepo feedbackrepo.FeedbackRepository
	publisher    EventPublisher
}

// NewFeedbackApp builds the feedback flow. publisher may be nil, in which
// case no events are emitted.
func NewFeedbackApp(userRepo userrepo.UserRepository, catalogRepo catalogrepo.CatalogRepository, feedbackRepo feedbackrepo.FeedbackRepository, publisher EventPublisher) FeedbackApp {
	return &feedbackAppImpl{
		userRepo:     userRepo,
		catalogRepo:  catalogRepo,
		feedbackRepo: feedbackRepo,
		publisher:    publisher,
	}
}

func (s *feedbackAppImpl) ListActiveClasses(ctx context.Context) ([]model.DemoClassDetail, error) {
	classes, err := s.catalogRepo.ListActiveClasses(ctx)
	if err != nil {
		logger.Error("[ListActiveClasses] err catalogRepo.ListActiveClasses", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return classes, nil
}

func (s *feedbackAppImpl) GetClassForm(ctx context.Context, classID uint64) (*model.DemoClassDetail, error) {
	class, err := s.getClass(ctx, "GetClassForm", classID)
	if err != nil {
		return nil, err
	}
	if !class.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return class, nil
}

func (s *feedbackAppImpl) Submit(ctx context.Context, userID uint64, req *model.SubmitFeedbackRequest) (*model.SubmitFeedbackResponse, error) {
	if req.Rating < constant.RatingMin || req.Rating > constant.RatingMax {
		return nil, errors.SetDetailError(constant.ErrInvalidRequest,
			fmt.Sprintf("rating must be between %d and %d", constant.RatingMin, constant.RatingMax))
	}
	likedMost := strings.TrimSpace(req.LikedMost)
	toImprove := strings.TrimSpace(req.ToImprove)
	if likedMost == "" || toImprove == "" {
		return nil, errors.SetDetailError(constant.ErrInvalidRequest, "liked_most and to_improve are required")
	}

	class, err := s.getClass(ctx, "Submit", req.ClassID)
	if err != nil {
		return nil, err
	}
	if !class.IsActive {
		return nil, errors.SetCustomError(constant.ErrClassInactive)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Submit] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	created, err := s.feedbackRepo.Create(ctx, &model.FeedbackEntity{
		DemoClassID:    class.ID,
		StudentName:    user.Name,
		StudentEmail:   user.Email,
		Rating:         req.Rating,
		LikedMost:      likedMost,
		ToImprove:      toImprove,
		WouldRecommend: req.WouldRecommend,
		Source:         constant.FeedbackSourceDigital,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		logger.Error("[Submit] err feedbackRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.FeedbackSubmittedMessage{
			FeedbackID:     created.ID,
			ClassID:        class.ID,
			ClassTitle:     class.Title,
			TrainerName:    class.TrainerName,
			TrainerEmail:   class.TrainerEmail,
			Rating:         created.Rating,
			WouldRecommend: created.WouldRecommend,
			CreatedAt:      created.CreatedAt,
		}
		if err := s.publisher.PublishFeedbackSubmitted(ctx, msg); err != nil {
			logger.Error("[Submit] publish feedback submitted", zap.Uint64("feedback_id", created.ID), zap.String("error", err.Error()))
		}
	}

	return &model.SubmitFeedbackResponse{
		FeedbackID: created.ID,
		Next:       fmt.Sprintf("/classes/%d/thank-you", class.ID),
	}, nil
}

func (s *feedbackAppImpl) ThankYou(ctx context.Context, classID uint64) (*model.ThankYouResponse, error) {
	class, err := s.getClass(ctx, "ThankYou", classID)
	if err != nil {
		return nil, err
	}
	return &model.ThankYouResponse{
		ClassID:     class.ID,
		Title:       class.Title,
		TrainerName: class.TrainerName,
	}, nil
}

// Summarize reports every class, including those without feedback.
func (s *feedbackAppImpl) Summarize(ctx context.Context) (*model.SummaryResponse, error) {
	rows, err := s.feedbackRepo.SummaryByClass(ctx)
	if err != nil {
		logger.Error("[Summarize] err feedbackRepo.SummaryByClass", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	overall, err := s.feedbackRepo.Overall(ctx)
	if err != nil {
		logger.Error("[Summarize] err feedbackRepo.Overall", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	perClass := make([]model.ClassSummary, 0, len(rows))
	for _, row := range rows {
		perClass = append(perClass, model.ClassSummary{
			ClassID:       row.ClassID,
			Title:         row.Title,
			TrainerName:   row.TrainerName,
			ScheduledAt:   row.ScheduledAt,
			FeedbackCount: row.FeedbackCount,
			AvgRating:     averageOrNil(row.FeedbackCount, row.AvgRating),
		})
	}

	res := &model.SummaryResponse{PerClass: perClass}
	if overall != nil {
		res.TotalFeedback = overall.TotalFeedback
		res.AvgRating = averageOrNil(overall.TotalFeedback, overall.AvgRating)
	}
	return res, nil
}

func (s *feedbackAppImpl) ListFeedback(ctx context.Context, filter *model.FeedbackFilter, page, perPage int) (*model.FeedbackListResponse, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if filter == nil {
		filter = &model.FeedbackFilter{}
	}

	items, total, err := s.feedbackRepo.List(ctx, filter, page, perPage)
	if err != nil {
		logger.Error("[ListFeedback] err feedbackRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.FeedbackListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *feedbackAppImpl) getClass(ctx context.Context, op string, classID uint64) (*model.DemoClassDetail, error) {
	class, err := s.catalogRepo.GetClassByID(ctx, classID)
	if err != nil {
		logger.Error("["+op+"] err catalogRepo.GetClassByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if class == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return class, nil
}

// averageOrNil rounds to two decimals and hides averages over zero rows.
func averageOrNil(count int64, avg *float64) *float64 {
	if count == 0 || avg == nil {
		return nil
	}
	rounded := math.Round(*avg*100) / 100
	return &rounded
}

