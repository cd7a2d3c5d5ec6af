package transport

import (
	"net/http"
	"strconv"

	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/model"
	utilsContext "github.com/srisatyasai136/review/utils/context"
	"github.com/srisatyasai136/review/utils/errors"
)

// ListActiveClasses handler
// @Summary Active classes
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DemoClassDetail
// @Router /classes [get]
func (s *RestHandler) ListActiveClasses(w http.ResponseWriter, r *http.Request) {
	res, err := s.FeedbackApp.ListActiveClasses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// FeedbackForm handler
// @Summary Feedback form data
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} model.DemoClassDetail
// @Failure 404 {object} Response
// @Router /classes/{id}/feedback [get]
func (s *RestHandler) FeedbackForm(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FeedbackApp.GetClassForm(r.Context(), classID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitFeedback handler
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body model.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} model.SubmitFeedbackResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /classes/{id}/feedback [post]
func (s *RestHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	classID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SubmitFeedbackRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.ClassID = classID

	res, err := s.FeedbackApp.Submit(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ThankYou handler
// @Summary Submission confirmation
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} model.ThankYouResponse
// @Router /classes/{id}/thank-you [get]
func (s *RestHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FeedbackApp.ThankYou(r.Context(), classID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Summary handler
// @Summary Staff summary
// @Description Feedback count and mean rating per class and overall
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SummaryResponse
// @Router /staff/summary [get]
func (s *RestHandler) Summary(w http.ResponseWriter, r *http.Request) {
	res, err := s.FeedbackApp.Summarize(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListFeedback handler
// @Summary Staff feedback listing
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param class_id query int false "Class ID"
// @Param trainer_id query int false "Trainer ID"
// @Param rating query int false "Rating"
// @Param would_recommend query bool false "Would recommend"
// @Param q query string false "Search text"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.FeedbackListResponse
// @Router /staff/feedback [get]
func (s *RestHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	filter, page, perPage, err := parseFeedbackQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FeedbackApp.ListFeedback(r.Context(), filter, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func parseFeedbackQuery(r *http.Request) (*model.FeedbackFilter, int, int, error) {
	q := r.URL.Query()
	filter := &model.FeedbackFilter{Search: q.Get("q")}

	var err error
	if filter.ClassID, err = queryUint(r, "class_id"); err != nil {
		return nil, 0, 0, err
	}
	if filter.TrainerID, err = queryUint(r, "trainer_id"); err != nil {
		return nil, 0, 0, err
	}
	rating, err := queryUint(r, "rating")
	if err != nil || rating > constant.RatingMax {
		return nil, 0, 0, errors.SetDetailError(constant.ErrInvalidRequest, "rating must be between 1 and 5")
	}
	filter.Rating = int(rating)

	if raw := q.Get("would_recommend"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, 0, 0, errors.SetDetailError(constant.ErrInvalidRequest, "would_recommend must be true or false")
		}
		filter.WouldRecommend = &v
	}

	page, err := queryUint(r, "page")
	if err != nil {
		return nil, 0, 0, err
	}
	perPage, err := queryUint(r, "per_page")
	if err != nil {
		return nil, 0, 0, err
	}
	return filter, int(page), int(perPage), nil
}
