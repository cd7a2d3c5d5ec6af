package model

import "time"

type FeedbackEntity struct {
	ID             uint64    `db:"id" json:"id"`
	DemoClassID    uint64    `db:"demo_class_id" json:"demo_class_id"`
	StudentName    string    `db:"student_name" json:"student_name"`
	StudentEmail   string    `db:"student_email" json:"student_email"`
	Rating         int       `db:"rating" json:"rating"`
	LikedMost      string    `db:"liked_most" json:"liked_most"`
	ToImprove      string    `db:"to_improve" json:"to_improve"`
	WouldRecommend bool      `db:"would_recommend" json:"would_recommend"`
	Source         string    `db:"source" json:"source"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// FeedbackListItem is a feedback row with its class and trainer names.
type FeedbackListItem struct {
	FeedbackEntity
	ClassTitle  string `db:"class_title" json:"class_title"`
	TrainerName string `db:"trainer_name" json:"trainer_name"`
}

type FeedbackFilter struct {
	ClassID        uint64
	TrainerID      uint64
	Rating         int
	WouldRecommend *bool
	Search         string
}

type SubmitFeedbackRequest struct {
	ClassID        uint64 `json:"-"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	LikedMost      string `json:"liked_most" validate:"required"`
	ToImprove      string `json:"to_improve" validate:"required"`
	WouldRecommend bool   `json:"would_recommend"`
}

type SubmitFeedbackResponse struct {
	FeedbackID uint64 `json:"feedback_id"`
	Next       string `json:"next"`
}

type ThankYouResponse struct {
	ClassID     uint64 `json:"class_id"`
	Title       string `json:"title"`
	TrainerName string `json:"trainer_name"`
}

// ClassSummaryRow is one aggregated row as read from the store.
type ClassSummaryRow struct {
	ClassID       uint64    `db:"id"`
	Title         string    `db:"title"`
	TrainerName   string    `db:"trainer_name"`
	ScheduledAt   time.Time `db:"scheduled_at"`
	FeedbackCount int64     `db:"feedback_count"`
	AvgRating     *float64  `db:"avg_rating"`
}

type OverallSummaryRow struct {
	TotalFeedback int64    `db:"total_feedback"`
	AvgRating     *float64 `db:"avg_rating"`
}

type ClassSummary struct {
	ClassID       uint64    `json:"class_id"`
	Title         string    `json:"title"`
	TrainerName   string    `json:"trainer_name"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	FeedbackCount int64     `json:"feedback_count"`
	AvgRating     *float64  `json:"avg_rating"`
}

// SummaryResponse holds per class and overall aggregates. AvgRating is nil
// when there is no feedback to average.
type SummaryResponse struct {
	PerClass      []ClassSummary `json:"per_class"`
	TotalFeedback int64          `json:"total_feedback"`
	AvgRating     *float64       `json:"avg_rating"`
}

type FeedbackListResponse struct {
	Items      []FeedbackListItem `json:"items"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
}
