package feedback

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/srisatyasai136/review/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, data *model.FeedbackEntity) (*model.FeedbackEntity, error)
	List(ctx context.Context, filter *model.FeedbackFilter, page, perPage int) ([]model.FeedbackListItem, int64, error)
	SummaryByClass(ctx context.Context) ([]model.ClassSummaryRow, error)
	Overall(ctx context.Context) (*model.OverallSummaryRow, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewFeedbackRepository(conn *sqlx.DB) FeedbackRepository {
	return &SQL{conn: conn}
}

const (
	insertFeedbackQuery = `INSERT INTO feedback (demo_class_id, student_name, student_email, rating, liked_most, to_improve, would_recommend, source, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	listFeedbackSelect = `SELECT f.id, f.demo_class_id, f.student_name, f.student_email, f.rating, f.liked_most, f.to_improve,
f.would_recommend, f.source, f.created_at, c.title AS class_title, t.name AS trainer_name`

	listFeedbackFrom = ` FROM feedback f
JOIN demo_class c ON c.id = f.demo_class_id
JOIN trainer t ON t.id = c.trainer_id`

	summaryByClassQuery = `SELECT c.id, c.title, t.name AS trainer_name, c.scheduled_at,
COUNT(f.id) AS feedback_count, AVG(f.rating) AS avg_rating
FROM demo_class c
JOIN trainer t ON t.id = c.trainer_id
LEFT JOIN feedback f ON f.demo_class_id = c.id
GROUP BY c.id, c.title, t.name, c.scheduled_at
ORDER BY c.scheduled_at DESC, c.id DESC`

	overallQuery = `SELECT COUNT(id) AS total_feedback, AVG(rating) AS avg_rating FROM feedback`
)

func (s *SQL) Create(ctx context.Context, data *model.FeedbackEntity) (*model.FeedbackEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertFeedbackQuery,
		data.DemoClassID, data.StudentName, data.StudentEmail, data.Rating,
		data.LikedMost, data.ToImprove, data.WouldRecommend, data.Source, data.CreatedAt)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter *model.FeedbackFilter, page, perPage int) ([]model.FeedbackListItem, int64, error) {
	where, args := buildFeedbackWhere(filter)
	offset := (page - 1) * perPage

	query := listFeedbackSelect + listFeedbackFrom + where + " ORDER BY f.created_at DESC, f.id DESC LIMIT ? OFFSET ?"
	items := make([]model.FeedbackListItem, 0)
	if err := s.conn.SelectContext(ctx, &items, query, append(args, perPage, offset)...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*)"+listFeedbackFrom+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) SummaryByClass(ctx context.Context) ([]model.ClassSummaryRow, error) {
	rows := make([]model.ClassSummaryRow, 0)
	if err := s.conn.SelectContext(ctx, &rows, summaryByClassQuery); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SQL) Overall(ctx context.Context) (*model.OverallSummaryRow, error) {
	var row model.OverallSummaryRow
	if err := s.conn.GetContext(ctx, &row, overallQuery); err != nil {
		return nil, err
	}
	return &row, nil
}

func buildFeedbackWhere(filter *model.FeedbackFilter) (string, []any) {
	if filter == nil {
		return "", nil
	}

	conds := make([]string, 0, 5)
	args := make([]any, 0, 8)
	if filter.ClassID != 0 {
		conds = append(conds, "f.demo_class_id = ?")
		args = append(args, filter.ClassID)
	}
	if filter.TrainerID != 0 {
		conds = append(conds, "c.trainer_id = ?")
		args = append(args, filter.TrainerID)
	}
	if filter.Rating != 0 {
		conds = append(conds, "f.rating = ?")
		args = append(args, filter.Rating)
	}
	if filter.WouldRecommend != nil {
		conds = append(conds, "f.would_recommend = ?")
		args = append(args, *filter.WouldRecommend)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conds = append(conds, "(f.student_name LIKE ? OR f.student_email LIKE ? OR f.liked_most LIKE ? OR f.to_improve LIKE ?)")
		args = append(args, like, like, like, like)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
