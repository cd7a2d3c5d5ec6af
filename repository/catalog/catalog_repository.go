package catalog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/srisatyasai136/review/model"
)

type CatalogRepository interface {
	CreateTrainer(ctx context.Context, data *model.TrainerEntity) (*model.TrainerEntity, error)
	ListTrainers(ctx context.Context, search string) ([]model.TrainerEntity, error)
	GetTrainerForUpdateTx(ctx context.Context, tx *sqlx.Tx, trainerID uint64) (*model.TrainerEntity, error)
	InsertClassTx(ctx context.Context, tx *sqlx.Tx, data *model.DemoClassEntity) (uint64, error)
	ListActiveClasses(ctx context.Context) ([]model.DemoClassDetail, error)
	GetClassByID(ctx context.Context, classID uint64) (*model.DemoClassDetail, error)
	UpdateClassActive(ctx context.Context, classID uint64, active bool) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	insertTrainerQuery = `INSERT INTO trainer (name, expertise, email, created_at) VALUES (?, ?, ?, UTC_TIMESTAMP())`
	listTrainersBase   = `SELECT id, name, expertise, email, created_at FROM trainer`
	lockTrainerQuery   = `SELECT id, name, expertise, email, created_at FROM trainer WHERE id = ? FOR UPDATE`
	insertClassQuery   = `INSERT INTO demo_class (title, trainer_id, scheduled_at, duration_minutes, description, is_active) VALUES (?, ?, ?, ?, ?, ?)`

	classDetailBase = `SELECT c.id, c.title, c.trainer_id, t.name AS trainer_name, t.email AS trainer_email,
c.scheduled_at, c.duration_minutes, c.description, c.is_active
FROM demo_class c
JOIN trainer t ON t.id = c.trainer_id`

	updateClassActiveQuery = `UPDATE demo_class SET is_active = ? WHERE id = ?`
)

func (s *SQL) CreateTrainer(ctx context.Context, data *model.TrainerEntity) (*model.TrainerEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertTrainerQuery, data.Name, data.Expertise, data.Email)
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

func (s *SQL) ListTrainers(ctx context.Context, search string) ([]model.TrainerEntity, error) {
	query := listTrainersBase
	args := make([]any, 0, 2)
	if search != "" {
		like := "%" + search + "%"
		query += " WHERE name LIKE ? OR expertise LIKE ?"
		args = append(args, like, like)
	}
	query += " ORDER BY name"

	items := make([]model.TrainerEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetTrainerForUpdateTx(ctx context.Context, tx *sqlx.Tx, trainerID uint64) (*model.TrainerEntity, error) {
	var entity model.TrainerEntity
	if err := tx.QueryRowxContext(ctx, lockTrainerQuery, trainerID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) InsertClassTx(ctx context.Context, tx *sqlx.Tx, data *model.DemoClassEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertClassQuery, data.Title, data.TrainerID, data.ScheduledAt, data.DurationMinutes, data.Description, data.IsActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) ListActiveClasses(ctx context.Context) ([]model.DemoClassDetail, error) {
	query := classDetailBase + " WHERE c.is_active = TRUE ORDER BY c.scheduled_at ASC, c.id ASC"

	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DemoClassDetail, 0)
	for rows.Next() {
		var it model.DemoClassDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetClassByID(ctx context.Context, classID uint64) (*model.DemoClassDetail, error) {
	var detail model.DemoClassDetail
	if err := s.conn.QueryRowxContext(ctx, classDetailBase+" WHERE c.id = ?", classID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) UpdateClassActive(ctx context.Context, classID uint64, active bool) error {
	_, err := s.conn.ExecContext(ctx, updateClassActiveQuery, active, classID)
	return err
}
