package model

import "time"

type TrainerEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Expertise string    `db:"expertise" json:"expertise"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type DemoClassEntity struct {
	ID              uint64    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	TrainerID       uint64    `db:"trainer_id" json:"trainer_id"`
	ScheduledAt     time.Time `db:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Description     string    `db:"description" json:"description"`
	IsActive        bool      `db:"is_active" json:"is_active"`
}

// DemoClassDetail is a class joined with its trainer.
type DemoClassDetail struct {
	ID              uint64    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	TrainerID       uint64    `db:"trainer_id" json:"trainer_id"`
	TrainerName     string    `db:"trainer_name" json:"trainer_name"`
	TrainerEmail    string    `db:"trainer_email" json:"-"`
	ScheduledAt     time.Time `db:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Description     string    `db:"description" json:"description,omitempty"`
	IsActive        bool      `db:"is_active" json:"is_active"`
}

type CreateTrainerRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Expertise string `json:"expertise" validate:"max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type CreateClassRequest struct {
	Title           string    `json:"title" validate:"required,max=200"`
	TrainerID       uint64    `json:"trainer_id" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0"`
	Description     string    `json:"description"`
	IsActive        *bool     `json:"is_active"`
}

type SetClassActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
