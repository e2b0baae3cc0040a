package store

import (
	"context"
	"errors"

	"github.com/elecreview/voltage-planner/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Run interface {
	Create(ctx context.Context, run model.CalculationRun) (*model.CalculationRun, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CalculationRun, error)
	List(ctx context.Context) (model.CalculationRunList, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RunStore struct {
	db *gorm.DB
}

func NewRunStore(db *gorm.DB) Run {
	return &RunStore{db: db}
}

func (s *RunStore) Create(ctx context.Context, run model.CalculationRun) (*model.CalculationRun, error) {
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *RunStore) Get(ctx context.Context, id uuid.UUID) (*model.CalculationRun, error) {
	run := &model.CalculationRun{}
	if err := s.db.WithContext(ctx).First(run, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return run, nil
}

func (s *RunStore) List(ctx context.Context) (model.CalculationRunList, error) {
	var runs model.CalculationRunList
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *RunStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.CalculationRun{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
