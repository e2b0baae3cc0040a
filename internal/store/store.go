package store

import (
	"github.com/elecreview/voltage-planner/internal/store/model"
	"gorm.io/gorm"
)

type Store interface {
	Run() Run
	InitialMigration() error
	Close() error
}

type DataStore struct {
	run Run
	db  *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		run: NewRunStore(db),
		db:  db,
	}
}

func (s *DataStore) Run() Run {
	return s.run
}

func (s *DataStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.CalculationRun{})
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
