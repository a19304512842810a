package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/medlifequest/internal/kv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stateEntry struct {
	Key       string    `gorm:"column:state_key;primaryKey"`
	Value     []byte    `gorm:"column:state_value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (stateEntry) TableName() string {
	return "user_state"
}

// StateRepository stores user state slots in the user_state table. It
// satisfies kv.Store.
type StateRepository struct {
	database *gorm.DB
}

func NewStateRepository(database *gorm.DB) *StateRepository {
	return &StateRepository{database: database}
}

func (repo *StateRepository) Get(key string) ([]byte, error) {
	var entry stateEntry
	if err := repo.database.Where("state_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (repo *StateRepository) Set(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	entry := stateEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"state_value", "updated_at"}),
	}).Create(&entry).Error
}

func (repo *StateRepository) Delete(key string) error {
	return repo.database.Where("state_key = ?", key).Delete(&stateEntry{}).Error
}

// Keys lists every stored slot name in ascending order.
func (repo *StateRepository) Keys() ([]string, error) {
	keys := make([]string, 0)
	if err := repo.database.Model(&stateEntry{}).Order("state_key").Pluck("state_key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
