package mysqlstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-service/internal/storage"
)

// Slot is a persisted collection snapshot keyed by slot name.
type Slot struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value []byte `gorm:"type:mediumblob"`
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewFromEnv connects using the MYSQL_* environment variables.
func NewFromEnv() (*Store, error) {
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASSWORD")
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	dbname := os.Getenv("MYSQL_DATABASE")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, pass, host, port, dbname)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return New(db)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var slot Slot
	err := s.db.WithContext(ctx).First(&slot, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return slot.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	slot := Slot{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&slot).Error
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Slot{}, "`key` = ?", key).Error
}

var _ storage.Adapter = (*Store)(nil)
