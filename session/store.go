package session

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store persists the session in a local SQLite file so it survives process
// restarts, the way the browser client kept it in localStorage.
type Store struct {
	db *gorm.DB
}

// Open creates or opens the session database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("failed to run session migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get() (*Session, error) {
	var sess Session
	err := s.db.First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &sess, nil
}

// Set replaces whatever session is stored. The table holds at most one row.
func (s *Store) Set(sess *Session) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Session{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous session: %w", err)
		}
		sess.ID = 0
		if err := tx.Create(sess).Error; err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
}

func (s *Store) Clear() error {
	if err := s.db.Where("1 = 1").Delete(&Session{}).Error; err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
