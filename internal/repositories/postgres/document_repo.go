package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Sinclqir/jobazur-document-service/internal/models"
	"github.com/Sinclqir/jobazur-document-service/internal/utils"
)

// DocumentRepository scopes every read and delete by owner so that another
// user's document looks exactly like a missing one.
type DocumentRepository interface {
	FindAllByUser(ctx context.Context, userID string) ([]models.Document, error)
	FindLatestCVByUser(ctx context.Context, userID string) (*models.Document, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (*models.Document, error)
	Insert(ctx context.Context, doc *models.Document) error
	// DeleteAllCVByUser removes every cv row for the user and returns the
	// object keys of the removed rows so the caller can clean up blobs.
	DeleteAllCVByUser(ctx context.Context, userID string) ([]string, error)
	DeleteByID(ctx context.Context, id string) error
}

type documentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) FindAllByUser(ctx context.Context, userID string) ([]models.Document, error) {
	var rows []models.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *documentRepo) FindLatestCVByUser(ctx context.Context, userID string) (*models.Document, error) {
	var row models.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, models.TypeCV).
		Order("uploaded_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *documentRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Document, error) {
	var row models.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *documentRepo) Insert(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepo) DeleteAllCVByUser(ctx context.Context, userID string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []models.Document
		if err := tx.
			Where("user_id = ? AND type = ?", userID, models.TypeCV).
			Find(&rows).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.
			Where("user_id = ? AND type = ?", userID, models.TypeCV).
			Delete(&models.Document{}).Error; err != nil {
			return err
		}
		for _, row := range rows {
			keys = append(keys, row.FileURL)
		}
		return nil
	})
	return keys, err
}

func (r *documentRepo) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Document{}).Error
}
