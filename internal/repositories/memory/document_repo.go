package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Sinclqir/jobazur-document-service/internal/models"
	pgrepo "github.com/Sinclqir/jobazur-document-service/internal/repositories/postgres"
	"github.com/Sinclqir/jobazur-document-service/internal/utils"
)

// DocumentRepo keeps document rows in-process. It backs local runs without a
// POSTGRES_URI and the workflow tests.
type DocumentRepo struct {
	mu   sync.RWMutex
	rows map[string]models.Document // key: document ID
}

func NewDocumentRepo() *DocumentRepo {
	return &DocumentRepo{rows: make(map[string]models.Document)}
}

var _ pgrepo.DocumentRepository = (*DocumentRepo)(nil)

func (r *DocumentRepo) FindAllByUser(_ context.Context, userID string) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []models.Document
	for _, row := range r.rows {
		if row.UserID == userID {
			res = append(res, row)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].UploadedAt.After(res[j].UploadedAt)
	})
	return res, nil
}

func (r *DocumentRepo) FindLatestCVByUser(_ context.Context, userID string) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *models.Document
	for _, row := range r.rows {
		if row.UserID != userID || row.Type != models.TypeCV {
			continue
		}
		if latest == nil || row.UploadedAt.After(latest.UploadedAt) {
			row := row
			latest = &row
		}
	}
	if latest == nil {
		return nil, utils.ErrNotFound
	}
	return latest, nil
}

func (r *DocumentRepo) FindByIDAndUser(_ context.Context, id, userID string) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok || row.UserID != userID {
		return nil, utils.ErrNotFound
	}
	return &row, nil
}

func (r *DocumentRepo) Insert(_ context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[doc.ID] = *doc
	return nil
}

func (r *DocumentRepo) DeleteAllCVByUser(_ context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var keys []string
	for id, row := range r.rows {
		if row.UserID == userID && row.Type == models.TypeCV {
			keys = append(keys, row.FileURL)
			delete(r.rows, id)
		}
	}
	return keys, nil
}

func (r *DocumentRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}
