package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sinclqir/jobazur-document-service/internal/models"
	pgrepo "github.com/Sinclqir/jobazur-document-service/internal/repositories/postgres"
	"github.com/Sinclqir/jobazur-document-service/internal/storage"
	"github.com/Sinclqir/jobazur-document-service/internal/utils"
)

const (
	// MaxUploadSize is the per-file limit.
	MaxUploadSize = 5 << 20 // 5 MiB

	// SignedURLTTL is how long a download link stays valid.
	SignedURLTTL = 60 * time.Second

	pdfMimeType = "application/pdf"
)

// UploadInput carries one multipart upload. CallerID comes from the resolved
// identity and wins over the client-supplied BodyUserID when both are set.
type UploadInput struct {
	CallerID   string
	BodyUserID string
	Title      string
	Type       string
	MimeType   string
	Size       int64
	File       io.Reader
}

type DocumentService interface {
	ListForUser(ctx context.Context, callerID, userID string) ([]models.Document, error)
	GetCV(ctx context.Context, callerID, userID string) (*models.Document, error)
	Upload(ctx context.Context, in UploadInput) (*models.Document, error)
	Delete(ctx context.Context, id, callerID, queryUserID string) error
	Download(ctx context.Context, id, callerID, queryUserID string) (string, error)
}

type documentService struct {
	repo  pgrepo.DocumentRepository
	store storage.ObjectStore
	log   *logrus.Logger
}

func NewDocumentService(repo pgrepo.DocumentRepository, store storage.ObjectStore, log *logrus.Logger) DocumentService {
	return &documentService{repo: repo, store: store, log: log}
}

func (s *documentService) ListForUser(ctx context.Context, callerID, userID string) ([]models.Document, error) {
	const op = "DocumentService.ListForUser"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidInput, op, "userId is required", nil)
	}
	// Same response as a missing document so other users' listings are not
	// distinguishable from empty ones.
	if callerID != userID {
		return nil, utils.E(utils.CodeNotFound, op, "Document not found", nil)
	}

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodePersistenceUnavailable, op, "Internal server error", err)
	}
	return rows, nil
}

func (s *documentService) GetCV(ctx context.Context, callerID, userID string) (*models.Document, error) {
	const op = "DocumentService.GetCV"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidInput, op, "userId is required", nil)
	}
	if callerID != userID {
		return nil, utils.E(utils.CodeNotFound, op, "No CV found for this user", nil)
	}

	cv, err := s.repo.FindLatestCVByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "No CV found for this user", err)
		}
		return nil, utils.E(utils.CodePersistenceUnavailable, op, "Internal server error", err)
	}
	return cv, nil
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*models.Document, error) {
	const op = "DocumentService.Upload"

	if in.MimeType != pdfMimeType {
		return nil, utils.E(utils.CodeInvalidInput, op, "Only PDF files are allowed", nil)
	}
	if in.Size > MaxUploadSize {
		return nil, utils.E(utils.CodePayloadTooLarge, op, "File too large (max 5MB)", nil)
	}

	userID := effectiveUser(in.CallerID, in.BodyUserID)
	if userID == "" || in.Title == "" {
		return nil, utils.E(utils.CodeInvalidInput, op, "userId and title are required", nil)
	}

	docType := in.Type
	if docType == "" {
		docType = models.TypeCV
	}

	key := objectKey(userID)
	if err := s.store.Put(ctx, key, in.File, in.Size, pdfMimeType); err != nil {
		return nil, utils.E(utils.CodeStorageUnavailable, op, "Internal server error", err)
	}

	// A user has at most one CV: replacing it drops the old rows and,
	// best effort, their blobs.
	if docType == models.TypeCV {
		oldKeys, err := s.repo.DeleteAllCVByUser(ctx, userID)
		if err != nil {
			s.cleanupBlob(ctx, op, key)
			return nil, utils.E(utils.CodePersistenceUnavailable, op, "Internal server error", err)
		}
		for _, old := range oldKeys {
			s.cleanupBlob(ctx, op, old)
		}
	}

	doc := &models.Document{
		ID:         uuid.NewString(),
		Title:      in.Title,
		FileURL:    key,
		Type:       docType,
		FileSize:   in.Size,
		MimeType:   pdfMimeType,
		UploadedAt: time.Now().UTC(),
		UserID:     userID,
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		s.cleanupBlob(ctx, op, key)
		return nil, utils.E(utils.CodePersistenceUnavailable, op, "Internal server error", err)
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id, callerID, queryUserID string) error {
	const op = "DocumentService.Delete"

	userID := effectiveUser(callerID, queryUserID)
	if id == "" || userID == "" {
		return utils.E(utils.CodeInvalidInput, op, "id and userId are required", nil)
	}

	doc, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Document not found", err)
		}
		return utils.E(utils.CodePersistenceUnavailable, op, "Internal server error", err)
	}

	s.cleanupBlob(ctx, op, doc.FileURL)

	if err := s.repo.DeleteByID(ctx, doc.ID); err != nil {
		return utils.E(utils.CodePersistenceUnavailable, op, "Internal server error", err)
	}
	return nil
}

func (s *documentService) Download(ctx context.Context, id, callerID, queryUserID string) (string, error) {
	const op = "DocumentService.Download"

	userID := effectiveUser(callerID, queryUserID)
	if id == "" || userID == "" {
		return "", utils.E(utils.CodeInvalidInput, op, "id and userId are required", nil)
	}

	doc, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "Document not found", err)
		}
		return "", utils.E(utils.CodePersistenceUnavailable, op, "Internal server error", err)
	}

	url, err := s.store.SignedGetURL(ctx, doc.FileURL, SignedURLTTL)
	if err != nil {
		return "", utils.E(utils.CodeStorageUnavailable, op, "Internal server error", err)
	}
	return url, nil
}

// cleanupBlob removes a blob without failing the request; a leaked blob costs
// storage, not correctness.
func (s *documentService) cleanupBlob(ctx context.Context, op, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.WithFields(logrus.Fields{
			"op":  op,
			"key": key,
		}).WithError(err).Warn("orphaned blob left in object store")
	}
}

// effectiveUser prefers the authenticated identity over any client-supplied id.
func effectiveUser(callerID, fallback string) string {
	if callerID != "" {
		return callerID
	}
	return fallback
}

// objectKey names blobs documents/{userId}/{uuid}-{millis}.pdf so repeated
// uploads never collide and storage stays segmented by owner.
func objectKey(userID string) string {
	return fmt.Sprintf("documents/%s/%s-%d.pdf", userID, uuid.NewString(), time.Now().UnixMilli())
}
