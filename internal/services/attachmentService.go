package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"schoolpress/internal/httperr"
	"schoolpress/internal/models"
	"schoolpress/internal/repository"
	"schoolpress/internal/storage"
)

// DownloadURLValidity is how long a presigned attachment link stays usable.
const DownloadURLValidity = 15 * time.Minute

// AttachmentService stores article attachments in object storage and keeps
// the object key on the article document.
type AttachmentService struct {
	articles repository.ArticleRepository
	store    *storage.Storage
}

func NewAttachmentService(articles repository.ArticleRepository, store *storage.Storage) *AttachmentService {
	return &AttachmentService{articles: articles, store: store}
}

// Attach uploads the file and records it on the article. A re-upload
// replaces the recorded attachment; the previous object is left in the
// bucket under its own key.
func (s *AttachmentService) Attach(ctx context.Context, id string, file *multipart.FileHeader) (*models.Article, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.ErrInvalidID
	}
	if _, err := s.articles.FindByID(ctx, objID); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	key := fmt.Sprintf("%s_%s", objID.Hex(), file.Filename)
	if err := s.store.Put(ctx, key, src, file.Size, file.Header.Get("Content-Type")); err != nil {
		return nil, err
	}

	return s.articles.UpdateFields(ctx, objID, bson.M{
		"attachment_key":  key,
		"attachment_name": file.Filename,
		"updated_at":      time.Now(),
	})
}

// DownloadURL returns a presigned link for the article's attachment.
func (s *AttachmentService) DownloadURL(ctx context.Context, id string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", httperr.ErrInvalidID
	}

	article, err := s.articles.FindByID(ctx, objID)
	if err != nil {
		return "", err
	}
	if article.AttachmentKey == "" {
		return "", httperr.ErrNoAttachment
	}

	return s.store.PresignedGet(ctx, article.AttachmentKey, DownloadURLValidity)
}
