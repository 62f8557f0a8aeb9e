package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/projetflow/api/internal/infra/blob"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/repo"
	"github.com/projetflow/api/internal/pkg/metrics"
	"go.uber.org/zap"
)

type AttachmentService interface {
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Attachment, error)
	Upload(ctx context.Context, taskID uuid.UUID, files []*multipart.FileHeader, description string) ([]*model.Attachment, error)
	// Download returns blob.ErrObjectNotFound when the row exists but the file is gone.
	Download(ctx context.Context, id uuid.UUID) (*Download, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Download struct {
	Attachment *model.Attachment
	Body       io.ReadCloser
	Info       *blob.ObjectInfo
}

type attachmentService struct {
	r      repo.AttachmentRepo
	tasks  repo.TaskRepo
	store  blob.Storage
	prefix string
	log    *zap.Logger
}

func NewAttachmentService(r repo.AttachmentRepo, tasks repo.TaskRepo, store blob.Storage, prefix string, log *zap.Logger) AttachmentService {
	return &attachmentService{r: r, tasks: tasks, store: store, prefix: prefix, log: log}
}

func (s *attachmentService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*model.Attachment, error) {
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return nil, err
	}
	return s.r.ListByTask(ctx, taskID)
}

func (s *attachmentService) Upload(ctx context.Context, taskID uuid.UUID, files []*multipart.FileHeader, description string) ([]*model.Attachment, error) {
	if len(files) == 0 {
		return nil, fieldErr("fichiers", "Au moins un fichier est requis.")
	}
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return nil, err
	}

	items := make([]*model.Attachment, 0, len(files))
	for _, fh := range files {
		meta, err := blob.UploadFormFile(ctx, s.store, s.prefix, fh)
		if err != nil {
			s.cleanup(ctx, items)
			return nil, fmt.Errorf("store %s: %w", fh.Filename, err)
		}
		items = append(items, &model.Attachment{
			TaskID:      taskID,
			FileKey:     meta.Key,
			Filename:    meta.Filename,
			MIME:        meta.MIME,
			SizeB:       meta.SizeB,
			SHA256:      meta.SHA256,
			Description: description,
		})
	}

	if err := s.r.CreateBatch(ctx, items); err != nil {
		s.cleanup(ctx, items)
		return nil, err
	}
	for _, a := range items {
		metrics.UploadedBytesTotal.WithLabelValues("attachment").Add(float64(a.SizeB))
	}
	return items, nil
}

func (s *attachmentService) Download(ctx context.Context, id uuid.UUID) (*Download, error) {
	a, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.store.Exists(ctx, a.FileKey)
	if err != nil {
		return nil, fmt.Errorf("stat file %s: %w", a.FileKey, err)
	}
	if !ok {
		s.log.Sugar().Warnw("attachment file missing", "attachment_id", a.ID, "key", a.FileKey)
		return nil, blob.ErrObjectNotFound
	}
	body, info, err := s.store.Open(ctx, a.FileKey)
	if err != nil {
		return nil, err
	}
	return &Download{Attachment: a, Body: body, Info: info}, nil
}

// Delete removes the file, when present, before the row deletion commits.
// A failed removal keeps the row.
func (s *attachmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.DeleteWith(ctx, id, func(a *model.Attachment) error {
		ok, err := s.store.Exists(ctx, a.FileKey)
		if err != nil {
			return fmt.Errorf("stat file %s: %w", a.FileKey, err)
		}
		if !ok {
			return nil
		}
		if err := s.store.Delete(ctx, a.FileKey); err != nil {
			return fmt.Errorf("remove file %s: %w", a.FileKey, err)
		}
		return nil
	})
}

func (s *attachmentService) cleanup(ctx context.Context, items []*model.Attachment) {
	for _, a := range items {
		if err := s.store.Delete(ctx, a.FileKey); err != nil {
			s.log.Sugar().Warnw("orphan attachment left in storage", "key", a.FileKey, "err", err)
		}
	}
}
