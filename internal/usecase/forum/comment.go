package forum

import (
	"context"
	"log/slog"
	"time"

	"qa-forum/internal/common/pagination"
	"qa-forum/internal/domain/entity"
	"qa-forum/internal/observability/logging"
	"qa-forum/internal/observability/metrics"
)

// CreateComment adds a comment to the question or answer named by p.
func (s *Service) CreateComment(ctx context.Context, p ParentPath, in BodyInput) (Ref, error) {
	parent, ref, err := s.resolveParent(ctx, p)
	if err != nil {
		return Ref{}, err
	}

	c := &entity.Comment{
		Parent: parent,
		Body:   in.Body,
		Date:   s.now(),
	}
	if err := c.Validate(); err != nil {
		return Ref{}, err
	}

	if err := s.Comments.Create(ctx, c); err != nil {
		return Ref{}, storageErr("create comment", err)
	}
	metrics.RecordCreated(metrics.KindComment)
	ref.CommentID = c.ID
	return ref, nil
}

// ListComments returns the parent's comments, newest first, windowed by the range.
// A missing parent is reported before an invalid range.
func (s *Service) ListComments(ctx context.Context, p ParentPath, query pagination.Query) ([]CommentView, error) {
	start := time.Now()
	parent, _, err := s.resolveParent(ctx, p)
	if err != nil {
		return nil, err
	}
	r, err := parseRange(collectionComments, query)
	if err != nil {
		return nil, err
	}

	comments, err := s.Comments.ListByParent(ctx, parent)
	if err != nil {
		return nil, storageErr("list comments", err)
	}
	newestFirst(comments, func(c *entity.Comment) time.Time { return c.Date })

	window := pagination.Window(comments, r)
	views := make([]CommentView, 0, len(window))
	for _, c := range window {
		views = append(views, encodeComment(c))
	}
	pagination.RecordReturned(collectionComments, len(views))
	pagination.LogResponse(loggerFrom(ctx), collectionComments, r, len(views), time.Since(start))
	return views, nil
}

// GetComment returns the comment if it belongs to the parent named by p.
func (s *Service) GetComment(ctx context.Context, p ParentPath, commentID string) (CommentView, error) {
	c, err := s.resolveComment(ctx, p, commentID)
	if err != nil {
		return CommentView{}, err
	}
	return encodeComment(c), nil
}

// UpdateComment applies the supplied body and saves the comment.
func (s *Service) UpdateComment(ctx context.Context, p ParentPath, commentID string, patch BodyPatch) error {
	c, err := s.resolveComment(ctx, p, commentID)
	if err != nil {
		return err
	}

	if supplied(patch.Body) {
		c.Body = *patch.Body
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := s.Comments.Update(ctx, c); err != nil {
		return storageErr("update comment", err)
	}
	return nil
}

// DeleteComment removes a single comment.
func (s *Service) DeleteComment(ctx context.Context, p ParentPath, commentID string) error {
	c, err := s.resolveComment(ctx, p, commentID)
	if err != nil {
		return err
	}
	if err := s.Comments.Delete(ctx, c.ID); err != nil {
		return storageErr("remove comment", err)
	}
	metrics.RecordCascadeDeleted(metrics.KindComment, 1)
	return nil
}

func loggerFrom(ctx context.Context) *slog.Logger {
	return logging.WithRequestID(ctx, logging.FromContext(ctx))
}
