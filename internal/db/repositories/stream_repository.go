package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "youthstream/palco/internal/models/gorm"

	"gorm.io/gorm"
)

type StreamRepositoryGORM struct {
	db *gorm.DB
}

func NewStreamRepositoryGORM(db *gorm.DB) *StreamRepositoryGORM {
	return &StreamRepositoryGORM{db: db}
}

// List returns the full catalog, newest first. Listing order is what
// the presentation filter preserves.
func (r *StreamRepositoryGORM) List(ctx context.Context) ([]gormModels.Stream, error) {
	var streams []gormModels.Stream

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&streams).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list streams: %w", err)
	}
	return streams, nil
}

func (r *StreamRepositoryGORM) GetByID(ctx context.Context, id string) (*gormModels.Stream, error) {
	var stream gormModels.Stream

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stream).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch stream: %w", err)
	}
	return &stream, nil
}

// GetByIDs fetches the subset of ids that exist, keeping no
// particular order.
func (r *StreamRepositoryGORM) GetByIDs(ctx context.Context, ids []string) ([]gormModels.Stream, error) {
	var streams []gormModels.Stream

	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&streams).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch streams: %w", err)
	}
	return streams, nil
}

func (r *StreamRepositoryGORM) Create(ctx context.Context, stream *gormModels.Stream) error {
	if err := r.db.WithContext(ctx).Create(stream).Error; err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}
	return nil
}

func (r *StreamRepositoryGORM) Update(ctx context.Context, stream *gormModels.Stream) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Stream{}).
		Where("id = ?", stream.ID).
		Updates(map[string]any{
			"title":        stream.Title,
			"description":  stream.Description,
			"source_url":   stream.SourceURL,
			"thumbnail":    stream.Thumbnail,
			"category":     stream.Category,
			"is_live":      stream.IsLive,
			"access_level": stream.AccessLevel,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update stream: %w", err)
	}
	return nil
}

// Delete removes the stream and any grants pointing at it. In-flight
// viewers lose access on their next check.
func (r *StreamRepositoryGORM) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stream_id = ?", id).Delete(&gormModels.StreamGrant{}).Error; err != nil {
			return fmt.Errorf("failed to delete stream grants: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&gormModels.Stream{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete stream: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
