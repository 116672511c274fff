package store

import (
	"context"
	"fmt"

	"facilitywatch/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLikes stores flags in the likes table. The unique (username, report_id)
// index makes MarkLiked idempotent under concurrent clicks.
type GormLikes struct {
	db *gorm.DB
}

func NewGormLikes(db *gorm.DB) *GormLikes {
	return &GormLikes{db: db}
}

func (g *GormLikes) HasLiked(ctx context.Context, username string, reportID int) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&models.Like{}).
		Where("username = ? AND report_id = ?", username, reportID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("query like: %w", err)
	}
	return count > 0, nil
}

func (g *GormLikes) MarkLiked(ctx context.Context, username string, reportID int) (bool, error) {
	like := models.Like{Username: username, ReportID: reportID}
	result := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if result.Error != nil {
		return false, fmt.Errorf("insert like: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (g *GormLikes) Liked(ctx context.Context, username string, reportIDs []int) (map[int]bool, error) {
	out := make(map[int]bool)
	if len(reportIDs) == 0 {
		return out, nil
	}

	var ids []int
	err := g.db.WithContext(ctx).Model(&models.Like{}).
		Where("username = ? AND report_id IN ?", username, reportIDs).
		Pluck("report_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("query likes: %w", err)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (g *GormLikes) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
