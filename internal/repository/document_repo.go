package repository

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *model.Document) error
	FindByID(ctx context.Context, id uint) (*model.Document, error)
	Delete(ctx context.Context, id uint) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *model.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) FindByID(ctx context.Context, id uint) (*model.Document, error) {
	var document model.Document
	if err := r.db.WithContext(ctx).First(&document, id).Error; err != nil {
		return nil, err
	}

	return &document, nil
}

func (r *documentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Document{}, id).Error
}
