package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
)

// DownloadedDocument is a decoded blob ready to stream back to the client.
type DownloadedDocument struct {
	FileName string
	Content  []byte
}

type DocumentService interface {
	Upload(ctx context.Context, fileName string, content []byte) (*dto.DocumentResponse, error)
	Download(ctx context.Context, id uint) (*DownloadedDocument, error)
}

type documentService struct {
	repo repository.DocumentRepository
}

func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo}
}

// Upload stores the blob inline as base64 text, splitting the extension off
// the original file name.
func (s *documentService) Upload(ctx context.Context, fileName string, content []byte) (*dto.DocumentResponse, error) {
	if len(content) == 0 {
		return nil, apperror.ValidationField("file", "file is empty")
	}

	name := fileName
	extension := ""
	if idx := strings.LastIndex(fileName, "."); idx > 0 {
		name = fileName[:idx]
		extension = fileName[idx+1:]
	}

	document := &model.Document{
		Name:      name,
		Extension: extension,
		Content:   base64.StdEncoding.EncodeToString(content),
	}

	if err := s.repo.Create(ctx, document); err != nil {
		return nil, apperror.Database("upload document", err)
	}

	return &dto.DocumentResponse{
		ID:        document.ID,
		Name:      document.Name,
		Extension: document.Extension,
	}, nil
}

func (s *documentService) Download(ctx context.Context, id uint) (*DownloadedDocument, error) {
	document, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("document", err)
	}

	content, err := base64.StdEncoding.DecodeString(document.Content)
	if err != nil {
		return nil, apperror.Database("decode document", err)
	}

	fileName := document.Name
	if document.Extension != "" {
		fileName += "." + document.Extension
	}

	return &DownloadedDocument{FileName: fileName, Content: content}, nil
}
