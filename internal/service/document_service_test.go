package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
)

func TestDocumentRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db))
	ctx := context.Background()

	content := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff, 0x10}

	uploaded, err := svc.Upload(ctx, "lab-report.pdf", content)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if uploaded.Name != "lab-report" || uploaded.Extension != "pdf" {
		t.Fatalf("unexpected split: %+v", uploaded)
	}

	var stored model.Document
	if err := db.First(&stored, uploaded.ID).Error; err != nil {
		t.Fatalf("load document: %v", err)
	}
	if _, err := base64.StdEncoding.DecodeString(stored.Content); err != nil {
		t.Fatalf("stored content is not base64: %v", err)
	}

	downloaded, err := svc.Download(ctx, uploaded.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if downloaded.FileName != "lab-report.pdf" {
		t.Fatalf("expected original file name back, got %q", downloaded.FileName)
	}
	if !bytes.Equal(downloaded.Content, content) {
		t.Fatalf("content mangled: %v != %v", downloaded.Content, content)
	}
}

func TestUploadNoExtension(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db))

	uploaded, err := svc.Upload(context.Background(), "README", []byte("hello"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if uploaded.Name != "README" || uploaded.Extension != "" {
		t.Fatalf("unexpected split: %+v", uploaded)
	}
}

func TestUploadEmptyFile(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db))

	_, err := svc.Upload(context.Background(), "empty.txt", nil)
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Fields["file"] == "" {
		t.Fatalf("expected file field error, got %v", err)
	}
}

func TestDownloadMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(repository.NewDocumentRepository(db))

	_, err := svc.Download(context.Background(), 9999)
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}
