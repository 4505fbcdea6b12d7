package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"foodshare/internal/utils"
	"github.com/gofiber/fiber/v2/log"
)

type (
	// Uploader persists an uploaded image and returns the path stored on the
	// food item record (relative to the public directory for local storage,
	// a full object URL for S3).
	Uploader interface {
		UploadFile(file *multipart.FileHeader) (string, error)
		DeleteFile(path string) error
	}

	localStorage struct {
		baseDir string
	}
)

const uploadSubDir = "images/uploaded_images"

// NewUploader picks the storage backend: S3 when a bucket is configured,
// otherwise the local public directory.
func NewUploader() Uploader {
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		return NewAwsS3()
	}
	return NewLocalStorage(utils.GetConfig("UPLOAD_DIR"))
}

func NewLocalStorage(baseDir string) Uploader {
	if baseDir == "" {
		baseDir = "public"
	}
	return &localStorage{baseDir: baseDir}
}

func (s *localStorage) UploadFile(file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(s.baseDir, uploadSubDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	// Timestamp prefix keeps same-named uploads from colliding.
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", err
	}

	return uploadSubDir + "/" + filename, nil
}

func (s *localStorage) DeleteFile(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil && !os.IsNotExist(err) {
		log.Errorf("error deleting uploaded file %s: %v", path, err)
		return err
	}
	return nil
}
