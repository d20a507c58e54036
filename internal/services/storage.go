package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/chachabrian/covoiturage-backend/internal/config"
)

// Storage keeps uploaded photos either in S3 or on local disk.
type Storage struct {
	uploader  *s3manager.Uploader
	bucket    string
	region    string
	uploadDir string
	baseURL   string
}

// NewStorage initializes either S3 or local storage based on configuration
func NewStorage(cfg config.StorageConfig) (*Storage, error) {
	if cfg.UseS3() {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.AWSRegion),
			Credentials: credentials.NewStaticCredentials(
				cfg.AWSAccessKey,
				cfg.AWSSecretKey,
				"",
			),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}

		log.Printf("AWS S3 storage initialized (bucket %s)", cfg.S3Bucket)
		return &Storage{
			uploader: s3manager.NewUploader(sess),
			bucket:   cfg.S3Bucket,
			region:   cfg.AWSRegion,
		}, nil
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	log.Printf("AWS S3 not configured, storing uploads under %s", cfg.UploadDir)
	return &Storage{
		uploadDir: cfg.UploadDir,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// IsUsingS3 returns true if S3 storage is being used
func (s *Storage) IsUsingS3() bool {
	return s.uploader != nil
}

// LocalDir is the directory served at /uploads when S3 is not in use.
func (s *Storage) LocalDir() string {
	return s.uploadDir
}

// Upload stores file under folder and returns the reference to keep in a
// photo field.
func (s *Storage) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	fileName := fmt.Sprintf("%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(file.Filename)))

	if s.IsUsingS3() {
		return s.uploadToS3(ctx, src, folder+"/"+fileName)
	}
	return s.uploadLocally(src, folder, fileName)
}

func (s *Storage) uploadToS3(ctx context.Context, src io.Reader, key string) (string, error) {
	buffer := bytes.NewBuffer(nil)
	if _, err := io.Copy(buffer, src); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buffer.Bytes()),
		ContentType: aws.String(http.DetectContentType(buffer.Bytes())),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *Storage) uploadLocally(src io.Reader, folder, fileName string) (string, error) {
	folderPath := filepath.Join(s.uploadDir, folder)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(folderPath, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(folder, fileName)), nil
}

// URL returns the public address of a stored reference. S3 references are
// already complete.
func (s *Storage) URL(reference string) string {
	if s.IsUsingS3() || strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://") {
		return reference
	}
	return fmt.Sprintf("%s/uploads/%s", s.baseURL, filepath.ToSlash(reference))
}
