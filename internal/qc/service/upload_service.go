package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// UploadedFile 上传结果
type UploadedFile struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// UploadService 证据照片上传
// 配置了MinIO时存对象存储，否则落本地uploads目录
type UploadService struct {
	minioClient *minio.Client
	bucketName  string
	uploadDir   string
	publicURL   string
	logger      *zap.Logger
}

func NewUploadService(minioClient *minio.Client, bucketName, uploadDir, publicURL string, logger *zap.Logger) *UploadService {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return &UploadService{
		minioClient: minioClient,
		bucketName:  bucketName,
		uploadDir:   uploadDir,
		publicURL:   publicURL,
		logger:      logger,
	}
}

// Upload 保存单个证据照片，返回可写入清单photo字段的URL
func (s *UploadService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadedFile, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()

	id := uuid.New().String()[:8]
	objectName := fmt.Sprintf("evidence/%s/%s%s",
		time.Now().Format("2006/01"), id, filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	if s.minioClient != nil {
		_, err = s.minioClient.PutObject(ctx, s.bucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			return nil, fmt.Errorf("upload file: %w", err)
		}
	} else {
		localPath := filepath.Join(s.uploadDir, filepath.FromSlash(objectName))
		if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
		dst, err := os.Create(localPath)
		if err != nil {
			return nil, fmt.Errorf("create file: %w", err)
		}
		defer dst.Close()
		if _, err := io.Copy(dst, file); err != nil {
			return nil, fmt.Errorf("save file: %w", err)
		}
	}

	url := "/" + objectName
	if s.publicURL != "" {
		url = s.publicURL + "/" + objectName
	}

	s.logger.Info("证据照片已上传",
		zap.String("object", objectName),
		zap.Int64("size", fileHeader.Size))

	return &UploadedFile{
		ID:          id,
		URL:         url,
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: contentType,
	}, nil
}
