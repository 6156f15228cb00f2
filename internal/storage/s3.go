package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/config"
	"go.uber.org/zap"
)

// Upload kinds scope object keys by what the image belongs to.
const (
	KindCampaign = "campaigns"
	KindEvent    = "events"
	KindProfile  = "profiles"
	KindRequest  = "partnership-requests"
)

func IsValidKind(kind string) bool {
	switch kind {
	case KindCampaign, KindEvent, KindProfile, KindRequest:
		return true
	}
	return false
}

// PresignedUpload lets the client PUT the file straight to object storage.
type PresignedUpload struct {
	UploadURL string    `json:"upload_url"`
	FileKey   string    `json:"file_key"`
	FileURL   string    `json:"file_url"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Uploader issues presigned S3 PUT URLs for campaign/event/profile images.
type Uploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	cfg     *config.Config
	log     *zap.Logger
}

func NewUploader(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	return &Uploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		cfg:     cfg,
		log:     log,
	}, nil
}

// PresignUpload generates a presigned PUT for one object. The key is
// kind/userID/<uuid><ext> so uploads never collide and are traceable to their
// owner.
func (u *Uploader) PresignUpload(ctx context.Context, userID uuid.UUID, kind, filename, contentType string) (*PresignedUpload, error) {
	if u.cfg.S3Bucket == "" {
		return nil, fmt.Errorf("image storage is not configured")
	}
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("invalid upload kind %q", kind)
	}
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ext := strings.ToLower(path.Ext(filename))
	key := path.Join(kind, userID.String(), uuid.New().String()+ext)

	expiry := u.cfg.UploadExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = expiry
	})
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileKey:   key,
		FileURL:   u.fileURL(key),
		Method:    req.Method,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (u *Uploader) fileURL(key string) string {
	base := strings.TrimRight(u.cfg.S3BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(u.cfg.S3Endpoint, "/")
	}
	if u.cfg.S3UsePathStyle {
		return base + "/" + u.cfg.S3Bucket + "/" + key
	}
	return base + "/" + key
}
