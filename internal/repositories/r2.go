package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rohits-web03/postdev/internal/config"
	"github.com/rohits-web03/postdev/internal/models"
)

// R2Archiver keeps a JSON snapshot of every deleted post in an R2 bucket.
type R2Archiver struct {
	client *s3.Client
	bucket string
}

type archivedPost struct {
	models.Post
	Username   string    `json:"username"`
	ArchivedAt time.Time `json:"archivedAt"`
}

// NewR2Archiver builds an S3 client against the account's R2 endpoint, or
// against cfg.Endpoint when set.
func NewR2Archiver(cfg config.R2Config) *R2Archiver {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized R2 client for bucket", cfg.BucketName)

	return &R2Archiver{client: client, bucket: cfg.BucketName}
}

// Archive uploads post under posts/<user_id>/<post_id>.json.
func (a *R2Archiver) Archive(ctx context.Context, post *models.Post) error {
	body, err := json.Marshal(archivedPost{
		Post:       *post,
		Username:   post.User.Username,
		ArchivedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode post %d: %w", post.ID, err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(ArchiveKey(post)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload post %d: %w", post.ID, err)
	}
	return nil
}

func ArchiveKey(post *models.Post) string {
	return fmt.Sprintf("posts/%d/%d.json", post.UserID, post.ID)
}
