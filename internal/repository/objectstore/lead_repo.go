// Package objectstore archives leads as JSON objects in an S3-compatible
// bucket, for deployments without a database.
package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"portfolio-backend/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of *s3.Client the archive uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type leadRepo struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewLeadRepository stores each lead at <prefix>YYYY/MM/DD/<id>.json.
func NewLeadRepository(client PutObjectAPI, bucket, prefix string) domain.LeadRepository {
	return &leadRepo{client: client, bucket: bucket, prefix: prefix}
}

// key returns the object key for lead.
func (r *leadRepo) key(lead *domain.Lead) string {
	return fmt.Sprintf("%s%s/%s.json", r.prefix, lead.CreatedAt.UTC().Format("2006/01/02"), lead.ID)
}

func (r *leadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead %s: %w", lead.ID, err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key(lead)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put lead %s: %w", lead.ID, err)
	}
	return nil
}
