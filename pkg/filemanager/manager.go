package filemanager

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"go.uber.org/fx"

	"vershash/pkg/config"
	"vershash/pkg/logger"
)

var Module = fx.Provide(New)

type File interface {
	Upload(ctx context.Context, uploadFile io.Reader, dir string, filename string) error
	Remove(ctx context.Context, dir, filename string) error
	PublicURL(dir, filename string) string
}

type Params struct {
	fx.In

	Logger logger.Logger
	Config config.IConfig
}

type file struct {
	logger logger.Logger
	config config.IConfig

	awsS3ManagerUploader *s3manager.Uploader
	awsS3                *s3.S3
	bucket               string
	region               string
}

func New(p Params) File {
	f := &file{
		logger: p.Logger,
		config: p.Config,
		bucket: p.Config.GetString("aws_s3_bucket"),
		region: p.Config.GetString("aws_region"),
	}

	crd := credentials.NewStaticCredentials(
		f.config.GetString("aws_access_key_id"),
		f.config.GetString("aws_secret_access_key"),
		"",
	)

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config: aws.Config{Region: aws.String(f.region), Credentials: crd},
	}))
	f.awsS3ManagerUploader = s3manager.NewUploader(sess)
	f.awsS3 = s3.New(sess)

	return f
}

func (f *file) Upload(ctx context.Context, uploadFile io.Reader, dir string, filename string) error {
	_, err := f.awsS3ManagerUploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(dir + "/" + filename),
		Body:   uploadFile,
	})
	if err != nil {
		return fmt.Errorf("s3 upload: %w", err)
	}
	return nil
}

func (f *file) Remove(ctx context.Context, dir, filename string) error {
	_, err := f.awsS3.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(dir + "/" + filename),
	})
	if err != nil {
		return fmt.Errorf("s3 delete: %w", err)
	}
	return nil
}

func (f *file) PublicURL(dir, filename string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s/%s", f.bucket, f.region, dir, filename)
}
