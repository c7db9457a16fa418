package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/dropshare/internal/client/selection"
)

// DefaultLinkExpiry matches the sharing service's 24 hour retention.
const DefaultLinkExpiry = 24 * time.Hour

var loadDefaultAWSConfig = config.LoadDefaultConfig

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type objectPresigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Settings configures S3Uploader. BaseEndpoint may point at any
// S3-compatible service (MinIO etc.); path-style addressing is used then.
type S3Settings struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Prefix       string
	LinkExpiry   time.Duration
}

// S3Uploader stores each attempt as one object and shares it through a
// presigned GET link.
type S3Uploader struct {
	putter    objectPutter
	presigner objectPresigner
	bucket    string
	prefix    string
	expiry    time.Duration
	newID     func() string
}

func NewS3Uploader(ctx context.Context, st S3Settings) (*S3Uploader, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(st.Region)}
	if st.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(st.AccessKey, st.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	c := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if st.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(st.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(c, s3.NewPresignClient(c), st), nil
}

func newS3Uploader(p objectPutter, ps objectPresigner, st S3Settings) *S3Uploader {
	expiry := st.LinkExpiry
	if expiry <= 0 {
		expiry = DefaultLinkExpiry
	}
	return &S3Uploader{
		putter:    p,
		presigner: ps,
		bucket:    st.Bucket,
		prefix:    strings.Trim(st.Prefix, "/"),
		expiry:    expiry,
		newID:     uuid.NewString,
	}
}

// Upload stores a single plain file as-is; several files or any folder
// upload are bundled into one zip archive first.
func (u *S3Uploader) Upload(ctx context.Context, sel selection.Selection) (*Result, error) {
	name, contentType, body, size, err := u.payload(sel)
	if err != nil {
		return nil, readError(err)
	}
	defer body.Close()

	key := path.Join(u.prefix, u.newID(), name)

	_, err = u.putter.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(u.bucket),
		Key:                aws.String(key),
		Body:               body,
		ContentLength:      aws.Int64(size),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(contentDisposition(name)),
	})
	if err != nil {
		return nil, s3Error(err)
	}

	signed, err := u.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(u.expiry))
	if err != nil {
		return nil, &UploadError{Kind: ErrServer, Message: "could not sign the download link", Err: err}
	}

	qr, err := qrDataURL(signed.URL)
	if err != nil {
		return nil, &UploadError{Kind: ErrMalformedResponse, Message: "could not render the QR code", Err: err}
	}

	return &Result{QRURL: qr, FileURL: signed.URL}, nil
}

// payload returns the object name, its content type, body and length.
func (u *S3Uploader) payload(sel selection.Selection) (string, string, io.ReadCloser, int64, error) {
	if !sel.IsFolder && sel.Len() == 1 {
		f := sel.Files[0]
		rc, err := f.Open()
		if err != nil {
			return "", "", nil, 0, err
		}
		ct := mime.TypeByExtension(path.Ext(f.Name()))
		if ct == "" {
			ct = "application/octet-stream"
		}
		return f.Name(), ct, rc, f.Size(), nil
	}

	buf, err := bundle(sel)
	if err != nil {
		return "", "", nil, 0, err
	}
	return archiveName(sel), "application/zip", io.NopCloser(bytes.NewReader(buf.Bytes())), int64(buf.Len()), nil
}

// contentDisposition marks the object as a download named name. Non-ASCII
// names use the RFC 2231 extended form.
func contentDisposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

func s3Error(err error) *UploadError {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.ErrorMessage()
		if msg == "" {
			msg = apiErr.ErrorCode()
		}
		return &UploadError{Kind: ErrServer, Message: msg, Err: err}
	}
	return transportError(err)
}
