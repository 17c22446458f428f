package dirinfo

import (
	"context"
	"errors"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// maximum length of an S3 object key in bytes
const maxS3KeyLength = 1024

// minio error codes
const (
	s3CodeAccessDenied = "AccessDenied"
	s3CodeKeyTooLong   = "KeyTooLongError"
)

var errEmptyBucketName = errors.New("empty bucket name")

// S3 implements Resolver for the key namespace of an S3 bucket.
// Directories are key prefixes, the root is "/". It never modifies the bucket
type S3 struct {
	endpoint   string
	region     string
	bucketName string
	probe      bool
	logger     logrus.FieldLogger

	minioClient *minio.Client
}

// NewS3 returns a pointer to a new S3 object. It does not contact the server
func NewS3(p S3Params) (s3 *S3, err error) {
	p.applyDefaults()
	if len(p.BucketName) == 0 {
		return nil, newPathError(ErrInvalidArgument, p.BucketName, errEmptyBucketName)
	}
	s3 = &S3{
		endpoint:   p.Endpoint,
		region:     p.Region,
		bucketName: p.BucketName,
		probe:      p.Probe,
		logger:     p.Logger,
	}

	if s3.minioClient, err = minio.New(s3.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(p.AccessKey, p.SecretKey, ""),
		Secure: p.UseSSL,
		Region: s3.region,
	}); err != nil {
		return nil, err
	}
	return
}

// Logger provides access to a logger
func (s *S3) Logger() logrus.FieldLogger { return s.logger }

// MinioClient provides access to Minio Client, use mainly for tests
func (s *S3) MinioClient() *minio.Client { return s.minioClient }

var driveLetterRegexp = regexp.MustCompile(`^[A-Za-z?]:`)

func (s *S3) nameToDir(name string) string {
	if !strings.HasSuffix(name, "/") {
		name += "/"
	}
	return name
}

func (s *S3) normalizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, `/`)
	name = driveLetterRegexp.ReplaceAllString(name, "")
	return path.Clean("/" + name)
}

// Resolve makes S3 to implement Resolver
func (s *S3) Resolve(ctx context.Context, name string) (res Resolution, err error) {
	if ctx, err = invokeBeforeResolveCB(ctx); err != nil {
		return
	}
	defer func() {
		if errcb := invokeAfterResolveCB(ctx); err == nil {
			err = errcb
		} // else drop callback error
	}()

	if len(name) == 0 {
		return res, newPathError(ErrInvalidArgument, name, nil)
	}
	if !utf8.ValidString(name) || strings.ContainsRune(name, 0) {
		return res, newPathError(ErrMalformedPath, name, nil)
	}

	fullName := s.normalizeName(name)
	if len(s.nameToDir(fullName)) > maxS3KeyLength {
		return res, newPathError(ErrPathTooLong, fullName, nil)
	}
	if s.probe {
		if err = s.probeDir(ctx, fullName); err != nil {
			return
		}
	}

	res.FullName = fullName
	if fullName != "/" {
		res.Parent, res.HasParent = path.Dir(fullName), true
	}
	s.logger.Debugf("s3: resolved %q to %q", name, fullName)
	return res, nil
}

// probeDir lists at most one object under the directory prefix
func (s *S3) probeDir(ctx context.Context, fullName string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{Prefix: s.nameToDir(fullName), MaxKeys: 1}
	for object := range s.minioClient.ListObjects(ctx, s.bucketName, opts) {
		if object.Err != nil {
			s.logger.Debugf("s3: probe of %q failed: %v", fullName, object.Err)
			return s.classifyError(fullName, object.Err)
		}
		break
	}
	return nil
}

func (s *S3) classifyError(name string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case s3CodeAccessDenied:
		return newPathError(ErrAccessDenied, name, err)
	case s3CodeKeyTooLong:
		return newPathError(ErrPathTooLong, name, err)
	default:
		return err
	}
}
