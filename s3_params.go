package dirinfo

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// S3Params are parameters for S3 resolver. Empty keys mean anonymous access
type S3Params struct {
	Endpoint   string `yaml:"endpoint"`
	Region     string `yaml:"region"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	UseSSL     bool   `yaml:"use_ssl"`
	BucketName string `yaml:"bucket_name"`

	Probe bool `yaml:"probe"` // list the bucket to surface access errors while resolving

	Logger logrus.FieldLogger `yaml:"-"`
}

func (s3p *S3Params) applyDefaults() {
	if s3p.Logger == nil {
		s3p.Logger = logrus.StandardLogger()
	}
}

// LoadS3Params decodes YAML encoded S3Params from r. An empty document yields zero params
func LoadS3Params(r io.Reader) (p S3Params, err error) {
	if err = yaml.NewDecoder(r).Decode(&p); errors.Is(err, io.EOF) {
		err = nil
	}
	return
}
