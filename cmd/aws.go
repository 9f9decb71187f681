package cmd

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/fugue/checksum/source"
	"github.com/spf13/afero"
)

func getSession(region string) (*session.Session, error) {
	cfg := aws.NewConfig().WithRegion(region).WithMaxRetries(8)
	return session.NewSession(cfg)
}

// newOpener returns the source used to resolve file locations. The S3
// backend is only available when an AWS session can be created.
func newOpener(opts checksumOptions) *source.Mux {
	client := &http.Client{Timeout: 5 * time.Minute}
	sess, err := getSession(opts.Region)
	if err != nil {
		return source.New(afero.NewOsFs(), nil, client)
	}
	return source.New(afero.NewOsFs(), s3.New(sess), client)
}
