package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/spf13/afero"
)

// NotFound indicates an object does not exist
type NotFound string

func (e NotFound) Error() string { return string(e) }

// Opener opens a location for reading. The caller closes the returned
// reader.
type Opener interface {

	// Open the item at the given location
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// Mux routes locations to an Opener by URL scheme. Locations without a
// scheme are routed to the "file" Opener.
type Mux struct {
	openers map[string]Opener
}

// NewMux returns an empty Mux
func NewMux() *Mux {
	return &Mux{openers: map[string]Opener{}}
}

// Handle registers the Opener for a scheme
func (m *Mux) Handle(scheme string, opener Opener) *Mux {
	m.openers[strings.ToLower(scheme)] = opener
	return m
}

// New returns a Mux serving local files from fs, http and https URLs via
// client, and s3 URLs via api. S3 is only routed when api is not nil.
func New(fs afero.Fs, api s3iface.S3API, client *http.Client) *Mux {
	m := NewMux()
	m.Handle("file", NewFilesystem(fs))
	httpOpener := NewHTTP(client)
	m.Handle("http", httpOpener)
	m.Handle("https", httpOpener)
	if api != nil {
		m.Handle("s3", NewS3(api))
	}
	return m
}

// Scheme returns the lowercase scheme of a location, or "file" if the
// location is a plain path
func Scheme(location string) string {
	i := strings.Index(location, "://")
	if i <= 0 {
		return "file"
	}
	return strings.ToLower(location[:i])
}

// Open implements Opener
func (m *Mux) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	scheme := Scheme(location)
	opener, ok := m.openers[scheme]
	if !ok {
		return nil, fmt.Errorf("Unsupported location scheme %q: %s", scheme, location)
	}
	return opener.Open(ctx, location)
}

// splitS3 splits "s3://bucket/key" into bucket and key
func splitS3(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("Invalid S3 location %s: %s", location, err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("Invalid S3 location %s: expected s3://bucket/key", location)
	}
	return bucket, key, nil
}

func isNotFound(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case "NotFound", s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket:
			return true
		}
	}
	return false
}
