// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package source

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type s3Opener struct {
	api s3iface.S3API
}

// NewS3 returns an Opener for "s3://bucket/key" locations
func NewS3(api s3iface.S3API) Opener {
	return &s3Opener{api: api}
}

// Open an object for reading
func (s *s3Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {

	bucket, key, err := splitS3(location)
	if err != nil {
		return nil, err
	}

	object, err := s.api.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, NotFound(fmt.Sprintf("Not found: %s/%s", bucket, key))
		}
		return nil, fmt.Errorf("Failed to get %s/%s: %s", bucket, key, err)
	}
	return object.Body, nil
}
