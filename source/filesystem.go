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
	"os"
	"strings"

	"github.com/spf13/afero"
)

type fileOpener struct {
	fs afero.Fs
}

// NewFilesystem returns an Opener for local paths and "file://" URLs.
// A nil fs uses the operating system filesystem.
func NewFilesystem(fs afero.Fs) Opener {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &fileOpener{fs: fs}
}

func (s *fileOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {

	path := strings.TrimPrefix(location, "file://")

	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotFound(fmt.Sprintf("not found: %s", path))
		}
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return f, nil
}
