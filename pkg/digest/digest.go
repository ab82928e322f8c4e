/*
 *     Copyright 2020 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package digest

import (
	"bufio"
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
)

const (
	// AlgorithmSHA256 is the digest algorithm of artifacts.
	AlgorithmSHA256 = digest.SHA256

	// readBufferSize is the buffer size of reading files.
	readBufferSize = 4 << 20
)

// HashFile computes the sha256 digest of a regular file.
func HashFile(path string) (digest.Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return AlgorithmSHA256.FromReader(bufio.NewReaderSize(f, readBufferSize))
}

// SHA256FromBytes computes the sha256 digest of bytes.
func SHA256FromBytes(b []byte) digest.Digest {
	return AlgorithmSHA256.FromBytes(b)
}

// Parse validates s and returns the digest.
func Parse(s string) (digest.Digest, error) {
	d, err := digest.Parse(s)
	if err != nil {
		return "", err
	}

	return d, nil
}
