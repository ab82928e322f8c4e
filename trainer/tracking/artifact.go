/*
 *     Copyright 2023 The Dragonfly Authors
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

//go:generate mockgen -destination mocks/artifact_mock.go -source artifact.go -package mocks

package tracking

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-http-utils/headers"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	logger "d7y.io/fraudtrainer/internal/dflog"
	"d7y.io/fraudtrainer/pkg/digest"
	"d7y.io/fraudtrainer/pkg/objectstorage"
)

const (
	// artifactsAPIPrefix is path prefix of the artifact proxy api.
	artifactsAPIPrefix = "/api/2.0/mlflow-artifacts/artifacts/"

	// mimeOctetStream is the content type of artifact uploads.
	mimeOctetStream = "application/octet-stream"
)

// Artifact uri schemes.
const (
	SchemeFile            = "file"
	SchemeMLflowArtifacts = "mlflow-artifacts"
	SchemeHTTP            = "http"
	SchemeHTTPS           = "https"
	SchemeS3              = objectstorage.ServiceNameS3
	SchemeOSS             = objectstorage.ServiceNameOSS
)

// ArtifactRepository stores files of a run under its artifact uri.
type ArtifactRepository interface {
	// LogArtifact uploads the local file into artifactPath, an empty path is the root.
	LogArtifact(ctx context.Context, localPath, artifactPath string) error
}

// NewArtifactRepository returns the repository of artifact uri. Proxied
// artifacts are uploaded to trackingURI and object storage artifacts need
// client of the uri scheme.
func NewArtifactRepository(artifactURI, trackingURI string, client objectstorage.ObjectStorage, options ...StoreOption) (ArtifactRepository, error) {
	o := &storeOptions{
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		opt(o)
	}

	u, err := url.Parse(artifactURI)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.InvalidArgument, err, "parse artifact uri %s", artifactURI)
	}

	switch u.Scheme {
	case "":
		return &localArtifactRepository{root: artifactURI}, nil
	case SchemeFile:
		return &localArtifactRepository{root: filepath.FromSlash(u.Path)}, nil
	case SchemeMLflowArtifacts:
		base := strings.TrimSuffix(trackingURI, "/")
		if u.Host != "" {
			base = SchemeHTTP + "://" + u.Host
		}

		if base == "" {
			return nil, dferrors.Newf(dfcodes.InvalidArgument, "artifact uri %s needs a tracking server", artifactURI)
		}

		return &httpArtifactRepository{
			baseURL: base + artifactsAPIPrefix + strings.TrimPrefix(u.Path, "/"),
			store:   newRESTStore(base, o),
		}, nil
	case SchemeHTTP, SchemeHTTPS:
		return &httpArtifactRepository{
			baseURL: strings.TrimSuffix(artifactURI, "/"),
			store:   newRESTStore(strings.TrimSuffix(artifactURI, "/"), o),
		}, nil
	case SchemeS3, SchemeOSS:
		if client == nil {
			return nil, dferrors.Newf(dfcodes.InvalidArgument, "artifact uri %s needs %s object storage", artifactURI, u.Scheme)
		}

		if metadata := client.GetMetadata(context.Background()); metadata != nil && metadata.Name != u.Scheme {
			return nil, dferrors.Newf(dfcodes.InvalidArgument, "artifact uri %s does not match %s object storage", artifactURI, metadata.Name)
		}

		return &objectStorageArtifactRepository{
			client: client,
			bucket: u.Host,
			prefix: strings.Trim(u.Path, "/"),
		}, nil
	default:
		return nil, dferrors.Newf(dfcodes.InvalidArgument, "unsupported artifact uri scheme %s", u.Scheme)
	}
}

// LogArtifacts uploads files of the local directory into artifactPath
// keeping relative paths.
func LogArtifacts(ctx context.Context, repo ArtifactRepository, localDir, artifactPath string) error {
	return filepath.WalkDir(localDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "walk %s", localDir)
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(localDir, filepath.Dir(p))
		if err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "relative path of %s", p)
		}

		dst := artifactPath
		if rel != "." {
			dst = path.Join(artifactPath, filepath.ToSlash(rel))
		}

		return repo.LogArtifact(ctx, p, dst)
	})
}

// localArtifactRepository copies artifacts into a local directory.
type localArtifactRepository struct {
	root string
}

func (r *localArtifactRepository) LogArtifact(ctx context.Context, localPath, artifactPath string) error {
	dir := r.root
	if artifactPath != "" {
		if err := validateKey(artifactPath); err != nil {
			return err
		}
		dir = filepath.Join(r.root, filepath.FromSlash(artifactPath))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "create artifact directory %s", dir)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "open artifact %s", localPath)
	}
	defer src.Close()

	dstPath := filepath.Join(dir, filepath.Base(localPath))
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "create artifact %s", dstPath)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "copy artifact %s", localPath)
	}

	return nil
}

// httpArtifactRepository uploads artifacts through the tracking server proxy.
type httpArtifactRepository struct {
	baseURL string
	store   *restStore
}

func (r *httpArtifactRepository) LogArtifact(ctx context.Context, localPath, artifactPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "open artifact %s", localPath)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "stat artifact %s", localPath)
	}

	u := r.baseURL
	if artifactPath != "" {
		u += "/" + escapePath(artifactPath)
	}
	u += "/" + url.PathEscape(filepath.Base(localPath))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, file)
	if err != nil {
		return dferrors.Wrapf(dfcodes.InvalidArgument, err, "new upload request of %s", localPath)
	}
	r.store.setHeaders(req)
	req.Header.Set(headers.ContentType, mimeOctetStream)
	req.ContentLength = info.Size()

	resp, err := r.store.client.Do(req)
	if err != nil {
		return dferrors.Wrapf(dfcodes.TrackingBackendUnavailable, err, "upload artifact %s", localPath)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		data, _ := io.ReadAll(resp.Body)
		return dferrors.Wrapf(dfcodes.TrackingRequestFailed, &APIError{StatusCode: resp.StatusCode, Message: string(data)}, "upload artifact %s", localPath)
	}

	return nil
}

// objectStorageArtifactRepository uploads artifacts to a bucket, objects
// with the same digest are skipped.
type objectStorageArtifactRepository struct {
	client objectstorage.ObjectStorage
	bucket string
	prefix string
}

func (r *objectStorageArtifactRepository) LogArtifact(ctx context.Context, localPath, artifactPath string) error {
	key := path.Join(r.prefix, artifactPath, filepath.Base(localPath))
	d, err := digest.HashFile(localPath)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "digest artifact %s", localPath)
	}

	metadata, ok, err := r.client.GetObjectMetadata(ctx, r.bucket, key)
	if err != nil {
		return dferrors.Wrapf(dfcodes.TrackingBackendUnavailable, err, "get metadata of %s", key)
	}

	if ok && metadata.Digest == d.String() {
		logger.TrackingLogger.Debugf("artifact %s is up to date in bucket %s", key, r.bucket)
		return nil
	}

	file, err := os.Open(localPath)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "open artifact %s", localPath)
	}
	defer file.Close()

	if err := r.client.PutObject(ctx, r.bucket, key, d.String(), file); err != nil {
		return dferrors.Wrapf(dfcodes.TrackingBackendUnavailable, err, "put object %s", key)
	}

	return nil
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return strings.Join(parts, "/")
}
