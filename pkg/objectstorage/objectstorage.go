/*
 *     Copyright 2022 The Dragonfly Authors
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

//go:generate mockgen -destination mocks/objectstorage_mock.go -source objectstorage.go -package mocks

package objectstorage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
)

type ObjectMetadata struct {
	// Key is object key.
	Key string

	// ContentLength is Content-Length header.
	ContentLength int64

	// ContentType is Content-Type header.
	ContentType string

	// ETag is ETag header.
	ETag string

	// Digest is object digest.
	Digest string
}

type Metadata struct {
	// Name is object storage name of type, it can be s3 or oss.
	Name string

	// Region is storage region.
	Region string

	// Endpoint is datacenter endpoint.
	Endpoint string
}

type ObjectStorage interface {
	// GetMetadata returns metadata of object storage.
	GetMetadata(ctx context.Context) *Metadata

	// IsBucketExist returns whether the bucket exists.
	IsBucketExist(ctx context.Context, bucketName string) (bool, error)

	// CreateBucket creates bucket of object storage.
	CreateBucket(ctx context.Context, bucketName string) error

	// GetObjectMetadata returns metadata of object.
	GetObjectMetadata(ctx context.Context, bucketName, objectKey string) (*ObjectMetadata, bool, error)

	// PutObject puts data of object.
	PutObject(ctx context.Context, bucketName, objectKey, digest string, reader io.ReadSeeker) error

	// DeleteObject deletes data of object.
	DeleteObject(ctx context.Context, bucketName, objectKey string) error
}

// Option is a functional option for configuring the object storage.
type Option func(o *objectStorage)

type objectStorage struct {
	s3ForcePathStyle bool
	httpClient       *http.Client
}

// WithS3ForcePathStyle set the S3ForcePathStyle for s3.
func WithS3ForcePathStyle(s3ForcePathStyle bool) Option {
	return func(o *objectStorage) {
		o.s3ForcePathStyle = s3ForcePathStyle
	}
}

// WithHTTPClient set the http client of object storage.
func WithHTTPClient(client *http.Client) Option {
	return func(o *objectStorage) {
		o.httpClient = client
	}
}

// New object storage interface.
func New(name, region, endpoint, accessKey, secretKey string, options ...Option) (ObjectStorage, error) {
	o := &objectStorage{
		s3ForcePathStyle: DefaultS3ForcePathStyle,
		httpClient:       newHTTPClient(),
	}

	for _, opt := range options {
		opt(o)
	}

	switch name {
	case ServiceNameS3:
		return newS3(region, endpoint, accessKey, secretKey, o.s3ForcePathStyle, o.httpClient)
	case ServiceNameOSS:
		return newOSS(region, endpoint, accessKey, secretKey, o.httpClient)
	}

	return nil, fmt.Errorf("unknow service name %s", name)
}

// newHTTPClient returns the http client of object storage.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   DefaultTLSHandshakeTimeout,
				KeepAlive: DefaultIdleConnTimeout,
			}).DialContext,
			TLSHandshakeTimeout:   DefaultTLSHandshakeTimeout,
			ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
			IdleConnTimeout:       DefaultIdleConnTimeout,
			MaxIdleConnsPerHost:   DefaultMaxIdleConnsPerHost,
		},
		Timeout: DefaultTimeout,
	}
}
