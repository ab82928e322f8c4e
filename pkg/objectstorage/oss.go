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

package objectstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	aliyunoss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/go-http-utils/headers"
)

type oss struct {
	// OSS client.
	client *aliyunoss.Client

	// region is storage region.
	region string

	// endpoint is datacenter endpoint.
	endpoint string
}

// New oss instance.
func newOSS(region, endpoint, accessKey, secretKey string, httpClient *http.Client) (ObjectStorage, error) {
	client, err := aliyunoss.New(endpoint, accessKey, secretKey, aliyunoss.Region(region), aliyunoss.HTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("new oss client failed: %s", err)
	}

	return &oss{client, region, endpoint}, nil
}

// GetMetadata returns metadata of object storage.
func (o *oss) GetMetadata(ctx context.Context) *Metadata {
	return &Metadata{
		Name:     ServiceNameOSS,
		Region:   o.region,
		Endpoint: o.endpoint,
	}
}

// IsBucketExist returns whether the bucket exists.
func (o *oss) IsBucketExist(ctx context.Context, bucketName string) (bool, error) {
	return o.client.IsBucketExist(bucketName)
}

// CreateBucket creates bucket of object storage.
func (o *oss) CreateBucket(ctx context.Context, bucketName string) error {
	return o.client.CreateBucket(bucketName)
}

// GetObjectMetadata returns metadata of object.
func (o *oss) GetObjectMetadata(ctx context.Context, bucketName, objectKey string) (*ObjectMetadata, bool, error) {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return nil, false, err
	}

	header, err := bucket.GetObjectDetailedMeta(objectKey)
	if err != nil {
		var serr aliyunoss.ServiceError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, false, nil
		}

		return nil, false, err
	}

	contentLength, err := strconv.ParseInt(header.Get(headers.ContentLength), 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &ObjectMetadata{
		Key:           objectKey,
		ContentLength: contentLength,
		ContentType:   header.Get(headers.ContentType),
		ETag:          header.Get(headers.ETag),
		Digest:        header.Get(aliyunoss.HTTPHeaderOssMetaPrefix + MetaDigest),
	}, true, nil
}

// PutObject puts data of object.
func (o *oss) PutObject(ctx context.Context, bucketName, objectKey, digest string, reader io.ReadSeeker) error {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return err
	}

	meta := aliyunoss.Meta(MetaDigest, digest)
	return bucket.PutObject(objectKey, reader, meta)
}

// DeleteObject deletes data of object.
func (o *oss) DeleteObject(ctx context.Context, bucketName, objectKey string) error {
	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return err
	}

	return bucket.DeleteObject(objectKey)
}
