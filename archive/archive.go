// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archive uploads exported analysis artifacts to Google Cloud
// Storage.
package archive

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ParseBucket splits a gs://bucket/prefix URL into its bucket and
// object prefix. The prefix may be empty.
func ParseBucket(url string) (bucket, prefix string, err error) {
	const scheme = "gs://"
	if !strings.HasPrefix(url, scheme) {
		return "", "", fmt.Errorf("archive destination %q must start with gs://", url)
	}
	rest := strings.TrimPrefix(url, scheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("archive destination %q has no bucket", url)
	}
	return bucket, prefix, nil
}

// Uploader writes objects to a single GCS bucket.
type Uploader struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewUploader connects to GCS. If credsFile is non-empty it is used as
// a service account key file, otherwise ambient credentials apply.
func NewUploader(ctx context.Context, bucket, prefix, credsFile string) (*Uploader, error) {
	var opts []option.ClientOption
	if credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Uploader{client: client, bucket: bucket, prefix: prefix}, nil
}

// Put uploads one object under the uploader's prefix. Uploads are
// whole-object writes; a failed upload leaves no partial object.
func (u *Uploader) Put(ctx context.Context, name string, data []byte) error {
	object := name
	if u.prefix != "" {
		object = strings.TrimSuffix(u.prefix, "/") + "/" + name
	}
	w := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("upload gs://%s/%s: %w", u.bucket, object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("upload gs://%s/%s: %w", u.bucket, object, err)
	}
	return nil
}

// Close releases the underlying client.
func (u *Uploader) Close() error {
	return u.client.Close()
}
