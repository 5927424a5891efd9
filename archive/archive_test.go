// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import "testing"

func TestParseBucket(t *testing.T) {
	tests := []struct {
		url            string
		bucket, prefix string
		wantErr        bool
	}{
		{"gs://results", "results", "", false},
		{"gs://results/2025/aug", "results", "2025/aug", false},
		{"gs://", "", "", true},
		{"s3://results", "", "", true},
		{"results", "", "", true},
	}
	for _, test := range tests {
		bucket, prefix, err := ParseBucket(test.url)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseBucket(%q) error = %v, wantErr %v", test.url, err, test.wantErr)
			continue
		}
		if bucket != test.bucket || prefix != test.prefix {
			t.Errorf("ParseBucket(%q) = %q, %q, want %q, %q",
				test.url, bucket, prefix, test.bucket, test.prefix)
		}
	}
}
