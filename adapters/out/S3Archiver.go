/*
 *    Copyright 2025 XeOps.ai
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package out

import (
	"bytes"

	"lead-intake/pkg/awsutils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
)

// S3Archiver mirrors accepted submission records to a bucket so the local
// disk is not the only copy.
type S3Archiver struct {
	s3     awsutils.S3
	bucket string
}

func NewS3Archiver(awsSession *session.Session, awsConfig *aws.Config, bucket string) *S3Archiver {
	archiver := &S3Archiver{bucket: bucket}
	archiver.s3.Init(awsSession, awsConfig)

	return archiver
}

func (a *S3Archiver) Archive(filename string, data []byte) error {
	return a.s3.UploadToS3Bucket(bytes.NewReader(data), a.bucket, filename)
}
