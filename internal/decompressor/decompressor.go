// Copyright 2014 The Cayley Authors. All rights reserved.
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

// Package decompressor detects compressed input streams by their magic
// bytes and unwraps them.
package decompressor

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
)

const (
	gzipMagic  = "\x1f\x8b"
	b2zipMagic = "BZh"
	zstdMagic  = "\x28\xb5\x2f\xfd"

	// gzip header flag announcing an extra field
	gzipExtra = 0x04
)

// Format is the compression detected on a stream.
type Format string

const (
	Raw   Format = "raw"
	Gzip  Format = "gzip"
	BGZF  Format = "bgzf"
	Bzip2 Format = "bzip2"
	Zstd  Format = "zstd"
)

// Detect returns the compression format of a stream starting with head.
func Detect(head []byte) Format {
	switch {
	case isBGZF(head):
		return BGZF
	case bytes.HasPrefix(head, []byte(gzipMagic)):
		return Gzip
	case bytes.HasPrefix(head, []byte(b2zipMagic)):
		return Bzip2
	case bytes.HasPrefix(head, []byte(zstdMagic)):
		return Zstd
	}
	return Raw
}

// isBGZF checks for the gzip extra subfield 'BC' that every BGZF block
// carries.
func isBGZF(h []byte) bool {
	return len(h) >= 14 && bytes.HasPrefix(h, []byte(gzipMagic)) &&
		h[3]&gzipExtra != 0 && h[12] == 'B' && h[13] == 'C'
}

// New detects the file type of an io.Reader between bgzf, gzip, bzip2, zstd
// or raw quad file. Closing the result releases the decoder, not r.
func New(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	buf, err := br.Peek(16)
	if err != nil && err != io.EOF {
		return nil, err
	}
	switch Detect(buf) {
	case BGZF:
		zr, err := bgzf.NewReader(br, 0)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case Bzip2:
		return io.NopCloser(bzip2.NewReader(br)), nil
	case Zstd:
		dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return zstdCloser{dec}, nil
	default:
		return io.NopCloser(br), nil
	}
}

type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}
