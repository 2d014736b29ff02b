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

package decompressor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const testData = "cayley data\n"

func bgzfData(t testing.TB) []byte {
	var buf bytes.Buffer
	w := bgzf.NewWriter(&buf, 1)
	_, err := w.Write([]byte(testData))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdData(t testing.TB) []byte {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(testData), nil)
}

var testDecompressor = []struct {
	message string
	input   func(t testing.TB) []byte
	format  Format
	expect  []byte
	err     bool
	readErr bool
}{
	{
		message: "text input",
		input:   func(testing.TB) []byte { return []byte(testData) },
		format:  Raw,
		expect:  []byte(testData),
	},
	{
		message: "short text input",
		input:   func(testing.TB) []byte { return []byte("x\n") },
		format:  Raw,
		expect:  []byte("x\n"),
	},
	{
		message: "empty input",
		input:   func(testing.TB) []byte { return nil },
		format:  Raw,
		expect:  []byte{},
	},
	{
		message: "gzip input",
		input: func(testing.TB) []byte {
			return []byte{
				0x1f, 0x8b, 0x08, 0x00, 0x5c, 0xbc, 0xcd, 0x53, 0x00, 0x03, 0x4b, 0x4e, 0xac, 0xcc, 0x49, 0xad,
				0x54, 0x48, 0x49, 0x2c, 0x49, 0xe4, 0x02, 0x00, 0x03, 0xe1, 0xfc, 0xc3, 0x0c, 0x00, 0x00, 0x00,
			}
		},
		format: Gzip,
		expect: []byte(testData),
	},
	{
		message: "bzip2 input",
		input: func(testing.TB) []byte {
			return []byte{
				0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xb5, 0x4b, 0xe3, 0xc4, 0x00, 0x00,
				0x02, 0xd1, 0x80, 0x00, 0x10, 0x40, 0x00, 0x2e, 0x04, 0x04, 0x20, 0x20, 0x00, 0x31, 0x06, 0x4c,
				0x41, 0x4c, 0x1e, 0xa7, 0xa9, 0x2a, 0x18, 0x26, 0xb1, 0xc2, 0xee, 0x48, 0xa7, 0x0a, 0x12, 0x16,
				0xa9, 0x7c, 0x78, 0x80,
			}
		},
		format: Bzip2,
		expect: []byte(testData),
	},
	{
		message: "bgzf input",
		input:   bgzfData,
		format:  BGZF,
		expect:  []byte(testData),
	},
	{
		message: "zstd input",
		input:   zstdData,
		format:  Zstd,
		expect:  []byte(testData),
	},
	{
		message: "bad gzip input",
		input:   func(testing.TB) []byte { return []byte("\x1f\x8bcayley data\n") },
		format:  Gzip,
		err:     true,
	},
	{
		message: "bad bzip2 input",
		input:   func(testing.TB) []byte { return []byte("\x42\x5a\x68cayley data\n") },
		format:  Bzip2,
		readErr: true,
	},
}

func TestDecompressor(t *testing.T) {
	for _, test := range testDecompressor {
		t.Run(test.message, func(t *testing.T) {
			data := test.input(t)
			require.Equal(t, test.format, Detect(data))

			r, err := New(bytes.NewReader(data))
			if test.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			if test.readErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, string(test.expect), string(got))
		})
	}
}

func TestDetectPlainGzipIsNotBGZF(t *testing.T) {
	// FEXTRA set, but with a subfield other than BC
	head := []byte{0x1f, 0x8b, 0x08, 0x04, 0, 0, 0, 0, 0, 0xff, 0x06, 0x00, 'X', 'Y'}
	require.Equal(t, Gzip, Detect(head))
	require.Equal(t, Raw, Detect([]byte(strings.Repeat("<", 16))))
}
