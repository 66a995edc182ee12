// Copyright 2024 promohub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const expectedLength = 32

func TestGenerate(t *testing.T) {
	sng := NewGeneratorWith(func(_ time.Time) int64 { return 1234554320123 }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "minimum user id",
			input:    1,
			expected: "0001",
		},
		{
			name:     "last four digits of a long id",
			input:    123456789,
			expected: "6789",
		},
		{
			name:     "id ending in zeros",
			input:    123450000,
			expected: "0000",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.input)

			assert.NoError(t, err)
			assert.Contains(t, sn, tc.expected)
			assert.Len(t, sn, expectedLength)
		})
	}
}

func TestGenerateUnique(t *testing.T) {
	sng := NewGenerator()
	a, err := sng.Generate(42)
	assert.NoError(t, err)
	b, err := sng.Generate(42)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
