// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{ErrUnsupportedWavFormat, "only integer PCM WAV is supported"},
		{ErrUnsupportedBitDepth, "WAV bit depth must be 8, 16, 24 or 32"},
		{ErrUnsupportedWavChunks, "unsupported WAV chunks"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.EqualError(t, tt.err, tt.want)

			wrapped := fmt.Errorf("decode: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}
}
