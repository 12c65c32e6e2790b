// SPDX-License-Identifier: EPL-2.0

package soxe

import (
	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/formats/aiff"
	"github.com/ik5/soxe/formats/mp3"
	"github.com/ik5/soxe/formats/vorbis"
	"github.com/ik5/soxe/formats/wav"
)

// DefaultRegistry returns a registry with every built-in codec. WAV and
// AIFF are read and written; MP3 and Ogg Vorbis are read only.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	for _, ext := range []string{"wav", "wave"} {
		reg.Register(ext, wav.Decoder{})
		reg.RegisterEncoder(ext, wav.Encoder{})
	}
	for _, ext := range []string{"aif", "aiff", "aifc"} {
		reg.Register(ext, aiff.Decoder{})
		reg.RegisterEncoder(ext, aiff.Encoder{})
	}
	reg.Register("mp3", mp3.Decoder{})
	for _, ext := range []string{"ogg", "oga"} {
		reg.Register(ext, vorbis.Decoder{})
	}

	return reg
}
