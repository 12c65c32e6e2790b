// SPDX-License-Identifier: EPL-2.0

package audio

// Encoding identifies how samples are stored in a container. The numeric
// value is stable and reported to callers alongside the name.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingSigned
	EncodingUnsigned
	EncodingFloat
	EncodingMP3
	EncodingVorbis
)

var encodingNames = [...]string{
	EncodingUnknown:  "Unknown",
	EncodingSigned:   "Signed Integer PCM",
	EncodingUnsigned: "Unsigned Integer PCM",
	EncodingFloat:    "Floating Point PCM",
	EncodingMP3:      "MPEG audio (layer I, II or III)",
	EncodingVorbis:   "Vorbis",
}

// ID returns the numeric encoding id.
func (e Encoding) ID() int { return int(e) }

// String returns the human readable encoding name.
func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return encodingNames[EncodingUnknown]
	}

	return encodingNames[e]
}

// Lossy reports whether the encoding discards information, so a PCM writer
// has to pick its own sample layout.
func (e Encoding) Lossy() bool {
	return e == EncodingMP3 || e == EncodingVorbis
}

// AcceptAll is an encoding filter that admits every encoding.
func AcceptAll(Encoding) bool { return true }
