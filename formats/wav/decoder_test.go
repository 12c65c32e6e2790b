// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/ik5/soxe/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a minimal canonical WAV file around raw data
func createWAVFile(sampleRate, channels, bitsPerSample int, format uint16, data []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(data))
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)

	return buf.Bytes()
}

func pcm16(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 16, wavFormatPCM, pcm16(0, 100, 200, -100, -200, 0))

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	require.NoError(t, err)
	require.NotNil(t, src)

	sig := src.Signal()
	assert.Equal(t, 8000, sig.Rate)
	assert.Equal(t, 1, sig.Channels)
	assert.Equal(t, 16, sig.Precision)
	assert.Equal(t, int64(6), sig.Length)
	assert.Equal(t, audio.EncodingSigned, src.Encoding())
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(44100, 2, 16, wavFormatPCM, pcm16(100, 200, 300, 400, 500, 600))

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	require.NoError(t, err)

	sig := src.Signal()
	assert.Equal(t, 44100, sig.Rate)
	assert.Equal(t, 2, sig.Channels)
	assert.Equal(t, int64(3), sig.Frames())
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA AT ALL, SORRY")))
	assert.ErrorIs(t, err, ErrNotWavFile)
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrNotWavFile)
}

func TestDecoder_FloatFormatRejected(t *testing.T) {
	t.Parallel()

	data := make([]byte, 16)
	wavData := createWAVFile(8000, 1, 32, 3, data)

	_, err := Decoder{}.Decode(bytes.NewReader(wavData))
	assert.ErrorIs(t, err, ErrUnsupportedWavFormat)
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 16, wavFormatPCM, pcm16(0, 100, -100, math.MaxInt16, math.MinInt16))
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	require.NoError(t, err)

	buf := make([]audio.Sample, audio.BlockSize)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	want := []audio.Sample{0, 100 << 16, -100 << 16, math.MaxInt16 << 16, math.MinInt32}
	assert.Equal(t, want, buf[:n])

	n, err = src.ReadSamples(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 16, wavFormatPCM, pcm16(1, 2, 3))
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	require.NoError(t, err)

	n, err := src.ReadSamples(nil)
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 10)
	for i := range samples {
		samples[i] = int16(i * 10)
	}
	wavData := createWAVFile(8000, 1, 16, wavFormatPCM, pcm16(samples...))
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	require.NoError(t, err)

	var got []audio.Sample
	buf := make([]audio.Sample, 4)
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	require.Len(t, got, len(samples))
	for i, s := range samples {
		assert.Equal(t, audio.Sample(s)<<16, got[i], "sample %d", i)
	}
}

func TestSource_EightBitIsUnsigned(t *testing.T) {
	t.Parallel()

	// 0x80 is the 8-bit midpoint, 0x00 the negative peak
	wavData := createWAVFile(8000, 1, 8, wavFormatPCM, []byte{0x80, 0x00, 0xFF})
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	require.NoError(t, err)
	assert.Equal(t, audio.EncodingUnsigned, src.Encoding())

	buf := make([]audio.Sample, 3)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.Equal(t, []audio.Sample{0, math.MinInt32, 127 << 24}, buf)
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 16, wavFormatPCM, pcm16(1))
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	require.NoError(t, err)

	assert.NoError(t, src.Close())
}

func TestDecoder_VariousSampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 11025, 16000, 22050, 44100, 48000, 96000} {
		wavData := createWAVFile(rate, 1, 16, wavFormatPCM, pcm16(1, 2))
		src, err := Decoder{}.Decode(bytes.NewReader(wavData))
		require.NoError(t, err, "rate %d", rate)
		assert.Equal(t, rate, src.Signal().Rate)
	}
}
