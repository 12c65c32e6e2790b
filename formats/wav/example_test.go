// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"

	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/formats/wav"
)

// Example demonstrates a write followed by a read of the same file.
func Example() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())

	sig := audio.Signal{Rate: 8000, Channels: 2, Precision: 16}
	w, err := wav.Encoder{}.Encode(f, sig, audio.EncodingSigned)
	if err != nil {
		fmt.Println(err)
		return
	}
	samples := make([]audio.Sample, 200)
	if _, err := w.WriteSamples(samples); err != nil {
		fmt.Println(err)
		return
	}
	if err := w.Close(); err != nil {
		fmt.Println(err)
		return
	}
	if _, err := f.Seek(0, 0); err != nil {
		fmt.Println(err)
		return
	}

	r, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer r.Close()
	defer f.Close()

	got := r.Signal()
	fmt.Printf("%d Hz, %d channels, %d bits, %d samples\n",
		got.Rate, got.Channels, got.Precision, got.Length)
	fmt.Println(r.Encoding())
	// Output:
	// 8000 Hz, 2 channels, 16 bits, 200 samples
	// Signed Integer PCM
}
