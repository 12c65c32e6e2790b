// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/formats/mp3"
)

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	sig := src.Signal()
	fmt.Printf("Decoded MP3: %d Hz, %d channels, %d samples\n",
		sig.Rate, sig.Channels, sig.Length)
}

// ExampleDecoder_Decode_streaming reads an MP3 file block by block.
func ExampleDecoder_Decode_streaming() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	var peak audio.Sample
	buf := make([]audio.Sample, audio.BlockSize)
	for {
		n, err := src.ReadSamples(buf)
		for _, s := range buf[:n] {
			peak = max(peak, s, -s)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Peak: %d\n", peak)
}
