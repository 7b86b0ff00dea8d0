// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter captures the state of the machine's buzzer to disk as a
// WAV file. The CHIP-8 buzzer is a single bit, what is captured is a square
// wave tone that starts and stops with the sound timer.
//
// Edges are timestamped as they arrive and the sample data is rendered in
// one go by EndMixing(). The capture is buffered in memory in its entirety,
// it is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/logger"
)

// rendering parameters for the capture file.
const (
	sampleFreq = 44100
	bitDepth   = 16

	// frequency of the rendered tone
	toneFreq = 440.0

	// amplitude of the rendered tone. sixteen bit samples, so well inside the
	// positive range
	amplitude = 8000
)

// an edge is a timestamped change in the buzzer line.
type edge struct {
	t  time.Time
	on bool
}

// BuzzerWriter receives buzzer edges and writes the resulting tone to a WAV
// file when mixing ends.
type BuzzerWriter struct {
	filename string

	// time of the start of the capture and every edge since, in order
	start time.Time
	edges []edge
}

// New is the preferred method of initialisation for the BuzzerWriter type.
func New(filename string) (*BuzzerWriter, error) {
	aw := &BuzzerWriter{
		filename: filename,
		start:    time.Now(),
	}

	return aw, nil
}

// SetBuzzer records an edge in the buzzer line. Repeated edges in the same
// direction are harmless.
func (aw *BuzzerWriter) SetBuzzer(on bool) {
	aw.edges = append(aw.edges, edge{t: time.Now(), on: on})
}

// EndMixing renders the edges recorded since creation and writes the result
// to disk.
func (aw *BuzzerWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.render(time.Now()),
		SourceBitDepth: bitDepth,
	}

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "buzzer capture written to %s", aw.filename)

	return nil
}

// render the edge list into sample data covering the whole capture, from
// start time to the supplied end time.
func (aw *BuzzerWriter) render(end time.Time) []int {
	numSamples := int(end.Sub(aw.start).Seconds() * sampleFreq)
	data := make([]int, 0, numSamples)

	on := false
	e := 0

	for i := 0; i < numSamples; i++ {
		t := aw.start.Add(time.Duration(float64(i) / sampleFreq * float64(time.Second)))

		// consume any edges that have passed
		for e < len(aw.edges) && !aw.edges[e].t.After(t) {
			on = aw.edges[e].on
			e++
		}

		if on {
			// square wave. the tone period alternates between high and low
			// halves
			phase := int(t.Sub(aw.start).Seconds() * toneFreq * 2)
			if phase%2 == 0 {
				data = append(data, amplitude)
			} else {
				data = append(data, -amplitude)
			}
		} else {
			data = append(data, 0)
		}
	}

	return data
}
