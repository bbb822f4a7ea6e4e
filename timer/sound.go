package timer

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chimeNotes are played in order when a fast is complete.
var chimeNotes = []float64{659.25, 783.99, 1046.50}

// chimeVolume maps a volume between 0 and 100 to the exponent used by
// effects.Volume. Every 20 steps below 100 halves the loudness.
func chimeVolume(volume int) *effects.Volume {
	return &effects.Volume{
		Base:   2,
		Volume: float64(volume-100) / 20,
		Silent: volume <= 0,
	}
}

// chime builds the streamer for the completion chime.
func chime(volume int) (beep.Streamer, error) {
	noteLen := sampleRate.N(250 * time.Millisecond)
	gapLen := sampleRate.N(60 * time.Millisecond)

	notes := make([]beep.Streamer, 0, len(chimeNotes)*2)

	for _, freq := range chimeNotes {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}

		notes = append(notes, beep.Take(noteLen, tone), beep.Silence(gapLen))
	}

	v := chimeVolume(volume)
	v.Streamer = beep.Seq(notes...)

	return v, nil
}

// playChime plays the completion chime and blocks until it ends.
func playChime(volume int) error {
	if volume <= 0 {
		return nil
	}

	stream, err := chime(volume)
	if err != nil {
		return err
	}

	bufferSize := 10

	err = speaker.Init(
		sampleRate,
		sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return err
	}

	defer speaker.Close()

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	speaker.Clear()

	return nil
}
