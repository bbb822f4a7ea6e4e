package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChimeStreamsAllNotes(t *testing.T) {
	stream, err := chime(80)
	require.NoError(t, err)

	total := 0
	samples := make([][2]float64, 1024)

	for {
		n, ok := stream.Stream(samples)
		total += n

		if !ok {
			break
		}
	}

	noteLen := sampleRate.N(250 * time.Millisecond)
	gapLen := sampleRate.N(60 * time.Millisecond)

	assert.Equal(t, len(chimeNotes)*(noteLen+gapLen), total)
}

func TestChimeVolume(t *testing.T) {
	assert.True(t, chimeVolume(0).Silent)
	assert.Equal(t, 0.0, chimeVolume(100).Volume)
	assert.Equal(t, -2.5, chimeVolume(50).Volume)
}
