package trace

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/steering"
	"github.com/1siamBot/steering-engine/engine/systems"
)

func TestReadRejectsTruncatedFrame(t *testing.T) {
	var buf bytes.Buffer
	f := Frame{Tick: 3, Agent: 9, X: 1.5, Y: -2, Orientation: 0.25, Label: "wander"}
	require.NoError(t, f.Encode(&buf))
	require.NoError(t, f.Encode(&buf))

	tr, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, tr.Frames, 2)
	assert.Equal(t, f, tr.Frames[1])

	cut := buf.Bytes()[:buf.Len()-3]
	_, err = Read(bytes.NewReader(cut))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = Read(bytes.NewReader(buf.Bytes()[:10]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRecorderSamplesWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	rec, err := NewRecorder(path)
	require.NoError(t, err)
	rec.Every = 2

	w := core.NewWorld(10)
	id, data := systems.SpawnAgent(w, &steering.KinematicData{MaximumSpeed: 2}, &core.Appearance{Label: "seeker"})
	systems.Drive(w, id, steering.NewSeek(data, steering.AtLocation(cp.Vector{X: 100})))
	w.AddSystem(systems.NewSteeringSystem(nil, nil))
	w.AddSystem(rec)

	for i := 0; i < 6; i++ {
		w.Tick(0.1)
	}
	require.NoError(t, rec.Close())

	tr, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tr.Frames, 3)
	assert.Equal(t, 3, rec.Count())
	assert.Empty(t, rec.Frames, "a file recorder does not keep frames")

	frames := tr.FramesForTick(4)
	require.Len(t, frames, 1)
	assert.Equal(t, "seeker", frames[0].Label)
	assert.InDelta(t, 1.0, frames[0].X, 1e-9)
	assert.InDelta(t, 2.0, frames[0].VX, 1e-9)
	assert.Len(t, tr.Agent(uint64(id)), 3)
	assert.Empty(t, tr.Agent(uint64(id)+1000))

	_, err = Load(filepath.Join(t.TempDir(), "missing.trace"))
	assert.Error(t, err)
}

func TestMemoryRecorderKeepsFrames(t *testing.T) {
	rec := NewMemoryRecorder()
	w := core.NewWorld(10)
	systems.SpawnAgent(w, &steering.KinematicData{Location: cp.Vector{X: 3}}, nil)
	w.AddSystem(rec)

	w.Tick(0.1)
	w.Tick(0.1)
	require.NoError(t, rec.Close())

	require.Len(t, rec.Frames, 2)
	assert.Equal(t, 2, rec.Count())
	assert.Equal(t, 3.0, rec.Frames[1].X)
}

func TestLongLabelIsCutOnRuneBoundary(t *testing.T) {
	// the two-byte rune straddles the length prefix limit
	label := strings.Repeat("a", 65534) + "é" + "tail"
	var buf bytes.Buffer
	require.NoError(t, (&Frame{Tick: 1, Label: label}).Encode(&buf))

	tr, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, tr.Frames, 1)
	got := tr.Frames[0].Label
	assert.Len(t, got, 65534)
	assert.True(t, utf8.ValidString(got))
}
