package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/systems"
)

// Recorder writes frames to a trace file. It also runs as a system that
// samples every body in the world. Frames is only filled by a recorder
// without a file.
type Recorder struct {
	Frames []Frame
	// Every samples one tick in Every; values below 1 sample every tick.
	Every  uint64
	count  int
	file   *os.File
	writer *bufio.Writer
	err    error
}

// NewRecorder creates a trace file for recording
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace: create %s: %w", path, err)
	}
	return newRecorder(f), nil
}

// NewMemoryRecorder keeps frames in memory instead of writing a file
func NewMemoryRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(f *os.File) *Recorder {
	r := &Recorder{file: f}
	if f != nil {
		r.writer = bufio.NewWriter(f)
	}
	return r
}

// Record writes a frame to the file, or keeps it in Frames when there is
// no file.
func (r *Recorder) Record(f Frame) error {
	if r.writer == nil {
		r.Frames = append(r.Frames, f)
		r.count++
		return nil
	}
	if err := f.Encode(r.writer); err != nil {
		return err
	}
	r.count++
	return nil
}

// Count returns the number of frames recorded so far
func (r *Recorder) Count() int { return r.count }

func (r *Recorder) Priority() int { return 50 }

// Update samples every body. The first write error stops further writes
// and is returned by Close.
func (r *Recorder) Update(w *core.World, dt float64) {
	if r.err != nil {
		return
	}
	if r.Every > 1 && w.TickCount%r.Every != 0 {
		return
	}
	for _, s := range systems.Snapshots(w) {
		f := Frame{
			Tick:        w.TickCount,
			Agent:       uint64(s.ID),
			X:           s.Location.X,
			Y:           s.Location.Y,
			VX:          s.Velocity.X,
			VY:          s.Velocity.Y,
			Orientation: s.Orientation,
		}
		if c := w.Get(s.ID, core.CompAppearance); c != nil {
			f.Label = c.(*core.Appearance).Label
		}
		if err := r.Record(f); err != nil {
			r.err = fmt.Errorf("trace: record tick %d: %w", w.TickCount, err)
			return
		}
	}
}

// Close flushes and closes the trace file
func (r *Recorder) Close() error {
	var err error
	if r.writer != nil {
		err = r.writer.Flush()
	}
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}
	return errors.Join(r.err, err)
}

// Trace is a loaded recording
type Trace struct {
	Frames []Frame
}

// Load reads a trace file
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("trace: read %s: %w", path, err)
	}
	return t, nil
}

// Read decodes frames until EOF. A frame cut short is an error.
func Read(r io.Reader) (*Trace, error) {
	t := &Trace{}
	for {
		var f Frame
		err := f.Decode(r)
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.Frames = append(t.Frames, f)
	}
}

// FramesForTick returns all frames recorded at a given tick
func (t *Trace) FramesForTick(tick uint64) []Frame {
	var result []Frame
	for _, f := range t.Frames {
		if f.Tick == tick {
			result = append(result, f)
		}
	}
	return result
}

// Agent returns the frames of one agent in tick order
func (t *Trace) Agent(id uint64) []Frame {
	var result []Frame
	for _, f := range t.Frames {
		if f.Agent == id {
			result = append(result, f)
		}
	}
	return result
}
