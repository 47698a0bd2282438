// Package trace records agent kinematics to a compact binary file so
// headless runs can be compared and replayed.
package trace

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"
)

// Frame is one agent's kinematic state at a tick
type Frame struct {
	Tick        uint64
	Agent       uint64
	X, Y        float64
	VX, VY      float64
	Orientation float64
	Label       string
}

// Encode writes a frame to binary
func (f *Frame) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, f.Tick); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.Agent); err != nil {
		return err
	}
	for _, v := range [...]float64{f.X, f.Y, f.VX, f.VY, f.Orientation} {
		if err := binary.Write(w, binary.LittleEndian, math.Float64bits(v)); err != nil {
			return err
		}
	}
	label := clipLabel(f.Label)
	if err := binary.Write(w, binary.LittleEndian, uint16(len(label))); err != nil {
		return err
	}
	_, err := io.WriteString(w, label)
	return err
}

// clipLabel cuts s to the length prefix limit without splitting a rune.
func clipLabel(s string) string {
	if len(s) <= math.MaxUint16 {
		return s
	}
	n := math.MaxUint16
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Decode reads a frame from binary. It returns io.EOF only when no byte of
// the frame was available.
func (f *Frame) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Tick); err != nil {
		return err
	}
	if err := f.decodeBody(r); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

func (f *Frame) decodeBody(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Agent); err != nil {
		return err
	}
	var bits [5]uint64
	if err := binary.Read(r, binary.LittleEndian, &bits); err != nil {
		return err
	}
	f.X = math.Float64frombits(bits[0])
	f.Y = math.Float64frombits(bits[1])
	f.VX = math.Float64frombits(bits[2])
	f.VY = math.Float64frombits(bits[3])
	f.Orientation = math.Float64frombits(bits[4])

	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return err
	}
	f.Label = ""
	if n > 0 {
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		f.Label = string(buf)
	}
	return nil
}
