package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/test"
)

func testScene(t *testing.T) *lottie.Scene {
	scene, err := lottie.ParseScene(strings.NewReader(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[]}`), lottie.Options{})
	test.Error(t, err)
	return scene
}

func TestFrames(t *testing.T) {
	test.T(t, Frames(0.0, 3.0, 1.0), []float64{0.0, 1.0, 2.0})
	test.T(t, Frames(0.0, 2.0, 0.5), []float64{0.0, 0.5, 1.0, 1.5})
	test.T(t, Frames(0.0, 2.5, 1.0), []float64{0.0, 1.0, 2.0})
	test.T(t, len(Frames(0.0, 3.0, 0.0)), 0)
	test.T(t, len(Frames(3.0, 0.0, 1.0)), 0)
}

func TestPlayerRender(t *testing.T) {
	var calls atomic.Int32
	encode := func(w io.Writer, frame float64) error {
		calls.Add(1)
		_, err := fmt.Fprintf(w, "frame %v", frame)
		return err
	}
	p := New(testScene(t), encode, &Options{Workers: 3})

	frames, err := p.Render(context.Background(), 0.0, 10.0, 1.0)
	test.Error(t, err)
	test.T(t, len(frames), 10)
	for i, frame := range frames {
		test.Float(t, frame.Number, float64(i))
		test.String(t, string(frame.Data), fmt.Sprintf("frame %v", i))
	}
	test.T(t, p.Cached(), 10)
	test.T(t, calls.Load(), int32(10))

	// cached frames are not encoded again
	frame, err := p.Frame(context.Background(), 4.0)
	test.Error(t, err)
	test.String(t, string(frame.Data), "frame 4")
	test.T(t, calls.Load(), int32(10))

	p.Flush()
	test.T(t, p.Cached(), 0)
	_, err = p.Frame(context.Background(), 4.0)
	test.Error(t, err)
	test.T(t, calls.Load(), int32(11))
}

func TestPlayerEach(t *testing.T) {
	encode := func(w io.Writer, frame float64) error {
		_, err := fmt.Fprintf(w, "%v", frame)
		return err
	}
	p := New(testScene(t), encode, nil)

	var numbers []float64
	err := p.Each(context.Background(), 2.0, 5.0, 1.0, func(frame Frame) error {
		numbers = append(numbers, frame.Number)
		return nil
	})
	test.Error(t, err)
	test.T(t, numbers, []float64{2.0, 3.0, 4.0})
}

func TestPlayerError(t *testing.T) {
	errEncode := errors.New("encode")
	encode := func(w io.Writer, frame float64) error {
		if frame == 3.0 {
			return errEncode
		}
		return nil
	}
	p := New(testScene(t), encode, nil)
	_, err := p.Render(context.Background(), 0.0, 5.0, 1.0)
	test.That(t, errors.Is(err, errEncode))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Frame(ctx, 0.0)
	test.That(t, errors.Is(err, context.Canceled))
}

func TestPlayerScene(t *testing.T) {
	scene := testScene(t)
	p := New(scene, func(io.Writer, float64) error { return nil }, nil)
	test.That(t, p.Scene() == scene)
}
