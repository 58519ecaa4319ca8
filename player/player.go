// Package player renders ranges of frames of a scene concurrently and caches the encoded frames.
package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"runtime"
	"strconv"
	"time"

	"github.com/Seanld/lottie"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Encoder renders and encodes a single frame, such as rasterizer.PNGWriter or svg.Writer.
type Encoder func(w io.Writer, frame float64) error

// Options are the player options.
type Options struct {
	Workers  int           // zero uses the number of CPUs
	CacheTTL time.Duration // zero keeps frames forever
	Logger   *zap.Logger
}

var DefaultOptions = Options{}

// Frame is an encoded frame.
type Frame struct {
	Number float64
	Data   []byte
}

// Player renders frames of a scene. It is safe for concurrent use.
type Player struct {
	scene  *lottie.Scene
	encode Encoder
	opts   Options
	log    *zap.Logger
	cache  *cache.Cache
}

// New returns a player that encodes frames of scene.
func New(scene *lottie.Scene, encode Encoder, opts *Options) *Player {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		scene:  scene,
		encode: encode,
		opts:   *opts,
		log:    log,
		cache:  cache.New(ttl, 10*time.Minute),
	}
}

func cacheKey(frame float64) string {
	return strconv.FormatFloat(frame, 'g', -1, 64)
}

// Frames returns the frame numbers from `from` up to but excluding `to` in steps of `step`.
func Frames(from, to, step float64) []float64 {
	if step <= 0.0 || to <= from || math.IsNaN(from) || math.IsInf(to, 0) {
		return nil
	}
	n := int(math.Ceil((to - from) / step))
	frames := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, from+float64(i)*step)
	}
	return frames
}

// Frame returns a single encoded frame.
func (p *Player) Frame(ctx context.Context, frame float64) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	key := cacheKey(frame)
	if data, ok := p.cache.Get(key); ok {
		return Frame{Number: frame, Data: data.([]byte)}, nil
	}

	buf := &bytes.Buffer{}
	if err := p.encode(buf, frame); err != nil {
		return Frame{}, fmt.Errorf("frame %v: %w", frame, err)
	}
	p.cache.Set(key, buf.Bytes(), cache.DefaultExpiration)
	return Frame{Number: frame, Data: buf.Bytes()}, nil
}

// Render renders the frames in [from,to) with the given step concurrently and returns them in frame order.
func (p *Player) Render(ctx context.Context, from, to, step float64) ([]Frame, error) {
	numbers := Frames(from, to, step)
	frames := make([]Frame, len(numbers))

	workers := p.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p.log.Debug("render frames",
		zap.Float64("from", from),
		zap.Float64("to", to),
		zap.Float64("step", step),
		zap.Int("workers", workers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, number := range numbers {
		i, number := i, number
		g.Go(func() error {
			frame, err := p.Frame(ctx, number)
			if err != nil {
				return err
			}
			frames[i] = frame
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// Each renders the frames in [from,to) like Render and calls fn for each frame in order.
func (p *Player) Each(ctx context.Context, from, to, step float64, fn func(Frame) error) error {
	frames, err := p.Render(ctx, from, to, step)
	if err != nil {
		return err
	}
	for _, frame := range frames {
		if err := fn(frame); err != nil {
			return err
		}
	}
	return nil
}

// Flush empties the frame cache.
func (p *Player) Flush() {
	p.cache.Flush()
}

// Cached returns the number of cached frames.
func (p *Player) Cached() int {
	return p.cache.ItemCount()
}

// Scene returns the scene being played.
func (p *Player) Scene() *lottie.Scene {
	return p.scene
}
