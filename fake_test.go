package ggsample

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/gogpu/gg/recording"

	"github.com/gogpu/ggsample/backend"
	"github.com/gogpu/ggsample/batch"
	"github.com/gogpu/ggsample/gfx"
)

// callLog records subsystem calls in the order they happen.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (l *callLog) index(call string) int {
	return slices.Index(l.calls, call)
}

// fakePlatform quits after a fixed number of frames.
type fakePlatform struct {
	log *callLog

	initErr    error
	windowErr  error
	contextErr error

	// frames is how many loop iterations run before QuitRequested is true.
	frames int
	checks int

	// tickStep advances the clock on every Ticks call.
	tickStep uint32
	now      uint32

	ctx   *fakeContext
	title string
	w, h  int
	desc  backend.ContextDesc
}

func (p *fakePlatform) Init() error {
	p.log.add("Platform.Init")
	return p.initErr
}

func (p *fakePlatform) CreateWindow(title string, w, h int, desc backend.ContextDesc) (Window, error) {
	p.log.add("Platform.CreateWindow")
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.title, p.w, p.h, p.desc = title, w, h, desc
	return &fakeWindow{log: p.log}, nil
}

func (p *fakePlatform) CreateContext(win Window, desc backend.ContextDesc) (Context, error) {
	p.log.add("Platform.CreateContext")
	if p.contextErr != nil {
		return nil, p.contextErr
	}
	if _, ok := win.(*fakeWindow); !ok {
		return nil, errors.New("foreign window")
	}
	return p.ctx, nil
}

func (p *fakePlatform) PollEvents() {}

func (p *fakePlatform) QuitRequested() bool {
	p.checks++
	return p.checks > p.frames
}

func (p *fakePlatform) Ticks() uint32 {
	p.now += p.tickStep
	return p.now
}

func (p *fakePlatform) Quit() {
	p.log.add("Platform.Quit")
}

type fakeWindow struct {
	log *callLog
}

func (w *fakeWindow) Destroy() {
	w.log.add("Window.Destroy")
}

// fakeContext reports sizes in order, repeating the last one.
type fakeContext struct {
	log *callLog

	sizes [][2]int
	calls int

	intervalErr error
	interval    int
	swapErr     error
}

func (c *fakeContext) SetSwapInterval(interval int) error {
	c.log.add("Context.SetSwapInterval(%d)", interval)
	c.interval = interval
	return c.intervalErr
}

func (c *fakeContext) DrawableSize() (int, int) {
	i := min(c.calls, len(c.sizes)-1)
	c.calls++
	return c.sizes[i][0], c.sizes[i][1]
}

func (c *fakeContext) Swap() error {
	c.log.add("Context.Swap")
	return c.swapErr
}

func (c *fakeContext) Destroy() {
	c.log.add("Context.Destroy")
}

type fakeDevice struct {
	log *callLog

	loadErr  error
	setupErr error
	invalid  bool

	desc   gfx.Desc
	passes []fakePass
}

type fakePass struct {
	action gfx.PassAction
	w, h   int
}

func (d *fakeDevice) LoadAPI() error {
	d.log.add("Device.LoadAPI")
	return d.loadErr
}

func (d *fakeDevice) Setup(desc gfx.Desc) error {
	d.log.add("Device.Setup")
	d.desc = desc
	return d.setupErr
}

func (d *fakeDevice) Valid() bool {
	return !d.invalid
}

func (d *fakeDevice) BeginDefaultPass(action gfx.PassAction, w, h int) {
	d.log.add("Device.BeginDefaultPass")
	d.passes = append(d.passes, fakePass{action: action, w: w, h: h})
}

func (d *fakeDevice) EndPass() { d.log.add("Device.EndPass") }
func (d *fakeDevice) Commit()  { d.log.add("Device.Commit") }

func (d *fakeDevice) Shutdown() {
	d.log.add("Device.Shutdown")
}

type fakeLayer struct {
	log *callLog

	setupErr error
	desc     batch.Desc
	sizes    [][2]int
}

func (l *fakeLayer) Setup(desc batch.Desc) error {
	l.log.add("Layer.Setup")
	l.desc = desc
	return l.setupErr
}

func (l *fakeLayer) Begin(w, h int) *recording.Recorder {
	l.log.add("Layer.Begin")
	l.sizes = append(l.sizes, [2]int{w, h})
	return recording.NewRecorder(w, h)
}

func (l *fakeLayer) Flush()    { l.log.add("Layer.Flush") }
func (l *fakeLayer) End()      { l.log.add("Layer.End") }
func (l *fakeLayer) Shutdown() { l.log.add("Layer.Shutdown") }

// harness wires fakes that share one call log.
type harness struct {
	log      *callLog
	platform *fakePlatform
	ctx      *fakeContext
	device   *fakeDevice
	layer    *fakeLayer

	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(frames int) *harness {
	log := &callLog{}
	ctx := &fakeContext{log: log, sizes: [][2]int{{640, 480}}}
	return &harness{
		log:      log,
		platform: &fakePlatform{log: log, frames: frames, ctx: ctx},
		ctx:      ctx,
		device:   &fakeDevice{log: log},
		layer:    &fakeLayer{log: log},
	}
}

func (h *harness) driver() Driver {
	return Driver{Platform: h.platform, Device: h.device, Layer: h.layer}
}

// config returns callbacks that log into the shared call log.
func (h *harness) config(args ...string) Config {
	return Config{
		Init: func(*App) error {
			h.log.add("App.Init")
			return nil
		},
		Draw: func(*App) {
			h.log.add("App.Draw")
		},
		Terminate: func(*App) {
			h.log.add("App.Terminate")
		},
		Args:   append([]string{"sample"}, args...),
		Stdout: &h.stdout,
		Stderr: &h.stderr,
	}
}

func (h *harness) run(t *testing.T, cfg Config) int {
	t.Helper()
	return Run(cfg, h.driver())
}
