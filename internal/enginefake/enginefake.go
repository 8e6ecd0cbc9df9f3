// Package enginefake is an in-memory stand-in for the native FMOD engine.
// It installs itself into the internal/bindings entry-point table so the
// guard and facade layers can be exercised without the proprietary shared
// libraries, the same way the wrapper's network-less sibling packages test
// against an in-process backend.
//
// The fake models the behaviors the safety envelope depends on: handle
// allocation and invalidation, voice stealing, non-blocking loading states,
// bank unload invalidating dependent event descriptions, and the result
// codes the facade branches on. It does not produce audio.
package enginefake

import (
	"sync"
	"unsafe"

	"github.com/velora-audio/fmod-go/internal/bindings"
)

type kind int

const (
	kindSystem kind = iota
	kindSound
	kindChannel
	kindChannelGroup
	kindDSP
	kindGeometry
	kindReverb3D
	kindStudioSystem
	kindBank
	kindEventDescription
	kindEventInstance
)

type object struct {
	kind   kind
	system uintptr // owning core or studio system, zero for systems

	// sound
	name      string
	mode      bindings.Mode
	loopCount int32
	openState bindings.OpenState

	// channel
	sound   uintptr
	playing bool
	stolen  bool
	paused  bool
	volume  float32
	pitch   float32
	group   uintptr

	// dsp
	dspType bindings.DSPType
	active  bindings.Bool
	bypass  bindings.Bool
	params  map[int32]float32

	// geometry
	maxPolygons int32
	polygons    int32

	// studio
	path     string
	loading  bindings.LoadingState
	events   []uintptr
	playback bindings.PlaybackState
	valid    bool
	oneshot  bool
	is3D     bool

	userData uintptr
}

// Engine is one fake native engine process. Install wires it into the
// bindings table; all state is internal and protected by a single mutex, the
// fake's substitute for the real engine's internal synchronization.
type Engine struct {
	mu          sync.Mutex
	next        uintptr
	objects     map[uintptr]*object
	initialized map[uintptr]int32 // system -> maxChannels
	failNext    map[string]bindings.Result

	// BankEvents maps a bank filename (or memory-load pseudo name) to the
	// event paths the bank contains. Configure before loading the bank.
	// Event3D and EventOneshot flag individual paths; unlisted events are
	// 2D and looping.
	BankEvents   map[string][]string
	Event3D      map[string]bool
	EventOneshot map[string]bool

	diskBusy int32
	stolen   int
}

// New returns an empty fake engine.
func New() *Engine {
	return &Engine{
		next:         0x1000,
		objects:      make(map[uintptr]*object),
		initialized:  make(map[uintptr]int32),
		failNext:     make(map[string]bindings.Result),
		BankEvents:   make(map[string][]string),
		Event3D:      make(map[string]bool),
		EventOneshot: make(map[string]bool),
	}
}

// Install populates the bindings entry-point table with this engine.
func (e *Engine) Install() {
	bindings.InstallBackend(e.fill, true)
}

// FailNext arranges for the next call to the named entry point (for example
// "SystemCreateSound") to fail with the given result code.
func (e *Engine) FailNext(op string, r bindings.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failNext[op] = r
}

// LiveObjects returns the number of native objects currently allocated,
// systems included. Tests use it to prove release paths free everything.
func (e *Engine) LiveObjects() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.objects)
}

// SystemCount returns the number of live systems, core and Studio.
func (e *Engine) SystemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, o := range e.objects {
		if o.kind == kindSystem || o.kind == kindStudioSystem {
			n++
		}
	}
	return n
}

// StolenChannels returns how many channels the voice stealer has reclaimed.
func (e *Engine) StolenChannels() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stolen
}

func (e *Engine) fail(op string) (bindings.Result, bool) {
	if r, ok := e.failNext[op]; ok {
		delete(e.failNext, op)
		return r, true
	}
	return bindings.OK, false
}

func (e *Engine) alloc(o *object) uintptr {
	h := e.next
	e.next += 0x10
	e.objects[h] = o
	return h
}

func (e *Engine) get(h uintptr, k kind) (*object, bindings.Result) {
	o, ok := e.objects[h]
	if !ok || o.kind != k {
		return nil, bindings.ErrInvalidHandle
	}
	return o, bindings.OK
}

// channel returns the channel object behind h, reporting voice stealing as
// the native library does: a stolen handle yields ErrChannelStolen, a stopped
// or unknown one ErrInvalidHandle.
func (e *Engine) channel(h uintptr) (*object, bindings.Result) {
	o, ok := e.objects[h]
	if !ok {
		return nil, bindings.ErrInvalidHandle
	}
	if o.kind != kindChannel {
		return nil, bindings.ErrInvalidHandle
	}
	if o.stolen {
		return nil, bindings.ErrChannelStolen
	}
	return o, bindings.OK
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	var b []byte
	for *p != 0 {
		b = append(b, *p)
		p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1))
	}
	return string(b)
}

func putString(dst []byte, size int32, s string) bindings.Result {
	if size <= 0 || len(dst) == 0 {
		return bindings.ErrInvalidParam
	}
	n := int(size)
	if n > len(dst) {
		n = len(dst)
	}
	if len(s)+1 > n {
		copy(dst, s[:n-1])
		dst[n-1] = 0
		return bindings.ErrTruncated
	}
	copy(dst, s)
	dst[len(s)] = 0
	return bindings.OK
}

// releaseOwned drops every object owned (directly or transitively) by system.
func (e *Engine) releaseOwned(system uintptr) {
	for h, o := range e.objects {
		if o.system == system {
			delete(e.objects, h)
		}
	}
}

func (e *Engine) systemCreate(out *uintptr, headerVersion uint32) bindings.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if r, ok := e.fail("SystemCreate"); ok {
		return r
	}
	if headerVersion != bindings.HeaderVersion {
		return bindings.ErrHeaderMismatch
	}
	*out = e.alloc(&object{kind: kindSystem})
	return bindings.OK
}

func (e *Engine) systemRelease(sys uintptr) bindings.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, r := e.get(sys, kindSystem); r != bindings.OK {
		return r
	}
	e.releaseOwned(sys)
	delete(e.objects, sys)
	delete(e.initialized, sys)
	return bindings.OK
}

func (e *Engine) playSound(sys, sound, group uintptr, paused bindings.Bool, out *uintptr) bindings.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if r, ok := e.fail("SystemPlaySound"); ok {
		return r
	}
	if _, r := e.get(sys, kindSystem); r != bindings.OK {
		return r
	}
	maxChannels, ok := e.initialized[sys]
	if !ok {
		return bindings.ErrUninitialized
	}
	snd, r := e.get(sound, kindSound)
	if r != bindings.OK {
		return r
	}
	if snd.openState == bindings.OpenStateLoading {
		return bindings.ErrNotReady
	}

	// Voice stealing: reclaim the oldest playing channel once the voice
	// count is exhausted. The old handle keeps existing but is stolen.
	playing := int32(0)
	var oldest uintptr
	for h, o := range e.objects {
		if o.kind == kindChannel && o.system == sys && o.playing && !o.stolen {
			playing++
			if oldest == 0 || h < oldest {
				oldest = h
			}
		}
	}
	if playing >= maxChannels {
		if oldest == 0 {
			return bindings.ErrChannelAlloc
		}
		e.objects[oldest].stolen = true
		e.objects[oldest].playing = false
		e.stolen++
	}

	*out = e.alloc(&object{
		kind:    kindChannel,
		system:  sys,
		sound:   sound,
		playing: paused == bindings.False,
		paused:  paused == bindings.True,
		volume:  1,
		pitch:   1,
		group:   group,
	})
	return bindings.OK
}

func (e *Engine) loadBank(sys uintptr, name string, flags bindings.LoadBankFlags, out *uintptr) bindings.Result {
	ssys, r := e.get(sys, kindStudioSystem)
	if r != bindings.OK {
		return r
	}
	_ = ssys
	state := bindings.LoadingStateLoaded
	if flags&bindings.LoadBankNonBlocking != 0 {
		state = bindings.LoadingStateLoading
	}
	bank := e.alloc(&object{
		kind:    kindBank,
		system:  sys,
		path:    name,
		loading: state,
		valid:   true,
	})
	for _, p := range e.BankEvents[name] {
		desc := e.alloc(&object{
			kind:    kindEventDescription,
			system:  sys,
			path:    p,
			valid:   true,
			is3D:    e.Event3D[p],
			oneshot: e.EventOneshot[p],
		})
		e.objects[bank].events = append(e.objects[bank].events, desc)
	}
	*out = bank
	return bindings.OK
}
