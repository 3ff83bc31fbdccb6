// Package assets loads textures, skybox faces and model files off the main thread and
// hands the results back to it.
//
// Requests return a handle immediately. Reading and decoding run on goroutines bounded
// by a semaphore; completions are queued and applied only when the owner calls Poll or
// Wait, so handles resolve and callbacks run on the caller's thread.
package assets

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/sync/semaphore"

	"pool-scene/internal/loading"
	"pool-scene/internal/scene"
)

// Diagnostics receives load failures.
type Diagnostics interface {
	Errorf(format string, args ...any)
}

// Options configures a Loader. A nil Manager disables progress tracking.
type Options struct {
	Root           string
	Workers        int
	MaxTextureSize int
	Manager        *loading.Manager
	Log            Diagnostics
}

// Loader issues asynchronous asset loads.
type Loader struct {
	ctx     context.Context
	root    string
	maxSize int
	manager *loading.Manager
	log     Diagnostics
	sem     *semaphore.Weighted
	results chan func()
	pending int
}

// New returns a loader. ctx bounds the background work: once it is done, queued loads fail.
func New(ctx context.Context, opts Options) *Loader {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Loader{
		ctx:     ctx,
		root:    opts.Root,
		maxSize: opts.MaxTextureSize,
		manager: opts.Manager,
		log:     opts.Log,
		sem:     semaphore.NewWeighted(int64(workers)),
		results: make(chan func(), 32),
	}
}

// Resolve returns the on-disk path for an asset path.
func (l *Loader) Resolve(path string) string {
	if l.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.root, path)
}

// LoadTexture requests the image at path. The returned texture resolves on a later Poll.
// A failed load is logged and leaves the texture unresolved.
func (l *Loader) LoadTexture(path string, cs scene.ColorSpace) *scene.Texture {
	tex := scene.NewTexture(path, cs)
	file := l.Resolve(path)
	l.start(path)
	l.spawn(func(err error) func() {
		var img image.Image
		if err == nil {
			img, err = readImage(file, l.maxSize)
		}
		return func() {
			if err != nil {
				l.fail(path, fmt.Errorf("texture: %w", err))
				return
			}
			tex.Resolve(img)
			l.end(path)
		}
	})
	return tex
}

// LoadCube requests the six skybox faces (+X, -X, +Y, -Y, +Z, -Z). It is not tracked by
// the progress manager. A failure is logged and the cube stays unresolved.
func (l *Loader) LoadCube(paths [scene.FaceCount]string) *scene.CubeTexture {
	cube := scene.NewCubeTexture(paths)
	var files [scene.FaceCount]string
	for i, p := range paths {
		files[i] = l.Resolve(p)
	}
	l.pending++
	l.spawn(func(err error) func() {
		var strip image.Image
		if err == nil {
			strip, err = readCube(files, l.maxSize)
		}
		return func() {
			if err != nil {
				l.errorf("assets: skybox: %v", err)
				return
			}
			cube.Resolve(strip)
		}
	})
	return cube
}

// LoadModel requests the model file at path. onLoad runs on a later Poll if the file is
// a recognised glTF; otherwise the error is logged and onError, if set, runs instead.
func (l *Loader) LoadModel(path string, onLoad func(*scene.Model), onError func(error)) {
	file := l.Resolve(path)
	l.start(path)
	l.spawn(func(err error) func() {
		var m *scene.Model
		if err == nil {
			m, err = readModel(path, file)
		}
		return func() {
			if err != nil {
				err = fmt.Errorf("model: %w", err)
				l.fail(path, err)
				if onError != nil {
					onError(err)
				}
				return
			}
			if onLoad != nil {
				onLoad(m)
			}
			l.end(path)
		}
	})
}

// Pending returns the number of requests whose results have not been applied yet.
func (l *Loader) Pending() int {
	return l.pending
}

// Poll applies every completed load without blocking and returns how many it applied.
func (l *Loader) Poll() int {
	n := 0
	for {
		select {
		case apply := <-l.results:
			l.apply(apply)
			n++
		default:
			return n
		}
	}
}

// Wait applies completions until nothing is pending or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	for l.pending > 0 {
		select {
		case apply := <-l.results:
			l.apply(apply)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (l *Loader) apply(fn func()) {
	l.pending--
	fn()
}

func (l *Loader) start(path string) {
	l.pending++
	if l.manager != nil {
		l.manager.ItemStart(path)
	}
}

func (l *Loader) end(path string) {
	if l.manager != nil {
		l.manager.ItemEnd(path)
	}
}

func (l *Loader) fail(path string, err error) {
	l.errorf("assets: %s: %v", path, err)
	if l.manager != nil {
		l.manager.ItemError(path)
	}
}

func (l *Loader) errorf(format string, args ...any) {
	if l.log != nil {
		l.log.Errorf(format, args...)
	}
}

// spawn runs work on a goroutine once a worker slot is free and queues the function it
// returns for the owner's thread. If no slot can be acquired before the loader's context
// ends, work is called with that error and must skip its I/O.
func (l *Loader) spawn(work func(err error) func()) {
	go func() {
		if err := l.sem.Acquire(l.ctx, 1); err != nil {
			l.results <- work(err)
			return
		}
		apply := work(nil)
		l.sem.Release(1)
		l.results <- apply
	}()
}

func readCube(files [scene.FaceCount]string, maxSize int) (image.Image, error) {
	var faces [scene.FaceCount]image.Image
	for i, f := range files {
		img, err := readImage(f, maxSize)
		if err != nil {
			return nil, err
		}
		faces[i] = img
	}
	return composeStrip(faces)
}

func readModel(path, file string) (*scene.Model, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	head := make([]byte, 512)
	n, _ := f.Read(head)
	kind, err := sniffModel(head[:n])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return &scene.Model{Path: path, File: file, Kind: kind, Size: info.Size()}, nil
}
