// internal/capture/webp.go
package capture

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Encode writes img as a lossless WebP file at path, creating parent directories.
func Encode(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create capture dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encode webp: %w", err)
	}
	return f.Close()
}

// Recorder saves numbered frames into Dir without blocking the caller.
type Recorder struct {
	Dir  string
	next int
	done chan Result
}

// Result reports one finished capture.
type Result struct {
	Path string
	Err  error
}

func NewRecorder(dir string) *Recorder {
	return &Recorder{Dir: dir, done: make(chan Result, 4)}
}

// Save copies pixels (RGBA, premultiplied, width×height) and encodes them in
// the background. It returns the path the frame will be written to.
func (r *Recorder) Save(pixels []byte, width, height int) string {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	r.next++
	path := filepath.Join(r.Dir, fmt.Sprintf("frame-%04d.webp", r.next))
	go func() {
		err := Encode(path, img)
		select {
		case r.done <- Result{Path: path, Err: err}:
		default:
			log.Printf("capture: %s: %v", path, err)
		}
	}()
	return path
}

// Poll returns finished captures without blocking.
func (r *Recorder) Poll() []Result {
	var out []Result
	for {
		select {
		case res := <-r.done:
			out = append(out, res)
		default:
			return out
		}
	}
}
