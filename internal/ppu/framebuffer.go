package ppu

// Framebuffer is a minimal FrameSink that stores pixels in a plain array,
// for hosts and tests that don't need a windowing toolkit's surface.
type Framebuffer struct {
	pixels [144][160]uint32
	frames int
}

// NewFramebuffer returns an empty 160x144 Framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

func (f *Framebuffer) SetPixel(x, y int, rgba uint32) {
	f.pixels[y][x] = rgba
}

func (f *Framebuffer) PresentFrame() {
	f.frames++
}

// Pixel returns the colour last written at (x, y).
func (f *Framebuffer) Pixel(x, y int) uint32 {
	return f.pixels[y][x]
}

// Frames returns how many times PresentFrame has fired.
func (f *Framebuffer) Frames() int {
	return f.frames
}
