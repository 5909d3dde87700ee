//go:build opencl

package wave

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

const waveKernelSource = `__kernel void wave_update(
    __global const float* current,
    __global const float* previous,
    __global float* next,
    __global const float* elevation,
    const int width,
    const int height,
    const float k)
{
    int i = get_global_id(1);
    int j = get_global_id(0);
    if (i >= height || j >= width) {
        return;
    }
    int idx = i * width + j;
    if (elevation[idx] > 0.0f) {
        next[idx] = current[idx];
    } else if (i == 0 || i == height - 1 || j == 0 || j == width - 1) {
        next[idx] = 0.0f;
    } else {
        float c = current[idx];
        float lap = current[idx - width] + current[idx + width] +
                    current[idx - 1] + current[idx + 1] - 4.0f * c;
        next[idx] = 2.0f * c - previous[idx] + k * lap;
    }
}`

// Kernel argument positions of wave_update.
const (
	argCurrent = iota
	argPrevious
	argNext
	argElevation
	argWidth
	argHeight
	argK
)

type openCLBackend struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	slots      [3]*cl.MemObject
	elevation  *cl.MemObject
	width      int
	height     int
	deviceName string

	boundCurr *cl.MemObject
	boundPrev *cl.MemObject
	boundNext *cl.MemObject
	boundK    float32
	kSet      bool
}

func newOpenCLBackend() (Backend, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, fmt.Errorf("%w: no OpenCL platforms available", ErrBackendUnavailable)
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, fmt.Errorf("%w: no suitable OpenCL devices found", ErrBackendUnavailable)
	}

	b := &openCLBackend{deviceName: device.Name()}
	b.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	// In-order queue: each NDRange completes before the next one starts.
	b.queue, err = b.context.CreateCommandQueue(device, 0)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	b.program, err = b.context.CreateProgramWithSource([]string{waveKernelSource})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := b.program.BuildProgram([]*cl.Device{device}, "-cl-std=CL1.2"); err != nil {
		b.Close()
		var buildErr cl.BuildError
		if errors.As(err, &buildErr) {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	b.kernel, err = b.program.CreateKernel("wave_update")
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	return b, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

func (b *openCLBackend) Name() string {
	return fmt.Sprintf("%s (%s)", BackendOpenCL, b.deviceName)
}

func (b *openCLBackend) Load(g *Grid) error {
	b.releaseBuffers()
	b.width, b.height = g.Width, g.Height
	byteSize := g.Width * g.Height * int(unsafe.Sizeof(float32(0)))

	var err error
	b.elevation, err = b.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize)
	if err != nil {
		return fmt.Errorf("allocating elevation buffer: %w", err)
	}
	if _, err := b.queue.EnqueueWriteBufferFloat32(b.elevation, true, 0, g.Elevation, nil); err != nil {
		return fmt.Errorf("writing elevation buffer: %w", err)
	}
	for s := range b.slots {
		b.slots[s], err = b.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
		if err != nil {
			return fmt.Errorf("allocating slot %d buffer: %w", s, err)
		}
		if _, err := b.queue.EnqueueWriteBufferFloat32(b.slots[s], true, 0, g.Slot(s), nil); err != nil {
			return fmt.Errorf("writing slot %d buffer: %w", s, err)
		}
	}
	if err := b.kernel.SetArgBuffer(argElevation, b.elevation); err != nil {
		return fmt.Errorf("setting elevation argument: %w", err)
	}
	if err := b.kernel.SetArgInt32(argWidth, int32(g.Width)); err != nil {
		return fmt.Errorf("setting width argument: %w", err)
	}
	if err := b.kernel.SetArgInt32(argHeight, int32(g.Height)); err != nil {
		return fmt.Errorf("setting height argument: %w", err)
	}
	b.boundCurr, b.boundPrev, b.boundNext = nil, nil, nil
	b.kSet = false
	return nil
}

// bindRoles rebinds the buffer arguments that changed since the last step.
// This is how the role rotation reaches the device: no buffer is copied.
func (b *openCLBackend) bindRoles(roles Roles, k float32) error {
	curr, prev, next := b.slots[roles.Current], b.slots[roles.Oldest], b.slots[roles.Scratch]
	if b.boundCurr != curr {
		if err := b.kernel.SetArgBuffer(argCurrent, curr); err != nil {
			return err
		}
		b.boundCurr = curr
	}
	if b.boundPrev != prev {
		if err := b.kernel.SetArgBuffer(argPrevious, prev); err != nil {
			return err
		}
		b.boundPrev = prev
	}
	if b.boundNext != next {
		if err := b.kernel.SetArgBuffer(argNext, next); err != nil {
			return err
		}
		b.boundNext = next
	}
	if !b.kSet || b.boundK != k {
		if err := b.kernel.SetArgFloat32(argK, k); err != nil {
			return err
		}
		b.boundK, b.kSet = k, true
	}
	return nil
}

func (b *openCLBackend) Step(roles Roles, k float32) error {
	if b.elevation == nil {
		return errors.New("backend not loaded")
	}
	if err := b.bindRoles(roles, k); err != nil {
		return fmt.Errorf("binding buffers: %w", err)
	}
	global := []int{b.width, b.height}
	if _, err := b.queue.EnqueueNDRangeKernel(b.kernel, nil, global, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if err := b.queue.Finish(); err != nil {
		return fmt.Errorf("waiting for kernel: %w", err)
	}
	return nil
}

func (b *openCLBackend) Read(slot int, dst []float32) error {
	if b.elevation == nil {
		return errors.New("backend not loaded")
	}
	if len(dst) != b.width*b.height {
		return fmt.Errorf("readback buffer size %d, want %d", len(dst), b.width*b.height)
	}
	if _, err := b.queue.EnqueueReadBufferFloat32(b.slots[slot], true, 0, dst, nil); err != nil {
		return fmt.Errorf("reading slot %d buffer: %w", slot, err)
	}
	return nil
}

func (b *openCLBackend) releaseBuffers() {
	for s, buf := range b.slots {
		if buf != nil {
			buf.Release()
			b.slots[s] = nil
		}
	}
	if b.elevation != nil {
		b.elevation.Release()
		b.elevation = nil
	}
}

func (b *openCLBackend) Close() {
	b.releaseBuffers()
	if b.kernel != nil {
		b.kernel.Release()
		b.kernel = nil
	}
	if b.program != nil {
		b.program.Release()
		b.program = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.context != nil {
		b.context.Release()
		b.context = nil
	}
}
