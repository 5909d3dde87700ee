//go:build !opencl

package wave

import "fmt"

func newOpenCLBackend() (Backend, error) {
	return nil, fmt.Errorf("%w: OpenCL support is not enabled; rebuild with -tags opencl", ErrBackendUnavailable)
}
