package libemitter

import (
	"github.com/stretchr/testify/mock"
)

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Handle(args ...int) {
	in := make([]any, len(args))
	for i, a := range args {
		in[i] = a
	}
	m.Called(in...)
}

// recorder collects the arguments of every call it receives.
type recorder[A any] struct {
	calls [][]A
}

func (r *recorder[A]) Handle(args ...A) {
	r.calls = append(r.calls, append([]A(nil), args...))
}
