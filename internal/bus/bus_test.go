package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	BaseListener[int]
	seen []int
}

func (l *recordingListener) ProcessAdd(v int) error {
	l.seen = append(l.seen, v)
	return nil
}

func TestStorePutFansOutInRegistrationOrder(t *testing.T) {
	s := NewStore[string, int]()
	var order []string

	first := &orderTrackingListener{name: "first", order: &order}
	second := &orderTrackingListener{name: "second", order: &order}
	s.AddListener(first)
	s.AddListener(second)

	require.NoError(t, s.Put("k", 1))
	assert.Equal(t, []string{"first", "second"}, order)

	v, ok := s.GetData("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

type orderTrackingListener struct {
	BaseListener[int]
	name  string
	order *[]string
}

func (l *orderTrackingListener) ProcessAdd(int) error {
	*l.order = append(*l.order, l.name)
	return nil
}

func TestStorePutOverwritesKey(t *testing.T) {
	s := NewStore[string, int]()
	l := &recordingListener{}
	s.AddListener(l)

	require.NoError(t, s.Put("k", 1))
	require.NoError(t, s.Put("k", 2))

	v, ok := s.GetData("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 2}, l.seen)
}

func TestStorePutStopsFanOutOnListenerError(t *testing.T) {
	s := NewStore[string, int]()
	var calledSecond bool
	s.AddListener(failingListener{})
	s.AddListener(&fnListener{fn: func(int) error { calledSecond = true; return nil }})

	err := s.Put("k", 1)
	assert.Error(t, err)
	assert.False(t, calledSecond)
}

type failingListener struct{ BaseListener[int] }

func (failingListener) ProcessAdd(int) error { return assertErr }

var assertErr = &sentinelErr{"boom"}

type sentinelErr struct{ msg string }

func (e *sentinelErr) Error() string { return e.msg }

type fnListener struct {
	BaseListener[int]
	fn func(int) error
}

func (l *fnListener) ProcessAdd(v int) error { return l.fn(v) }
