package loop_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResources(t *testing.T) {
	r := loop.NewResources()
	assert.Nil(t, loop.GetResource[Counter](r))

	ptr := loop.AddResource(r, Counter{Value: 3})
	require.NotNil(t, ptr)
	assert.Same(t, ptr, loop.GetResource[Counter](r))
	assert.Equal(t, 1, r.Len())

	ptr.Value = 9
	assert.Equal(t, 9, loop.GetResource[Counter](r).Value)

	loop.RemoveResource[Counter](r)
	assert.Nil(t, loop.GetResource[Counter](r))
	assert.Zero(t, r.Len())
}

func TestResourcesArePerType(t *testing.T) {
	r := loop.NewResources()
	loop.AddResource(r, Counter{Value: 1})
	loop.AddResource(r, 7)
	loop.AddResource(r, &Counter{Value: 2})

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 1, loop.GetResource[Counter](r).Value)
	assert.Equal(t, 7, *loop.GetResource[int](r))
	assert.Equal(t, 2, (*loop.GetResource[*Counter](r)).Value)
}

func TestNewSingleton(t *testing.T) {
	r := loop.NewResources()

	a := loop.NewSingleton(r, Counter{Value: 4})
	b := loop.NewSingleton[Counter](r)

	require.True(t, a.Exists())
	assert.Same(t, a.Get(), b.Get())
	assert.Equal(t, 4, b.Get().Value)
}

func TestSingletonLateBinding(t *testing.T) {
	r := loop.NewResources()

	var s loop.Singleton[Counter]
	s.Init(r)
	assert.False(t, s.Exists())
	assert.Nil(t, s.Get())

	loop.AddResource(r, Counter{Value: 5})
	assert.True(t, s.Exists())
	assert.Equal(t, 5, s.Get().Value)
}

func TestCommandsFlushOrder(t *testing.T) {
	scheduler := loop.NewScheduler(loop.NewResources())

	var order []string
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			order = append(order, "first")
			frame.Commands.Defer(func() { order = append(order, "nested") })
		})
		frame.Commands.Defer(func() { order = append(order, "second") })
		assert.Equal(t, 2, frame.Commands.Len())
	}))

	scheduler.Once(0)
	assert.Equal(t, []string{"first", "second", "nested"}, order)

	order = nil
	scheduler.Once(time.Millisecond)
	assert.Equal(t, []string{"first", "second", "nested"}, order, "the buffer is empty between frames")
}

func TestManualClock(t *testing.T) {
	c := loop.NewManualClock(time.Second)
	assert.Equal(t, time.Second, c.Now())

	assert.Equal(t, 1500*time.Millisecond, c.Advance(500*time.Millisecond))
	assert.Equal(t, 1500*time.Millisecond, c.Now())

	c.Set(0)
	assert.Zero(t, c.Now())
}

func TestMonotonicClock(t *testing.T) {
	c := loop.NewMonotonicClock()
	first := c.Now()
	time.Sleep(2 * time.Millisecond)
	assert.Greater(t, c.Now(), first)
}
