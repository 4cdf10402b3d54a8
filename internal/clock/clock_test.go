package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAdvanceFiresInDueOrder(t *testing.T) {
	c := NewManual(epoch)
	var order []string
	c.After(200*time.Millisecond, func() { order = append(order, "b") })
	c.After(100*time.Millisecond, func() { order = append(order, "a") })
	c.After(500*time.Millisecond, func() { order = append(order, "c") })

	assert.Equal(t, 0, c.Advance(99*time.Millisecond))
	assert.Equal(t, 2, c.Advance(101*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, c.Pending())
	assert.Equal(t, epoch.Add(200*time.Millisecond), c.Now())
}

func TestCancelPreventsCallback(t *testing.T) {
	c := NewManual(epoch)
	fired := false
	id := c.After(time.Second, func() { fired = true })
	require.NotZero(t, id)
	c.Cancel(id)
	c.Cancel(id)
	c.Cancel(0)
	assert.Equal(t, 0, c.Advance(time.Hour))
	assert.False(t, fired)
}

func TestCallbackSchedulesWithinWindow(t *testing.T) {
	c := NewManual(epoch)
	var at []time.Time
	c.After(100*time.Millisecond, func() {
		at = append(at, c.Now())
		c.After(100*time.Millisecond, func() { at = append(at, c.Now()) })
	})
	assert.Equal(t, 2, c.Advance(250*time.Millisecond))
	assert.Equal(t, []time.Time{epoch.Add(100 * time.Millisecond), epoch.Add(200 * time.Millisecond)}, at)
}

func TestIDsAreUniqueAndNonZero(t *testing.T) {
	c := NewManual(epoch)
	a := c.After(0, nil)
	b := c.After(-time.Second, nil)
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, c.Advance(0))
}
