package live

import (
	"testing"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPatcher struct{}

func (nopPatcher) PatchElements(string, ...datastar.PatchElementOption) error { return nil }

func TestSessionRegistry(t *testing.T) {
	t.Parallel()

	t.Run("create and get", func(t *testing.T) {
		t.Parallel()

		reg := newSessionRegistry(4)
		sess, err := reg.create()
		require.NoError(t, err)
		require.NotEmpty(t, sess.id)

		got, ok := reg.get(sess.id)
		require.True(t, ok)
		assert.Same(t, sess, got)
		assert.Equal(t, 1, reg.len())
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		reg := newSessionRegistry(4)
		_, ok := reg.get("nope")
		assert.False(t, ok)
	})

	t.Run("capped", func(t *testing.T) {
		t.Parallel()

		reg := newSessionRegistry(2)
		_, err := reg.create()
		require.NoError(t, err)
		_, err = reg.create()
		require.NoError(t, err)

		_, err = reg.create()
		require.ErrorIs(t, err, ErrTooManySessions)
	})

	t.Run("remove frees capacity", func(t *testing.T) {
		t.Parallel()

		reg := newSessionRegistry(1)
		sess, err := reg.create()
		require.NoError(t, err)

		reg.remove(sess.id)
		assert.Equal(t, 0, reg.len())

		_, err = reg.create()
		require.NoError(t, err)
	})
}

func TestSessionStream(t *testing.T) {
	t.Parallel()

	t.Run("attach and detach", func(t *testing.T) {
		t.Parallel()

		sess := newSession("s1")
		require.Nil(t, sess.patcher())

		p := nopPatcher{}
		sess.attach(p)
		assert.Equal(t, p, sess.patcher())

		sess.detach(p)
		assert.Nil(t, sess.patcher())
	})

	t.Run("stale detach keeps fresh stream", func(t *testing.T) {
		t.Parallel()

		sess := newSession("s1")
		old := &patchRecorder{}
		fresh := &patchRecorder{}

		sess.attach(old)
		sess.attach(fresh)
		sess.detach(old)

		assert.Equal(t, fresh, sess.patcher())
	})
}
