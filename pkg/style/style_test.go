package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyler(t *testing.T) {
	t.Parallel()

	t.Run("disabled returns input unchanged", func(t *testing.T) {
		t.Parallel()
		s := New(&bytes.Buffer{}, true)
		require.False(t, s.Enabled())
		require.Equal(t, "Usage:", s.Section("Usage:"))
		require.Equal(t, "hello", s.Name("hello"))
		require.Equal(t, "v1.0.0", s.Muted("v1.0.0"))
		require.Equal(t, "app", s.Title("app"))
	})
	t.Run("non terminal writer is never styled", func(t *testing.T) {
		t.Parallel()
		s := New(&bytes.Buffer{}, false)
		require.False(t, s.Enabled())
		require.Equal(t, "Flags:", s.Section("Flags:"))
	})
	t.Run("plain and nil", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "x", Plain().Title("x"))
		var s *Styler
		require.False(t, s.Enabled())
		require.Equal(t, "x", s.Muted("x"))
	})
}
