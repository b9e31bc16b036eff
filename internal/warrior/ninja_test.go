package warrior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peculiar9/dojo/internal/weapon"
)

type stubWeapon struct{ out string }

func (s *stubWeapon) Hit() string { return s.out }

type stubThrowable struct{ out string }

func (s *stubThrowable) Throw() string { return s.out }

// TestNinja_Delegates verifies the ninja delegates Fight to the melee weapon
// and Sneak to the throwable weapon, without touching the results.
func TestNinja_Delegates(t *testing.T) {
	t.Parallel()

	n := NewNinja(&stubWeapon{out: "slash"}, &stubThrowable{out: "whoosh"})
	require.NotNil(t, n)

	assert.Equal(t, "slash", n.Fight())
	assert.Equal(t, "whoosh", n.Sneak())
}

// TestNinja_WithBoundWeapons verifies the behavior with the weapons the
// container actually binds.
func TestNinja_WithBoundWeapons(t *testing.T) {
	t.Parallel()

	n := NewNinja(weapon.NewKatana(), weapon.NewShuriken())

	assert.Equal(t, "cut!", n.Fight())
	assert.Equal(t, "hit!", n.Sneak())
}
