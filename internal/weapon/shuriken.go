package weapon

import "github.com/Peculiar9/dojo/internal/types/interfaces"

// Shuriken is a throwable weapon. It carries no state.
type Shuriken struct{}

// NewShuriken creates the Shuriken bound as the ThrowableWeapon capability.
func NewShuriken() interfaces.ThrowableWeapon {
	return &Shuriken{}
}

// Throw implements interfaces.ThrowableWeapon.
func (s *Shuriken) Throw() string {
	return "hit!"
}
