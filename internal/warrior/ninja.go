// Package warrior provides the warrior implementation bound into the
// dependency injection container.
package warrior

import "github.com/Peculiar9/dojo/internal/types/interfaces"

// Ninja is a warrior armed with an injected melee and throwable weapon.
// It holds its collaborators by reference for the lifetime of the process
// and never mutates them after construction.
type Ninja struct {
	katana   interfaces.Weapon
	shuriken interfaces.ThrowableWeapon
}

// NewNinja creates the Ninja bound as the Warrior capability. The weapons
// are resolved from the container, not constructed here.
func NewNinja(katana interfaces.Weapon, shuriken interfaces.ThrowableWeapon) interfaces.Warrior {
	return &Ninja{
		katana:   katana,
		shuriken: shuriken,
	}
}

// Fight strikes with the melee weapon.
func (n *Ninja) Fight() string {
	return n.katana.Hit()
}

// Sneak attacks from range with the throwable weapon.
func (n *Ninja) Sneak() string {
	return n.shuriken.Throw()
}
