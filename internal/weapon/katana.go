// Package weapon provides the weapon implementations bound into the
// dependency injection container.
package weapon

import "github.com/Peculiar9/dojo/internal/types/interfaces"

// Katana is a melee weapon. It carries no state.
type Katana struct{}

// NewKatana creates the Katana bound as the Weapon capability.
func NewKatana() interfaces.Weapon {
	return &Katana{}
}

// Hit implements interfaces.Weapon.
func (k *Katana) Hit() string {
	return "cut!"
}
