// Package interfaces declares the capability contracts resolved through the
// dependency injection container. Concrete implementations live in their own
// packages and are bound to these interfaces at registration time.
package interfaces

// Weapon is a melee weapon a warrior strikes with.
type Weapon interface {
	// Hit performs a strike and reports its effect.
	Hit() string
}

// ThrowableWeapon is a ranged weapon a warrior throws.
type ThrowableWeapon interface {
	// Throw hurls the weapon and reports its effect.
	Throw() string
}

// Warrior fights with a melee weapon and sneaks with a throwable one.
// Exactly one implementation is bound per process; the bound instance is
// shared by all requests.
type Warrior interface {
	Fight() string
	Sneak() string
}
