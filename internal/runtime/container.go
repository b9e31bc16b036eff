// Package runtime provides the dependency injection container for the application
package runtime

import (
	"go.uber.org/dig"
)

// container is the global dependency injection container
var container *dig.Container

// init initializes the dependency injection container on startup
func init() {
	container = dig.New()
}

// GetContainer returns a reference to the global DI container
func GetContainer() *dig.Container {
	return container
}

// Register feeds a list of constructors into the container. Registration
// happens once, in main, before the listener starts; afterwards the
// container is only read. dig caches each constructor's result, so every
// resolution of a type observes the same instance.
func Register(c *dig.Container, providers ...interface{}) error {
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return err
		}
	}
	return nil
}
