package dependencyinjection

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/dig"
)

// Container is the dependency injection container of the node.
var Container = dig.New()

// Provide registers the constructors in container.
func Provide(container *dig.Container, constructors ...interface{}) error {
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return errors.Errorf("failed to provide dependency: %w", err)
		}
	}

	return nil
}
