package deps

import (
	"testing"

	"github.com/joefazee/directory/internal/logger"
	"github.com/stretchr/testify/assert"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestContainer(t *testing.T) {
	c := NewContainer(nil, nil, nil, nil, nil)

	assert.False(t, c.UsesDatabase())
	assert.IsType(t, &logger.NullLogger{}, c.Logger)

	c.RegisterRepository("greeter_repository", english{})
	c.RegisterService("greeter_service", english{})

	assert.Equal(t, "hello", MustGet[greeter](c.GetRepository, "greeter_repository").Greet())
	assert.Equal(t, "hello", MustGet[greeter](c.GetService, "greeter_service").Greet())
	assert.Nil(t, c.GetService("missing"))

	assert.Panics(t, func() {
		MustGet[greeter](c.GetService, "missing")
	})
}
