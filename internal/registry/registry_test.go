package registry

import (
	"testing"

	"github.com/go-lrc/lrc/internal/types"
)

type fakeParser struct{}

func (fakeParser) Parse(text string) (*types.Document, error) {
	return types.NewDocument(types.DialectStandard), nil
}

func TestRegisterAndGet(t *testing.T) {
	const fake = types.Dialect(99)

	if Get(fake) != nil {
		t.Fatal("Get returned a parser for an unregistered dialect")
	}

	Register(fake, fakeParser{})
	if Get(fake) == nil {
		t.Fatal("Get returned nil after Register")
	}
}
