package elicit_test

import (
	"errors"
	"testing"

	elicit "github.com/elicit-go/elicit"
)

func TestWrapBackend(t *testing.T) {
	if elicit.WrapBackend(nil) != nil {
		t.Fatalf("nil must stay nil")
	}

	if got := elicit.WrapBackend(elicit.ErrCancelled); !errors.Is(got, elicit.ErrCancelled) {
		t.Fatalf("cancel passthrough: %v", got)
	}

	cause := errors.New("pipe closed")
	wrapped := elicit.WrapBackend(cause)
	var be *elicit.BackendError
	if !errors.As(wrapped, &be) || !errors.Is(wrapped, cause) {
		t.Fatalf("wrap: %v", wrapped)
	}

	if again := elicit.WrapBackend(wrapped); again != wrapped {
		t.Fatalf("double wrap must be a no-op")
	}
}
