package elicit

// Backend is the sole entry point a presentation surface implements. It is
// handed a (possibly assumption-pruned) definition and must return a store
// answering every remaining question before returning success.
//
// Validation retry looping is the backend's concern: Collect only returns
// once every field is valid, or with ErrCancelled / a *BackendError. The
// validate callback is side-effect-free with respect to the store.
type Backend interface {
	Collect(def Definition, validate FieldValidator) (Responses, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(def Definition, validate FieldValidator) (Responses, error)

// Collect implements Backend.
func (f BackendFunc) Collect(def Definition, validate FieldValidator) (Responses, error) {
	return f(def, validate)
}
