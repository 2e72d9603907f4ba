package matcher

// Environment exposes host-provided singletons that exist only in
// some execution contexts, such as a browser-like host's window
// and document.
type Environment interface {
	// Window returns the host window object, if there is one.
	Window() (any, bool)
	// Document returns the host document object, if there is one.
	Document() (any, bool)
}

// NoEnvironment is an Environment without host globals. It is
// the default for registries.
type NoEnvironment struct{}

func (NoEnvironment) Window() (any, bool)   { return nil, false }
func (NoEnvironment) Document() (any, bool) { return nil, false }

// StaticEnvironment serves fixed window and document values. A
// nil field means the global does not exist.
type StaticEnvironment struct {
	WindowObject   any
	DocumentObject any
}

func (e StaticEnvironment) Window() (any, bool) {
	return e.WindowObject, e.WindowObject != nil
}

func (e StaticEnvironment) Document() (any, bool) {
	return e.DocumentObject, e.DocumentObject != nil
}
