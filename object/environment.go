package object

// Environment stores variable and function bindings by name. Function calls
// evaluate in an enclosed environment so parameters shadow outer bindings
// without clobbering them.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a new top-level environment.
func NewEnvironment() *Environment {
	return &Environment{store: map[string]Object{}}
}

// NewEnclosedEnvironment creates an environment nested inside outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: map[string]Object{}, outer: outer}
}

// Get looks up a name, consulting enclosing environments as needed.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds a name in this environment.
func (e *Environment) Set(name string, value Object) {
	e.store[name] = value
}

// Assign rebinds an existing name in whichever environment defines it,
// reporting false when the name is not defined anywhere.
func (e *Environment) Assign(name string, value Object) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = value
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return false
}
