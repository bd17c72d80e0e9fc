package lib

import (
	"errors"
	"fmt"
)

var ErrRedefinition = errors.New("function redefined")

// Module is every top-level construct parsed from one source, in order.
type Module struct {
	Name   string
	Items  []TopLevel
	Errors []error
	protos map[string]*Prototype
	defs   map[string]*Function
}

// Lookup returns the prototype most recently declared or defined under name.
func (m Module) Lookup(name string) (*Prototype, bool) {
	proto, ok := m.protos[name]
	return proto, ok
}

// Definition returns the body-carrying function named name.
func (m Module) Definition(name string) (*Function, bool) {
	fn, ok := m.defs[name]
	return fn, ok
}

// Err joins the errors recorded while building the module.
func (m Module) Err() error {
	return errors.Join(m.Errors...)
}

// ModuleBuilder is a Handler that collects a Module.
type ModuleBuilder struct {
	module Module
}

func NewModuleBuilder(name string) *ModuleBuilder {
	return &ModuleBuilder{
		module: Module{
			Name:   name,
			Items:  []TopLevel{},
			Errors: []error{},
			protos: map[string]*Prototype{},
			defs:   map[string]*Function{},
		},
	}
}

func (m *ModuleBuilder) Module() Module {
	return m.module
}

func (m *ModuleBuilder) HandleDefinition(fn *Function) {
	name := fn.Proto.Name
	if _, exists := m.module.defs[name]; exists {
		m.HandleError(fmt.Errorf("%w: function named '%s' already has a body", ErrRedefinition, name))
		return
	}
	m.module.defs[name] = fn
	m.module.protos[name] = fn.Proto
	m.module.Items = append(m.module.Items, fn)
}

func (m *ModuleBuilder) HandleExtern(proto *Prototype) {
	m.module.protos[proto.Name] = proto
	m.module.Items = append(m.module.Items, proto)
}

func (m *ModuleBuilder) HandleTopLevelExpr(fn *Function) {
	m.module.Items = append(m.module.Items, fn)
}

func (m *ModuleBuilder) HandleError(err error) {
	m.module.Errors = append(m.module.Errors, err)
}
