//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

// SetMode selects where a variable assignment lands in the
// environment chain.
type SetMode int

const (
	// SetGlobal always targets the root environment.
	SetGlobal SetMode = iota
	// SetLocal overwrites a variable found in the lookup chain, or
	// creates one in the current environment.
	SetLocal
	// SetLocalNew always creates in the current environment, shadowing
	// any same-named variable elsewhere.
	SetLocalNew
	// SetLocalOnly overwrites an existing non-root match or creates
	// locally; it never writes through to the root.
	SetLocalOnly
)

// Variable is a named, value-holding slot belonging to exactly one
// environment. A variable may carry a watch program that runs in the
// owning environment each time the variable is overwritten.
type Variable struct {
	name  string
	watch string
	env   *Env
	value *Value
}

// Value returns the variable's current value.
func (v *Variable) Value() *Value {
	return v.value
}

// Env is a lexical scope. Variable lookup is two-level: the current
// environment is searched, then the root; intermediate parents are
// deliberately skipped. The breakrun flag stops command iteration in
// the current body and unwinds to the nearest function frame, which
// consumes the return-value slot.
type Env struct {
	parent     *Env
	fn         *Function // set on frames created by a function call
	catcherFor *Value    // head word that triggered the catcher, if any
	vars       []*Variable
	varmap     stringMap
	retval     *Value
	retvalSet  bool
	breakrun   bool
}

// newEnv allocates an environment with the given parent.
func newEnv(parent *Env) *Env {
	return &Env{parent: parent}
}

// lookup finds a variable owned by this environment.
func (e *Env) lookup(name string) *Variable {
	if v, ok := e.varmap.get(name).(*Variable); ok {
		return v
	}
	return nil
}

// PushEnv pushes a fresh environment with the current one as parent
// and makes it current.
func (i *Interp) PushEnv() *Env {
	env := newEnv(i.env)
	i.env = env
	return env
}

// PopEnv discards the current environment and restores its parent.
// The root environment is never popped.
func (i *Interp) PopEnv() {
	if i.env != i.rootenv && i.env.parent != nil {
		i.env = i.env.parent
	}
}

// findVar resolves a name starting at the given environment: the
// environment itself is searched, then the root. Parents between the
// two are not consulted.
func (i *Interp) findVar(env *Env, name string) *Variable {
	if v := env.lookup(name); v != nil {
		return v
	}
	if env != i.rootenv {
		return i.rootenv.lookup(name)
	}
	return nil
}

// SetVar assigns a value to the named variable according to the given
// mode, creating the variable when required, and returns it. An empty
// name is rejected with a nil return. Overwriting a variable with a
// non-empty watch program evaluates the watch in the variable's
// owning environment after the new value is in place. Assignments
// that land in the root environment are mirrored to the host's
// environment store when one is attached.
func (i *Interp) SetVar(name string, val *Value, mode SetMode) *Variable {
	if name == "" {
		return nil
	}
	env := i.env
	if mode == SetGlobal {
		env = i.rootenv
	}
	if mode != SetLocalNew {
		v := i.findVar(env, name)
		if mode == SetLocalOnly && v != nil && v.env == i.rootenv && v.env != env {
			v = nil
		}
		if v != nil {
			if v.watch != "" {
				save := i.env
				i.env = v.env
				v.value = val.Clone()
				i.parse(v.watch, false)
				i.env = save
			} else {
				v.value = val.Clone()
			}
			if v.env == i.rootenv && i.store != nil {
				i.store.Set(name, v.value.String())
			}
			return v
		}
	}
	v := &Variable{name: name, env: env, value: val.Clone()}
	env.vars = append(env.vars, v)
	env.varmap.put(name, v)
	if env == i.rootenv && i.store != nil {
		i.store.Set(name, v.value.String())
	}
	return v
}

// GetVar returns the value of the named variable, or the shared empty
// value when the variable is unbound.
func (i *Interp) GetVar(name string) *Value {
	return i.GetVarOr(name, i.empty)
}

// GetVarOr returns the value of the named variable, or the given
// default when the variable is unbound. Rooted reads consult the
// host's environment store first; a value present in the store wins
// over the interpreter's own copy.
func (i *Interp) GetVarOr(name string, def *Value) *Value {
	v := i.findVar(i.env, name)
	ret := def
	if v != nil {
		ret = v.value
	}
	if i.store != nil && (v == nil || v.env == i.rootenv) {
		if s, ok := i.store.Get(name); ok {
			ret = NewValue(s)
		}
	}
	return ret
}
