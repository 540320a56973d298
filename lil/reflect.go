//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

// commandReflect implements the 'reflect' command, the script-side
// window into the interpreter's own state.
func commandReflect(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	switch args[0].String() {
	case "version":
		return NewValue(Version)
	case "args":
		if len(args) < 2 {
			return nil
		}
		fn := i.findFunc(args[1].String())
		if fn == nil || fn.argnames == nil {
			return nil
		}
		return fn.argnames.ToValue(true)
	case "body":
		if len(args) < 2 {
			return nil
		}
		fn := i.findFunc(args[1].String())
		if fn == nil || fn.body == nil {
			return nil
		}
		return fn.body.Clone()
	case "func-count":
		return IntValue(int64(len(i.cmds)))
	case "funcs":
		list := NewList()
		for _, fn := range i.cmds {
			list.Append(NewValue(fn.name))
		}
		return list.ToValue(true)
	case "vars":
		list := NewList()
		for _, v := range i.env.vars {
			list.Append(NewValue(v.name))
		}
		return list.ToValue(true)
	case "globals":
		list := NewList()
		for _, v := range i.rootenv.vars {
			list.Append(NewValue(v.name))
		}
		return list.ToValue(true)
	case "has-func":
		if len(args) < 2 {
			return nil
		}
		return IntValue(boolInt(i.findFunc(args[1].String()) != nil))
	case "has-var":
		if len(args) < 2 {
			return nil
		}
		return IntValue(boolInt(i.findVar(i.env, args[1].String()) != nil))
	case "has-global":
		if len(args) < 2 {
			return nil
		}
		return IntValue(boolInt(i.rootenv.lookup(args[1].String()) != nil))
	case "error":
		return NewValue(i.errMsg)
	case "dollar-prefix":
		prev := i.dollarPrefix
		if len(args) > 1 {
			i.dollarPrefix = args[1].String()
		}
		return NewValue(prev)
	case "this":
		for e := i.env; e != nil && e != i.rootenv; e = e.parent {
			if e.catcherFor != nil {
				return NewValue(i.catcher)
			}
			if e.fn != nil && e.fn.body != nil {
				return e.fn.body.Clone()
			}
		}
		return NewValue(i.rootcode)
	case "name":
		for e := i.env; e != nil && e != i.rootenv; e = e.parent {
			if e.catcherFor != nil {
				return e.catcherFor.Clone()
			}
			if e.fn != nil {
				return NewValue(e.fn.name)
			}
		}
		return nil
	}
	return nil
}
