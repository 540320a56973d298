//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

// commandList implements the 'list' command: a list built from the
// arguments, serialized with escaping so it parses back into the
// same entries.
func commandList(i *Interp, args []*Value) *Value {
	list := NewList()
	for _, a := range args {
		list.Append(a.Clone())
	}
	return list.ToValue(true)
}

// commandLmap implements the 'lmap' command: the entries of the
// list are assigned to the named variables in order.
func commandLmap(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	list := i.SubstToList(args[0])
	for k := 1; k < len(args); k++ {
		item := list.At(k - 1)
		if item == nil {
			item = i.empty
		}
		i.SetVar(args[k].String(), item, SetLocal)
	}
	return nil
}

// commandCount implements the 'count' command.
func commandCount(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return IntValue(0)
	}
	return IntValue(int64(i.SubstToList(args[0]).Len()))
}

// commandIndex implements the 'index' command. An out of range
// index yields the empty value.
func commandIndex(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	list := i.SubstToList(args[0])
	item := list.At(int(args[1].Int()))
	if item == nil {
		return nil
	}
	return item.Clone()
}

// commandIndexof implements the 'indexof' command: the index of the
// first entry equal to the argument, or the empty value when there
// is none.
func commandIndexof(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	list := i.SubstToList(args[0])
	want := args[1].String()
	for k := 0; k < list.Len(); k++ {
		if list.At(k).String() == want {
			return IntValue(int64(k))
		}
	}
	return nil
}

// commandAppend implements the 'append' command: the items are
// appended to the list held by the named variable. A leading
// "global" targets the root environment.
func commandAppend(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	base := 1
	mode := SetLocal
	if args[0].String() == "global" {
		if len(args) < 3 {
			return nil
		}
		base = 2
		mode = SetGlobal
	}
	name := args[base-1].String()
	list := i.SubstToList(i.GetVar(name))
	for _, a := range args[base:] {
		list.Append(a.Clone())
	}
	res := list.ToValue(true)
	i.SetVar(name, res, mode)
	return res
}

// commandSlice implements the 'slice' command: the entries from the
// first index up to but not including the second, both clamped to
// the list bounds.
func commandSlice(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	list := i.SubstToList(args[0])
	from := args[1].Int()
	if from < 0 {
		from = 0
	}
	to := int64(list.Len())
	if len(args) > 2 {
		to = args[2].Int()
		if to > int64(list.Len()) {
			to = int64(list.Len())
		}
	}
	part := NewList()
	for k := from; k < to; k++ {
		part.Append(list.At(int(k)).Clone())
	}
	return part.ToValue(true)
}

// commandFilter implements the 'filter' command: the entries for
// which the expression holds, with each entry bound to the filter
// variable (default "x") while the expression is evaluated.
func commandFilter(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	varname := "x"
	base := 0
	if len(args) > 2 {
		varname = args[0].String()
		base = 1
	}
	list := i.SubstToList(args[base])
	kept := NewList()
	for k := 0; k < list.Len() && !i.hasError(); k++ {
		i.SetVar(varname, list.At(k), SetLocalOnly)
		r := i.evalExpr(args[base+1])
		if i.hasError() {
			break
		}
		if r.Bool() {
			kept.Append(list.At(k).Clone())
		}
	}
	return kept.ToValue(true)
}

// commandForeach implements the 'foreach' command: the body runs
// once per list entry with the entry bound to the loop variable
// (default "i"); the non-empty body results are collected into the
// command's own result list.
func commandForeach(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	varname := "i"
	base := 0
	if len(args) > 2 {
		varname = args[0].String()
		base = 1
	}
	list := i.SubstToList(args[base])
	results := NewList()
	for k := 0; k < list.Len(); k++ {
		i.SetVar(varname, list.At(k), SetLocalOnly)
		rv := i.ParseValue(args[base+1], false)
		if rv.Len() > 0 {
			results.Append(rv)
		}
		if i.hasError() || i.env.breakrun {
			break
		}
	}
	return results.ToValue(true)
}

// commandSubst implements the 'subst' command.
func commandSubst(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return i.SubstToValue(args[0])
}

// commandConcat implements the 'concat' command: every argument is
// taken as a list and their entries are joined into one.
func commandConcat(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	cat := NewList()
	for _, a := range args {
		sub := i.SubstToList(a)
		for k := 0; k < sub.Len(); k++ {
			cat.Append(sub.At(k).Clone())
		}
	}
	return cat.ToValue(true)
}
