//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

// registerCoreCommands registers the builtin command family. These
// are language features, not host glue; hosts add their own commands
// through Register afterwards.
func (i *Interp) registerCoreCommands() {
	i.Register("set", commandSet)
	i.Register("local", commandLocal)
	i.Register("eval", commandEval)
	i.Register("topeval", commandTopeval)
	i.Register("upeval", commandUpeval)
	i.Register("downeval", commandDowneval)
	i.Register("enveval", commandEnveval)
	i.Register("jaileval", commandJaileval)
	i.Register("func", commandFunc)
	i.Register("rename", commandRename)
	i.Register("unusedname", commandUnusedname)
	i.Register("quote", commandQuote)
	i.Register("list", commandList)
	i.Register("lmap", commandLmap)
	i.Register("count", commandCount)
	i.Register("index", commandIndex)
	i.Register("indexof", commandIndexof)
	i.Register("append", commandAppend)
	i.Register("slice", commandSlice)
	i.Register("filter", commandFilter)
	i.Register("foreach", commandForeach)
	i.Register("subst", commandSubst)
	i.Register("concat", commandConcat)
	i.Register("return", commandReturn)
	i.Register("result", commandResult)
	i.Register("expr", commandExpr)
	i.Register("if", commandIf)
	i.Register("while", commandWhile)
	i.Register("for", commandFor)
	i.Register("inc", commandInc)
	i.Register("dec", commandDec)
	i.Register("char", commandChar)
	i.Register("charat", commandCharat)
	i.Register("codeat", commandCodeat)
	i.Register("substr", commandSubstr)
	i.Register("strpos", commandStrpos)
	i.Register("length", commandLength)
	i.Register("trim", commandTrim)
	i.Register("ltrim", commandLtrim)
	i.Register("rtrim", commandRtrim)
	i.Register("strcmp", commandStrcmp)
	i.Register("streq", commandStreq)
	i.Register("repstr", commandRepstr)
	i.Register("split", commandSplit)
	i.Register("try", commandTry)
	i.Register("error", commandError)
	i.Register("catcher", commandCatcher)
	i.Register("watch", commandWatch)
	i.Register("reflect", commandReflect)
}

// commandSet implements the 'set' command. With an odd trailing name
// the command reads; name/value pairs assign. A leading "global"
// roots every assignment in the root environment.
func commandSet(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	k := 0
	mode := SetLocal
	if args[0].String() == "global" {
		k = 1
		mode = SetGlobal
	}
	var v *Variable
	for k < len(args) {
		if k+1 == len(args) {
			return i.GetVar(args[k].String()).Clone()
		}
		v = i.SetVar(args[k].String(), args[k+1], mode)
		k += 2
	}
	if v == nil {
		return nil
	}
	return v.value.Clone()
}

// commandLocal implements the 'local' command: each named variable
// is created fresh in the current environment, shadowing any
// same-named variable elsewhere.
func commandLocal(i *Interp, args []*Value) *Value {
	for _, a := range args {
		i.SetVar(a.String(), i.empty, SetLocalNew)
	}
	return nil
}

// joinArgs concatenates argument values with single spaces.
func joinArgs(args []*Value) *Value {
	val := &Value{}
	for k, a := range args {
		if k > 0 {
			val.AppendByte(' ')
		}
		val.AppendValue(a)
	}
	return val
}

// commandEval implements the 'eval' command.
func commandEval(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	if len(args) == 1 {
		return i.ParseValue(args[0], false)
	}
	return i.ParseValue(joinArgs(args), false)
}

// commandTopeval implements the 'topeval' command: the code runs in
// the root environment, with the calling environment reachable
// through 'downeval'.
func commandTopeval(i *Interp, args []*Value) *Value {
	saveEnv := i.env
	saveDown := i.downenv
	i.env = i.rootenv
	i.downenv = saveEnv
	res := commandEval(i, args)
	i.downenv = saveDown
	i.env = saveEnv
	return res
}

// commandUpeval implements the 'upeval' command: the code runs in
// the parent of the current environment.
func commandUpeval(i *Interp, args []*Value) *Value {
	if i.env == i.rootenv {
		return commandEval(i, args)
	}
	saveEnv := i.env
	saveDown := i.downenv
	i.env = saveEnv.parent
	i.downenv = saveEnv
	res := commandEval(i, args)
	i.downenv = saveDown
	i.env = saveEnv
	return res
}

// commandDowneval implements the 'downeval' command: the code runs
// in the environment a surrounding upeval or topeval came from.
func commandDowneval(i *Interp, args []*Value) *Value {
	down := i.downenv
	if down == nil {
		return commandEval(i, args)
	}
	saveEnv := i.env
	i.env = down
	i.downenv = nil
	res := commandEval(i, args)
	i.downenv = down
	i.env = saveEnv
	return res
}

// commandEnveval implements the 'enveval' command: the body runs in
// a fresh environment; named invars are copied in from the caller
// and outvars (or the invars, when absent) are copied back out.
func commandEnveval(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	var invars, outvars *List
	var body *Value
	switch len(args) {
	case 1:
		body = args[0]
	case 2:
		invars = i.SubstToList(args[0])
		body = args[1]
	default:
		invars = i.SubstToList(args[0])
		outvars = i.SubstToList(args[1])
		body = args[2]
	}
	values := make([]*Value, invars.Len())
	for k := 0; k < invars.Len(); k++ {
		values[k] = i.GetVar(invars.At(k).String()).Clone()
	}
	i.PushEnv()
	for k := 0; k < invars.Len(); k++ {
		i.SetVar(invars.At(k).String(), values[k], SetLocalNew)
	}
	res := i.ParseValue(body, true)
	names := outvars
	if names == nil {
		names = invars
	}
	out := make([]*Value, names.Len())
	for k := 0; k < names.Len(); k++ {
		out[k] = i.GetVar(names.At(k).String()).Clone()
	}
	i.PopEnv()
	for k := 0; k < names.Len(); k++ {
		i.SetVar(names.At(k).String(), out[k], SetLocal)
	}
	return res
}

// commandJaileval implements the 'jaileval' command: the body runs
// in a brand new interpreter which is destroyed on return. Host
// commands registered on the calling interpreter carry over unless
// the 'clean' option is given; script-defined functions never do.
func commandJaileval(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	base := 0
	if args[0].String() == "clean" {
		base = 1
		if len(args) < 2 {
			return nil
		}
	}
	sub := New()
	if base == 0 {
		for k := i.syscmds; k < len(i.cmds); k++ {
			if i.cmds[k].proc != nil {
				sub.Register(i.cmds[k].name, i.cmds[k].proc)
			}
		}
	}
	res := sub.ParseValue(args[base], true)
	return res
}

// commandFunc implements the 'func' command. The three argument
// forms are: body only (argument names default to the literal
// "args"), argnames and body, and name, argnames, and body. In the
// anonymous forms the function receives a fresh unused name, which
// is the command result in every form.
func commandFunc(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	var name string
	var argnames *List
	var body *Value
	switch len(args) {
	case 1:
		name = i.unusedName("anonymous-function")
		argnames = NewList()
		argnames.Append(NewValue("args"))
		body = args[0].Clone()
	case 2:
		name = i.unusedName("anonymous-function")
		argnames = i.SubstToList(args[0])
		body = args[1].Clone()
	default:
		name = args[0].String()
		argnames = i.SubstToList(args[1])
		body = args[2].Clone()
	}
	i.defineFunc(name, argnames, body)
	return NewValue(name)
}

// commandRename implements the 'rename' command. Renaming to the
// empty string removes the function. The result is the old name.
func commandRename(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	oldname := args[0].String()
	newname := args[1].String()
	fn := i.findFunc(oldname)
	if fn == nil {
		i.SetError("unknown function " + oldname)
		return nil
	}
	res := NewValue(oldname)
	if newname == "" {
		i.deleteFunc(fn)
		return res
	}
	if prev := i.findFunc(newname); prev != nil && prev != fn {
		i.deleteFunc(prev)
	}
	i.cmdmap.put(oldname, nil)
	fn.name = newname
	i.cmdmap.put(newname, fn)
	return res
}

// commandUnusedname implements the 'unusedname' command.
func commandUnusedname(i *Interp, args []*Value) *Value {
	part := "unusedname"
	if len(args) > 0 {
		part = args[0].String()
	}
	return NewValue(i.unusedName(part))
}

// commandQuote implements the 'quote' command: the arguments joined
// by single spaces, without any escaping.
func commandQuote(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return joinArgs(args)
}

// commandReturn implements the 'return' command: it stores the
// return value in the current frame and raises the frame's breakrun
// flag, which stops command iteration until the nearest function
// boundary consumes it.
func commandReturn(i *Interp, args []*Value) *Value {
	i.env.breakrun = true
	i.env.retval = nil
	if len(args) > 0 {
		i.env.retval = args[0].Clone()
	}
	i.env.retvalSet = true
	if i.env.retval == nil {
		return nil
	}
	return i.env.retval.Clone()
}

// commandResult implements the 'result' command: with an argument it
// sets the frame's return value without unwinding; without one it
// reads the value back.
func commandResult(i *Interp, args []*Value) *Value {
	if len(args) > 0 {
		i.env.retval = args[0].Clone()
		i.env.retvalSet = true
	}
	if i.env.retval == nil {
		return nil
	}
	return i.env.retval.Clone()
}

// commandExpr implements the 'expr' command.
func commandExpr(i *Interp, args []*Value) *Value {
	return i.evalExpr(joinArgs(args))
}

// commandIf implements the 'if' command, with an optional leading
// 'not' that inverts the condition.
func commandIf(i *Interp, args []*Value) *Value {
	base := 0
	not := false
	if len(args) > 0 && args[0].String() == "not" {
		base = 1
		not = true
	}
	if len(args) < base+2 {
		return nil
	}
	cond := i.evalExpr(args[base])
	if i.hasError() {
		return nil
	}
	v := cond.Bool()
	if not {
		v = !v
	}
	if v {
		return i.ParseValue(args[base+1], false)
	}
	if len(args) > base+2 {
		return i.ParseValue(args[base+2], false)
	}
	return nil
}

// commandWhile implements the 'while' command, with the same
// optional 'not' as 'if'. The loop also stops when the current frame
// is unwinding, so a 'return' inside the body behaves.
func commandWhile(i *Interp, args []*Value) *Value {
	base := 0
	not := false
	if len(args) > 0 && args[0].String() == "not" {
		base = 1
		not = true
	}
	if len(args) < base+2 {
		return nil
	}
	var res *Value
	for !i.hasError() {
		cond := i.evalExpr(args[base])
		if i.hasError() {
			return nil
		}
		v := cond.Bool()
		if not {
			v = !v
		}
		if !v {
			break
		}
		res = i.ParseValue(args[base+1], false)
		if i.env.breakrun {
			break
		}
	}
	return res
}

// commandFor implements the 'for' command: init, condition, step,
// and body.
func commandFor(i *Interp, args []*Value) *Value {
	if len(args) < 4 {
		return nil
	}
	i.ParseValue(args[0], false)
	var res *Value
	for !i.hasError() {
		cond := i.evalExpr(args[1])
		if i.hasError() {
			return nil
		}
		if !cond.Bool() {
			break
		}
		res = i.ParseValue(args[3], false)
		if i.env.breakrun || i.hasError() {
			break
		}
		i.ParseValue(args[2], false)
	}
	return res
}

// commandInc implements the 'inc' command: add a delta, default 1,
// to a numeric variable.
func commandInc(i *Interp, args []*Value) *Value {
	return incdec(i, args, 1)
}

// commandDec implements the 'dec' command.
func commandDec(i *Interp, args []*Value) *Value {
	return incdec(i, args, -1)
}

func incdec(i *Interp, args []*Value, sign int64) *Value {
	if len(args) == 0 {
		return nil
	}
	delta := int64(1)
	if len(args) > 1 {
		delta = args[1].Int()
	}
	v := IntValue(i.GetVar(args[0].String()).Int() + sign*delta)
	i.SetVar(args[0].String(), v, SetLocal)
	return v
}

// commandTry implements the 'try' command: the first argument is
// evaluated and, should it fail, the error slot is cleared and the
// optional second argument is evaluated as the recovery.
func commandTry(i *Interp, args []*Value) *Value {
	if len(args) == 0 || i.hasError() {
		return nil
	}
	res := i.ParseValue(args[0], false)
	if i.hasError() {
		i.errKind = errNone
		i.errMsg = ""
		i.errPos = 0
		if len(args) > 1 {
			res = i.ParseValue(args[1], false)
		} else {
			res = nil
		}
	}
	return res
}

// commandError implements the 'error' command.
func commandError(i *Interp, args []*Value) *Value {
	if len(args) > 0 {
		i.SetError(args[0].String())
	} else {
		i.SetError("")
	}
	return nil
}

// commandCatcher implements the 'catcher' command: without
// arguments it reports the current catcher program; with one it
// installs the argument as the catcher, the empty string disabling
// interception.
func commandCatcher(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return NewValue(i.catcher)
	}
	i.catcher = args[0].String()
	return nil
}

// commandWatch implements the 'watch' command: the last argument is
// attached as the watch program of every named variable, creating
// missing variables locally. An empty program removes the watch.
func commandWatch(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	wcode := args[len(args)-1].String()
	for _, a := range args[:len(args)-1] {
		name := a.String()
		if name == "" {
			continue
		}
		v := i.findVar(i.env, name)
		if v == nil {
			v = i.SetVar(name, i.empty, SetLocalNew)
		}
		v.watch = wcode
	}
	return nil
}
