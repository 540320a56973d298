//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

import (
	"fmt"
	"strings"
)

// Version is the interpreter version reported by 'reflect version'.
const Version = "0.3"

// maxCatcherDepth bounds nested invocations of the unknown-command
// catcher so a catcher that itself calls unknown commands cannot
// recurse without bound.
const maxCatcherDepth = 16384

// ProcFn is a host procedure implementing a command. It receives the
// interpreter and the command arguments (without the command name)
// and returns the command result; a nil return stands for the shared
// empty value. Failures are reported through SetError.
type ProcFn func(i *Interp, args []*Value) *Value

// Function is a named callable: either a host procedure or a
// script-defined body with a list of argument names. Exactly one of
// the two is populated.
type Function struct {
	name     string
	proc     ProcFn
	body     *Value
	argnames *List
}

// Name returns the function's registered name.
func (f *Function) Name() string {
	return f.name
}

// EnvStore is the host's persistent mirror for rooted globals.
// Assignments that land in the root environment are forwarded to Set;
// rooted reads consult Get first and a present value wins.
type EnvStore interface {
	Get(name string) (string, bool)
	Set(name, value string)
}

// Interp is a self-contained command interpreter. Instances are
// independent of one another and must each be confined to a single
// goroutine; the only concurrency hook is the interrupt predicate
// polled between commands.
type Interp struct {
	code      string // source text currently being parsed
	head      int    // cursor into code
	rootcode  string // outermost source, for reflection
	ignoreEOL bool   // treat line terminators as whitespace

	cmds    []*Function
	syscmds int // count of builtins, snapshotted after registration
	cmdmap  stringMap

	catcher   string // unknown-command program, empty when disabled
	inCatcher int

	dollarPrefix string

	rootenv *Env
	env     *Env
	downenv *Env

	empty *Value

	errKind int
	errPos  int
	errMsg  string

	parseDepth    int
	maxParseDepth int

	store     EnvStore
	interrupt func() bool
}

// New creates an interpreter with the builtin command family
// registered and an empty root environment.
func New() *Interp {
	i := &Interp{
		dollarPrefix: "set ",
		empty:        &Value{},
	}
	i.rootenv = newEnv(nil)
	i.env = i.rootenv
	i.registerCoreCommands()
	i.syscmds = len(i.cmds)
	return i
}

// SetEnvStore attaches the host's rooted-global mirror.
func (i *Interp) SetEnvStore(store EnvStore) {
	i.store = store
}

// SetInterrupt installs a predicate polled between commands; a true
// reading aborts the running evaluation with an "interrupted" error.
func (i *Interp) SetInterrupt(pred func() bool) {
	i.interrupt = pred
}

// SetMaxParseDepth bounds the nesting of parse calls. Zero disables
// the limit.
func (i *Interp) SetMaxParseDepth(depth int) {
	i.maxParseDepth = depth
}

// DollarPrefix returns the prefix prepended to a word during dollar
// substitution.
func (i *Interp) DollarPrefix() string {
	return i.dollarPrefix
}

// SetDollarPrefix changes the dollar substitution prefix. The default
// of "set " makes $name equivalent to [set name].
func (i *Interp) SetDollarPrefix(prefix string) {
	i.dollarPrefix = prefix
}

// Register adds a host procedure under the given name. Registering a
// name again replaces the procedure in place, preserving the identity
// of the Function so captured references stay valid.
func (i *Interp) Register(name string, proc ProcFn) *Function {
	if fn, ok := i.cmdmap.get(name).(*Function); ok {
		fn.proc = proc
		fn.body = nil
		fn.argnames = nil
		return fn
	}
	fn := &Function{name: name, proc: proc}
	i.cmds = append(i.cmds, fn)
	i.cmdmap.put(name, fn)
	return fn
}

// defineFunc adds or replaces a script-defined function.
func (i *Interp) defineFunc(name string, argnames *List, body *Value) *Function {
	if fn, ok := i.cmdmap.get(name).(*Function); ok {
		fn.proc = nil
		fn.argnames = argnames
		fn.body = body
		return fn
	}
	fn := &Function{name: name, argnames: argnames, body: body}
	i.cmds = append(i.cmds, fn)
	i.cmdmap.put(name, fn)
	return fn
}

// deleteFunc removes a function from the registry.
func (i *Interp) deleteFunc(fn *Function) {
	for k, c := range i.cmds {
		if c == fn {
			i.cmds = append(i.cmds[:k], i.cmds[k+1:]...)
			break
		}
	}
	i.cmdmap.put(fn.name, nil)
}

// findFunc looks a name up in the command registry without applying
// the dotted-name rule.
func (i *Interp) findFunc(name string) *Function {
	if fn, ok := i.cmdmap.get(name).(*Function); ok {
		return fn
	}
	return nil
}

// resolveFunc resolves a command name for dispatch. A name containing
// a dot is looked up by the prefix before the first dot only; the
// remainder plays no part in the lookup. The truncation does not
// modify the word being resolved.
func (i *Interp) resolveFunc(name string) *Function {
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		name = name[:dot]
	}
	return i.findFunc(name)
}

// unusedName generates a function name not present in the registry.
func (i *Interp) unusedName(part string) string {
	for n := 0; ; n++ {
		name := fmt.Sprintf("!!un!%s!%d!nu!!", part, n)
		if i.findFunc(name) == nil {
			return name
		}
	}
}

// Run evaluates the source text as a top-level script and returns
// the result, draining the error slot into the returned error. The
// script runs at function level so that a top-level 'return' yields
// its value instead of leaving the root frame unwinding.
func (i *Interp) Run(code string) (*Value, error) {
	v := i.parse(code, true)
	if msg, pos, ok := i.Err(); ok {
		return nil, &Error{Kind: errDefault, Pos: pos, Msg: msg}
	}
	return v, nil
}

// Parse evaluates the source text and returns the result. When
// funclevel is set, the call is treated as a function body: the
// current frame's breakrun flag is reset on entry, and the frame's
// return value is consumed on exit. On failure the error slot is set
// and the shared empty value is returned.
func (i *Interp) Parse(code string, funclevel bool) *Value {
	return i.parse(code, funclevel)
}

// ParseValue evaluates the contents of a value as source text.
func (i *Interp) ParseValue(code *Value, funclevel bool) *Value {
	return i.parse(code.String(), funclevel)
}

// parse is the evaluator: it repeatedly extracts one line of words,
// resolves the first word in the command registry, and dispatches.
// The cursor state is saved and restored so that nested parse calls
// (bracket substitution, dollar substitution, eval) stack correctly.
func (i *Interp) parse(code string, funclevel bool) *Value {
	if i.hasError() {
		return i.empty
	}
	i.parseDepth++
	defer func() { i.parseDepth-- }()
	if i.maxParseDepth > 0 && i.parseDepth > i.maxParseDepth {
		i.setError(errDefault, i.head, "Too many recursive calls")
		return i.empty
	}

	saveCode, saveHead := i.code, i.head
	rootSet := false
	if i.rootcode == "" {
		i.rootcode = code
		rootSet = true
	}
	i.code = code
	i.head = 0
	defer func() {
		i.code, i.head = saveCode, saveHead
		if rootSet {
			i.rootcode = ""
		}
	}()

	if funclevel {
		i.env.breakrun = false
	}

	res := i.empty
	for i.head < len(i.code) && !i.hasError() {
		if i.interrupt != nil && i.interrupt() {
			i.setError(errDefault, i.head, "interrupted")
			break
		}
		cmdHead := i.head
		words := i.substitute()
		if i.hasError() {
			break
		}
		if words.Len() > 0 {
			res = i.dispatch(words, cmdHead)
		}
		if i.env.breakrun {
			break
		}
		// consume the command separator(s)
		for i.head < len(i.code) && isEOL(i.code[i.head]) {
			i.head++
		}
	}

	if i.hasError() {
		return i.empty
	}
	if funclevel && i.env.retvalSet {
		res = i.env.retval
		if res == nil {
			res = i.empty
		}
		i.env.retval = nil
		i.env.retvalSet = false
		i.env.breakrun = false
	}
	return res
}

// dispatch resolves and runs a single parsed command line.
func (i *Interp) dispatch(words *List, cmdHead int) *Value {
	name := words.At(0).String()
	if name == "" {
		return i.empty
	}
	fn := i.resolveFunc(name)
	if fn == nil {
		return i.runCatcher(words, cmdHead)
	}
	if fn.proc != nil {
		res := fn.proc(i, words.v[1:])
		if res == nil {
			res = i.empty
		}
		// errors raised inside a builtin point at the call site
		if i.errKind == errFixHead {
			i.errKind = errDefault
			i.errPos = cmdHead
		}
		return res
	}
	i.PushEnv()
	i.env.fn = fn
	i.bindArgs(fn, words)
	// the body is its own script; line terminators matter in it even
	// when the call site sits inside a bracket substitution
	saveEOL := i.ignoreEOL
	i.ignoreEOL = false
	res := i.ParseValue(fn.body, true)
	i.ignoreEOL = saveEOL
	i.PopEnv()
	return res
}

// bindArgs binds the caller's arguments in the freshly pushed frame.
// A function declaring the single argument name "args" receives the
// whole argument list serialized with escaping; otherwise each
// declared name binds positionally, defaulting to the shared empty
// value when the caller supplied too few arguments.
func (i *Interp) bindArgs(fn *Function, words *List) {
	if fn.argnames.Len() == 1 && fn.argnames.At(0).String() == "args" {
		rest := &List{v: words.v[1:]}
		i.SetVar("args", rest.ToValue(true), SetLocalNew)
		return
	}
	for k := 0; k < fn.argnames.Len(); k++ {
		arg := words.At(k + 1)
		if arg == nil {
			arg = i.empty
		}
		i.SetVar(fn.argnames.At(k).String(), arg, SetLocalNew)
	}
}

// runCatcher intercepts an unknown command by running the catcher
// program, when one is set, in a fresh frame with the original line
// bound to 'args'. Without a catcher the unknown name is an error.
func (i *Interp) runCatcher(words *List, cmdHead int) *Value {
	if i.catcher == "" {
		i.setError(errDefault, cmdHead, fmt.Sprintf("unknown function %s", words.At(0).String()))
		return i.empty
	}
	if i.inCatcher >= maxCatcherDepth {
		i.setError(errDefault, cmdHead,
			fmt.Sprintf("catcher limit reached while trying to call unknown function %s", words.At(0).String()))
		return i.empty
	}
	i.inCatcher++
	i.PushEnv()
	i.env.catcherFor = words.At(0)
	i.SetVar("args", words.ToValue(true), SetLocalNew)
	saveEOL := i.ignoreEOL
	i.ignoreEOL = false
	res := i.parse(i.catcher, true)
	i.ignoreEOL = saveEOL
	i.PopEnv()
	i.inCatcher--
	return res
}

// Call invokes a registered command by name with the given arguments,
// bypassing the parser.
func (i *Interp) Call(name string, args []*Value) *Value {
	if i.hasError() {
		return i.empty
	}
	fn := i.resolveFunc(name)
	words := NewList()
	words.Append(NewValue(name))
	for _, a := range args {
		words.Append(a)
	}
	if fn == nil {
		return i.runCatcher(words, 0)
	}
	return i.dispatch(words, 0)
}

// SubstToList evaluates the code with line terminators treated as
// whitespace, so the input forms a single logical line, and returns
// the resulting words.
func (i *Interp) SubstToList(code *Value) *List {
	saveCode, saveHead, saveEOL := i.code, i.head, i.ignoreEOL
	i.code = code.String()
	i.head = 0
	i.ignoreEOL = true
	words := i.substitute()
	i.code, i.head, i.ignoreEOL = saveCode, saveHead, saveEOL
	if words == nil {
		return NewList()
	}
	return words
}

// SubstToValue is SubstToList with the resulting words joined by
// single spaces, without escaping.
func (i *Interp) SubstToValue(code *Value) *Value {
	return i.SubstToList(code).ToValue(false)
}
