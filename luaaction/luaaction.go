/*
Package luaaction lets clients script the semantics of dictionary patterns
in Lua.

A Runtime holds a Lua state, loaded with a script of action functions, and a
Lua table which serves as the payload. Every action function is called with
the display form of the matched subword and the payload table:

	function forward(w, p)
	    p.steps = (p.steps or 0) + 1
	end

Scripts run with the base, table, string and math libraries only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–23 Norbert Pillmayer <norbert@pillmayer.com>
*/
package luaaction

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/dictionary"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	lua "github.com/yuin/gopher-lua"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrClosed is returned for calls to a closed runtime.
var ErrClosed = errors.New("lua runtime closed")

// Runtime is a Lua state together with a payload table. A runtime is the
// payload of the actions it creates.
//
// Actions cannot return errors. The first error of a Lua call is recorded
// and reported by Err; actions called after an error do nothing.
//
// Lua states are not safe for concurrent use, and neither are runtimes.
type Runtime struct {
	L       *lua.LState
	payload *lua.LTable
	err     error
	closed  bool
}

// New creates a runtime and executes script, which usually defines the action
// functions.
func New(script string) (*Runtime, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("lua script: %w", err)
	}
	return &Runtime{L: L, payload: L.NewTable()}, nil
}

// Payload returns the payload table.
func (r *Runtime) Payload() *lua.LTable {
	return r.payload
}

// Get returns field key of the payload table.
func (r *Runtime) Get(key string) lua.LValue {
	return r.payload.RawGetString(key)
}

// Err returns the first error that occurred during a call of an action.
func (r *Runtime) Err() error {
	return r.err
}

func (r *Runtime) setErr(err error) {
	if r.err == nil {
		tracer().Errorf("lua: %v", err)
		r.err = err
	}
}

// Reset clears the payload table and the error of r.
func (r *Runtime) Reset() {
	if r.closed {
		return
	}
	r.payload = r.L.NewTable()
	r.err = nil
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	if !r.closed {
		r.closed = true
		r.L.Close()
	}
}

// Call calls global Lua function fn with a subword and the payload table.
func (r *Runtime) Call(fn string, subword string) (err error) {
	if r.closed {
		return ErrClosed
	}
	f := r.L.GetGlobal(fn)
	if f.Type() != lua.LTFunction {
		return fmt.Errorf("%q is not a function (got %s)", fn, f.Type())
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("lua panic: %v", p)
		}
	}()
	return r.L.CallByParam(lua.P{Fn: f, NRet: 0, Protect: true}, lua.LString(subword), r.payload)
}

// Action creates an action which calls Lua function fn for every subword it
// is executed for.
func Action[L lsys.Letter](fn string) dictionary.ActionFunc[L, *Runtime] {
	return func(subword lsys.Word[L], r *Runtime) {
		if r.err != nil {
			return
		}
		if err := r.Call(fn, subword.String()); err != nil {
			r.setErr(fmt.Errorf("action %s(%q): %w", fn, subword.String(), err))
		}
	}
}
