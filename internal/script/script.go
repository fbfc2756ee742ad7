// Package script runs user Lua hooks around hint sessions.
//
// A hook file may define two globals: filter(target) -> bool, applied
// to each candidate before codes are assigned, and on_resolve(target),
// invoked after a session resolves. The Lua state is sandboxed: only
// the base, table, string and math libraries are opened, so hooks
// cannot touch the filesystem or spawn processes.
package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/lodestar-tui/lodestar/internal/target"
)

// ErrClosed is returned when a closed hook set is invoked.
var ErrClosed = errors.New("script hooks are closed")

const (
	filterFn  = "filter"
	resolveFn = "on_resolve"
)

// Hooks holds a loaded hook script. Not safe for concurrent use; like
// the rest of the session machinery it belongs to the host's event
// loop.
type Hooks struct {
	state  *lua.LState
	path   string
	closed bool
}

// Load reads and executes a hook file in a fresh sandboxed state.
func Load(path string) (*Hooks, error) {
	state, err := newSandbox()
	if err != nil {
		return nil, err
	}

	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading hook script %s: %w", path, err)
	}

	return &Hooks{state: state, path: path}, nil
}

// LoadString executes hook source directly. Used by tests and
// embedded configurations.
func LoadString(source string) (*Hooks, error) {
	state, err := newSandbox()
	if err != nil {
		return nil, err
	}

	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading hook script: %w", err)
	}

	return &Hooks{state: state, path: "<string>"}, nil
}

// newSandbox creates a Lua state with only the safe libraries opened.
func newSandbox() (*lua.LState, error) {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := state.CallByParam(lua.P{
			Fn:        state.NewFunction(lib.open),
			NRet:      0,
			Protect:   true,
		}, lua.LString(lib.name)); err != nil {
			state.Close()
			return nil, fmt.Errorf("opening lua library %s: %w", lib.name, err)
		}
	}

	return state, nil
}

// Path returns the source path of the loaded script.
func (h *Hooks) Path() string {
	return h.path
}

// HasFilter reports whether the script defines a filter function.
func (h *Hooks) HasFilter() bool {
	return !h.closed && h.state.GetGlobal(filterFn).Type() == lua.LTFunction
}

// Filter applies the script's filter to a candidate. Targets are kept
// when the script has no filter or when filter returns a truthy
// value.
func (h *Hooks) Filter(t target.Target) (bool, error) {
	if h.closed {
		return false, ErrClosed
	}

	fn := h.state.GetGlobal(filterFn)
	if fn.Type() != lua.LTFunction {
		return true, nil
	}

	if err := h.call(fn, 1, t); err != nil {
		return false, fmt.Errorf("filter hook: %w", err)
	}

	ret := h.state.Get(-1)
	h.state.Pop(1)
	return lua.LVAsBool(ret), nil
}

// OnResolve invokes the script's resolve handler, if any, with the
// resolved target.
func (h *Hooks) OnResolve(t target.Target) error {
	if h.closed {
		return ErrClosed
	}

	fn := h.state.GetGlobal(resolveFn)
	if fn.Type() != lua.LTFunction {
		return nil
	}

	if err := h.call(fn, 0, t); err != nil {
		return fmt.Errorf("on_resolve hook: %w", err)
	}
	return nil
}

// call invokes fn with the target as its sole argument, recovering
// Lua panics into errors.
func (h *Hooks) call(fn lua.LValue, nret int, t target.Target) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = fmt.Errorf("lua panic: %v", r)
			}
		}
	}()

	return h.state.CallByParam(lua.P{
		Fn:        fn,
		NRet:      nret,
		Protect:   true,
	}, h.targetToLua(t))
}

// targetToLua builds the Lua table handed to hooks.
func (h *Hooks) targetToLua(t target.Target) *lua.LTable {
	tbl := h.state.NewTable()
	tbl.RawSetString("id", lua.LNumber(t.ID))
	tbl.RawSetString("label", lua.LString(t.Label))
	tbl.RawSetString("group", lua.LString(t.Group))
	tbl.RawSetString("priority", lua.LNumber(t.Priority))
	tbl.RawSetString("state", lua.LString(t.State.String()))
	tbl.RawSetString("x", lua.LNumber(t.Rect.X))
	tbl.RawSetString("y", lua.LNumber(t.Rect.Y))
	tbl.RawSetString("width", lua.LNumber(t.Rect.Width))
	tbl.RawSetString("height", lua.LNumber(t.Rect.Height))

	meta := h.state.NewTable()
	for k, v := range t.Metadata {
		meta.RawSetString(k, lua.LString(v))
	}
	tbl.RawSetString("meta", meta)

	return tbl
}

// Close releases the Lua state. Further calls return ErrClosed.
func (h *Hooks) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}
