package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/zerohour/missiond/internal/world"
)

// Host is the bookkeeping predicates may read.
type Host interface {
	Counter(name string) int
	Flag(name string) bool
	TimerExpired(name string) bool
}

// World is the read-only world lookup exposed to predicates.
type World interface {
	PlayerByName(name string) *world.Player
	ObjectByName(name string) *world.Object
}

// Engine wraps a single gopher-lua VM holding user predicate functions.
// Single-goroutine access only (frame loop).
type Engine struct {
	vm    *lua.LState
	host  Host
	world World
	log   *zap.Logger
}

// NewEngine creates a Lua engine and loads every script under dir: the
// top-level files first, then the "predicates" subdirectory. A missing
// dir is not an error.
func NewEngine(dir string, host Host, w World, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, host: host, world: w, log: log}
	e.registerHost()

	if dir == "" {
		return e, nil
	}
	for _, d := range []string{dir, filepath.Join(dir, "predicates")} {
		if err := e.loadDir(d); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load lua scripts: %w", err)
		}
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// LoadString runs a chunk of Lua source, typically to define predicates.
func (e *Engine) LoadString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("load lua chunk: %w", err)
	}
	return nil
}

// Has reports whether a global function named fn is defined.
func (e *Engine) Has(fn string) bool {
	_, ok := e.vm.GetGlobal(fn).(*lua.LFunction)
	return ok
}

// --- Host bridge ---

func (e *Engine) registerHost() {
	reg := map[string]lua.LGFunction{
		"counter": func(L *lua.LState) int {
			n := 0
			if e.host != nil {
				n = e.host.Counter(L.CheckString(1))
			}
			L.Push(lua.LNumber(n))
			return 1
		},
		"flag": func(L *lua.LState) int {
			L.Push(lua.LBool(e.host != nil && e.host.Flag(L.CheckString(1))))
			return 1
		},
		"timer_expired": func(L *lua.LState) int {
			L.Push(lua.LBool(e.host != nil && e.host.TimerExpired(L.CheckString(1))))
			return 1
		},
		"credits": func(L *lua.LState) int {
			n := 0
			if e.world != nil {
				if p := e.world.PlayerByName(L.CheckString(1)); p != nil {
					n = p.Credits
				}
			}
			L.Push(lua.LNumber(n))
			return 1
		},
		// unit_health returns nil for missing or dead units.
		"unit_health": func(L *lua.LState) int {
			if e.world != nil {
				if o := e.world.ObjectByName(L.CheckString(1)); o != nil && !o.IsEffectivelyDead() {
					L.Push(lua.LNumber(o.HealthPercent()))
					return 1
				}
			}
			L.Push(lua.LNil)
			return 1
		},
	}
	for name, fn := range reg {
		e.vm.SetGlobal(name, e.vm.NewFunction(fn))
	}
}

// Call runs the predicate fn(ctx, args...) where ctx is {frame=, owner=}.
// A missing function or a runtime error is returned as an error; the
// result is Lua truthiness of the first return value.
func (e *Engine) Call(fn string, frame uint32, owner string, args []string) (bool, error) {
	f := e.vm.GetGlobal(fn)
	if f == lua.LNil {
		return false, fmt.Errorf("lua function %s not found", fn)
	}

	ctx := e.vm.NewTable()
	ctx.RawSetString("frame", lua.LNumber(frame))
	ctx.RawSetString("owner", lua.LString(owner))

	lArgs := make([]lua.LValue, 0, len(args)+1)
	lArgs = append(lArgs, ctx)
	for _, a := range args {
		lArgs = append(lArgs, lua.LString(a))
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      f,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		return false, fmt.Errorf("lua %s: %w", fn, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return lua.LVAsBool(result), nil
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
