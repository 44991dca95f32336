package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/domino14/othello/othello"
)

// scriptCommands are exposed to Lua as othello_<command>.
var scriptCommands = []string{
	"new", "load", "show", "moves", "play", "pass", "best", "eval", "set",
	"autoplay", "help",
}

func getShell(L *lua.LState) *ShellController {
	ud, ok := L.GetGlobal("othello_shell").(*lua.LUserData)
	if !ok {
		L.RaiseError("othello_shell is not set")
		return nil
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		L.RaiseError("othello_shell is not a shell")
		return nil
	}
	return sc
}

// luaCommand wraps a shell command. The optional string argument is the
// rest of the command line.
func luaCommand(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		line := name
		if L.GetTop() > 0 {
			line += " " + L.ToString(1)
		}
		sc := getShell(L)
		cmd, err := extractFields(line)
		if err != nil {
			log.Err(err).Msg("error-parsing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		r, err := sc.dispatch(cmd)
		if err != nil {
			log.Err(err).Msg("error-executing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		if r == nil {
			L.Push(lua.LString(""))
		} else {
			L.Push(lua.LString(r.message))
		}
		// return number of results pushed to stack.
		return 1
	}
}

func luaBoard(L *lua.LState) int {
	sc := getShell(L)
	if err := sc.needBoard(); err != nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(sc.curBoard.String()))
	return 1
}

func luaScore(L *lua.LState) int {
	sc := getShell(L)
	if err := sc.needBoard(); err != nil {
		return 0
	}
	dark, light := othello.Score(sc.curBoard)
	L.Push(lua.LNumber(dark))
	L.Push(lua.LNumber(light))
	return 2
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("othello_shell", lsc)
	for _, name := range scriptCommands {
		L.SetGlobal("othello_"+name, L.NewFunction(luaCommand(name)))
	}
	L.SetGlobal("othello_board", L.NewFunction(luaBoard))
	L.SetGlobal("othello_score", L.NewFunction(luaScore))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("script-error")
		return nil, err
	}
	return nil, nil
}
