package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names, their options, and the values
// some options take.
type ShellCompleter struct{}

func NewShellCompleter() *ShellCompleter {
	return &ShellCompleter{}
}

type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"load":     {Options: []string{"-turn"}},
	"best":     {Options: []string{"-engine", "-limit"}},
	"autoplay": {Options: []string{"-games", "-threads", "-size", "-file", "-engine", "-limit", "-vs"}, Args: []string{"stop", "analyze"}},
	"set":      {Args: settable},
	"help":     {Args: []string{"best", "autoplay", "script", "set"}},
}

var commandNames = []string{
	"help", "new", "load", "show", "moves", "play", "pass", "best", "eval",
	"set", "autoplay", "script", "exit",
}

var engineValues = []string{"minimax", "alphabeta"}

// Do implements the readline.AutoComplete interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch lastCompleteField {
		case "-engine":
			completions = engineValues
		case "-turn":
			completions = []string{"dark", "light"}
		case "-vs":
			completions = append([]string{"random"}, engineValues...)
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
