package shell

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Op", Pattern: `[-+*/]`},
	{Name: "Word", Pattern: `\S+`},
})

// Command is one line of shell input. Exactly one field is set.
type Command struct {
	Exit    bool        `parser:"  @('exit' | 'quit')"`
	History bool        `parser:"| @'history'"`
	Clear   bool        `parser:"| @'clear'"`
	Help    bool        `parser:"| @'help'"`
	Plugins bool        `parser:"| @'plugins'"`
	File    *FileCmd    `parser:"| @@"`
	Plugin  *PluginCall `parser:"| 'plugin' @@"`
	Arith   *Arith      `parser:"| @@"`
}

// FileCmd is save or load with an optional file argument.
type FileCmd struct {
	Verb string   `parser:"@('save' | 'load')"`
	Arg  *FileArg `parser:"@@?"`
}

// FileArg captures everything after the verb. The path is sliced from the
// raw input so spaces and letter case survive tokenization.
type FileArg struct {
	Pos   lexer.Position
	Parts []string `parser:"@(Word | Number | Op)+"`

	path string
}

// PluginCall is "plugin <name> <number>...".
type PluginCall struct {
	Name string    `parser:"@Word"`
	Args []float64 `parser:"@Number*"`
}

// Arith is "<number> <op> <number>".
type Arith struct {
	Left  float64 `parser:"@Number"`
	Op    string  `parser:"@Op"`
	Right float64 `parser:"@Number"`
}

var commandParser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Word"),
	participle.UseLookahead(2),
)

// Parse parses one line of input. Malformed input returns an error
// wrapping types.ErrInvalidCommand.
func Parse(input string) (*Command, error) {
	line := strings.TrimSpace(input)
	if line == "" {
		return nil, fmt.Errorf("%w: empty input", types.ErrInvalidCommand)
	}

	cmd, err := commandParser.ParseString("", line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidCommand, err)
	}

	if cmd.File != nil {
		cmd.File.Verb = strings.ToLower(cmd.File.Verb)
		if cmd.File.Arg != nil {
			cmd.File.Arg.path = strings.TrimSpace(line[cmd.File.Arg.Pos.Offset:])
		}
	}
	if cmd.Plugin != nil {
		cmd.Plugin.Name = strings.ToLower(cmd.Plugin.Name)
	}
	return cmd, nil
}

// Path returns the file argument, or "" when none was given.
func (f *FileCmd) Path() string {
	if f == nil || f.Arg == nil {
		return ""
	}
	return f.Arg.path
}

// Operation returns the arithmetic operation named by the operator.
func (a *Arith) Operation() (types.Operation, error) {
	return types.OperationForSymbol(a.Op)
}
