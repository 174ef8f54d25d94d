package shell

import (
	"github.com/chzyer/readline"
)

// NewReadline returns a line editor with persistent line history in
// historyFile and completion for commands and plugin names.
func (s *Shell) NewReadline(prompt, historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		AutoComplete:      s.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

func (s *Shell) completer() *readline.PrefixCompleter {
	pluginNames := func(string) []string { return s.calc.Plugins() }
	return readline.NewPrefixCompleter(
		readline.PcItem("plugin", readline.PcItemDynamic(pluginNames)),
		readline.PcItem("plugins"),
		readline.PcItem("history"),
		readline.PcItem("save"),
		readline.PcItem("load"),
		readline.PcItem("clear"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
