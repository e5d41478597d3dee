package bot

import (
	"strings"
)

// CommandKind identifies a supported bot command.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandStart
	CommandHelp
	CommandSearch
	CommandBrowse
	CommandRandom
	CommandStats
)

// Command names as typed by users.
const (
	CmdStart  = "start"
	CmdHelp   = "help"
	CmdSearch = "search"
	CmdBrowse = "browse"
	CmdRandom = "random"
	CmdStats  = "stats"
)

var commandKinds = map[string]CommandKind{
	CmdStart:  CommandStart,
	CmdHelp:   CommandHelp,
	CmdSearch: CommandSearch,
	CmdBrowse: CommandBrowse,
	CmdRandom: CommandRandom,
	CmdStats:  CommandStats,
}

// String returns the command name, used as a metrics label.
func (k CommandKind) String() string {
	switch k {
	case CommandStart:
		return CmdStart
	case CommandHelp:
		return CmdHelp
	case CommandSearch:
		return CmdSearch
	case CommandBrowse:
		return CmdBrowse
	case CommandRandom:
		return CmdRandom
	case CommandStats:
		return CmdStats
	default:
		return "unknown"
	}
}

// Command is a parsed user command with its typed argument.
//
// Arg is the search keyword for CommandSearch (all words joined by single spaces)
// and the first word for CommandBrowse. Other commands ignore it.
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand maps a command name (without the leading slash or @bot suffix) and its
// raw argument text to a Command. Names are matched case-insensitively.
func ParseCommand(name, args string) Command {
	kind, ok := commandKinds[strings.ToLower(name)]
	if !ok {
		return Command{Kind: CommandUnknown}
	}

	fields := strings.Fields(args)

	switch kind {
	case CommandSearch:
		return Command{Kind: kind, Arg: strings.Join(fields, " ")}
	case CommandBrowse:
		if len(fields) == 0 {
			return Command{Kind: kind}
		}

		return Command{Kind: kind, Arg: fields[0]}
	default:
		return Command{Kind: kind}
	}
}
