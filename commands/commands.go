// Package commands is a longest-prefix command dispatcher for splitfmt's
// -repl mode: ":format", ":cost", ":reload", ":quit" and whatever else
// repl.go registers, so a user can type ":f" instead of spelling out
// ":format" as long as it's unambiguous among the commands actually
// registered.
package commands

import (
	"log"
	"strings"
)

type cmd func()

// Commands maps command names to the cmd each one runs.
type Commands struct {
	log      *log.Logger
	commands map[string]cmd
}

// NewCommands returns an empty Commands that logs unresolved commands
// through log.
func NewCommands(log *log.Logger) *Commands {
	return &Commands{log: log, commands: make(map[string]cmd)}
}

// Exec runs the command whose registered name is the longest match for
// command treated as a prefix, or logs that nothing matched.
func (c *Commands) Exec(command string) {
	if cmd := c.findCommandByLongestPrefix(command); cmd != nil {
		cmd()
	} else {
		c.log.Printf("command %q not found", command)
	}
}

func (c *Commands) findCommandByLongestPrefix(commandPrefix string) cmd {
	longest := -1
	var longestCmd cmd
	for name, cmd := range c.commands {
		if strings.HasPrefix(name, commandPrefix) && len(name) > longest {
			longest = len(name)
			longestCmd = cmd
		}
	}
	return longestCmd
}

// Register associates name with command, replacing any prior command of
// the same name.
func (c *Commands) Register(name string, command cmd) {
	c.commands[name] = command
}
