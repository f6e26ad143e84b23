package tui

import (
	"strconv"
	"strings"
)

type cmdKind int

const (
	cmdNone cmdKind = iota
	cmdOpen
	cmdStashLast
	cmdStashIndex
	cmdStashView
	cmdRefresh
	cmdQuit
	cmdUnstash
	cmdDelete
	cmdMenu
)

type command struct {
	kind  cmdKind
	index int // 1-based display index for indexed commands
}

// parseMenuCommand maps a line of menu input to a command. Anything it does
// not recognize is cmdNone: bad input re-prompts, it never fails.
func parseMenuCommand(input string) command {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return command{}
	}

	if n, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
		if n < 1 {
			return command{}
		}
		return command{kind: cmdOpen, index: n}
	}

	switch fields[0] {
	case "s":
		if len(fields) == 1 {
			return command{kind: cmdStashLast}
		}
		if n, err := strconv.Atoi(fields[1]); err == nil && n >= 1 && len(fields) == 2 {
			return command{kind: cmdStashIndex, index: n}
		}
	case "v":
		if len(fields) == 1 {
			return command{kind: cmdStashView}
		}
	case "r":
		if len(fields) == 1 {
			return command{kind: cmdRefresh}
		}
	case "q":
		if len(fields) == 1 {
			return command{kind: cmdQuit}
		}
	}
	return command{}
}

// parseStashCommand maps a line of stash-view input to a command.
func parseStashCommand(input string) command {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return command{}
	}

	switch fields[0] {
	case "u", "d":
		if len(fields) != 2 {
			return command{}
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return command{}
		}
		if fields[0] == "u" {
			return command{kind: cmdUnstash, index: n}
		}
		return command{kind: cmdDelete, index: n}
	case "m":
		if len(fields) == 1 {
			return command{kind: cmdMenu}
		}
	case "q":
		if len(fields) == 1 {
			return command{kind: cmdQuit}
		}
	}
	return command{}
}
