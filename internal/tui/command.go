package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// commandKind enumerates what the player typed at the prompt
type commandKind int

const (
	cmdMove commandKind = iota
	cmdNew
	cmdSave
	cmdLoad
	cmdQuit
)

// command is a parsed prompt entry. For moves, Count cards come off the
// top of pile Src onto pile Dst.
type command struct {
	Kind  commandKind
	Src   int
	Dst   int
	Count int
}

// parseCommand understands the prompt grammar:
//
//	move <src> <dst> [count]   (or "m")
//	new | save | load | quit
//
// Pile indexes are 0-9 as displayed; count defaults to 1.
func parseCommand(input string) (command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "new", "n":
		return command{Kind: cmdNew}, nil
	case "save", "s":
		return command{Kind: cmdSave}, nil
	case "load", "l":
		return command{Kind: cmdLoad}, nil
	case "quit", "q", "exit":
		return command{Kind: cmdQuit}, nil
	case "move", "m":
	default:
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}

	if len(fields) < 3 || len(fields) > 4 {
		return command{}, fmt.Errorf("usage: move <src> <dst> [count]")
	}

	src, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("bad source pile %q", fields[1])
	}
	dst, err := strconv.Atoi(fields[2])
	if err != nil {
		return command{}, fmt.Errorf("bad target pile %q", fields[2])
	}
	count := 1
	if len(fields) == 4 {
		count, err = strconv.Atoi(fields[3])
		if err != nil || count < 1 {
			return command{}, fmt.Errorf("bad card count %q", fields[3])
		}
	}

	return command{Kind: cmdMove, Src: src, Dst: dst, Count: count}, nil
}
