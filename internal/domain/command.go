package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	stormCommand       = "givemestorm"
	stormRadiusCommand = "givemestorm_"

	// ResponseGranted is shown in the console after a storm is granted.
	ResponseGranted = "Storm Granted"
	// ResponseInvalidRadius is shown when the radius suffix is rejected.
	ResponseInvalidRadius = "Invalid StormRadius Value"
)

// CommandKind identifies the parsed console command.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandGrant
	CommandGrantWithRadius
	CommandInvalid
)

func (k CommandKind) String() string {
	switch k {
	case CommandGrant:
		return "grant"
	case CommandGrantWithRadius:
		return "grant_radius"
	case CommandInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// Command is a parsed console command.
type Command struct {
	Kind   CommandKind
	Radius int   // set for CommandGrantWithRadius
	Err    error // set for CommandInvalid
}

// Grants reports whether the command requests a storm.
func (c Command) Grants() bool {
	return c.Kind == CommandGrant || c.Kind == CommandGrantWithRadius
}

// ParseCommand parses console text and returns the command together with the
// text the console should display. Unrecognized text yields CommandNone and
// an empty response.
func ParseCommand(text string) (Command, string) {
	if text == stormCommand {
		return Command{Kind: CommandGrant}, ResponseGranted
	}

	if !strings.Contains(text, stormRadiusCommand) {
		return Command{Kind: CommandNone}, ""
	}

	// The radius is the segment after the first underscore, so
	// "givemestorm_500_x" still grants radius 500.
	segment := strings.Split(text, "_")[1]
	radius, err := strconv.ParseInt(strings.TrimSpace(segment), 10, 32)
	if err != nil {
		return Command{Kind: CommandInvalid, Err: fmt.Errorf("%w: %q", ErrCommandInvalid, segment)}, ResponseInvalidRadius
	}
	if radius <= 0 {
		return Command{Kind: CommandInvalid, Err: fmt.Errorf("%w: %d is not positive", ErrCommandInvalid, radius)}, ResponseInvalidRadius
	}

	return Command{Kind: CommandGrantWithRadius, Radius: int(radius)}, ResponseGranted
}
