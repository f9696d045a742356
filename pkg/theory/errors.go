package theory

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedKey marks strokes this theory cannot read at all.
	ErrUnrecognizedKey = errors.New("unrecognized key")
	// ErrCompile marks strokes whose key groups have no table entry, or
	// that are not allowed at their position.
	ErrCompile = errors.New("stroke does not compile")
	// ErrInvalidTheory is returned when a theory file fails validation.
	ErrInvalidTheory = errors.New("invalid theory")
)

// UnrecognizedKeyError reports the offending key of a stroke.
// Pos is -1 when the stroke holds no keys at all.
type UnrecognizedKeyError struct {
	Stroke string
	Key    byte
	Pos    int
}

func (e *UnrecognizedKeyError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("stroke %q: no keys", e.Stroke)
	}
	return fmt.Sprintf("stroke %q: unrecognized key %q at %d", e.Stroke, e.Key, e.Pos)
}

func (e *UnrecognizedKeyError) Is(target error) bool {
	return target == ErrUnrecognizedKey
}

// CompileError reports which bank of a stroke failed to compile.
type CompileError struct {
	Stroke string
	Bank   Bank
	Chord  string
	Reason string
}

func (e *CompileError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("stroke %q: %s", e.Stroke, e.Reason)
	}
	return fmt.Sprintf("stroke %q: no %s entry for %q", e.Stroke, e.Bank, e.Chord)
}

func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}
