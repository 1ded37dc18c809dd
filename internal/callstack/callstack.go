// Package callstack implements the immutable call-stack recorder: a
// cons-list of frames plus a failure snapshot writer.
//
// Grounded directly on the original Calcit implementation's
// src/call_stack.rs (CalcitStack/StackKind/extend_call_stack/
// display_stack), translated from an rpds persistent list to a plain Go
// singly-linked list of immutable frames.
package callstack

import (
	"fmt"
	"os"
	"strings"

	"github.com/funvibe/lispcore/internal/config"
	"github.com/funvibe/lispcore/internal/value"
	"gopkg.in/yaml.v3"
)

// Kind tags what produced a stack frame.
type Kind int

const (
	KindFn Kind = iota
	KindProc
	KindMacro
	KindSyntax
	KindCodegen
)

func (k Kind) String() string {
	switch k {
	case KindFn:
		return "fn"
	case KindProc:
		return "proc"
	case KindMacro:
		return "macro"
	case KindSyntax:
		return "syntax"
	case KindCodegen:
		return "codegen"
	default:
		return "unknown"
	}
}

// Frame is one entry in the call stack.
type Frame struct {
	Ns   string
	Def  string
	Code value.Value
	Args []value.Value
	Kind Kind
}

// Stack is an immutable cons-list of Frames, newest first. The nil
// Stack is empty.
type Stack struct {
	frame *Frame
	next  *Stack
}

// Empty returns the empty call stack.
func Empty() *Stack { return nil }

// Extend prepends a new frame unless call-stack tracking is disabled
// (config.TrackStack), in which case it returns s unchanged — matching
// the original's "rarely used" performance escape hatch.
func Extend(s *Stack, ns, def string, kind Kind, code value.Value, args []value.Value) *Stack {
	if !config.TrackStack() {
		return s
	}
	return &Stack{
		frame: &Frame{Ns: ns, Def: def, Code: code, Args: args, Kind: kind},
		next:  s,
	}
}

// Frames returns the stack's frames, newest first.
func (s *Stack) Frames() []Frame {
	var out []Frame
	for c := s; c != nil; c = c.next {
		out = append(out, *c.frame)
	}
	return out
}

// ShowStack prints a simplified trace to stdout, mirroring the
// original's show_stack.
func ShowStack(s *Stack) {
	fmt.Println("\ncall stack:")
	for _, f := range s.Frames() {
		printFrameLine(os.Stdout, f)
	}
}

func printFrameLine(w *os.File, f Frame) {
	suffix := ""
	if f.Kind == KindMacro {
		suffix = "\t ~macro"
	}
	fmt.Fprintf(w, "  %s/%s%s\n", f.Ns, f.Def, suffix)
}

// snapshotFrame is the YAML-serialisable shape of one stack entry,
// matching the field names in the snapshot-file description.
type snapshotFrame struct {
	Def  string   `yaml:"def"`
	Code string   `yaml:"code"`
	Args []string `yaml:"args"`
	Kind string   `yaml:"kind"`
}

type snapshot struct {
	Message  string          `yaml:"message"`
	Stack    []snapshotFrame `yaml:"stack"`
	Location string          `yaml:"location,omitempty"`
}

// DisplayAndSnapshot prints the failure + stack trace to stderr and
// writes config.ErrorSnapshotFile, mirroring the original's
// display_stack. The snapshot is rendered with gopkg.in/yaml.v3 instead
// of the external cirru-edn formatter; see DESIGN.md.
func DisplayAndSnapshot(failure string, s *Stack, location string) error {
	fmt.Fprintf(os.Stderr, "\nFailure: %s\n\ncall stack:\n", failure)
	frames := s.Frames()
	snapFrames := make([]snapshotFrame, 0, len(frames))
	for _, f := range frames {
		printFrameLine(os.Stderr, f)
		args := make([]string, len(f.Args))
		for i, a := range f.Args {
			args[i] = value.FormatLisp(a)
		}
		code := ""
		if f.Code != nil {
			code = value.FormatLisp(f.Code)
		}
		snapFrames = append(snapFrames, snapshotFrame{
			Def:  f.Ns + "/" + f.Def,
			Code: code,
			Args: args,
			Kind: f.Kind.String(),
		})
	}

	snap := snapshot{Message: failure, Stack: snapFrames, Location: location}
	content, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(config.ErrorSnapshotFile, content, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nrun `cat %s` to read stack details.\n", config.ErrorSnapshotFile)
	return nil
}

// String renders the stack the way a one-line diagnostic would.
func (s *Stack) String() string {
	var parts []string
	for _, f := range s.Frames() {
		parts = append(parts, f.Ns+"/"+f.Def)
	}
	return strings.Join(parts, " <- ")
}
