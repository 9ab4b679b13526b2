package shell

import (
	"errors"
	"fmt"

	"github.com/archora/archora/internal/vfs"
)

// failureFor maps a store error onto the failure kind and the reason
// phrase printed after the path.
func failureFor(err error) (FailureKind, string) {
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		return NotFound, "No such file or directory"
	case errors.Is(err, vfs.ErrNotADirectory):
		return NotADirectory, "Not a directory"
	case errors.Is(err, vfs.ErrIsADirectory):
		return IsADirectory, "Is a directory"
	case errors.Is(err, vfs.ErrAlreadyExists):
		return AlreadyExists, "File exists"
	case errors.Is(err, vfs.ErrNotEmpty):
		return NotEmpty, "Directory not empty"
	}
	return InvalidArgument, err.Error()
}

func runPwd(in *Interpreter, _ []string) Result {
	return Output(FormatPath, in.session.Cwd)
}

func runLs(in *Interpreter, args []string) Result {
	arg := "."
	if len(args) > 0 {
		arg = args[0]
	}

	entries, err := in.store.List(in.Resolve(arg))
	if err != nil {
		kind, reason := failureFor(err)
		if kind == NotFound {
			return Failure(kind, fmt.Sprintf("ls: cannot access '%s': %s", arg, reason))
		}
		return Failure(kind, fmt.Sprintf("ls: '%s': %s", arg, reason))
	}
	return Listing(entries)
}

func runCd(in *Interpreter, args []string) Result {
	if len(args) == 0 {
		in.session.Cwd = in.session.Home()
		return Silent()
	}

	arg := args[0]
	target := in.Resolve(arg)

	node, ok := in.store.Lookup(target)
	if !ok {
		return Failure(NotFound, fmt.Sprintf("cd: '%s': No such file or directory", arg))
	}
	if _, isDir := node.(*vfs.Dir); !isDir {
		return Failure(NotADirectory, fmt.Sprintf("cd: '%s': Not a directory", arg))
	}

	in.session.Cwd = target
	return Silent()
}

func runMkdir(in *Interpreter, args []string) Result {
	if len(args) == 0 {
		return Failure(MissingOperand, "mkdir: missing operand")
	}
	if err := in.store.Mkdir(in.Resolve(args[0])); err != nil {
		kind, reason := failureFor(err)
		return Failure(kind, fmt.Sprintf("mkdir: cannot create directory '%s': %s", args[0], reason))
	}
	return Silent()
}

func runTouch(in *Interpreter, args []string) Result {
	if len(args) == 0 {
		return Failure(MissingOperand, "touch: missing operand")
	}
	if err := in.store.Touch(in.Resolve(args[0])); err != nil {
		kind, reason := failureFor(err)
		return Failure(kind, fmt.Sprintf("touch: cannot touch '%s': %s", args[0], reason))
	}
	return Silent()
}

func runRm(in *Interpreter, args []string) Result {
	if len(args) == 0 {
		return Failure(MissingOperand, "rm: missing operand")
	}
	if err := in.store.Remove(in.Resolve(args[0])); err != nil {
		kind, reason := failureFor(err)
		return Failure(kind, fmt.Sprintf("rm: cannot remove '%s': %s", args[0], reason))
	}
	return Silent()
}

func runCat(in *Interpreter, args []string) Result {
	if len(args) == 0 {
		return Failure(MissingOperand, "cat: missing file operand")
	}
	content, err := in.store.Read(in.Resolve(args[0]))
	if err != nil {
		kind, reason := failureFor(err)
		return Failure(kind, fmt.Sprintf("cat: '%s': %s", args[0], reason))
	}
	return Output(FormatContent, content)
}
