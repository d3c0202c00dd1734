package interpreters

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"ccdb/internal/intercept"
	"ccdb/internal/semantic"
)

// gccFamily recognizes gcc-compatible compiler drivers (cc, gcc, g++, c++,
// clang, clang++), including cross prefixes like x86_64-linux-gnu-gcc and
// version suffixes like gcc-12.
type gccFamily struct{}

var _ semantic.Interpreter = gccFamily{}

var gccNamePattern = regexp.MustCompile(`^(?:[\w.+]+-)*(?:cc|c\+\+|gcc|g\+\+|clang|clang\+\+)(?:-[\d.]+)?$`)

// Flags that consume the next argument and stay relevant to a compilation
// pass.
var gccFlagsWithArg = map[string]bool{
	"-D":             true,
	"-U":             true,
	"-I":             true,
	"-isystem":       true,
	"-iquote":        true,
	"-idirafter":     true,
	"-include":       true,
	"-imacros":       true,
	"-target":        true,
	"--param":        true,
	"-x":             true,
	"-Xclang":        true,
	"-Xassembler":    true,
	"-Xpreprocessor": true,
}

// Flags that consume the next argument but are irrelevant to a compilation
// pass (dependency generation, linker plumbing, the output slot).
var gccDroppedFlagsWithArg = map[string]bool{
	"-o":       true,
	"-MF":      true,
	"-MT":      true,
	"-MQ":      true,
	"-Xlinker": true,
	"-z":       true,
	"-u":       true,
}

// Prefixes of one-token flags that stay relevant to a compilation pass.
var gccKeptPrefixes = []string{
	"-D", "-U", "-I", "-isystem", "-iquote", "-idirafter", "-include",
	"-imacros", "-std=", "-f", "-m", "-W", "-O", "-g", "-pthread",
	"-nostdinc", "--sysroot=", "-pedantic", "-ansi", "-x",
}

// Source file extensions the gcc driver compiles.
var gccSourceExtensions = map[string]bool{
	".c": true, ".i": true, ".ii": true,
	".m": true, ".mi": true, ".mm": true, ".mii": true,
	".cc": true, ".cp": true, ".cxx": true, ".cpp": true, ".c++": true,
	".C": true, ".CPP": true,
	".s": true, ".S": true, ".sx": true,
}

func (gccFamily) Recognize(execution *intercept.Execution) (semantic.Meaning, error) {
	if !gccNamePattern.MatchString(filepath.Base(execution.Executable)) {
		return nil, nil
	}
	passes, err := decomposeGccArguments(execution.Arguments)
	if err != nil {
		return nil, err
	}
	return semantic.CompilerCall{
		Compiler:   execution.Executable,
		WorkingDir: execution.WorkingDir,
		Passes:     passes,
	}, nil
}

// decomposeGccArguments splits one driver invocation into compilation
// passes: one Compile pass per source file, in argument order. The flags of
// a pass are the pass-relevant subset of the command line; linker inputs
// and flags are dropped. "-Wl," and friends never reach a Compile pass.
func decomposeGccArguments(arguments []string) ([]semantic.CompilerPass, error) {
	if len(arguments) == 0 {
		return nil, fmt.Errorf("empty argument list")
	}
	var sources []string
	var flags []string
	var output string
	preprocessOnly := false

	args := arguments[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-E":
			preprocessOnly = true
		case arg == "-c" || arg == "-S":
			// The kind of driver run; not a flag of any pass.
		case gccFlagsWithArg[arg]:
			if i+1 == len(args) {
				return nil, fmt.Errorf("flag %s misses its argument", arg)
			}
			flags = append(flags, arg, args[i+1])
			i++
		case gccDroppedFlagsWithArg[arg]:
			if i+1 == len(args) {
				return nil, fmt.Errorf("flag %s misses its argument", arg)
			}
			if arg == "-o" {
				output = args[i+1]
			}
			i++
		case strings.HasPrefix(arg, "-o"):
			output = arg[len("-o"):]
		case strings.HasPrefix(arg, "-"):
			if gccFlagKept(arg) {
				flags = append(flags, arg)
			}
		case gccSourceExtensions[filepath.Ext(arg)]:
			sources = append(sources, arg)
		default:
			// Linker inputs (objects, archives) and anything else we do
			// not understand contribute nothing to a compilation pass.
		}
	}

	if preprocessOnly {
		return []semantic.CompilerPass{semantic.Preprocess{}}, nil
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no source files found in the argument list")
	}
	passes := make([]semantic.CompilerPass, 0, len(sources))
	for _, source := range sources {
		pass := semantic.Compile{Source: source, Flags: flags}
		// The output slot is only unambiguous for a single translation
		// unit.
		if len(sources) == 1 {
			pass.Output = output
		}
		passes = append(passes, pass)
	}
	return passes, nil
}

func gccFlagKept(arg string) bool {
	// "-Wl,...", "-Wa,..." and "-Wp,..." forward to the linker, assembler
	// and preprocessor; they are not compiler diagnostics.
	for _, forwarded := range []string{"-Wl,", "-Wa,", "-Wp,"} {
		if strings.HasPrefix(arg, forwarded) {
			return false
		}
	}
	for _, prefix := range gccKeptPrefixes {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	return false
}
