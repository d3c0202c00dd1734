package wrapper

import (
	"os"
	"path/filepath"
)

// invokedName extracts the file-name component of the name this process
// was started with. The stand-in is invoked through a link named after the
// real tool, so argv[0] is the only record of what it stands in for.
func invokedName(args []string) (string, error) {
	if len(args) == 0 {
		return "", newStartupErrorf("cannot get the first argument")
	}
	name := filepath.Base(args[0])
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", newStartupErrorf("cannot get the file name from %q", args[0])
	}
	return name, nil
}

// resolveReal walks the search path and returns the first candidate named
// like the invoked tool that is a regular file and is not the running
// stand-in binary itself. The self check compares canonicalized paths, so
// it holds across links back to the same binary.
//
// Candidates are not checked for execute permission; a stricter check
// could change which candidate wins.
func resolveReal(env env, name string) (string, error) {
	self, err := env.executable()
	if err != nil {
		return "", wrapErrorwithSourceLocf(err, "failed to locate the stand-in binary")
	}
	canonicalSelf, err := canonicalize(self)
	if err != nil {
		return "", wrapErrorwithSourceLocf(err, "failed to canonicalize the stand-in binary path %s", self)
	}

	searchPath := env.getenv("PATH")
	for _, dir := range filepath.SplitList(searchPath) {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		canonicalCandidate, err := canonicalize(candidate)
		if err != nil {
			continue
		}
		if canonicalCandidate == canonicalSelf {
			continue
		}
		return candidate, nil
	}
	return "", resolutionError{name: name, searchPath: searchPath}
}

// canonicalize resolves a path to its absolute, link-free form.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
