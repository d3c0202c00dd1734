// Package clangdb writes recognized compiler calls as a clang JSON
// compilation database.
package clangdb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ccdb/internal/semantic"
)

// Entry is one compilation database record, per the clang
// compile_commands.json format.
type Entry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Output    string   `json:"output,omitempty"`
	Arguments []string `json:"arguments"`
}

// Entries converts one recognized compiler call into database entries, one
// per compile pass. Preprocess passes contribute nothing.
func Entries(call semantic.CompilerCall) []Entry {
	var entries []Entry
	for _, pass := range call.Passes {
		compile, ok := pass.(semantic.Compile)
		if !ok {
			continue
		}
		arguments := []string{call.Compiler}
		arguments = append(arguments, compile.Flags...)
		arguments = append(arguments, "-c", compile.Source)
		if compile.Output != "" {
			arguments = append(arguments, "-o", compile.Output)
		}
		entries = append(entries, Entry{
			Directory: call.WorkingDir,
			File:      compile.Source,
			Output:    compile.Output,
			Arguments: arguments,
		})
	}
	return entries
}

// Write stores the entries at path. The write is atomic: the database is
// assembled in a temp file and moved into place, so a reader never sees a
// partial database.
func Write(path string, entries []Entry) (err error) {
	if entries == nil {
		entries = []Entry{}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("cannot create the compilation database: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(entries); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot encode the compilation database: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("cannot write the compilation database: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot move the compilation database into place: %w", err)
	}
	return nil
}
