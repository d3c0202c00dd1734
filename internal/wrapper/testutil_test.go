package wrapper

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testContext struct {
	t        *testing.T
	tempDir  string
	env      []string
	argv     []string
	selfPath string
	runCmds  []*command
}

func withTestContext(t *testing.T, work func(ctx *testContext)) {
	t.Parallel()
	tempDir := t.TempDir()
	ctx := testContext{
		t:        t,
		tempDir:  tempDir,
		selfPath: filepath.Join(tempDir, "standin"),
	}
	// The stand-in binary needs to exist so its path can be canonicalized.
	ctx.writeFile(ctx.selfPath, "")
	work(&ctx)
}

var _ env = (*testContext)(nil)

func (ctx *testContext) args() []string {
	return ctx.argv
}

func (ctx *testContext) getenv(key string) string {
	for i := len(ctx.env) - 1; i >= 0; i-- {
		entry := ctx.env[i]
		if strings.HasPrefix(entry, key+"=") {
			return entry[len(key)+1:]
		}
	}
	return ""
}

func (ctx *testContext) environ() []string {
	return ctx.env
}

func (ctx *testContext) getwd() string {
	return ctx.tempDir
}

func (ctx *testContext) executable() (string, error) {
	return ctx.selfPath, nil
}

func (ctx *testContext) pid() int {
	return 12345
}

func (ctx *testContext) run(cmd *command) error {
	ctx.runCmds = append(ctx.runCmds, cmd)
	execCmd := newExecCmd(ctx, cmd)
	execCmd.Stdout = io.Discard
	execCmd.Stderr = io.Discard
	return execCmd.Run()
}

func (ctx *testContext) setenv(key, value string) {
	ctx.env = append(ctx.env, key+"="+value)
}

func (ctx *testContext) writeFile(fullFileName string, fileContent string) {
	if !filepath.IsAbs(fullFileName) {
		fullFileName = filepath.Join(ctx.tempDir, fullFileName)
	}
	if err := os.MkdirAll(filepath.Dir(fullFileName), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.WriteFile(fullFileName, []byte(fileContent), 0777); err != nil {
		ctx.t.Fatal(err)
	}
}

// writeTool drops an executable shell script at the given path.
func (ctx *testContext) writeTool(path string, script string) {
	ctx.writeFile(path, "#!/bin/sh\n"+script+"\n")
}

func (ctx *testContext) symlink(oldname string, newname string) {
	if !filepath.IsAbs(oldname) {
		oldname = filepath.Join(ctx.tempDir, oldname)
	}
	if !filepath.IsAbs(newname) {
		newname = filepath.Join(ctx.tempDir, newname)
	}
	if err := os.MkdirAll(filepath.Dir(newname), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.Symlink(oldname, newname); err != nil {
		ctx.t.Fatal(err)
	}
}

func (ctx *testContext) path(elem ...string) string {
	return filepath.Join(append([]string{ctx.tempDir}, elem...)...)
}
