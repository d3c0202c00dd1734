package recognition

import (
	"testing"

	"ccdb/internal/config"
	"ccdb/internal/intercept"
	"ccdb/internal/semantic"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Output.Compilers = []config.Compiler{
		{Path: "/usr/bin/cc1", Ignore: config.IgnoreAlways},
	}
	cfg.Intercept.Executables = []string{"/opt/bin/magic-cc"}
	return cfg
}

func execution(executable string, arguments ...string) *intercept.Execution {
	return &intercept.Execution{
		Executable:  executable,
		Arguments:   arguments,
		WorkingDir:  "/proj",
		Environment: map[string]string{},
	}
}

func TestApplyReturnsCompilerCalls(t *testing.T) {
	recognizer := New(testConfig())
	meaning := recognizer.Apply(execution("/usr/bin/cc", "cc", "-c", "a.c", "-o", "a.o"))
	call, ok := meaning.(semantic.CompilerCall)
	if !ok {
		t.Fatalf("expected a compiler call. Got: %#v", meaning)
	}
	if call.Compiler != "/usr/bin/cc" {
		t.Errorf("compiler incorrect. Got: %q", call.Compiler)
	}
}

func TestApplySuppressesIgnoredExecutions(t *testing.T) {
	recognizer := New(testConfig())
	if meaning := recognizer.Apply(execution("/usr/bin/cc1", "cc1", "-c", "a.c")); meaning != nil {
		t.Errorf("ignored execution must yield nothing. Got: %#v", meaning)
	}
}

func TestApplySuppressesUnknownExecutions(t *testing.T) {
	recognizer := New(testConfig())
	if meaning := recognizer.Apply(execution("/usr/bin/make", "make", "all")); meaning != nil {
		t.Errorf("unknown execution must yield nothing. Got: %#v", meaning)
	}
}

func TestApplySuppressesRecognitionFailures(t *testing.T) {
	recognizer := New(testConfig())
	// A compiler call without any source file is a recognition error, not
	// a crash and not a meaning.
	if meaning := recognizer.Apply(execution("/usr/bin/gcc", "gcc", "--version")); meaning != nil {
		t.Errorf("failed recognition must yield nothing. Got: %#v", meaning)
	}
}

func TestApplyUsesTheExplicitInclusionList(t *testing.T) {
	recognizer := New(testConfig())
	meaning := recognizer.Apply(execution("/opt/bin/magic-cc", "magic-cc", "a.src"))
	if _, ok := meaning.(semantic.CompilerCall); !ok {
		t.Errorf("expected the declared wrapper to be recognized. Got: %#v", meaning)
	}
}
