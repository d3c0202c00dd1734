package wrapper

import (
	"errors"
	"strings"
	"testing"
)

func TestInvokedNameStripsDirectories(t *testing.T) {
	name, err := invokedName([]string{"/wrap/cc", "-c", "a.c"})
	if err != nil {
		t.Fatalf("Expected no error, but got %s", err)
	}
	if name != "cc" {
		t.Errorf("invoked name incorrect. Got: %q", name)
	}
}

func TestInvokedNameFailsWithoutArguments(t *testing.T) {
	if _, err := invokedName(nil); err == nil {
		t.Errorf("expected a startup error for a missing argument vector")
	}
}

func TestInvokedNameFailsWithoutFileName(t *testing.T) {
	for _, argv0 := range []string{"/", ".", "bin/.."} {
		if _, err := invokedName([]string{argv0}); err == nil {
			t.Errorf("expected a startup error for argv0 %q", argv0)
		}
	}
}

func TestResolveRealPicksFirstCandidateInPathOrder(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		ctx.writeFile(ctx.path("usr/bin", "cc"), "")
		ctx.writeFile(ctx.path("usr/local/bin", "cc"), "")
		ctx.setenv("PATH", ctx.path("usr/local/bin")+":"+ctx.path("usr/bin"))

		resolved, err := resolveReal(ctx, "cc")
		if err != nil {
			t.Fatalf("Expected no error, but got %s", err)
		}
		if resolved != ctx.path("usr/local/bin", "cc") {
			t.Errorf("resolution order incorrect. Got: %q", resolved)
		}
	})
}

func TestResolveRealSkipsTheStandInItself(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		// The wrap directory holds a link to the stand-in binary and comes
		// first in the search path.
		ctx.symlink(ctx.selfPath, ctx.path("wrap", "cc"))
		ctx.writeFile(ctx.path("usr/bin", "cc"), "")
		ctx.setenv("PATH", ctx.path("wrap")+":"+ctx.path("usr/bin"))

		resolved, err := resolveReal(ctx, "cc")
		if err != nil {
			t.Fatalf("Expected no error, but got %s", err)
		}
		if resolved != ctx.path("usr/bin", "cc") {
			t.Errorf("expected the candidate after the stand-in. Got: %q", resolved)
		}
	})
}

func TestResolveRealSkipsNonRegularCandidates(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		// A directory named like the tool must not win.
		ctx.writeFile(ctx.path("dirs/cc", "placeholder"), "")
		ctx.writeFile(ctx.path("usr/bin", "cc"), "")
		ctx.setenv("PATH", ctx.path("dirs")+":"+ctx.path("usr/bin"))

		resolved, err := resolveReal(ctx, "cc")
		if err != nil {
			t.Fatalf("Expected no error, but got %s", err)
		}
		if resolved != ctx.path("usr/bin", "cc") {
			t.Errorf("expected the regular file candidate. Got: %q", resolved)
		}
	})
}

func TestResolveRealFailsWhenOnlyTheStandInMatches(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		ctx.symlink(ctx.selfPath, ctx.path("wrap", "cc"))
		ctx.setenv("PATH", ctx.path("wrap")+":"+ctx.path("usr/bin"))

		_, err := resolveReal(ctx, "cc")
		var resErr resolutionError
		if !errors.As(err, &resErr) {
			t.Fatalf("expected a resolution error. Got: %v", err)
		}
		if !strings.Contains(resErr.Error(), "cc") {
			t.Errorf("resolution error misses the invoked name. Got: %s", resErr.Error())
		}
	})
}
