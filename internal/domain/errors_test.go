package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "toolchain.convert",
		Kind: KindConversion,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindConversion {
		t.Fatalf("expected kind %s", KindConversion)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{
		Op:       "toolchain.flash",
		Kind:     KindFlash,
		Path:     "/tmp/x/firmware.hex",
		ExitCode: 3,
		Err:      ErrToolFailed,
	}

	msg := err.Error()
	for _, want := range []string{"toolchain.flash", "flash", "path=/tmp/x/firmware.hex", "exit=3", ErrToolFailed.Error()} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got=%q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("run: %w", &OpError{Op: "x", Kind: KindToolNotFound})

	if !IsKind(err, KindToolNotFound) {
		t.Fatalf("expected IsKind to match wrapped op error")
	}
	if IsKind(err, KindFlash) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindFlash) {
		t.Fatalf("expected IsKind=false for plain errors")
	}
}

func TestExitCodeOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 0},
		{"outer", &OpError{Kind: KindFlash, ExitCode: 2}, 2},
		{
			"nested",
			&OpError{Kind: KindConversion, Err: &OpError{Kind: KindExecution, ExitCode: 5}},
			5,
		},
		{"no code", &OpError{Kind: KindConversion, Err: errors.New("x")}, 0},
	}
	for _, c := range cases {
		if got := ExitCodeOf(c.err); got != c.want {
			t.Errorf("%s: ExitCodeOf = %d, want %d", c.name, got, c.want)
		}
	}
}
