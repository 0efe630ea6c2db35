package command

import (
	"errors"
	"testing"
)

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("/add prepare for the physics exam")
	if err != nil {
		t.Fatalf("parse add: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.Add.Description != "prepare for the physics exam" {
		t.Fatalf("unexpected description: %q", cmd.Add.Description)
	}
}

func TestParseFocus(t *testing.T) {
	cmd, err := Parse("focus deep reading")
	if err != nil {
		t.Fatalf("parse focus: %v", err)
	}
	if cmd.Type != TypeFocus || cmd.Focus == nil || cmd.Focus.Label != "deep reading" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		code  ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/frobnicate", ErrCodeUnknownCommand},
		{"/add", ErrCodeInvalidArgument},
		{"/focus", ErrCodeInvalidArgument},
		{"/view", ErrCodeInvalidArgument},
		{"/view nowhere", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != tc.code {
			t.Fatalf("input %q: expected code %s, got %v", tc.input, tc.code, err)
		}
	}
}

func TestExecuteDispatches(t *testing.T) {
	cmd, err := Parse("/view stats")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Execute(cmd, Handlers{
		View: func(v ViewArgs) (Result, error) {
			return Result{Message: "switched to " + v.Target}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Message != "switched to stats" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("/sync")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
