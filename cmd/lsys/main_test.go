package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTextOutput(t *testing.T) {
	code, out, errout := runArgs(t, "-system", "koch", "-depth", "1", "-width", "4")
	if code != exitOK {
		t.Fatalf("expected exit code 0, have %d: %s", code, errout)
	}
	expected := "koch, generation 1: 8 letters\nF+F-\n-F+F\n"
	if out != expected {
		t.Errorf("expected\n%q, have\n%q", expected, out)
	}
}

func TestJSONOutput(t *testing.T) {
	code, out, errout := runArgs(t, "-system", "levy", "-depth", "4", "-json", "-turtle")
	if code != exitOK {
		t.Fatalf("expected exit code 0, have %d: %s", code, errout)
	}
	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON: %s", out)
	}
	if s := gjson.Get(out, "system").String(); s != "levy" {
		t.Errorf("expected system levy, have %q", s)
	}
	lengths := gjson.Get(out, "lengths").Array()
	if len(lengths) != 5 || lengths[1].Int() != 6 || lengths[2].Int() != 16 {
		t.Errorf("unexpected generation lengths %v", lengths)
	}
	if w := gjson.Get(out, "word").String(); len(w) != int(lengths[4].Int()) {
		t.Errorf("expected word of generation 4, have %q", w)
	}
	if x := gjson.Get(out, "turtle.end.x").Float(); math.Abs(x-4) > 1e-6 {
		t.Errorf("expected Lévy curve to end at x = 4, ends at %f", x)
	}
	if s := gjson.Get(out, "turtle.scale").Float(); math.Abs(s-1/math.Sqrt2) > 1e-6 {
		t.Errorf("expected scale factor 1/√2, have %f", s)
	}
	if !gjson.Get(out, "turtle.bounds.max.y").Exists() {
		t.Errorf("expected turtle bounds in report")
	}
}

func TestTurtleText(t *testing.T) {
	code, out, _ := runArgs(t, "-system", "carpet", "-depth", "1", "-turtle", "-width", "0")
	if code != exitOK {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if !strings.Contains(out, "in 2 polylines") {
		t.Errorf("expected turtle report, have\n%s", out)
	}
}

func TestList(t *testing.T) {
	code, out, _ := runArgs(t, "-list")
	if code != exitOK || !strings.Contains(out, "dragon\n") {
		t.Errorf("expected list of systems, have %q", out)
	}
}

func TestErrors(t *testing.T) {
	for _, c := range []struct {
		args []string
		code int
		msg  string
	}{
		{[]string{"-system", "nope"}, exitUsage, "unknown system"},
		{[]string{"-depth", "-1"}, exitUsage, "invalid depth"},
		{[]string{"-trace", "loud"}, exitUsage, "invalid trace level"},
		{[]string{"-depth", "5", "-max-depth", "4"}, exitError, "exceeds maximum"},
		{[]string{"extra"}, exitUsage, "unexpected arguments"},
	} {
		code, _, errout := runArgs(t, c.args...)
		if code != c.code || !strings.Contains(errout, c.msg) {
			t.Errorf("%v: expected exit code %d with %q, have %d: %s", c.args, c.code, c.msg, code, errout)
		}
	}
}

func TestWrap(t *testing.T) {
	if lines := wrap("abcdefg", 3); len(lines) != 3 || lines[2] != "g" {
		t.Errorf("unexpected wrapping %v", lines)
	}
	if lines := wrap("abc", 0); len(lines) != 1 {
		t.Errorf("expected width 0 not to wrap, have %v", lines)
	}
}
