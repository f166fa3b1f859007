// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"crypto/md5"
	"encoding/hex"
	"reflect"
	"strconv"
	"testing"

	"packsmith/pkg/packformat"
)

// lowerAll lowers cmds as the body of test:main and returns the emitted
// lines plus any synthesized functions in creation order.
func lowerAll(t *testing.T, format packformat.Format, debug bool, cmds ...Command) ([]string, []*Function) {
	t.Helper()

	strategy, err := packformat.ForFormat(format)
	if err != nil {
		t.Fatalf("ForFormat(%d): %v", format, err)
	}
	c := &compiler{opts: CompileOptions{Debug: debug}, strategy: strategy}
	queue := &functionQueue{}
	st := newUnitState("test", "main", queue)

	var lines []string
	for _, cmd := range cmds {
		lines = append(lines, c.lowerCommand(cmd, st)...)
	}
	// drain like a real compile so helpers of helpers surface too
	var synthesized []*Function
	for {
		fn, ok := queue.pop()
		if !ok {
			break
		}
		synthesized = append(synthesized, fn)
		fn.compile(c, queue)
	}
	return lines, synthesized
}

// unitHash returns the identifier lowering derives for the n-th synthesis
// request of the unit at path.
func unitHash(path string, uid int) string {
	sum := md5.Sum([]byte(path + ":" + strconv.Itoa(uid)))
	return hex.EncodeToString(sum[:])
}

func TestLowerBasicCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		debug bool
		cmds  []Command
		want  []string
	}{
		{
			name: "raw single line",
			cmds: []Command{Raw("say hi")},
			want: []string{"say hi"},
		},
		{
			name: "raw multi line",
			cmds: []Command{Raw("say a\nsay b")},
			want: []string{"say a", "say b"},
		},
		{
			name: "comment",
			cmds: []Command{Comment(" setup")},
			want: []string{"# setup"},
		},
		{
			name:  "debug stripped",
			debug: false,
			cmds:  []Command{Debug{Inner: Raw("say hi")}},
			want:  nil,
		},
		{
			name:  "debug kept",
			debug: true,
			cmds:  []Command{Debug{Inner: Raw("say hi")}},
			want:  []string{"say hi"},
		},
		{
			name: "execute chain",
			cmds: []Command{Exec(ExecAs("@a", ExecRun(Raw("say hi"))))},
			want: []string{"execute as @a run say hi"},
		},
		{
			name: "as at shorthand",
			cmds: []Command{Exec(ExecAsAt("@p", ExecRun(Raw("tp ~ ~1 ~"))))},
			want: []string{"execute as @p at @s run tp ~ ~1 ~"},
		},
		{
			name: "bare run skips execute",
			cmds: []Command{Exec(ExecRun(Raw("say direct")))},
			want: []string{"say direct"},
		},
		{
			name: "comment under execute stays bare",
			cmds: []Command{Exec(ExecAs("@a", ExecRuns(Comment(" note"), Raw("say hi"))))},
			want: []string{"# note", "execute as @a run say hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines, synthesized := lowerAll(t, packformat.Latest, tt.debug, tt.cmds...)
			if !reflect.DeepEqual(lines, tt.want) {
				t.Errorf("lines = %q, want %q", lines, tt.want)
			}
			if len(synthesized) != 0 {
				t.Errorf("synthesized %d functions, want none", len(synthesized))
			}
		})
	}
}

func TestGroupInlinesSingleLineMembers(t *testing.T) {
	t.Parallel()

	lines, synthesized := lowerAll(t, packformat.Latest, false,
		Group{Comment(" both at once"), Raw("say a"), Raw("say b")},
	)

	want := []string{"# both at once", "say a", "say b"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
	if len(synthesized) != 0 {
		t.Errorf("synthesized %d functions, want none", len(synthesized))
	}
}

func TestGroupWithMultiLineMemberSynthesizes(t *testing.T) {
	t.Parallel()

	lines, synthesized := lowerAll(t, packformat.Latest, false,
		Group{Raw("say a\nsay b"), Raw("say c")},
	)

	wantPath := "ps/main/" + unitHash("main", 0)[:16]
	if want := []string{"function test:" + wantPath}; !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
	if len(synthesized) != 1 {
		t.Fatalf("synthesized %d functions, want 1", len(synthesized))
	}
	fn := synthesized[0]
	if fn.Path() != wantPath {
		t.Errorf("path = %q, want %q", fn.Path(), wantPath)
	}
	if want := []Command{Raw("say a\nsay b"), Raw("say c")}; !reflect.DeepEqual(fn.Commands(), want) {
		t.Errorf("body = %#v, want %#v", fn.Commands(), want)
	}
}

func TestGroupUnderExecuteSynthesizes(t *testing.T) {
	t.Parallel()

	lines, synthesized := lowerAll(t, packformat.Latest, false,
		Exec(ExecAs("@a", ExecRun(Group{Raw("say a"), Raw("say b")}))),
	)

	wantPath := "ps/main/" + unitHash("main", 0)[:16]
	if want := []string{"execute as @a run function test:" + wantPath}; !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
	if len(synthesized) != 1 {
		t.Fatalf("synthesized %d functions, want 1", len(synthesized))
	}
}

func TestSummonGroupsMultiLineBody(t *testing.T) {
	t.Parallel()

	lines, synthesized := lowerAll(t, packformat.Latest, false,
		Exec(ExecSummon("creeper", ExecRuns(Raw("say a"), Raw("say b")))),
	)

	wantPath := "ps/main/" + unitHash("main", 0)[:16]
	if want := []string{"execute summon creeper run function test:" + wantPath}; !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
	if len(synthesized) != 1 {
		t.Fatalf("synthesized %d functions, want 1", len(synthesized))
	}
}

func TestNestedSynthesisFoldsIntoOriginFolder(t *testing.T) {
	t.Parallel()

	// The outer group synthesizes a unit; a group inside it synthesizes
	// again. The helper of the helper must stay under ps/ without
	// stacking prefixes.
	_, synthesized := lowerAll(t, packformat.Latest, false,
		Group{
			Raw("say a\nsay b"),
			Exec(ExecAs("@a", ExecRun(Group{Raw("say c"), Raw("say d")}))),
		},
	)

	if len(synthesized) != 2 {
		t.Fatalf("synthesized %d functions, want 2", len(synthesized))
	}
	outer := synthesized[0].Path()
	inner := synthesized[1].Path()
	wantOuter := "ps/main/" + unitHash("main", 0)[:16]
	if outer != wantOuter {
		t.Errorf("outer path = %q, want %q", outer, wantOuter)
	}
	origin := "main/" + unitHash("main", 0)[:16]
	wantInner := "ps/" + origin + "/" + unitHash(origin, 0)[:16]
	if inner != wantInner {
		t.Errorf("inner path = %q, want %q", inner, wantInner)
	}
}

func TestDebugMessage(t *testing.T) {
	t.Parallel()

	lines, _ := lowerAll(t, packformat.Latest, true, DebugMessage("checkpoint"))
	if len(lines) != 1 {
		t.Fatalf("lines = %q, want one tellraw line", lines)
	}
	if got := lines[0]; got[:len("tellraw @a ")] != "tellraw @a " {
		t.Errorf("line = %q, want tellraw prefix", got)
	}

	lines, _ = lowerAll(t, packformat.Latest, false, DebugMessage("checkpoint"))
	if len(lines) != 0 {
		t.Errorf("lines = %q, want none in release mode", lines)
	}
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cmd       Command
		supported packformat.Range
		want      bool
	}{
		{
			name:      "evergreen command",
			cmd:       Raw("say hi"),
			supported: packformat.RangeOf(4, 48),
			want:      true,
		},
		{
			name:      "comment always valid",
			cmd:       Comment("transfer"),
			supported: packformat.RangeOf(4, 48),
			want:      true,
		},
		{
			name:      "late command over wide range",
			cmd:       Raw("transfer example.org 25565"),
			supported: packformat.RangeOf(4, 48),
			want:      false,
		},
		{
			name:      "late command over late range",
			cmd:       Raw("transfer example.org 25565"),
			supported: packformat.RangeOf(41, 48),
			want:      true,
		},
		{
			name:      "summon clause needs format 12",
			cmd:       Exec(ExecSummon("creeper", ExecRun(Raw("say hi")))),
			supported: packformat.RangeOf(4, 48),
			want:      false,
		},
		{
			name:      "on clause needs format 12",
			cmd:       Exec(ExecOn("passengers", ExecRun(Raw("say hi")))),
			supported: packformat.RangeOf(12, 48),
			want:      true,
		},
		{
			name:      "group checks members",
			cmd:       Group{Raw("say hi"), Raw("transfer example.org 25565")},
			supported: packformat.RangeOf(4, 48),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validateCommand(tt.cmd, tt.supported); got != tt.want {
				t.Errorf("validateCommand() = %v, want %v", got, tt.want)
			}
		})
	}
}
