package command

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{name: "empty", raw: "", want: Line{Raw: ""}},
		{name: "blank", raw: "   \t ", want: Line{Raw: "   \t "}},
		{name: "word only", raw: "list", want: Line{Raw: "list", Word: "list"}},
		{name: "word padded", raw: "  help  ", want: Line{Raw: "  help  ", Word: "help"}},
		{
			name: "word and arguments",
			raw:  "add /n Aspirin /q 3",
			want: Line{Raw: "add /n Aspirin /q 3", Word: "add", Arguments: "/n Aspirin /q 3"},
		},
		{
			name: "tab and whitespace run after word",
			raw:  "find\t  /n  foo ",
			want: Line{Raw: "find\t  /n  foo ", Word: "find", Arguments: "/n  foo"},
		},
		{
			name: "word is not stripped from arguments by substring",
			raw:  "add /n add /d x /s y /q 1",
			want: Line{Raw: "add /n add /d x /s y /q 1", Word: "add", Arguments: "/n add /d x /s y /q 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}
