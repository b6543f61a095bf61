// Package batch runs conversion jobs described in a small job file:
//
//	job abb {
//	    pattern = "(a|b)*abb";
//	    out = "abb.svg";
//	    format = svg;
//	}
//
// Each job converts one pattern and renders it; `out` and `format` are
// optional.
package batch

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

type File struct {
	Jobs []*Job `parser:"@@*"`
}

type Job struct {
	Name    string   `parser:"'job' @Ident '{'"`
	Entries []*Entry `parser:"@@* '}'"`
}

type Entry struct {
	Key   string `parser:"@Ident '='"`
	Value *Value `parser:"@@ ';'"`
}

type Value struct {
	Str   *string `parser:"@String"`
	Ident *string `parser:"| @Ident"`
}

func (v *Value) text() string {
	if v.Str != nil {
		return *v.Str
	}
	return *v.Ident
}

var fileParser = participle.MustBuild[File](participle.Unquote("String"))

// Parse parses job file text.
func Parse(data string) (*File, error) {
	return fileParser.ParseString("jobs", data)
}

// jobSpec is one job after key validation and defaulting.
type jobSpec struct {
	name    string
	pattern string
	out     string
	format  string
}

func (j *Job) resolve() (jobSpec, error) {
	s := jobSpec{name: j.Name}
	seen := map[string]bool{}
	for _, e := range j.Entries {
		if seen[e.Key] {
			return s, fmt.Errorf("job %s: duplicate key %q", j.Name, e.Key)
		}
		seen[e.Key] = true
		switch e.Key {
		case "pattern":
			s.pattern = e.Value.text()
		case "out":
			s.out = e.Value.text()
		case "format":
			s.format = e.Value.text()
		default:
			return s, fmt.Errorf("job %s: unknown key %q", j.Name, e.Key)
		}
	}
	if s.pattern == "" {
		return s, fmt.Errorf("job %s: pattern is required", j.Name)
	}
	if s.format == "" {
		s.format = "png"
	}
	if s.out == "" {
		s.out = s.name + "." + s.format
	}
	return s, nil
}
