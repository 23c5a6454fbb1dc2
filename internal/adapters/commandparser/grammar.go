package commandparser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/stocker/internal/core/commands"
)

// valueKind is the primitive type a flag value must parse to.
type valueKind int

const (
	textValue     valueKind = iota // free text, trimmed
	quantityValue                  // integer >= 1
	countValue                     // integer >= 0
)

// flag is one required "/x value" pair of a grammar rule.
type flag struct {
	token string
	kind  valueKind
	// blank is the message template used when a text value is blank after
	// trimming. Only a flag followed by another flag can capture a blank
	// value: the argument remainder is trimmed, so a blank final value never
	// matches the pattern and is a format error. Final flags leave it empty.
	blank string
}

// rule is the grammar of one flag-based command: the flags it requires, in
// order, and how to build the command from the extracted values.
type rule struct {
	word    string
	usage   string
	flags   []flag
	build   func(v values) commands.Command
	pattern *regexp.Regexp
}

// values holds the typed values extracted by a rule, keyed by flag token.
type values struct {
	text map[string]string
	num  map[string]int64
}

func (v values) str(token string) string { return v.text[token] }

func (v values) number(token string) int64 { return v.num[token] }

func newRule(word, usage string, build func(v values) commands.Command, flags ...flag) *rule {
	parts := make([]string, 0, len(flags))
	for _, f := range flags {
		parts = append(parts, regexp.QuoteMeta(f.token)+" (.*)")
	}
	return &rule{
		word:    word,
		usage:   usage,
		flags:   flags,
		build:   build,
		pattern: regexp.MustCompile("^" + strings.Join(parts, " ") + "$"),
	}
}

/*
parse matches arguments against the rule. Checks run in a fixed order so a
malformed line is always reported as a format error:
 1. the flags must all be present, in order;
 2. numeric values must parse as integers (failures count as format errors);
 3. numeric values must be in range;
 4. text values must not be blank.
*/
func (r *rule) parse(arguments string) commands.Command {
	m := r.pattern.FindStringSubmatch(arguments)
	if m == nil {
		return incorrect(r.word, commands.MessageInvalidCommandFormat, r.usage)
	}

	v := values{text: make(map[string]string), num: make(map[string]int64)}
	for i, f := range r.flags {
		raw := strings.TrimSpace(m[i+1])
		if f.kind == textValue {
			v.text[f.token] = raw
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return incorrect(r.word, commands.MessageInvalidCommandFormat, r.usage)
		}
		v.num[f.token] = n
	}

	for _, f := range r.flags {
		switch {
		case f.kind == quantityValue && v.num[f.token] < 1:
			return incorrect(r.word, commands.MessageInvalidQuantity, r.usage)
		case f.kind == countValue && v.num[f.token] < 0:
			return incorrect(r.word, commands.MessageInvalidThreshold, r.usage)
		}
	}

	for _, f := range r.flags {
		if f.kind == textValue && f.blank != "" && v.text[f.token] == "" {
			return incorrect(r.word, f.blank, r.usage)
		}
	}

	return r.build(v)
}

func incorrect(word, template, usage string) commands.IncorrectCommand {
	return commands.IncorrectCommand{
		Attempted: word,
		Message:   fmt.Sprintf(template, usage),
	}
}

var (
	nameFlag = flag{token: "/n", kind: textValue, blank: commands.MessageInvalidName}
	qtyFlag  = flag{token: "/q", kind: quantityValue}

	// lastNameFlag is /n when nothing follows it.
	lastNameFlag = flag{token: "/n", kind: textValue}
)

// flagRules returns the grammar of every flag-based command.
func flagRules() []*rule {
	return []*rule{
		newRule(commands.AddWord, commands.AddUsage,
			func(v values) commands.Command {
				return commands.AddCommand{
					Name:         v.str("/n"),
					ExpiryDate:   v.str("/d"),
					SerialNumber: v.str("/s"),
					Quantity:     v.number("/q"),
				}
			},
			nameFlag,
			flag{token: "/d", kind: textValue, blank: commands.MessageInvalidExpiryDate},
			flag{token: "/s", kind: textValue, blank: commands.MessageInvalidSerialNumber},
			qtyFlag,
		),
		newRule(commands.DeleteWord, commands.DeleteUsage,
			func(v values) commands.Command {
				return commands.DeleteCommand{Name: v.str("/n")}
			},
			lastNameFlag,
		),
		newRule(commands.AddToCartWord, commands.AddToCartUsage,
			func(v values) commands.Command {
				return commands.AddToCartCommand{Name: v.str("/n"), Quantity: v.number("/q")}
			},
			nameFlag, qtyFlag,
		),
		newRule(commands.SetThresholdWord, commands.SetThresholdUsage,
			func(v values) commands.Command {
				return commands.SetThresholdCommand{Name: v.str("/n"), Threshold: v.number("/tq")}
			},
			nameFlag,
			flag{token: "/tq", kind: countValue},
		),
		newRule(commands.AddDescriptionWord, commands.AddDescriptionUsage,
			func(v values) commands.Command {
				return commands.AddDescriptionCommand{Name: v.str("/n"), Description: v.str("/desc")}
			},
			nameFlag,
			flag{token: "/desc", kind: textValue},
		),
		newRule(commands.GetDescriptionWord, commands.GetDescriptionUsage,
			func(v values) commands.Command {
				return commands.GetDescriptionCommand{Name: v.str("/n")}
			},
			lastNameFlag,
		),
	}
}
