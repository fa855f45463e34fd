package cli

import (
	"fmt"
	"strings"

	"github.com/rvaughn/taskdesk/internal/board"
	"github.com/spf13/pflag"
)

// sortKeyValue is a pflag.Value that only accepts known sort keys.
type sortKeyValue struct {
	key board.SortKey
	set bool
}

var _ pflag.Value = (*sortKeyValue)(nil)

func (v *sortKeyValue) String() string {
	if !v.set {
		return ""
	}
	return string(v.key)
}

func (v *sortKeyValue) Set(s string) error {
	candidate := board.SortKey(strings.ToLower(s))
	for _, k := range board.SortKeys {
		if k == candidate {
			v.key = candidate
			v.set = true
			return nil
		}
	}
	return fmt.Errorf("unknown sort key %q, want one of %s", s, sortKeyNames())
}

func (v *sortKeyValue) Type() string { return "key" }

func sortKeyNames() string {
	names := make([]string, len(board.SortKeys))
	for i, k := range board.SortKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
