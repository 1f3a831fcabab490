package cmd

import (
	"slices"
	"testing"
)

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range []string{"menu", "replay", "topic", "help"} {
		if c.Sub[name] == nil {
			t.Errorf("no completion for command %q", name)
		}
	}
	if _, ok := c.Flags["currency"]; !ok {
		t.Error("no completion for global flag -currency")
	}

	replay := c.Sub["replay"]
	for _, name := range []string{"f", "o", "strict", "holder", "limit", "max-withdrawals"} {
		if _, ok := replay.Flags[name]; !ok {
			t.Errorf("no completion for replay flag -%s", name)
		}
	}

	topics := c.Sub["topic"].Args
	if topics == nil {
		t.Fatal("no completion for topics")
	}
	if got := topics.Predict(""); !slices.Contains(got, "withdrawals") {
		t.Errorf("topic completion = %v, want withdrawals", got)
	}
}
