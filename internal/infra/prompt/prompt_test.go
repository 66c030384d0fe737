package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"yes", "yes\n", true},
		{"YES", "YES\n", true},
		{"padded yes", "  yes  \n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"empty line defaults to no", "\n", false},
		{"garbage", "sure why not\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := New(strings.NewReader(tt.input), &out)

			got := term.Confirm("Delete everything?")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Delete everything? [y/N]: ", out.String())
		})
	}
}

func TestTerminal_ConfirmSequential(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader("y\nn\n"), &out)

	assert.True(t, term.Confirm("First?"))
	assert.False(t, term.Confirm("Second?"))
}

func TestAlwaysYes(t *testing.T) {
	assert.True(t, AlwaysYes{}.Confirm("anything"))
}
