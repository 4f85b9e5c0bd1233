package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://localhost:5000/api/auth", "-x", "1"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", "http://localhost:5000/api/auth"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=session.db", "-q"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-d=session.db"},
		},
		{
			name:    "order preserved",
			args:    []string{"-d", "a.db", "-z", "-a=http://x"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-d", "a.db", "-a=http://x"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "next token is a flag, not a value",
			args:    []string{"-a", "-t", "5"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "nil args",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "cfg.json", ConfigPath([]string{"-a", "x", "-c", "cfg.json"}))
	assert.Equal(t, "other.json", ConfigPath([]string{"-config=other.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", "x"}))
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-c", "from-args.json"}
	assert.Equal(t, "from-args.json", JsonConfigFlags())
}
