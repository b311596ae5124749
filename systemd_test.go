package main_test

import (
	"bytes"
	cllsim "gregoryjjb/cllsim"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceFile(t *testing.T) {
	var buf bytes.Buffer
	err := cllsim.WriteServiceFile(&buf, cllsim.ServiceParams{
		BinaryPath: "/usr/local/bin/cllsim",
		ConfigPath: "/etc/cllsim.toml",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "User=cllsim")
	assert.Contains(t, out, "ExecStart=/usr/local/bin/cllsim -config /etc/cllsim.toml")
}
