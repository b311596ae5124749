package main

import (
	_ "embed"
	"io"
	"os"
	"text/template"
)

//go:embed cllsim.service
var cllsimServiceEmbed string

type ServiceParams struct {
	BinaryPath string
	User       string
	ConfigPath string
}

// WriteServiceFile renders a systemd unit that runs this binary
func WriteServiceFile(w io.Writer, params ServiceParams) error {
	tmpl, err := template.New("cllsim.service").Parse(cllsimServiceEmbed)
	if err != nil {
		return err
	}

	if params.BinaryPath == "" {
		path, err := os.Executable()
		if err != nil {
			return err
		}
		params.BinaryPath = path
	}
	if params.User == "" {
		params.User = "cllsim"
	}

	return tmpl.Execute(w, params)
}
