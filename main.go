package main

import (
	"github.com/quillnote/quill-note-service/cmd"

	_ "embed"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
