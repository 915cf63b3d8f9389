package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"basegraph.app/planboard/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
