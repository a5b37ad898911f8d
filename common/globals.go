package common

// DwiSlpyVersion is the version string reported by the `version` CLI
// subcommand.
const DwiSlpyVersion = "0.1.0"

// ModuleFileName is the name of the project configuration file the CLI reads
// from, and creates in, the project directory.
const ModuleFileName = "dwislpy-mod.toml"

// Well-known global string labels allocated once by the translator (spec.md
// 9, "Global string labels") and shared across every function via the
// global symbol table.
const (
	EolnContent  = "\n"
	TrueContent  = "True"
	FalseContent = "False"
	NoneContent  = "None"
)
