package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/build"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/mods"
	"github.com/dwislpy/dwislpyc/report"
)

// Execute runs the main `dwislpyc` application.
func Execute() {
	cli := olive.NewCLI("dwislpyc", "dwislpyc compiles DwiSlpy projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "check and translate a project to IR", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	initCmd := cli.AddSubcommand("init", "create a new project file", true)
	initCmd.AddPrimaryArg("project-path", "the path to the project directory", true)
	initCmd.AddStringArg("entry", "e", "the entry source file", true)

	cli.AddSubcommand("version", "print the dwislpyc version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "init":
		execInitCommand(subResult)
	case "version":
		report.PrintInfoMessage("DwiSlpy Version", common.DwiSlpyVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return
	}

	cfg, err := mods.Load(projectPath)
	if err != nil {
		report.PrintErrorMessage("Project Load Error", err)
		return
	}
	if lvl, ok := logLevelOverride(loglevel); ok {
		cfg.LogLevel = lvl
	}

	c := build.NewCompiler(cfg, unimplementedParser{})
	artifact, err := c.Compile()
	if err != nil {
		report.PrintErrorMessage("Build Failed", err)
		return
	}

	if cfg.OutputPath == "" {
		fmt.Print(artifact.String())
		return
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(artifact.String()), 0o644); err != nil {
		report.PrintErrorMessage("Output Error", err)
	}
}

// execInitCommand executes the init subcommand.
func execInitCommand(result *olive.ArgParseResult) {
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return
	}

	entry := result.Arguments["entry"].(string)
	name := filepath.Base(projectPath)

	if err := mods.Init(projectPath, name, entry); err != nil {
		report.PrintErrorMessage("Project Init Error", err)
	}
}

// logLevelOverride resolves a CLI-selected log level name, if it differs
// from olive's own default handling.
func logLevelOverride(name string) (int, bool) {
	switch name {
	case "silent":
		return report.LogLevelSilent, true
	case "error":
		return report.LogLevelError, true
	case "warn":
		return report.LogLevelWarn, true
	case "verbose":
		return report.LogLevelVerbose, true
	default:
		return 0, false
	}
}

// unimplementedParser is the default build.Parser: tokenizing and parsing
// DwiSlpy source is an external collaborator (spec.md 1, "Out of scope"),
// not part of this package. A real front end wires its own Parser in here.
type unimplementedParser struct{}

func (unimplementedParser) Parse(path string) (*ast.Program, error) {
	return nil, fmt.Errorf("no parser is registered for %s: source parsing is external to this package", path)
}
