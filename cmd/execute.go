// Package cmd is the top-level "driver" package for the Foo front-end: it
// contains the functionality for parsing command-line arguments and running
// the phases of the pipeline in order.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/project"
	"github.com/Measter/simple-ident-res/report"
)

// Execute is the main entry point for the `identres` CLI utility.
func Execute() {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("identres", "identres is the front-end checker for Foo programs", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "tokenize, build, and resolve a program", true)
	checkCmd.AddPrimaryArg("path", "the path to a source file or project directory", true)

	cli.AddSubcommand("version", "print the identres version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		initLogLevel(result.Arguments["loglevel"].(string))
		execCheckCommand(subResult)
	case "version":
		report.LogInfo("Foo Version", common.FooVersion)
	}
}

// initLogLevel initializes the global reporter from the loglevel argument.
func initLogLevel(value string) {
	switch value {
	case "silent":
		report.InitReporter(report.LogLevelSilent)
	case "error":
		report.InitReporter(report.LogLevelError)
	default:
		report.InitReporter(report.LogLevelVerbose)
	}
}

// execCheckCommand executes the check subcommand.  It exits nonzero if the
// input program does not resolve.
func execCheckCommand(result *olive.ArgParseResult) {
	relPath, _ := result.PrimaryArg()

	path, err := filepath.Abs(relPath)
	if err != nil {
		report.ReportFatal("invalid path `%s`: %s", relPath, err)
	}

	finfo, err := os.Stat(path)
	if err != nil {
		report.ReportFatal("unable to access `%s`: %s", path, err)
	}

	// A directory is a project: its manifest names the entry source file.
	srcPath := path
	if finfo.IsDir() {
		proj, err := project.Load(path)
		if err != nil {
			report.ReportFatal("%s", err.Error())
		}

		srcPath = proj.MainPath
	} else if filepath.Ext(path) != common.FooFileExt {
		report.ReportFatal("`%s` is not a Foo source file", path)
	}

	if !NewChecker(srcPath).Run() {
		os.Exit(1)
	}
}
