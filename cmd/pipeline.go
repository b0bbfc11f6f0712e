package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/Measter/simple-ident-res/itemdb"
	"github.com/Measter/simple-ident-res/report"
	"github.com/Measter/simple-ident-res/resolve"
	"github.com/Measter/simple-ident-res/syntax"
)

// Checker runs the whole front-end pipeline over a single source file: it
// tokenizes the source, builds the item tree, and resolves every dotted
// identifier, writing the three diagnostic dumps (headers, unresolved bodies,
// resolved bodies) along the way.  The item database is the shared state
// threaded through all the stages; the pipeline is strictly sequential.
type Checker struct {
	// srcPath is the absolute path to the source file being checked.
	srcPath string

	// db is the item database shared by the pipeline stages.
	db *itemdb.Database

	// dumpW is the writer the diagnostic dumps go to.
	dumpW io.Writer
}

// NewChecker creates a new checker for the given source file.  Dumps are
// written to stderr.
func NewChecker(srcPath string) *Checker {
	return &Checker{
		srcPath: srcPath,
		db:      itemdb.New(),
		dumpW:   os.Stderr,
	}
}

// DB returns the checker's item database.
func (c *Checker) DB() *itemdb.Database {
	return c.db
}

// Run executes the pipeline and returns whether the program resolved without
// errors.  All errors encountered are reported through the global reporter.
func (c *Checker) Run() bool {
	file, err := os.Open(c.srcPath)
	if err != nil {
		report.ReportFatal("unable to open source file at `%s`: %s", c.srcPath, err)
	}
	defer file.Close()

	toks, err := syntax.NewLexer(bufio.NewReader(file)).Tokenize()
	if err != nil {
		report.ReportCompileError(c.srcPath, err)
		return false
	}

	if err := syntax.NewParser(c.db, toks).Parse(); err != nil {
		report.ReportCompileError(c.srcPath, err)
		return false
	}

	c.db.DumpHeaders(c.dumpW)
	c.db.DumpUnresolvedBodies(c.dumpW)

	if errs := resolve.NewResolver(c.db).Resolve(); len(errs) > 0 {
		for _, err := range errs {
			report.ReportCompileError(c.srcPath, err)
		}

		return false
	}

	c.db.DumpResolvedBodies(c.dumpW)

	return report.ShouldProceed()
}
