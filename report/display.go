package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	warnColorFG  = pterm.FgYellow
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	infoColorFG  = pterm.FgLightGreen
	infoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	gutterColor  = pterm.FgGray
)

// displayWarning displays a warning message to the user.
func displayWarning(message string) {
	warnStyleBG.Print("Warning")
	warnColorFG.Println(" " + message)
}

// displayInfoMessage displays an informational message to the user.
func displayInfoMessage(tag, msg string) {
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + msg)
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + message)
}

// displayICE displays an internal error message.
func displayICE(message string) {
	fmt.Fprintf(os.Stderr, "internal error: %s\n", message)
	fmt.Fprint(os.Stderr, "This error was not supposed to happen: please open an issue on GitHub\n\n")
}

// displayStdError displays a standard Go error.
func displayStdError(path string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s %s\n\n", path, errorColorFG.Sprint("error:"), err)
}

// displayCompileError displays a compile error.  If the error carries a span,
// the erroneous source text is printed with a caret underline.
func displayCompileError(path string, cerr *CompileError) {
	if cerr.Span == nil {
		fmt.Fprintf(os.Stderr, "%s: %s %s\n\n",
			path, errorColorFG.Sprintf("%s:", reprKind(cerr.Kind)), cerr.Message)
		return
	}

	fmt.Fprintf(os.Stderr, "%s:%d:%d: %s %s\n\n",
		path, cerr.Span.StartLine+1, cerr.Span.StartCol+1,
		errorColorFG.Sprintf("%s:", reprKind(cerr.Kind)), cerr.Message)

	displaySourceText(path, cerr.Span)
}

// displaySourceText displays the segment of source text selected by a text
// span, underlining the selection with carets.
func displaySourceText(path string, span *TextSpan) {
	file, err := os.Open(path)
	if err != nil {
		// The file may be unreadable by the time the error is displayed: the
		// message on its own is still useful.
		return
	}
	defer file.Close()

	// Collect the source lines the span covers.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	gutterWidth := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmt := "%-" + strconv.Itoa(gutterWidth) + "d | "

	for i, line := range lines {
		fmt.Fprint(os.Stderr, gutterColor.Sprintf(lineNumFmt, i+span.StartLine+1))
		fmt.Fprintln(os.Stderr, line)

		// Underline from the start column on the first line to the end column
		// on the last; intermediate lines are underlined in full.
		start := 0
		if i == 0 {
			start = span.StartCol
		}

		end := len(line)
		if i == len(lines)-1 {
			end = span.EndCol
		}

		if end > len(line) {
			end = len(line)
		}

		if start >= end {
			continue
		}

		fmt.Fprint(os.Stderr, gutterColor.Sprint(strings.Repeat(" ", gutterWidth)+" | "))
		fmt.Fprintln(os.Stderr, errorColorFG.Sprint(strings.Repeat(" ", start)+strings.Repeat("^", end-start)))
	}

	fmt.Fprintln(os.Stderr)
}
