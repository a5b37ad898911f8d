package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoColorFG    = successColorFG
)

// PrintErrorMessage prints a standard Go error to the console, tagged with a
// short label (e.g. "Config Error").
func PrintErrorMessage(tag string, err error) {
	errorStyleBG.Print(tag)
	errorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	successStyleBG.Print(tag)
	infoColorFG.Println(" " + msg)
}

// displayCompileError prints the banner, message, and (if source is
// available) a caret-underlined excerpt for a single compile error.
func displayCompileError(err *CompileError, srcLines []string) {
	fmt.Print("\n-- ")
	errorStyleBG.Print(err.Kind.String() + " Error")
	fmt.Print(" ")
	infoColorFG.Println(err.Loc.String())

	fmt.Println(err.Msg)

	if srcLines != nil && err.Loc.Line >= 1 && err.Loc.Line <= len(srcLines) {
		displaySourceLine(err.Loc, srcLines[err.Loc.Line-1])
	}
}

// displaySourceLine prints one source line with the column of loc
// underlined by a caret, in the style of the teacher's displayCodeSelection.
func displaySourceLine(loc Location, line string) {
	lineNumStr := strconv.Itoa(loc.Line)
	fmt.Println()
	infoColorFG.Print(lineNumStr)
	fmt.Print(" |  ")
	fmt.Println(line)

	fmt.Print(strings.Repeat(" ", len(lineNumStr)), " |  ")
	col := loc.Col - 1
	if col < 0 {
		col = 0
	}
	fmt.Print(strings.Repeat(" ", col))
	errorColorFG.Println("^")
}

// -----------------------------------------------------------------------------
// Phase spinners, used by the `build` package to narrate check/translate.

var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStart time.Time

// BeginPhase starts a named phase spinner (e.g. "Checking", "Translating").
func BeginPhase(phase string) {
	currentPhase = phase
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(infoColorFG))
	phaseSpinner.Start(phase + "...")
	phaseStart = time.Now()
}

// EndPhase stops the current phase spinner, reporting success or failure.
func EndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	elapsed := fmt.Sprintf("(%.3fs)", time.Since(phaseStart).Seconds())
	if success {
		phaseSpinner.Success(currentPhase + " " + elapsed)
	} else {
		phaseSpinner.Fail(currentPhase + " failed " + elapsed)
	}
	phaseSpinner = nil
}
