package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Status colors for console rendering
var (
	colorPass = color.New(color.FgGreen)
	colorFail = color.New(color.FgRed, color.Bold)
	colorWarn = color.New(color.FgYellow)
	colorDim  = color.New(color.FgHiBlack)
)

// Renderer prints per-config outcomes. With NoColor set it falls back
// to plain text, matching the --no-color root flag.
type Renderer struct {
	NoColor bool
}

// Pass prints a passing outcome line
func (r Renderer) Pass(name, status string) {
	if r.NoColor {
		fmt.Printf("%s: %s\n", name, status)
		return
	}
	fmt.Printf("%s: %s\n", name, colorPass.Sprint(status))
}

// Fail prints a failing outcome line
func (r Renderer) Fail(name, status string) {
	if r.NoColor {
		fmt.Printf("%s: %s\n", name, status)
		return
	}
	fmt.Printf("%s: %s\n", name, colorFail.Sprint(status))
}

// Detail prints an indented detail line under an outcome
func (r Renderer) Detail(text string) {
	if r.NoColor {
		fmt.Printf("   - %s\n", text)
		return
	}
	fmt.Printf("   - %s\n", colorDim.Sprint(text))
}

// Warning prints an indented warning line under an outcome
func (r Renderer) Warning(text string) {
	if r.NoColor {
		fmt.Printf("   ! %s\n", text)
		return
	}
	fmt.Printf("   ! %s\n", colorWarn.Sprint(text))
}

// Summary prints the batch pass count
func (r Renderer) Summary(passed, total int) {
	line := fmt.Sprintf("Summary: %d/%d configs passed", passed, total)
	if r.NoColor {
		fmt.Println(line)
		return
	}
	if passed == total {
		colorPass.Println(line)
	} else {
		colorFail.Println(line)
	}
}
