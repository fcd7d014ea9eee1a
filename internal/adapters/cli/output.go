package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type Output struct {
	out          io.Writer
	errOut       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		out:          os.Stdout,
		errOut:       os.Stderr,
		enableColors: isTerminal(os.Stdout),
	}
}

// NewOutputTo writes to the given streams without colors.
func NewOutputTo(out, errOut io.Writer) *Output {
	return &Output{out: out, errOut: errOut}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) color(code, text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (o *Output) Green(text string) string  { return o.color("32", text) }
func (o *Output) Yellow(text string) string { return o.color("33", text) }
func (o *Output) Red(text string) string    { return o.color("31", text) }
func (o *Output) Gray(text string) string   { return o.color("90", text) }

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, msg)
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	prefix := "  "
	if emoji != "" {
		prefix += emoji + " "
	}
	fmt.Fprintf(o.out, prefix+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	fmt.Fprintf(o.errOut, "  %s%s\n", o.Red("✗ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintURL(label, url string) {
	fmt.Fprintf(o.out, "  %s %s\n", label, o.Gray(url))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out, msg)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
