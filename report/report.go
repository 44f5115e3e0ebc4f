package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Reporter receives operator-facing diagnostics from the core packages.
// The core never prints directly; everything an operator should see goes
// through this interface.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// Skipf reports a dropped source row. rowIndex is the zero-based
	// position in the data range; it is rendered as the spreadsheet row
	// number (data starts at sheet row 2).
	Skipf(rowIndex int, format string, args ...any)
}

// ConsoleReporter writes colored diagnostics to stdout.
type ConsoleReporter struct {
	info func(a ...interface{}) string
	warn func(a ...interface{}) string
	fail func(a ...interface{}) string
}

// NewConsole returns a Reporter writing colored output to stdout.
func NewConsole() *ConsoleReporter {
	return &ConsoleReporter{
		info: color.New(color.FgGreen).SprintFunc(),
		warn: color.New(color.FgYellow, color.Bold).SprintFunc(),
		fail: color.New(color.FgRed, color.Bold).SprintFunc(),
	}
}

func (c *ConsoleReporter) Infof(format string, args ...any) {
	fmt.Println(c.info(fmt.Sprintf(format, args...)))
}

func (c *ConsoleReporter) Warnf(format string, args ...any) {
	fmt.Printf("%s %s\n", c.warn("warning:"), fmt.Sprintf(format, args...))
}

func (c *ConsoleReporter) Errorf(format string, args ...any) {
	fmt.Printf("%s %s\n", c.fail("error:"), fmt.Sprintf(format, args...))
}

func (c *ConsoleReporter) Skipf(rowIndex int, format string, args ...any) {
	fmt.Printf("%s row %d: %s\n", c.warn("skipped"), rowIndex+2, fmt.Sprintf(format, args...))
}

// Nop discards all diagnostics. Useful in tests.
type Nop struct{}

func (Nop) Infof(string, ...any) {}

func (Nop) Warnf(string, ...any) {}

func (Nop) Errorf(string, ...any) {}

func (Nop) Skipf(int, string, ...any) {}
