package oracle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	optionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Terminal is the interactive Oracle. Prompts go to out (normally
// stdout, never the diagnostic stream) and answers are read line by
// line from in. Reads block indefinitely; an unanswered prompt stalls
// the run on purpose.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal builds a Terminal bound to the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Stdio returns a Terminal bound to the process stdin/stdout.
func Stdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// ChooseSurvivor lists the duplicate group and asks which member to
// keep, re-prompting until the answer is a valid 1-based index.
func (t *Terminal) ChooseSurvivor(group []Candidate) int {
	fmt.Fprintln(t.out, headingStyle.Render("Duplicate coordinates found!"))
	fmt.Fprintln(t.out)
	for i, c := range group {
		fmt.Fprintln(t.out, optionStyle.Render(fmt.Sprintf("\t%d) %s (%dm)", i+1, c.Label, c.Distance)))
	}
	fmt.Fprintln(t.out)

	for {
		fmt.Fprint(t.out, "Choose which coordinate to keep: ")
		answer, err := t.readLine()
		if err != nil {
			return 0
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(group) {
			fmt.Fprintln(t.out)
			return n
		}
		fmt.Fprintln(t.out, warnStyle.Render("Invalid response."))
	}
}

// ReplacementLabel reports the invalid label and blocks for a new one.
func (t *Terminal) ReplacementLabel(invalid string) string {
	fmt.Fprintln(t.out, warnStyle.Render(fmt.Sprintf("Invalid name: %s", invalid)))
	fmt.Fprint(t.out, "Enter a new name: ")
	answer, err := t.readLine()
	if err != nil {
		return ""
	}
	return answer
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
