// Package console is the line-oriented front-end: it prints frames built by
// the view package and reads one line per prompt. It is used when the
// terminal cannot host the full-screen UI, when input is piped, and in
// unattended mode.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/platform/view"
	"github.com/vovakirdan/tui-hangman/internal/session"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Console reads lines from an input and writes frames to an output.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	palette view.Palette
	clear   bool
	logger  *log.Logger
}

// Options configures a Console.
type Options struct {
	Palette view.Palette
	// Clear erases the screen before every frame. Only set it when the
	// output is a terminal.
	Clear  bool
	Logger *log.Logger
}

// New creates a console over in and out.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		palette: opts.Palette,
		clear:   opts.Clear,
		logger:  logger,
	}
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ReadLine prints prompt and reads one line without its line ending.
// When nothing can be read (end of input or a read error) it returns
// fallback instead and echoes it, so a transcript stays readable.
func (c *Console) ReadLine(prompt, fallback string) string {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if line != "" {
			// last line without a trailing newline
			fmt.Fprintln(c.out)
			return line
		}
		if err != io.EOF {
			c.logger.Warn("cannot read input", "error", err)
		} else {
			c.logger.Debug("end of input", "fallback", fallback)
		}
		fmt.Fprintln(c.out, fallback)
		return fallback
	}
	return line
}

// Println writes a line of text.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// Menu implements session.Renderer.
func (c *Console) Menu(m session.Menu) {
	c.frame(view.Menu(c.palette, m, -1))
}

// Round implements session.Renderer.
func (c *Console) Round(r session.Round) {
	c.frame(view.Round(c.palette, r))
}

// RoundOver implements session.Renderer.
func (c *Console) RoundOver(r session.Round, s session.Summary) {
	c.frame(view.Result(c.palette, r, s))
}

func (c *Console) frame(body string) {
	if c.clear {
		fmt.Fprint(c.out, clearScreen)
	}
	fmt.Fprintln(c.out, body)
	fmt.Fprintln(c.out)
}
