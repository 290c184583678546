package chainz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kje7713-dev/Grappling-Chainz/internal/presentation/tui"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/session"
)

// ContentRenderer transforms content before it is written, e.g. markdown
// to ANSI. This keeps TUI rendering out of the core package.
type ContentRenderer func(string) (string, error)

// Runner drives the interactive drill-through loop using provided IO.
// Injecting Input/Output keeps it testable and lets alternative frontends
// reuse the loop.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// NewRunner creates a Runner over the given IO. Pass os.Stdin/os.Stdout
// for a terminal session.
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{Input: in, Output: out}
}

var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

// Run walks one session from startID until a terminal position, a dangling
// position, a quit command, or EOF. The session summary is printed on
// every exit path.
func (r *Runner) Run(engine *Engine, startID string) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	reader := bufio.NewReader(r.Input)

	sess := engine.StartSession(startID)

	if !r.Headless {
		r.print(tui.FormatWelcome())
	}

walk:
	for {
		pos, ok := sess.CurrentPosition()
		if !ok {
			fmt.Fprintf(r.Output, "Unknown position %q. Ending session.\n", sess.CurrentID())
			break
		}

		r.print(tui.FormatPosition(pos))

		actions := sess.AvailableActions()
		if len(actions) == 0 {
			fmt.Fprintln(r.Output, "You've reached a terminal position in this narrative.")
			break
		}

		r.print(tui.FormatActions(actions))

		// Re-prompt until we get a valid 1-based index or a quit command.
		var choice int
		for {
			fmt.Fprintf(r.Output, "\nSelect an action (1-%d), or 'quit' to end: ", len(actions))
			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					break walk
				}
				return fmt.Errorf("input error: %w", err)
			}
			input := strings.ToLower(strings.TrimSpace(line))

			if quitWords[input] {
				fmt.Fprintln(r.Output, "\nEnding session...")
				break walk
			}

			n, convErr := strconv.Atoi(input)
			if convErr != nil {
				fmt.Fprintln(r.Output, "Please enter a valid number or 'quit'.")
				continue
			}
			if n < 1 || n > len(actions) {
				fmt.Fprintf(r.Output, "Please enter a number between 1 and %d.\n", len(actions))
				continue
			}
			choice = n
			break
		}

		res, err := sess.TakeAction(actions[choice-1])
		if err != nil {
			return fmt.Errorf("take action: %w", err)
		}

		r.print(tui.FormatStep(actions[choice-1], res.Drill))

		if res.Position == nil {
			fmt.Fprintf(r.Output, "Position %q is not in the graph. Ending session.\n", sess.CurrentID())
			break
		}

		if !r.Headless {
			fmt.Fprintf(r.Output, "\nYou are now in: %s\n", res.Position.Name)
			fmt.Fprint(r.Output, "Press Enter to continue, or type 'quit' to end: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					break
				}
				return fmt.Errorf("input error: %w", err)
			}
			if quitWords[strings.ToLower(strings.TrimSpace(line))] {
				fmt.Fprintln(r.Output, "\nEnding session...")
				break
			}
		}
	}

	r.print(tui.FormatSummary(sess.Summary()))
	return nil
}

// print pipes content through the renderer (when set) and writes it with a
// trailing newline.
func (r *Runner) print(content string) {
	if r.Renderer != nil {
		if rendered, err := r.Renderer(content); err == nil {
			content = rendered
		}
	}
	fmt.Fprintln(r.Output, strings.TrimRight(content, "\n"))
}

// Summary re-exports the session summary type for hosts that only import
// the root package.
type Summary = session.Summary
