package backtrace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/go-delve/framewalk/pkg/config"
	"github.com/go-delve/framewalk/pkg/disasm"
	"github.com/go-delve/framewalk/pkg/regnum"
	"github.com/go-delve/framewalk/pkg/task"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
)

// PrintOptions controls the output of Print.
type PrintOptions struct {
	Color bool
	// Registers restricts the registers printed for each frame. The
	// program counter is always printed on the frame line.
	Registers []string
	// Memory, when not nil, is used to read and disassemble the
	// instruction at each frame's program counter.
	Memory task.MemoryReader
}

// UseColor decides whether output written to f is colorized under mode.
func UseColor(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return f != nil && isatty.IsTerminal(f.Fd())
}

// Print writes bt to w.
func Print(w io.Writer, bt *Backtrace, opts PrintOptions) error {
	pr := printer{w: w, opts: opts}
	if len(opts.Registers) > 0 {
		pr.filter = make(map[regnum.ID]bool, len(opts.Registers))
		for _, name := range opts.Registers {
			id, ok := regnum.FromName(name)
			if !ok {
				return fmt.Errorf("unknown register %q", name)
			}
			pr.filter[id] = true
		}
	}

	pr.printf(ansiBold, "thread %d:", bt.TID)
	pr.println()
	for i := range bt.Frames {
		pr.frame(&bt.Frames[i])
	}
	switch bt.Status {
	case DepthExceeded:
		pr.printf(ansiYellow, "(more frames not shown)")
		pr.println()
	case Truncated:
		pr.printf(ansiYellow, "(frame chain corrupted: %v)", bt.Err)
		pr.println()
	case Aborted:
		pr.printf(ansiRed, "(walk aborted: %v)", bt.Err)
		pr.println()
	}
	return pr.err
}

type printer struct {
	w      io.Writer
	opts   PrintOptions
	filter map[regnum.ID]bool
	err    error
}

func (pr *printer) printf(color, format string, args ...interface{}) {
	if pr.err != nil {
		return
	}
	if pr.opts.Color && color != "" {
		format = color + format + ansiReset
	}
	_, pr.err = fmt.Fprintf(pr.w, format, args...)
}

func (pr *printer) println() {
	pr.printf("", "\n")
}

func (pr *printer) frame(f *Frame) {
	pr.printf(ansiBold, "%3d", f.Depth)
	pr.printf(ansiBlue, "  %#016x", f.PC)
	if pr.opts.Memory != nil {
		pr.printf("", "  %s", pr.instruction(f.PC))
	}
	pr.println()

	var regs []string
	for _, r := range f.Regs {
		if r.ID == regnum.PC {
			continue
		}
		if pr.filter != nil && !pr.filter[r.ID] {
			continue
		}
		regs = append(regs, fmt.Sprintf("%s=%#x", r.Name, r.Value))
	}
	if len(regs) > 0 {
		pr.printf("", "       %s", strings.Join(regs, " "))
		pr.println()
	}
}

func (pr *printer) instruction(pc uint64) string {
	buf := make([]byte, disasm.MaxInstructionLen)
	n, _ := pr.opts.Memory.ReadMemory(buf, pc)
	text, _, err := disasm.Decode(buf[:n], pc)
	if err != nil {
		return "?"
	}
	return text
}
