package cmds

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cosiner/argv"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-delve/framewalk/pkg/backtrace"
	"github.com/go-delve/framewalk/pkg/config"
	"github.com/go-delve/framewalk/pkg/frame"
	"github.com/go-delve/framewalk/pkg/logflags"
	"github.com/go-delve/framewalk/pkg/native"
	"github.com/go-delve/framewalk/pkg/task"
	"github.com/go-delve/framewalk/pkg/version"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string
	// logDest is the file path where logs should go.
	logDest string

	// maxDepth is the maximum number of frames walked per thread.
	maxDepth int
	// disassemble is whether to print the instruction at each frame's pc.
	disassemble bool
	// color is one of auto, always or never.
	color string

	// allThreads is whether exec walks every thread instead of the faulting one.
	allThreads bool
	// cmdLine is the command line of the program launched by exec.
	cmdLine string
	// workingDir is the working directory for running the program.
	workingDir string

	conf *config.Config
)

const cachePages = 16

const framewalkCommandLongDesc = `framewalk prints the frame pointer backtraces of native threads.

It attaches to running processes, or launches a program and waits for it
to receive a fatal signal, and walks the frame pointer chain of its threads.

Pass flags to the program you are launching using ` + "`--`" + `, for example:

` + "`framewalk exec -- ./server --config conf/config.toml`"

// New returns an initialized command tree.
func New() *cobra.Command {
	defaults := config.Default()

	rootCommand := &cobra.Command{
		Use:          "framewalk",
		Short:        "framewalk prints native thread backtraces.",
		Long:         framewalkCommandLongDesc,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logflags.Setup(log, logOutput, logDest); err != nil {
				return err
			}
			// Loaded after Setup so that the config logger honors --log-output.
			conf = config.LoadConfig()
			applyConfig(cmd.Flags(), conf)
			_, err := config.ParseColorMode(color)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logflags.Close()
		},
	}

	addOutputFlags(rootCommand.PersistentFlags(), defaults)

	// 'attach' subcommand.
	attachCommand := &cobra.Command{
		Use:   "attach pid",
		Short: "Print the backtraces of every thread of a running process.",
		Long: `Stops every thread of a running process with ptrace, prints their
backtraces and lets the process run again.`,
		Args: cobra.ExactArgs(1),
		RunE: attachCmd,
	}
	rootCommand.AddCommand(attachCommand)

	// 'exec' subcommand.
	execCommand := &cobra.Command{
		Use:   "exec [--cmd 'command line'] [-- program args...]",
		Short: "Run a program until it faults and print its backtrace.",
		Long: `Launches a program under ptrace and lets it run until one of its
threads receives a fatal signal (SIGSEGV, SIGBUS, SIGILL, SIGFPE, SIGABRT,
SIGTRAP or SIGSYS). The backtrace of the faulting thread is printed and the
program is killed.`,
		RunE: execCmd,
	}
	execCommand.Flags().BoolVar(&allThreads, "all-threads", false, "Print the backtraces of every thread.")
	execCommand.Flags().StringVar(&cmdLine, "cmd", "", "Command line of the program, split with shell quoting rules.")
	execCommand.Flags().StringVar(&workingDir, "wd", "", "Working directory for running the program.")
	rootCommand.AddCommand(execCommand)

	// 'version' subcommand.
	var versionVerbose = false
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "framewalk\n%s\n", version.FramewalkVersion)
			if versionVerbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Build Details: %s\n", version.BuildInfo())
			}
		},
	}
	versionCommand.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "print verbose version info")
	rootCommand.AddCommand(versionCommand)

	return rootCommand
}

// addOutputFlags registers the flags that control logging and the format
// of backtraces.
func addOutputFlags(fs *pflag.FlagSet, defaults *config.Config) {
	fs.BoolVarP(&log, "log", "", false, "Enable logging.")
	fs.StringVarP(&logOutput, "log-output", "", "", `Comma separated list of components that should produce debug output: native, walk, config.`)
	fs.StringVarP(&logDest, "log-dest", "", "", "Writes logs to the specified file.")
	fs.IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "Maximum number of frames walked per thread (default from the config file).")
	fs.BoolVar(&disassemble, "disasm", defaults.Disassemble, "Print the instruction at the program counter of each frame (default from the config file).")
	fs.StringVar(&color, "color", string(defaults.Color), "Colorize backtraces: auto, always or never (default from the config file).")
}

// applyConfig copies the values of the config file into the flags that were
// not set on the command line.
func applyConfig(fs *pflag.FlagSet, c *config.Config) {
	if !fs.Changed("max-depth") {
		maxDepth = c.MaxDepth
	}
	if !fs.Changed("disasm") {
		disassemble = c.Disassemble
	}
	if !fs.Changed("color") {
		color = string(c.Color)
	}
}

func attachCmd(cmd *cobra.Command, args []string) error {
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return fmt.Errorf("invalid pid: %s", args[0])
	}
	p, err := native.Attach(pid)
	if err != nil {
		return err
	}
	defer p.Detach()
	return walkThreads(cmd, p, p.Threads())
}

func execCmd(cmd *cobra.Command, args []string) error {
	processArgs, err := programArgs(args)
	if err != nil {
		return err
	}
	p, err := native.Launch(processArgs, workingDir)
	if err != nil {
		return err
	}
	defer p.Kill()

	f, err := p.ContinueUntilFault()
	if err != nil {
		var exited native.ErrProcessExited
		if errors.As(err, &exited) {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return nil
		}
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), f)

	tids := []int{f.TID}
	if allThreads {
		tids = p.Threads()
	}
	return walkThreads(cmd, p, tids)
}

// programArgs returns the command line of the program to launch, either
// from --cmd or from the arguments after the dash.
func programArgs(args []string) ([]string, error) {
	if cmdLine != "" {
		if len(args) > 0 {
			return nil, errors.New("--cmd and program arguments are mutually exclusive")
		}
		v, err := argv.Argv(cmdLine,
			func(s string) (string, error) {
				return "", fmt.Errorf("backtick not supported in '%s'", s)
			},
			nil)
		if err != nil {
			return nil, err
		}
		if len(v) != 1 || len(v[0]) == 0 {
			return nil, fmt.Errorf("illegal command line '%s'", cmdLine)
		}
		return v[0], nil
	}
	if len(args) == 0 {
		return nil, errors.New("you must provide a program to run")
	}
	return args, nil
}

func walkThreads(cmd *cobra.Command, p *native.Process, tids []int) error {
	mem, err := task.Cached(p.Task(), cachePages)
	if err != nil {
		return err
	}
	mode, _ := config.ParseColorMode(color)
	out := cmd.OutOrStdout()
	var tty *os.File
	if out == os.Stdout {
		tty = os.Stdout
		out = colorable.NewColorableStdout()
	}
	opts := backtrace.PrintOptions{
		Color:     backtrace.UseColor(mode, tty),
		Registers: conf.Registers,
	}
	if disassemble {
		opts.Memory = mem
	}

	for i, tid := range tids {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := walkThread(out, p, mem, tid, opts); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "thread %d: %v\n", tid, err)
		}
	}
	return nil
}

func walkThread(out io.Writer, p *native.Process, mem *task.CachedTask, tid int, opts backtrace.PrintOptions) error {
	var (
		c   frame.Cursor
		err error
	)
	defer c.Close()
	p.Do(func() { err = c.InitWithThread(mem, tid) })
	if err != nil {
		return err
	}
	bt := backtrace.Collect(&c, maxDepth)
	bt.TID = tid
	return backtrace.Print(out, bt, opts)
}
