package sh

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/dbgout/pkg/debug"
	"github.com/robotalks/dbgout/pkg/env"
	"github.com/robotalks/dbgout/pkg/trace"
)

// Shell provides ishell backed interactive bench.
type Shell struct {
	Interactive bool

	Shell  *ishell.Shell
	Config *env.Config
	Bench  *Bench
	Link   env.Transport
}

const (
	shellKey = "$shell"
	prompt   = "dbg > "
)

var (
	// flags

	evalOnly bool

	// commands
	commands = []*ishell.Cmd{
		&PrintCmd,
		&DumpCmd,
		&HaltCmd,
		&TailCmd,
		&StatsCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// New creates a new shell. Without a configured transport the bench
// only loops back.
func New(conf *env.Config) (*Shell, error) {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Config:      conf,
	}
	var targets []debug.Transmitter
	if conf.HasTransport() {
		link, err := conf.OpenTransport()
		if err != nil {
			return nil, err
		}
		s.Link = link
		targets = append(targets, link)
	}
	s.Bench = NewBench(targets...)
	s.Bench.Debugger.Init(conf.DebugConfig())

	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s, nil
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Report prints the records decoded by the last command.
func (s *Shell) Report(c *ishell.Context) {
	for _, rec := range s.Bench.Settle() {
		c.Println(rec.Summary())
	}
}

// Close closes the link.
func (s *Shell) Close() error {
	if s.Link != nil {
		return s.Link.Close()
	}
	return nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// PrintCmd outputs a formatted message.
	PrintCmd = ishell.Cmd{
		Name:    "print",
		Aliases: []string{"p"},
		Help:    "FORMAT [ARGS...]",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("format expected"))
				return
			}
			s := ShellFrom(c)
			s.Bench.Debugger.Output(Unescape(c.Args[0]), ParseArgs(c.Args[1:])...)
			s.Report(c)
		},
	}

	// DumpCmd dumps bytes.
	DumpCmd = ishell.Cmd{
		Name:    "dump",
		Aliases: []string{"d"},
		Help:    "hex|dec BYTES...",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 || (c.Args[0] != "hex" && c.Args[0] != "dec") {
				c.Err(errors.New("hex or dec expected"))
				return
			}
			data, err := ParseBytes(c.Args[1:])
			if err != nil {
				c.Err(err)
				return
			}
			s := ShellFrom(c)
			s.Bench.Debugger.Dump(data, c.Args[0] == "hex")
			s.Report(c)
		},
	}

	// HaltCmd halts the bench like a failed assertion.
	HaltCmd = ishell.Cmd{
		Name: "halt",
		Help: "MODULE LINE",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("module and line expected"))
				return
			}
			line, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("invalid line %q", c.Args[1]))
				return
			}
			s := ShellFrom(c)
			if s.Interactive && c.MultiChoice([]string{"no", "yes"}, "The shell stops responding after halt, continue?") != 1 {
				return
			}
			c.Printf("%s halting at line %d\n", c.Args[0], line)
			s.Bench.Debugger.Halt(c.Args[0], line)
		},
	}

	// TailCmd shows recent records.
	TailCmd = ishell.Cmd{
		Name:    "tail",
		Aliases: []string{"t"},
		Help:    "[N]",
		Func: func(c *ishell.Context) {
			n := 10
			if len(c.Args) > 0 {
				var err error
				if n, err = strconv.Atoi(c.Args[0]); err != nil {
					c.Err(fmt.Errorf("invalid count %q", c.Args[0]))
					return
				}
			}
			for _, rec := range ShellFrom(c).Bench.Tail(n) {
				c.Println(rec.Summary())
			}
		},
	}

	// StatsCmd shows loopback decoder counters.
	StatsCmd = ishell.Cmd{
		Name: "stats",
		Help: "",
		Func: func(c *ishell.Context) {
			stats := ShellFrom(c).Bench.Stats()
			c.Printf("%-16s %d\n", "bytes", stats.Bytes)
			for k := trace.KindText; k <= trace.KindHalt; k++ {
				c.Printf("%-16s %d\n", k, stats.Count(k))
			}
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	s, err := New(env.MustLoad())
	if err != nil {
		log.Fatalln(err)
	}
	defer s.Close()
	s.Run(flag.Args()...)
}
