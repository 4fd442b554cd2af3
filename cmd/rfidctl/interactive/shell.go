// Package interactive provides the interactive command-line interface
// for rfidctl.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chzyer/readline"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
	"github.com/Syfaro/ZebraRfid/pkg/sim"
)

// Simulator is the stimulus surface of the simulated SDK. *sim.SDK
// implements it.
type Simulator interface {
	SimulateTrigger(readerID int32, pressed bool)
	SimulateBattery(readerID int32, level int32, charging bool, cause string)
	SimulateDisappear(readerID int32)
	SimulateAppear(readerID int32)
	AddTag(t sim.Tag)
	RemoveTag(epc string)
	Tags() []string
}

// Config configures a Shell.
type Config struct {
	Prompt string

	// ShowEvents prints reader events as they arrive.
	ShowEvents bool
}

// Shell runs reader commands typed at a prompt.
type Shell struct {
	mgr *rfid.Manager
	sim Simulator
	rl  *readline.Instance
	out io.Writer

	showEvents atomic.Bool
	sub        interface{ Cancel() }
	wg         sync.WaitGroup
}

// New creates a Shell reading commands from the terminal. sim may be nil
// when no simulator is attached.
func New(mgr *rfid.Manager, simulator Simulator, cfg Config) (*Shell, error) {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "rfid> "
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(mgr, simulator, rl.Stdout())
	s.rl = rl
	s.showEvents.Store(cfg.ShowEvents)
	return s, nil
}

func newShell(mgr *rfid.Manager, simulator Simulator, out io.Writer) *Shell {
	return &Shell{
		mgr: mgr,
		sim: simulator,
		out: &lockedWriter{w: out},
	}
}

// Stdout returns a writer that coordinates with the readline prompt. Use it
// for log output.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the event printer and the command loop. It returns when the
// user quits or ctx is done, and calls cancel on quit.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	if err := s.watchEvents(); err != nil {
		s.printf("Events unavailable: %v\n", err)
	}
	defer s.stopEvents()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			s.printf("Exiting...\n")
			cancel()
			return
		}

		if quit := s.Execute(line); quit {
			s.printf("Exiting...\n")
			cancel()
			return
		}
	}
}

// Execute runs one command line and reports whether the user asked to quit.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "readers", "ls":
		s.cmdReaders(args)
	case "connect":
		s.cmdConnect(args)
	case "disconnect":
		s.cmdDisconnect(args)
	case "detect":
		s.cmdDetect(args)
	case "ascii":
		s.cmdASCII(args)

	case "inventory", "inv":
		s.cmdInventory(args)
	case "rapid":
		s.cmdRapid(args)
	case "locate":
		s.cmdLocate(args)
	case "fetch":
		s.cmdFetch(args)
	case "purge":
		s.cmdPurge(args)

	case "read", "r":
		s.cmdRead(args)
	case "write", "w":
		s.cmdWrite(args)
	case "kill":
		s.cmdKill(args)
	case "lock":
		s.cmdLock(args)
	case "erase":
		s.cmdErase(args)

	case "antenna":
		s.cmdAntenna(args)
	case "singulation":
		s.cmdSingulation(args)
	case "trigger":
		s.cmdTrigger(args)
	case "regulatory":
		s.cmdRegulatory(args)
	case "beeper":
		s.cmdBeeper(args)
	case "batch":
		s.cmdBatch(args)
	case "prefilters":
		s.cmdPreFilters(args)
	case "save":
		s.cmdSave(args)
	case "restore":
		s.cmdRestore(args)

	case "version":
		s.cmdVersion(args)
	case "caps":
		s.cmdCaps(args)
	case "regions":
		s.cmdRegions(args)
	case "battery":
		s.cmdBattery(args)

	case "sim":
		s.cmdSim(args)

	case "events":
		s.cmdEvents(args)

	case "quit", "exit", "q":
		return true

	default:
		s.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	s.printf(`
RFID Reader Commands:
  Readers:
    readers [active]                       - List available (or active) readers
    connect <reader>                       - Establish a session
    disconnect <reader>                    - Terminate a session
    detect on|off                          - Toggle reader detection
    ascii <reader> <password>              - Open an ASCII connection

  Inventory:
    inventory start <reader> [bank]        - Start inventory, optionally reading a bank
    inventory stop <reader>                - Stop inventory
    rapid start|stop <reader>              - Start or stop rapid read
    locate start <reader> <epc>            - Start locating a tag
    locate stop <reader>                   - Stop locating
    fetch <reader>                         - Fetch batched reads
    purge <reader>                         - Purge batched reads

  Tags:
    read <reader> <epc> <bank> <offset> <words> [password]
    write <reader> <epc> <bank> <offset> <hex> [password]
    kill <reader> <epc> <password>
    lock <reader> <epc> <bank> <permission> [password]
    erase <reader> <epc> <bank> <offset> <words> [password]

  Configuration:
    antenna <reader> [dbm] [profile]       - Show or set antenna power and link profile
    singulation <reader> [session] [pop]   - Show or set singulation
    trigger <reader> [immediate|handheld]  - Show or set the start/stop triggers
    regulatory <reader> [region]           - Show or set the region
    beeper <reader> [high|medium|low|quiet]
    batch <reader> [disable|auto|enable]
    prefilters <reader> [clear]            - Show or clear pre-filters
    save <reader>                          - Save settings as custom defaults
    restore <reader> [factory]             - Restore saved or factory settings

  Information:
    version [reader]                       - SDK or reader firmware versions
    caps <reader>                          - Reader capabilities
    regions <reader>                       - Supported regions
    battery <reader>                       - Request a battery report

  Simulator:
    sim trigger <reader> press|release
    sim battery <reader> <level> [charging]
    sim disappear|appear <reader>
    sim tags | sim tag add <epc> | sim tag rm <epc>

  General:
    events on|off                          - Toggle event printing
    help                                   - Show this help
    quit                                   - Exit
`)
}

func (s *Shell) cmdEvents(args []string) {
	if len(args) == 0 {
		s.printf("Events: %s\n", onOff(s.showEvents.Load()))
		return
	}
	on, err := parseOnOff(args[0])
	if err != nil {
		s.printf("Usage: events on|off\n")
		return
	}
	s.showEvents.Store(on)
	s.printf("Events: %s\n", onOff(on))
}

// watchEvents prints events from a fresh subscription while printing is on.
func (s *Shell) watchEvents() error {
	sub, err := s.mgr.Events()
	if err != nil {
		return err
	}
	s.sub = sub
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for ev := range sub.C() {
			if s.showEvents.Load() {
				s.printf("[EVENT] %s\n", formatEvent(ev))
			}
		}
	}()
	return nil
}

func (s *Shell) stopEvents() {
	if s.sub != nil {
		s.sub.Cancel()
	}
	s.wg.Wait()
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) fail(err error) {
	s.printf("Error: %v\n", err)
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
