// This file is part of Tridentvga.
//
// Tridentvga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tridentvga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tridentvga.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/bradleyjkemp/memviz"

	"github.com/tridentvga/tridentvga/digest"
	"github.com/tridentvga/tridentvga/environment"
	"github.com/tridentvga/tridentvga/hardware/preferences"
	"github.com/tridentvga/tridentvga/hardware/svga"
	"github.com/tridentvga/tridentvga/hardware/trident"
	"github.com/tridentvga/tridentvga/hardware/trident/mode"
	"github.com/tridentvga/tridentvga/logger"
	"github.com/tridentvga/tridentvga/modalflag"
	"github.com/tridentvga/tridentvga/prefs"
	"github.com/tridentvga/tridentvga/script"
	"github.com/tridentvga/tridentvga/statsview"
	"github.com/tridentvga/tridentvga/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when a script is running so that
	// the script is not interrupted half way through a register sequence.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:], os.Stdout)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate that the program should quit.
func launch(sync *mainSync, args []string, output io.Writer) {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DUMP", "CLOCKS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync, output)

	case "DUMP":
		err = dump(md, sync, output)

	case "CLOCKS":
		err = clocks(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// create the device. the vram argument overrides the vram size preference if
// it is not zero.
func newDevice(prefsArg string, vram int) (*trident.Device, error) {
	prefs.PushCommandLineStack(prefsArg)
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if vram != 0 {
		err = p.VRAMSize.Set(vram)
		if err != nil {
			return nil, err
		}
	}

	env, err := environment.NewEnvironment(p)
	if err != nil {
		return nil, err
	}

	return trident.NewDevice(env, svga.NewVGA(env)), nil
}

// run script with the device. the interrupt signal handler is reset while the
// script is running.
func runScript(dev *trident.Device, sync *mainSync, filename string) error {
	if sync != nil {
		sync.state <- stateRequest{req: reqNoIntSig}
	}

	scr := script.NewScript(dev)
	defer scr.Close()

	return scr.Run(filename)
}

func run(md *modalflag.Modes, sync *mainSync, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	vram := md.AddInt("vram", 0, "size of video memory in bytes (overrides preference)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsArg := md.AddString("prefs", "", "preferences values to use for this run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
		dev, err := newDevice(*prefsArg, *vram)
		if err != nil {
			return err
		}

		err = runScript(dev, sync, md.GetArg(0))
		if err != nil {
			return err
		}

		summary(output, dev)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func dump(md *modalflag.Modes, sync *mainSync, output io.Writer) error {
	md.NewMode()

	outFile := md.AddString("o", "", "output file for graphviz dot data (default stdout)")
	prefsArg := md.AddString("prefs", "", "preferences values to use for this run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dev, err := newDevice(*prefsArg, 0)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		err = runScript(dev, sync, md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	w := output
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	state := dev.State()
	memviz.Map(w, &state)

	return nil
}

func clocks(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	clockTable(output)

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.Describe())

	return nil
}

// print the clock table with every divisor applied.
func clockTable(output io.Writer) {
	divisors := []mode.Divisor{mode.DivideNone, mode.DivideTwo, mode.DivideFour, mode.DivideOneAndHalf}

	tw := tabwriter.NewWriter(output, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "select\t")
	for _, d := range divisors {
		fmt.Fprintf(tw, "/%s\t", d)
	}
	fmt.Fprintln(tw)

	for i, c := range mode.Clocks() {
		fmt.Fprintf(tw, "%d\t", i)
		for _, d := range divisors {
			fmt.Fprintf(tw, "%d\t", d.Apply(c))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// print a summary of the device state.
func summary(output io.Writer, dev *trident.Device) {
	st := dev.State()

	m := "old"
	if st.NewMode {
		m = "new"
	}

	fmt.Fprintf(output, "mode:      %s\n", m)
	fmt.Fprintf(output, "video:     %s\n", st.Video)
	fmt.Fprintf(output, "banks:     write %d, read %d\n", st.Banks.Write, st.Banks.Read)
	fmt.Fprintf(output, "aperture:  %s\n", st.Aperture)
	fmt.Fprintf(output, "mmio:      %v\n", st.MMIO)
	fmt.Fprintf(output, "dac:       %s\n", st.DAC)
	fmt.Fprintf(output, "post port: %#04x\n", dev.POSTPort())
	fmt.Fprintf(output, "offset:    %d\n", dev.Offset())

	dig := digest.NewMemory(dev.Base().VideoMemory())
	dig.Update()
	fmt.Fprintf(output, "vram:      %s\n", dig.Hash())

	fmt.Fprintf(output, "log:       %d entries tagged trident\n", countLog("trident"))
}

// count the entries in the central log with the specified tag.
func countLog(tag string) int {
	var n int
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == tag {
				n++
			}
		}
	})
	return n
}
