// Command nesdbg is the demo front end: it loads an iNES ROM, wires a
// console.Console, and runs it in a pixelgl window with an optional debug
// panel showing CPU registers and a rolling disassembly.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/faiface/pixel/pixelgl"

	"github.com/sixfiveoh/nescore/console"
	"github.com/sixfiveoh/nescore/disasm"
	"github.com/sixfiveoh/nescore/display"
	"github.com/sixfiveoh/nescore/inesfile"
)

var (
	flagROM     string
	flagDebug   bool
	flagLogging bool
)

func main() {
	parseFlags()

	if flagROM == "" {
		fmt.Fprintln(os.Stderr, "usage: nesdbg -rom path/to/game.nes")
		os.Exit(2)
	}

	fmt.Println("Loading", flagROM)
	rom, err := inesfile.LoadFile(flagROM)
	if err != nil {
		log.Fatalf("nesdbg: %v", err)
	}

	nes := console.New(rom)
	if flagLogging {
		nes.CPU.Logger.SetOutput(os.Stderr)
	}

	fmt.Println("Powering on...")
	nes.PowerOn()

	pixelgl.Run(func() { run(nes) })
}

func run(nes *console.Console) {
	d := display.New(flagDebug)

	for !d.Window().Closed() {
		for i := 0; i < 1000; i++ {
			nes.Clock.Tick()
		}

		nes.Controller1.Poll(d.Window())

		if flagDebug {
			drawDebugPanel(d, nes)
		}

		d.UpdateScreen()
	}
}

func drawDebugPanel(d *display.Display, nes *console.Console) {
	snap := nes.CPU.Snapshot()
	d.WriteRegDebugString(fmt.Sprintf(
		"PC: %04X\nA:  %02X\nX:  %02X\nY:  %02X\nSP: %02X\nP:  %02X\nCycles: %d",
		snap.PC, snap.A, snap.X, snap.Y, snap.SP, snap.Flags, nes.CPU.CycleCount,
	))

	lines := disasm.Range(nes, nes.CPU, snap.PC, snap.PC+16)
	listing := ""
	for i, l := range lines {
		if i >= 10 {
			break
		}
		listing += l.String() + "\n"
	}
	d.WriteInstDebugString(listing)
}

func parseFlags() {
	flag.StringVar(&flagROM, "rom", "", "path to an iNES .nes ROM file")
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagLogging, "l", false, "enable per-instruction trace logging")
	flag.Parse()
}
