// FILE: main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/evo-body/body"
	"github.com/lixenwraith/evo-body/config"
	"github.com/lixenwraith/evo-body/export"
	"github.com/lixenwraith/evo-body/logging"
	"github.com/lixenwraith/evo-body/parameter"
)

const (
	logFileName = "viewer.log"
	headerRows  = 3
)

var faceStyles = [body.FaceCount]tcell.Style{
	body.FaceTop:    tcell.StyleDefault.Foreground(tcell.ColorRed),
	body.FaceBottom: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	body.FaceNorth:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	body.FaceEast:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	body.FaceSouth:  tcell.StyleDefault.Foreground(tcell.ColorPurple),
	body.FaceWest:   tcell.StyleDefault.Foreground(tcell.ColorTeal),
}

var (
	styleFree   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

// Viewer regenerates a segment on keypress and draws its placements
type Viewer struct {
	screen        tcell.Screen
	width, height int

	cfg            config.Config
	diameterFactor float64
	seed           uint64

	seg     body.Segment
	apps    []body.Appendage
	genTime time.Duration
	status  string
	err     error

	audioInit bool
	closed    bool
}

func NewViewer(cfg config.Config) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := newViewer(screen, cfg)
	if err := v.initAudio(); err != nil {
		// Non-fatal, viewer runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	return v, nil
}

// newViewer binds an initialized screen and generates the first segment
func newViewer(screen tcell.Screen, cfg config.Config) *Viewer {
	v := &Viewer{
		screen:         screen,
		cfg:            cfg,
		diameterFactor: (cfg.Appendage.DiameterFactor.Min + cfg.Appendage.DiameterFactor.Max) / 2,
		seed:           body.ResolveSeed(cfg.Seed),
	}
	if cfg.Appendage.Diameter != nil && cfg.Size > 0 {
		v.diameterFactor = *cfg.Appendage.Diameter / cfg.Size
	}
	v.width, v.height = screen.Size()

	v.regenerate()
	return v
}

func (v *Viewer) initAudio() error {
	sampleRate := beep.SampleRate(parameter.ViewerSampleRate)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		v.audioInit = true
	}
	return err
}

// playCue sounds a short tone pitched by fill factor
func (v *Viewer) playCue() {
	if !v.audioInit {
		return
	}
	sampleRate := beep.SampleRate(parameter.ViewerSampleRate)
	freq := parameter.ViewerToneBaseHz + parameter.ViewerToneSpanHz*v.cfg.Fill
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("tone %.0fHz: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(parameter.ViewerToneDuration), sine))
}

// regenerate rebuilds the segment from the current settings and seed
func (v *Viewer) regenerate() {
	cfg := v.cfg
	diameter := cfg.Size * v.diameterFactor
	cfg.Appendage.Diameter = &diameter
	cfg.Seed = v.seed

	start := time.Now()
	rng := cfg.NewRand()
	seg, err := cfg.Build(rng)
	if err == nil {
		v.apps, err = seg.Appendages(cfg.Fill, rng)
	}
	v.genTime = time.Since(start)
	v.err = err
	if err != nil {
		log.Printf("regenerate: %v", err)
		return
	}

	v.seg = seg
	log.Printf("seed=%d %v slots=%d placed=%d in %v", v.seed, seg.Shape(), seg.SlotCount(), len(v.apps), v.genTime)
	v.playCue()
}

func (v *Viewer) exportCurrent() {
	if v.seg == nil {
		return
	}
	path := fmt.Sprintf("body-%d.json", v.seed)
	doc := export.New(v.seg, v.cfg.Fill, v.seed, v.apps)
	if err := export.WriteFile(path, doc); err != nil {
		v.err = err
		return
	}
	v.status = "exported " + path
	log.Printf("exported %s", path)
}

func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= v.width {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *Viewer) drawHeader() {
	v.drawText(0, 0, fmt.Sprintf("%s  strategy=%s  fill=%.2f  diameter=%.2fx  seed=%d",
		v.cfg.Shape, v.cfg.Strategy, v.cfg.Fill, v.diameterFactor, v.seed), styleHeader)

	if v.err != nil {
		v.drawText(0, 1, v.err.Error(), styleError)
	} else if v.seg != nil {
		dim := v.seg.Dimensions()
		v.drawText(0, 1, fmt.Sprintf("S=%.3g D=%.3g L=%.3g  placed %d/%d (requested %d) in %v  %s",
			dim.Size, dim.AppendageDiameter, dim.AppendageLength, len(v.apps), v.seg.SlotCount(),
			body.TargetCount(v.seg.SlotCount(), v.cfg.Fill), v.genTime, v.status), tcell.StyleDefault)
	}
	v.drawText(0, 2, "r:reseed  +/-:fill  [/]:diameter  s:shape  t:strategy  e:export  q:quit", styleFree)
}

// drawCube lays the faces out as an unfolded net, two columns per slot
func (v *Viewer) drawCube(c *body.Cube) {
	rows := c.RowsPerFace()
	if rows == 0 {
		v.drawText(0, headerRows, "no slots: appendage diameter exceeds half the cube edge", styleFree)
		return
	}
	netW, netH := body.NetSize(rows)
	if netW*2 > v.width || netH+headerRows > v.height {
		v.drawText(0, headerRows, fmt.Sprintf("net needs %dx%d cells, screen is %dx%d: enlarge the terminal or press ] to widen appendages",
			netW*2, netH+headerRows, v.width, v.height), styleFree)
		return
	}

	occupied := make(map[body.SlotKey]bool, len(v.apps))
	for _, a := range v.apps {
		occupied[a.Key()] = true
	}

	for f := body.FaceTop; f < body.FaceCount; f++ {
		for idx := 0; idx < c.SlotsPerFace(); idx++ {
			x, y, _ := body.NetCell(f, idx/rows, idx%rows, rows)
			sx, sy := x*2, y+headerRows
			if occupied[body.SlotKey{Face: f, Index: idx}] {
				v.screen.SetContent(sx, sy, '●', nil, faceStyles[f])
			} else {
				v.screen.SetContent(sx, sy, '·', nil, styleFree)
			}
		}
	}
}

// drawSphere plots placements on a longitude/latitude map filling the screen
func (v *Viewer) drawSphere() {
	w, h := v.width, v.height-headerRows
	if w <= 0 || h <= 0 {
		return
	}
	for _, a := range v.apps {
		u, lat := body.Equirect(a.Normal)
		x := min(int(u*float64(w)), w-1)
		y := min(int(lat*float64(h)), h-1)
		style := faceStyles[body.FaceTop]
		if a.Normal.Y < 0 {
			style = faceStyles[body.FaceBottom]
		}
		v.screen.SetContent(x, y+headerRows, '●', nil, style)
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()
	v.drawHeader()

	switch s := v.seg.(type) {
	case *body.Cube:
		v.drawCube(s)
	case *body.Sphere:
		v.drawSphere()
	}
	v.screen.Show()
}

func (v *Viewer) adjustFill(delta float64) {
	v.cfg.Fill = max(0, min(1, v.cfg.Fill+delta))
	v.regenerate()
}

func (v *Viewer) adjustDiameter(delta float64) {
	v.diameterFactor = max(parameter.ViewerDiameterFactorMin, min(parameter.ViewerDiameterFactorMax, v.diameterFactor+delta))
	v.regenerate()
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		v.status = ""
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			v.seed = body.ResolveSeed(0)
			v.regenerate()
		case '+', '=':
			v.adjustFill(parameter.ViewerFillStep)
		case '-':
			v.adjustFill(-parameter.ViewerFillStep)
		case ']':
			v.adjustDiameter(parameter.ViewerDiameterStep)
		case '[':
			v.adjustDiameter(-parameter.ViewerDiameterStep)
		case 's':
			v.cfg.Shape = nextName(v.cfg.Shape, body.ShapeCube.String(), body.ShapeSphere.String())
			v.regenerate()
		case 't':
			v.cfg.Strategy = nextName(v.cfg.Strategy, body.StrategyShuffle.String(), body.StrategyRetry.String())
			v.regenerate()
		case 'e':
			v.exportCurrent()
		}
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

// nextName cycles to the entry after cur
func nextName(cur string, names ...string) string {
	for i, n := range names {
		if n == cur {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (v *Viewer) run() {
	ticker := time.NewTicker(parameter.ViewerFrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.ViewerEventBuffer)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.draw()
		}
	}
}

// cleanup releases audio and the terminal, later calls are no-ops
func (v *Viewer) cleanup() {
	if v.closed {
		return
	}
	v.closed = true
	if v.audioInit {
		speaker.Close()
		v.audioInit = false
	}
	v.screen.Fini()
}

// runGuarded runs loop and always restores the terminal
// A panic in loop is recovered and returned with its stack once the screen is finalized
func (v *Viewer) runGuarded(loop func()) (crash any, stack []byte) {
	defer func() {
		if r := recover(); r != nil {
			crash, stack = r, debug.Stack()
			v.cleanup()
		}
	}()
	loop()
	v.cleanup()
	return nil, nil
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	debugFlag := flag.Bool("debug", false, "Write debug log to "+logging.DefaultDir+"/"+logFileName)
	flag.Parse()

	if f := logging.Setup(logging.DefaultDir, logFileName, *debugFlag); f != nil {
		defer f.Close()
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	viewer, err := NewViewer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if crash, stack := viewer.runGuarded(viewer.run); crash != nil {
		fmt.Fprintf(os.Stderr, "\n\x1b[31mVIEWER CRASHED: %v\x1b[0m\n", crash)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
		os.Exit(1)
	}
}
