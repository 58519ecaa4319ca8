package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
)

type Main struct{}

type Info struct {
	Tree  bool   `short:"t" desc:"Print the layer tree"`
	Env   string `default:".env" desc:"Environment file"`
	Input string `index:"0" desc:"Input file"`
}

type Commands struct {
	Frame    float64 `short:"f" default:"0" desc:"Frame number"`
	TrimMode string  `desc:"Force trim mode, simultaneous or individual"`
	Env      string  `default:".env" desc:"Environment file"`
	Output   string  `short:"o" desc:"Output file"`
	Input    string  `index:"0" desc:"Input file"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Lottie animation renderer")
	root.AddCmd(&Info{}, "info", "Show animation information")
	root.AddCmd(&Render{}, "render", "Render frames to raster or vector images")
	root.AddCmd(&Commands{}, "commands", "Print the drawing commands of a frame as JSON")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

// setup loads the configuration and logger, and returns the scene options. A non-empty trimMode overrides the environment.
func setup(env, trimMode string) (*Config, *zap.Logger, lottie.Options, error) {
	cfg, err := LoadConfig(env)
	if err != nil {
		return nil, nil, lottie.Options{}, err
	}
	if trimMode != "" {
		if cfg.ForceTrimMode, err = lottie.ParseTrimMode(trimMode); err != nil {
			return nil, nil, lottie.Options{}, err
		}
	}
	log, err := NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, lottie.Options{}, err
	}
	opts := lottie.Options{
		ForceTrimMode: cfg.ForceTrimMode,
		Logger:        log,
	}
	return cfg, log, opts, nil
}

func openScene(filename string, opts lottie.Options) (*lottie.Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lottie.ParseScene(f, opts)
}

func (cmd *Info) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	_, log, opts, err := setup(cmd.Env, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	scene, err := openScene(cmd.Input, opts)
	if err != nil {
		return err
	}

	w, h := scene.Size()
	fmt.Println("Size:", w, "x", h)
	fmt.Println("Frames:", scene.InPoint(), "-", scene.OutPoint())
	fmt.Println("Frame rate:", scene.FrameRate())
	fmt.Printf("Duration: %.3gs\n", scene.Duration())
	for _, m := range scene.Markers() {
		fmt.Printf("Marker: %s at %v (%v frames)\n", m.Name, m.Frame, m.Duration)
	}
	if 0 < len(scene.Assets()) {
		ids := []string{}
		for _, asset := range scene.Assets() {
			ids = append(ids, asset.ID())
		}
		fmt.Println("Assets:", strings.Join(ids, ", "))
	}
	if scene.Unsupported() {
		fmt.Println("Unsupported features: yes")
	}
	if cmd.Tree {
		printTree(scene.Root(), 0)
	}
	return nil
}

func printTree(n lottie.Node, depth int) {
	name := n.Name()
	if name != "" {
		name = " " + name
	}
	hidden := ""
	if n.Hidden() {
		hidden = " (hidden)"
	}
	fmt.Printf("%s%v%s%s\n", strings.Repeat("  ", depth), n.Kind(), name, hidden)
	for _, child := range n.Children() {
		printTree(child, depth+1)
	}
}

func (cmd *Commands) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	_, log, opts, err := setup(cmd.Env, cmd.TrimMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	scene, err := openScene(cmd.Input, opts)
	if err != nil {
		return err
	}

	w, h := scene.Size()
	rec := lottie.NewRecorder(w, h)
	scene.Render(rec, cmd.Frame)

	out := os.Stdout
	if cmd.Output != "" && cmd.Output != "-" {
		if out, err = os.Create(cmd.Output); err != nil {
			return err
		}
		defer out.Close()
	}
	return rec.WriteJSON(out)
}
