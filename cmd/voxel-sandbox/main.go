package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"voxel-sandbox/internal/assets"
	"voxel-sandbox/internal/config"
	"voxel-sandbox/internal/game"
	"voxel-sandbox/internal/input"
	"voxel-sandbox/internal/profiling"
	"voxel-sandbox/internal/registry"
	"voxel-sandbox/internal/render"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

// Headless front end: drives the sandbox with named input events read from
// stdin instead of a window. A windowed host plugs into the same Session
// through the render.SceneHost interface.

func main() {
	configPath := flag.String("config", "", "path to YAML config; defaults apply when empty")
	assetsDir := flag.String("assets", "assets/textures", "block texture directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	catalog := registry.NewCatalog()
	textures := assets.NewProvider(*assetsDir)

	// One-time texture warm-up outside the per-event path.
	for _, kind := range catalog.Kinds() {
		def, err := catalog.DefinitionOf(kind)
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog:", err)
			os.Exit(1)
		}
		textures.Texture(def)
	}

	host := render.NewHeadlessHost(float32(cfg.BuildDistance))
	session, err := game.NewSession(cfg, catalog, host, host)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session:", err)
		os.Exit(1)
	}
	host.SetStore(session.Store)

	// Spawn the camera above the chunk center looking straight down, the
	// same vantage the windowed player starts from.
	host.SetCamera(mgl32.Vec3{0, float32(cfg.ChunkHeight) + 10, 0}, mgl32.Vec3{0, -1, 0})

	fmt.Printf("%s (headless)\n", cfg.WindowTitle)
	fmt.Println(session.InstructionText())
	fmt.Println(session.StatusText())
	if cfg.ShowFPS {
		fmt.Println("generation:", profiling.Summary(3))
	}

	closer.Bind(func() {
		fmt.Println("shutting down,", session.StatusText())
	})

	go repl(session, host)
	closer.Hold()
}

func repl(session *game.Session, host *render.HeadlessHost) {
	im := input.NewManager()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		profiling.ResetFrame()
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}

		switch fields[0] {
		case "look":
			handleLook(host, fields[1:])
		case "status":
			fmt.Println(session.InstructionText())
			fmt.Println(session.StatusText())
		case "help":
			fmt.Println("commands: place  remove  1  2  3  tab  look <ex> <ey> <ez> <dx> <dy> <dz>  status  quit")
		default:
			dispatchEvent(session, im, fields[0])
		}

		if session.QuitRequested() {
			closer.Close()
			return
		}
		fmt.Print("> ")
	}
	closer.Close()
}

// dispatchEvent translates one console word into a named device event and
// runs the resulting just-pressed actions.
func dispatchEvent(session *game.Session, im *input.Manager, word string) {
	name := word
	switch word {
	case "1", "2", "3":
		name = "select-" + word
	case "tab":
		name = "toggle-lock"
	}

	im.HandleEvent(name, true)
	session.Dispatch(im)
	im.HandleEvent(name, false)
	im.PostUpdate()

	fmt.Println(session.StatusText())
}

func handleLook(host *render.HeadlessHost, args []string) {
	if len(args) != 6 {
		fmt.Println("usage: look <ex> <ey> <ez> <dx> <dy> <dz>")
		return
	}
	vals := make([]float32, 6)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			fmt.Println("look: bad number:", a)
			return
		}
		vals[i] = float32(f)
	}
	host.SetCamera(mgl32.Vec3{vals[0], vals[1], vals[2]}, mgl32.Vec3{vals[3], vals[4], vals[5]})
}
