package game

import (
	"fmt"
	"strings"

	"voxel-sandbox/internal/config"
	"voxel-sandbox/internal/input"
	"voxel-sandbox/internal/registry"
	"voxel-sandbox/internal/render"
	"voxel-sandbox/internal/world"

	"github.com/google/uuid"
)

const hudBaseText = "Left click: build  |  Right click: remove"

// Session is the world controller: it owns the configuration, the terrain
// store and the selected block kind, dispatches input actions to the edit
// engine, and mirrors store mutations into the scene host. Everything runs on
// one logical thread.
type Session struct {
	Config  *config.Config
	Catalog *registry.Catalog
	Store   *world.TerrainStore
	Host    render.SceneHost
	Overlay render.TextOverlay // may be nil

	edit        *EditEngine
	selected    world.BlockKind
	handles     map[uuid.UUID]render.Handle
	MouseLocked bool
	quit        bool
}

// NewSession validates the configuration, generates the initial chunk and
// instantiates every generated block in the scene host.
func NewSession(cfg *config.Config, catalog *registry.Catalog, host render.SceneHost, overlay render.TextOverlay) (*Session, error) {
	roles, err := cfg.Roles()
	if err != nil {
		return nil, err
	}
	// The catalog must cover every kind the generator can reference.
	for _, kind := range []world.BlockKind{roles.Surface, roles.Secondary, roles.Foundation} {
		if _, err := catalog.DefinitionOf(kind); err != nil {
			return nil, err
		}
	}

	s := &Session{
		Config:      cfg,
		Catalog:     catalog,
		Host:        host,
		Overlay:     overlay,
		selected:    roles.Surface,
		handles:     make(map[uuid.UUID]render.Handle),
		MouseLocked: true,
	}

	heights := world.NewHeightField(cfg.PerlinSeed, cfg.PerlinOctaves, cfg.PerlinScale, cfg.TerrainAmplitude, cfg.ChunkHeight)
	s.Store = world.NewTerrainStore(heights, roles, cfg.ChunkSize, s)
	s.edit = NewEditEngine(s.Store)
	s.refreshOverlay()
	return s, nil
}

// BlockPlaced implements world.BlockListener.
func (s *Session) BlockPlaced(b *world.Block) {
	s.handles[b.ID] = s.Host.Instantiate(b)
}

// BlockRemoved implements world.BlockListener.
func (s *Session) BlockRemoved(b *world.Block) {
	if handle, ok := s.handles[b.ID]; ok {
		s.Host.Dispose(handle)
		delete(s.handles, b.ID)
	}
}

// SelectBlock sets the active block kind for subsequent placements. The
// hotkey mapping is fixed, so the kind is trusted to be a catalog kind.
func (s *Session) SelectBlock(kind world.BlockKind) {
	s.selected = kind
	s.refreshOverlay()
}

// SelectedBlock returns the active block kind.
func (s *Session) SelectedBlock() world.BlockKind {
	return s.selected
}

// HandleAction routes one logical input action. Place and remove resolve the
// hovered block and hit normal through the scene host first; a hover miss
// simply ignores the event.
func (s *Session) HandleAction(action input.Action) {
	switch action {
	case input.ActionPlace:
		hovered, normal, ok := s.Host.Hovered()
		if !ok {
			return
		}
		s.edit.HandlePlace(hovered, normal, s.selected)
		s.refreshOverlay()
	case input.ActionRemove:
		hovered, _, ok := s.Host.Hovered()
		if !ok {
			return
		}
		s.edit.HandleRemove(hovered)
		s.refreshOverlay()
	case input.ActionToggleLock:
		s.MouseLocked = !s.MouseLocked
	case input.ActionQuit:
		s.quit = true
	default:
		for slot, sel := range input.SelectActions {
			if action == sel {
				s.selectSlot(slot)
				return
			}
		}
	}
}

// Dispatch forwards every just-pressed action from the manager.
func (s *Session) Dispatch(m *input.Manager) {
	for a := input.Action(0); a < input.ActionCount; a++ {
		if m.JustPressed(a) {
			s.HandleAction(a)
		}
	}
}

// QuitRequested reports whether a quit action was received.
func (s *Session) QuitRequested() bool {
	return s.quit
}

func (s *Session) selectSlot(slot int) {
	kinds := s.Catalog.Kinds()
	if slot < 0 || slot >= len(kinds) {
		return
	}
	s.SelectBlock(kinds[slot])
}

// StatusText composes the live block counter line.
func (s *Session) StatusText() string {
	return fmt.Sprintf("Blocks: %d", s.Store.ActiveBlockCount())
}

// InstructionText composes the control legend with the hotkey list; the
// selected kind is marked with ">".
func (s *Session) InstructionText() string {
	labels := make([]string, 0, len(s.Catalog.Kinds()))
	for i, kind := range s.Catalog.Kinds() {
		prefix := " "
		if kind == s.selected {
			prefix = ">"
		}
		labels = append(labels, fmt.Sprintf("[%d] %s%s", i+1, prefix, kind))
	}
	return fmt.Sprintf("%s  |  %s", hudBaseText, strings.Join(labels, "  "))
}

func (s *Session) refreshOverlay() {
	if s.Overlay == nil {
		return
	}
	s.Overlay.SetText("instructions", s.InstructionText())
	s.Overlay.SetText("counter", s.StatusText())
}
