package ui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"checkersplay/internal/ai"
	"checkersplay/internal/board"
	"checkersplay/internal/game"
	"checkersplay/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / board.Size
	PanelWidth   = ScreenWidth - BoardSize
)

// aiThinkDelay is how long the computer pretends to think before moving.
const aiThinkDelay = 500 * time.Millisecond

// aiChoice is one selected step, sent from the AI goroutine.
type aiChoice struct {
	from, to board.Cell
	ok       bool
}

// Game implements ebiten.Game. The human plays Red; in vs Computer mode
// the selector plays Black.
type Game struct {
	engine   *game.Engine
	selector *ai.Selector

	// Game settings
	mode       storage.GameMode
	difficulty ai.Difficulty
	username   string

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	// Modals
	settingsModal *SettingsModal
	welcomeScreen *WelcomeScreen

	// AI state
	aiThinking bool
	aiMove     chan aiChoice

	// Per-game bookkeeping
	moveHistory   []string
	gameStart     time.Time
	statsRecorded bool
}

// NewGame creates a new checkers game.
func NewGame() *Game {
	g := &Game{
		engine:     game.New(),
		selector:   ai.NewSelector(ai.Medium, nil),
		mode:       storage.ModeVsComputer,
		difficulty: ai.Medium,
		username:   "Player",
		renderer:   NewRenderer(BoardSize, SquareSize),
		input:      NewInputHandler(),
		aiMove:     make(chan aiChoice, 1),
		gameStart:  time.Now(),
	}

	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	g.loadPreferences()

	g.panel = NewPanel(g)
	g.settingsModal = NewSettingsModal()
	g.welcomeScreen = NewWelcomeScreen()

	g.checkFirstLaunch()

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}

	g.username = g.prefs.Username
	g.mode = g.prefs.GameMode
	g.difficulty = ai.Difficulty(g.prefs.Difficulty)
	g.selector.SetDifficulty(g.difficulty)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Username = g.username
	g.prefs.GameMode = g.mode
	g.prefs.Difficulty = storage.Difficulty(g.difficulty)
	g.prefs.LastPlayed = time.Now()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows the welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}

	if isFirst {
		g.welcomeScreen.Show(func(name string, mode storage.GameMode) {
			g.username = name
			g.mode = mode

			if err := g.storage.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: Failed to mark first launch complete: %v", err)
			}
			g.savePreferences()
		})
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()

	// Modals block everything below them
	if g.welcomeScreen.IsVisible() {
		g.welcomeScreen.Update(g.input)
		g.updateCursor()
		return nil
	}
	if g.settingsModal.IsVisible() {
		g.settingsModal.Update(g.input)
		g.updateCursor()
		return nil
	}

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.checkAIMove()
	g.maybeStartAI()
	g.updateCursor()

	return nil
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	anyHovered := false
	if g.welcomeScreen.IsVisible() {
		anyHovered = g.welcomeScreen.AnyButtonHovered()
	} else if g.settingsModal.IsVisible() {
		anyHovered = g.settingsModal.AnyButtonHovered()
	} else {
		anyHovered = g.panel.AnyButtonHovered()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// handleBoardInput processes mouse clicks on the board.
func (g *Game) handleBoardInput() {
	if g.engine.Phase() == game.GameOver {
		return
	}
	if g.aiThinking {
		return
	}
	if g.mode == storage.ModeVsComputer && g.engine.CurrentTurn() == board.Black {
		return
	}

	if !g.input.IsLeftJustPressed() {
		return
	}

	mx, my := g.input.MousePosition()
	cell := g.renderer.ScreenToCell(mx, my)
	if cell == board.NoCell {
		return
	}

	if g.engine.HandleCell(cell) {
		g.recordLastMove()
		g.checkGameEnd()
	}
}

// maybeStartAI starts the computer's move when it is Black's turn. Forced
// capture chains re-enter here after each applied jump, so the chain plays
// out one animated step at a time.
func (g *Game) maybeStartAI() {
	if g.mode != storage.ModeVsComputer || g.aiThinking {
		return
	}
	if g.engine.Phase() == game.GameOver || g.engine.CurrentTurn() != board.Black {
		return
	}

	g.aiThinking = true

	b := g.engine.Board()
	legal := g.engine.LegalMoves()
	sel := g.selector

	go func() {
		time.Sleep(aiThinkDelay)
		from, to, ok := sel.Choose(&b, legal)
		g.aiMove <- aiChoice{from: from, to: to, ok: ok}
	}()
}

// checkAIMove applies a completed AI choice.
func (g *Game) checkAIMove() {
	if !g.aiThinking {
		return
	}

	select {
	case choice := <-g.aiMove:
		g.aiThinking = false
		if !choice.ok {
			// No legal move means refreshLegal already flagged the game over.
			return
		}
		if !g.engine.TryMove(choice.from, choice.to) {
			// Stale choice from before a reset, drop it.
			log.Printf("Dropping stale computer move %v-%v", choice.from, choice.to)
			return
		}
		g.recordLastMove()
		g.checkGameEnd()
	default:
		// Still thinking
	}
}

// recordLastMove appends the engine's last applied step to the history.
func (g *Game) recordLastMove() {
	if mv, ok := g.engine.LastMove(); ok {
		g.moveHistory = append(g.moveHistory, mv.String())
	}
}

// checkGameEnd records stats once when the game reaches a terminal state.
func (g *Game) checkGameEnd() {
	if g.engine.Phase() != game.GameOver || g.statsRecorded {
		return
	}
	g.statsRecorded = true

	winner, ok := g.engine.Winner()
	if !ok || g.storage == nil {
		return
	}

	record := storage.GameRecord{
		Won:        winner == board.Red,
		Mode:       g.mode,
		Difficulty: storage.Difficulty(g.difficulty),
		Duration:   time.Since(g.gameStart),
	}
	if err := g.storage.RecordGame(record); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
	}
}

// NewGameAction resets to the starting position.
func (g *Game) NewGameAction() {
	g.engine = game.New()
	g.moveHistory = nil
	g.aiThinking = false
	g.statsRecorded = false
	g.gameStart = time.Now()

	// Drain any stale AI choice
	select {
	case <-g.aiMove:
	default:
	}
}

// SetGameMode switches between hot-seat and vs-computer play.
func (g *Game) SetGameMode(mode storage.GameMode) {
	if g.mode == mode {
		return
	}
	g.mode = mode
	g.savePreferences()
}

// SetDifficulty sets the AI difficulty.
func (g *Game) SetDifficulty(d ai.Difficulty) {
	if g.difficulty == d {
		return
	}
	g.difficulty = d
	g.selector.SetDifficulty(d)
	g.savePreferences()
}

// Engine returns the game engine.
func (g *Game) Engine() *game.Engine {
	return g.engine
}

// GameMode returns the current game mode.
func (g *Game) GameMode() storage.GameMode {
	return g.mode
}

// Difficulty returns the current AI difficulty.
func (g *Game) Difficulty() ai.Difficulty {
	return g.difficulty
}

// MoveHistory returns the applied steps in notation form.
func (g *Game) MoveHistory() []string {
	return g.moveHistory
}

// IsAIThinking returns true if the AI is currently thinking.
func (g *Game) IsAIThinking() bool {
	return g.aiThinking
}

// Username returns the current username.
func (g *Game) Username() string {
	return g.username
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	current := *g.prefs
	current.Username = g.username
	current.GameMode = g.mode
	current.Difficulty = storage.Difficulty(g.difficulty)

	g.settingsModal.Show(&current, func(prefs *storage.UserPreferences) {
		g.username = prefs.Username
		g.mode = prefs.GameMode
		g.difficulty = ai.Difficulty(prefs.Difficulty)
		g.selector.SetDifficulty(g.difficulty)
		g.savePreferences()
	}, nil)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	selected, hasSelected := g.engine.Selected()
	var dests board.MoveSet
	if hasSelected {
		dests = g.engine.LegalMoves()[selected]
	}
	lastMove, hasLast := g.engine.LastMove()
	g.renderer.DrawHighlights(screen, selected, hasSelected, dests, lastMove, hasLast)

	b := g.engine.Board()
	g.renderer.DrawPieces(screen, &b)

	g.panel.Draw(screen)

	if g.engine.Phase() == game.GameOver {
		g.drawGameOverBanner(screen)
	}

	g.settingsModal.Draw(screen)
	g.welcomeScreen.Draw(screen)
}

// drawGameOverBanner dims the board and announces the winner.
func (g *Game) drawGameOverBanner(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(BoardSize), float32(BoardSize), bannerOverlay, false)

	msg := "Game over"
	if winner, ok := g.engine.Winner(); ok {
		msg = winner.String() + " wins!"
	}

	face := GetFaceWithSize(28)
	if face == nil {
		return
	}
	w, h := MeasureText(msg, face)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(BoardSize)/2-w/2, float64(BoardSize)/2-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, msg, face, op)
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
