package menu

import (
	"image/color"
	"testing"

	"chosenoffset.com/gridshot/internal/render"
)

type fakeInput struct {
	x, y    int
	pressed bool
}

func (f *fakeInput) IsKeyPressed(render.Key) bool { return false }
func (f *fakeInput) IsKeyJustPressed(render.Key) bool { return false }
func (f *fakeInput) GetCursorPosition() (int, int) { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool { return f.pressed }
func (f *fakeInput) IsMouseButtonJustPressed(render.MouseButton) bool { return f.pressed }
func (f *fakeInput) IsCloseRequested() bool { return false }

type textCall struct {
	text string
	x, y int
}

type fakeRenderer struct {
	texts []textCall
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, textCall{text: text, x: x, y: y})
}

type fakeImage struct {
	w, h  int
	draws int
}

func (f *fakeImage) Size() (int, int) { return f.w, f.h }
func (f *fakeImage) Fill(color.Color) {}
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) { f.draws++ }

type fakeGeoM struct{}

func (fakeGeoM) Translate(float64, float64) {}
func (fakeGeoM) Scale(float64, float64) {}

func init() {
	render.NewGeoM = func() render.GeoM { return fakeGeoM{} }
}

func newTestMenu(input *fakeInput, r *fakeRenderer) *MainMenu {
	return NewMainMenu(r, input, &fakeImage{w: 10, h: 10}, Options{StartLabel: "Start game", ExitLabel: "Exit", FontScale: 1}, 1440, 810)
}

func TestHitTest(t *testing.T) {
	m := newTestMenu(&fakeInput{}, &fakeRenderer{})

	// Centre is (720, 405): start box x 620..820, y 355..405; exit box y 415..465
	tests := []struct {
		name string
		x, y int
		want Action
	}{
		{"start centre", 720, 380, ActionStart},
		{"start inner corner", 621, 356, ActionStart},
		{"start left edge", 620, 380, ActionNone},
		{"start bottom edge", 720, 405, ActionNone},
		{"exit centre", 720, 440, ActionQuit},
		{"exit right edge", 820, 440, ActionNone},
		{"exit bottom inner", 819, 464, ActionQuit},
		{"gap between", 720, 410, ActionNone},
		{"far away", 10, 10, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestUpdateReactsOnlyToNewClicks(t *testing.T) {
	input := &fakeInput{x: 720, y: 380}
	m := newTestMenu(input, &fakeRenderer{})

	if got := m.Update(); got != ActionNone {
		t.Errorf("Expected no action without a click, got %v", got)
	}

	input.pressed = true
	if got := m.Update(); got != ActionStart {
		t.Errorf("Expected ActionStart on click, got %v", got)
	}

	// Holding the button does not repeat the action
	if got := m.Update(); got != ActionNone {
		t.Errorf("Expected no action while held, got %v", got)
	}

	input.pressed = false
	m.Update()
	input.x, input.y = 720, 440
	input.pressed = true
	if got := m.Update(); got != ActionQuit {
		t.Errorf("Expected ActionQuit on exit click, got %v", got)
	}
}

func TestClickOutsideRegionsDoesNothing(t *testing.T) {
	input := &fakeInput{x: 100, y: 100, pressed: true}
	m := newTestMenu(input, &fakeRenderer{})

	if got := m.Update(); got != ActionNone {
		t.Errorf("Expected no action, got %v", got)
	}
}

func TestDrawPlacesLabels(t *testing.T) {
	r := &fakeRenderer{}
	m := newTestMenu(&fakeInput{}, r)
	screen := &fakeImage{w: 1440, h: 810}

	m.Draw(screen)

	if screen.draws != 1 {
		t.Errorf("Expected background drawn once, got %d", screen.draws)
	}
	if len(r.texts) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(r.texts))
	}
	if r.texts[0] != (textCall{"Start game", 620, 355}) {
		t.Errorf("Unexpected start label: %+v", r.texts[0])
	}
	if r.texts[1] != (textCall{"Exit", 620, 415}) {
		t.Errorf("Unexpected exit label: %+v", r.texts[1])
	}
}

func TestSetSizeMovesRegions(t *testing.T) {
	m := newTestMenu(&fakeInput{}, &fakeRenderer{})
	m.SetSize(800, 600)

	// Centre is now (400, 300)
	if got := m.HitTest(400, 280); got != ActionStart {
		t.Errorf("Expected ActionStart after resize, got %v", got)
	}
}

func TestGameStateString(t *testing.T) {
	if StateMainMenu.String() != "MENU" || StatePlaying.String() != "PLAYING" || StateQuit.String() != "QUIT" {
		t.Error("Unexpected state names")
	}
}
