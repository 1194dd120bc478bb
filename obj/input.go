package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Intents is the plain per-step input snapshot the simulation consumes.
// Simulation code never touches ebiten directly, so tests build these by
// hand.
type Intents struct {
	// JumpQueued is the edge-triggered, accumulating jump request. Consuming
	// it clears the queue; presses never stack beyond one pending jump.
	JumpQueued bool
	// JumpPressed is true only on the frame a jump input went down. Orbs
	// require this or JumpHeld, not the stale queued request.
	JumpPressed bool
	// JumpHeld is the level signal: keyboard, pointer, touch or gamepad.
	JumpHeld bool
	// Restart is a one-shot restart request.
	Restart bool
	// Pause toggles the pause overlay.
	Pause bool
}

// Input adapts ebiten's keyboard/pointer/touch/gamepad state into Intents.
type Input struct {
	queuedJump  bool
	jumpPressed bool
	jumpHeld    bool
	restart     bool
	pause       bool

	touchIDs    []ebiten.TouchID
	allTouchIDs []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the devices once per frame and accumulates edge-triggered
// requests until they're consumed.
func (i *Input) Update() {
	pressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	held := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	if len(i.touchIDs) > 0 {
		pressed = true
	}
	i.allTouchIDs = ebiten.AppendTouchIDs(i.allTouchIDs[:0])
	if len(i.allTouchIDs) > 0 {
		held = true
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			pressed = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			held = true
		}
	}

	if pressed {
		i.queuedJump = true
	}
	i.jumpPressed = pressed
	i.jumpHeld = held

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		i.restart = true
	}
	i.pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Consume returns this step's intents and clears the one-shot requests. At
// most one queued jump is handed out per simulation step.
func (i *Input) Consume() Intents {
	out := Intents{
		JumpQueued:  i.queuedJump,
		JumpPressed: i.jumpPressed,
		JumpHeld:    i.jumpHeld,
		Restart:     i.restart,
		Pause:       i.pause,
	}
	i.queuedJump = false
	i.restart = false
	return out
}
