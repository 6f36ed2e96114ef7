package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display    DisplayConfig   `json:"display"`
	StartScene string          `json:"startScene"`
	Bindings   []BindingConfig `json:"bindings"`
	Tetromino  TetrominoConfig `json:"tetromino"`
	Ball       BallConfig      `json:"ball"`
	Player     PlayerConfig    `json:"player"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Background   string `json:"background"` // #RRGGBB
}

// BindingConfig maps an ebiten key name (e.g. "Digit1") to a scene
type BindingConfig struct {
	Key   string `json:"key"`
	Scene string `json:"scene"`
}

type PositionConfig struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type MovementConfig struct {
	Fall       string `json:"fall"`       // "tick" or "accumulated"
	Horizontal string `json:"horizontal"` // "left-first", "right-first" or "cancel"
}

type TetrominoConfig struct {
	Texture      string           `json:"texture"`
	Speed        float32          `json:"speed"`
	StepInterval float32          `json:"stepInterval"`
	FrameWidth   int              `json:"frameWidth"`
	FrameHeight  int              `json:"frameHeight"`
	Frame        int              `json:"frame"`
	Spawn        []PositionConfig `json:"spawn"`
	Movement     MovementConfig   `json:"movement"`
}

type BallConfig struct {
	Texture string         `json:"texture"`
	Start   PositionConfig `json:"start"`
	Speed   float32        `json:"speed"`
}

type PlayerConfig struct {
	Texture string         `json:"texture"`
	Start   PositionConfig `json:"start"`
	Speed   float32        `json:"speed"`
	Scale   float32        `json:"scale"`
}
