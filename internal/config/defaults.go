package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPlatformerConfig returns the built-in platformer layout.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: PlatformerWorld{
			Width:     800,
			Height:    500,
			FallLimit: 500,
		},
		Player: PlatformerPlayer{
			Spawn:  Point{X: 50, Y: 300},
			Width:  40,
			Height: 40,
			Speed:  5,
		},
		Physics: PlatformerPhysics{
			Gravity:       0.5,
			JumpVelocity:  -12,
			CeilingBounce: -0.5,
		},
		Scoring: PlatformerScoring{
			Penalty:    10,
			GoalReward: 100,
		},
		Level: PlatformerLevel{
			Platforms: []Rect{
				{X: 0, Y: 450, Width: 800, Height: 50}, // Ground
				{X: 200, Y: 350, Width: 100, Height: 20},
				{X: 400, Y: 300, Width: 100, Height: 20},
				{X: 600, Y: 250, Width: 100, Height: 20},
				{X: 300, Y: 200, Width: 100, Height: 20},
			},
			Obstacles: []Rect{
				{X: 300, Y: 430, Width: 30, Height: 20},
				{X: 500, Y: 280, Width: 30, Height: 20},
				{X: 700, Y: 230, Width: 30, Height: 20},
			},
			Goal: Rect{X: 750, Y: 200, Width: 30, Height: 50},
		},
	}
}

// DefaultPongConfig returns the built-in Pong settings.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: PongField{
			Width:  800,
			Height: 400,
		},
		Paddles: PongPaddles{
			Width:  10,
			Height: 80,
			Offset: 20,
			Speed:  7,
		},
		Ball: PongBall{
			Size:        10,
			Speed:       5,
			AngleScale:  10,
			ServeSpread: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
