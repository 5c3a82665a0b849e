// Package config provides YAML-based game configuration loading for the arcade.
// Every game ships an embedded default layout; users may override it with
// their own YAML file.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Rect is a rectangle in world units as written in YAML.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r Rect) validate(what string) error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: %s has negative size %vx%v", ErrInvalid, what, r.Width, r.Height)
	}
	return nil
}

// Point is a world position as written in YAML.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	World   PlatformerWorld   `yaml:"world"`
	Player  PlatformerPlayer  `yaml:"player"`
	Physics PlatformerPhysics `yaml:"physics"`
	Scoring PlatformerScoring `yaml:"scoring"`
	Level   PlatformerLevel   `yaml:"level"`
}

// PlatformerWorld defines the playfield bounds.
type PlatformerWorld struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FallLimit float64 `yaml:"fall_limit"` // Falling below this Y respawns the player
}

// PlatformerPlayer defines the player's size and spawn point.
type PlatformerPlayer struct {
	Spawn  Point   `yaml:"spawn"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PlatformerPhysics defines the per-tick physics constants.
type PlatformerPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`  // Negative = up
	CeilingBounce float64 `yaml:"ceiling_bounce"` // Multiplier applied to VY on a top hit
}

// PlatformerScoring defines points gained and lost.
type PlatformerScoring struct {
	Penalty    int `yaml:"penalty"`     // Lost on obstacle hit or fall, clamped at 0
	GoalReward int `yaml:"goal_reward"` // Gained on reaching the goal
}

// PlatformerLevel is the fixed entity layout. Order matters: platforms and
// obstacles are checked in the order listed.
type PlatformerLevel struct {
	Platforms []Rect `yaml:"platforms"`
	Obstacles []Rect `yaml:"obstacles"`
	Goal      Rect   `yaml:"goal"`
}

// Validate checks the config for values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive, got %vx%v", ErrInvalid, c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > c.World.Width {
		return fmt.Errorf("%w: player wider than world", ErrInvalid)
	}
	if c.Player.Spawn.X < 0 || c.Player.Spawn.X+c.Player.Width > c.World.Width {
		return fmt.Errorf("%w: spawn x %v outside world", ErrInvalid, c.Player.Spawn.X)
	}
	if c.Scoring.Penalty < 0 || c.Scoring.GoalReward < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalid)
	}
	for i, p := range c.Level.Platforms {
		if err := p.validate(fmt.Sprintf("platform %d", i)); err != nil {
			return err
		}
	}
	for i, o := range c.Level.Obstacles {
		if err := o.validate(fmt.Sprintf("obstacle %d", i)); err != nil {
			return err
		}
	}
	return c.Level.Goal.validate("goal")
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Field   PongField   `yaml:"field"`
	Paddles PongPaddles `yaml:"paddles"`
	Ball    PongBall    `yaml:"ball"`
}

// PongField defines the playfield size.
type PongField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Gap between the field edge and the paddle
	Speed  float64 `yaml:"speed"`
}

// PongBall defines ball size and motion.
type PongBall struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`        // Initial |vx| and |vy|
	AngleScale  float64 `yaml:"angle_scale"`  // vy = (hitFraction - 0.5) * AngleScale
	ServeSpread float64 `yaml:"serve_spread"` // Reset vy is uniform in [-spread, spread)
}

// Validate checks the config for values the simulation cannot run with.
func (c PongConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size must be positive, got %vx%v", ErrInvalid, c.Field.Width, c.Field.Height)
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		return fmt.Errorf("%w: paddle size must be positive, got %vx%v", ErrInvalid, c.Paddles.Width, c.Paddles.Height)
	}
	if c.Paddles.Height > c.Field.Height {
		return fmt.Errorf("%w: paddle taller than field", ErrInvalid)
	}
	if c.Paddles.Offset < 0 || 2*(c.Paddles.Offset+c.Paddles.Width) > c.Field.Width {
		return fmt.Errorf("%w: paddle offset %v does not fit the field", ErrInvalid, c.Paddles.Offset)
	}
	if c.Paddles.Speed < 0 {
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalid)
	}
	if c.Ball.Size <= 0 || c.Ball.Size > c.Field.Height {
		return fmt.Errorf("%w: ball size %v does not fit the field", ErrInvalid, c.Ball.Size)
	}
	if c.Ball.ServeSpread < 0 {
		return fmt.Errorf("%w: serve spread must not be negative", ErrInvalid)
	}
	return nil
}
