// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the game settings from a yaml file stored in the
// user's configuration directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/othello/pkg/board"
	"laptudirm.com/x/othello/pkg/search"
)

// Controller says whether a side is played by a human or the computer.
type Controller string

const (
	Human    Controller = "human"
	Computer Controller = "computer"
)

// ParseController parses the name of a Controller.
func ParseController(name string) (Controller, error) {
	switch controller := Controller(name); controller {
	case Human, Computer:
		return controller, nil
	default:
		return "", fmt.Errorf("config: invalid controller %q (want %s or %s)", name, Human, Computer)
	}
}

// IsHuman reports whether the controller is a human.
func (controller Controller) IsHuman() bool {
	return controller == Human
}

// Config holds the settings of the play and arena commands.
type Config struct {
	// Width and height of the board.
	Size int `yaml:"size"`

	// Search depth of computer players.
	Depth int `yaml:"depth"`

	Black Controller `yaml:"black"`
	White Controller `yaml:"white"`

	Arena Arena `yaml:"arena"`
}

// Arena configures series of games between two computer players.
type Arena struct {
	Games       int   `yaml:"games"`
	Concurrency int   `yaml:"concurrency"`
	Depths      []int `yaml:"depths"`

	// Number of random placements played before the computers take over,
	// shared by both games of a pair.
	Openings int   `yaml:"openings"`
	Seed     int64 `yaml:"seed"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Size:  8,
		Depth: search.DefaultDepth,
		Black: Human,
		White: Computer,
		Arena: Arena{
			Games:       20,
			Concurrency: 4,
			Depths:      []int{search.DefaultDepth, search.DefaultDepth - 1},
			Openings:    4,
			Seed:        1,
		},
	}
}

// Load reads the configuration stored at path. Values missing from the
// file keep their defaults, and a missing file yields Default.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", path).Debug("no config file, using defaults")
		return config, nil
	case err != nil:
		return Config{}, pkgerrors.Wrap(err, "config: read")
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, pkgerrors.Wrapf(err, "config: parse %s", path)
	}

	logrus.WithField("path", path).Debug("loaded config file")
	return config, config.Validate()
}

// Marshal returns the yaml representation of the configuration.
func (config Config) Marshal() ([]byte, error) {
	return yaml.Marshal(config)
}

// Validate reports every invalid value of the configuration.
func (config Config) Validate() error {
	var result *multierror.Error

	if config.Size <= 0 || config.Size%2 != 0 {
		result = multierror.Append(result, fmt.Errorf("size: %w: %d", board.ErrInvalidSize, config.Size))
	}

	if config.Depth < 0 {
		result = multierror.Append(result, fmt.Errorf("depth: negative depth %d", config.Depth))
	}

	if _, err := ParseController(string(config.Black)); err != nil {
		result = multierror.Append(result, fmt.Errorf("black: %w", err))
	}

	if _, err := ParseController(string(config.White)); err != nil {
		result = multierror.Append(result, fmt.Errorf("white: %w", err))
	}

	if err := config.Arena.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Validate reports every invalid value of the arena configuration.
func (arena Arena) Validate() error {
	var result *multierror.Error

	if arena.Games < 1 {
		result = multierror.Append(result, fmt.Errorf("arena.games: need at least one game, got %d", arena.Games))
	}

	if arena.Concurrency < 1 {
		result = multierror.Append(result, fmt.Errorf("arena.concurrency: need at least one thread, got %d", arena.Concurrency))
	}

	if len(arena.Depths) != 2 {
		result = multierror.Append(result, fmt.Errorf("arena.depths: need two depths, got %d", len(arena.Depths)))
	} else {
		for i, depth := range arena.Depths {
			if depth < 0 {
				result = multierror.Append(result, fmt.Errorf("arena.depths[%d]: negative depth %d", i, depth))
			}
		}
	}

	if arena.Openings < 0 {
		result = multierror.Append(result, fmt.Errorf("arena.openings: negative count %d", arena.Openings))
	}

	return result.ErrorOrNil()
}
