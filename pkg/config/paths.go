package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Directory holds the configuration files of the game.
var Directory = filepath.Join(xdg.ConfigHome, "othello")

// File is the default configuration file.
var File = filepath.Join(Directory, "config.yaml")
