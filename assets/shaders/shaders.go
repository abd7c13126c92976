// Package shaders holds the client's Kage shaders.
package shaders

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.kage
var shaderFS embed.FS

var (
	// BodyShader fills a controlled body and outlines its skin band
	BodyShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	bodySrc, err := shaderFS.ReadFile("body.kage")
	if err != nil {
		return err
	}
	BodyShader, err = ebiten.NewShader(bodySrc)
	if err != nil {
		return err
	}

	return nil
}
