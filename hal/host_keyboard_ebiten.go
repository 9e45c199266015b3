//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeyCodes = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyDelete, KeyDelete},
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.inject(KeyEvent{Press: true, Rune: r})
	}
	for _, kc := range ebitenKeyCodes {
		if inpututil.IsKeyJustPressed(kc.key) {
			k.inject(KeyEvent{Code: kc.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(kc.key) {
			k.inject(KeyEvent{Code: kc.code})
		}
	}
}
