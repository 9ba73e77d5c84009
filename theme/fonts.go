package theme

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
	"gioui.org/text"
)

// LoadBuiltin loads fonts from the provided dir and embedded font buffers,
// in addition to the Gio builtin Go font collection.
func LoadBuiltin(fontDir string, embeddedFonts [][]byte) []font.FontFace {
	var fonts []font.FontFace
	fonts = append(fonts, gofont.Collection()...)

	for _, data := range embeddedFonts {
		face, err := loadFont(data)
		if err != nil {
			log.Printf("loading embedded font failed: %v", err)
			continue
		}
		fonts = append(fonts, *face)
	}

	if fontDir == "" {
		return fonts
	}

	entries, err := os.ReadDir(fontDir)
	if err != nil {
		log.Printf("loading fonts from dir failed: %v", err)
		return fonts
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		if filepath.Ext(filename) != ".ttf" {
			continue
		}
		ttfData, err := os.ReadFile(filepath.Join(fontDir, filename))
		if err != nil {
			log.Printf("loading fonts from dir failed: %v", err)
			continue
		}

		face, err := loadFont(ttfData)
		if err != nil {
			log.Printf("parsing font %s failed: %v", filename, err)
			continue
		}
		fonts = append(fonts, *face)
	}

	return fonts
}

func loadFont(ttf []byte) (*font.FontFace, error) {
	faces, err := opentype.ParseCollection(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}

	return &text.FontFace{
		Font: faces[0].Font,
		Face: faces[0].Face,
	}, nil
}
