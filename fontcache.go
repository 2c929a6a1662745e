package calgrid

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// measureRefSize is the face size used for measurement. Widths are scaled
// to the requested size afterwards, so sub-point sizes (the goal calendar
// labels are measured at 0.05 units) keep full precision instead of being
// quantized by the face's fixed-point metrics.
const measureRefSize = 100.0

// maxFontScanDepth limits recursive directory traversal when scanning for fonts.
const maxFontScanDepth = 3

// maxFontFileSize limits the size of individual font files loaded into memory.
const maxFontFileSize = 20 << 20 // 20 MB

// fontKey uniquely identifies a font face by name, size and weight.
type fontKey struct {
	name string
	size float64
	bold bool
}

// FontCache manages TrueType/OpenType font loading and face caching for the
// raster and SVG sinks. It searches system font directories and
// user-specified directories for .ttf and .otf files, then caches parsed
// fonts and rendered faces.
type FontCache struct {
	mu           sync.RWMutex
	dirs         []string
	fonts        map[string]*opentype.Font // lowercase font name -> parsed font
	faces        map[fontKey]font.Face     // cached render faces (HintingFull)
	measureFaces map[fontKey]font.Face     // cached measure faces (HintingNone)
	scanned      bool
}

// NewFontCache creates a FontCache that searches the given directories plus
// the OS default font directories.
func NewFontCache(extraDirs ...string) *FontCache {
	return &FontCache{
		dirs:         append(systemFontDirs(), extraDirs...),
		fonts:        make(map[string]*opentype.Font),
		faces:        make(map[fontKey]font.Face),
		measureFaces: make(map[fontKey]font.Face),
	}
}

// GetFace returns a rendering font.Face for the given font properties, or
// nil if no matching font file is known.
func (fc *FontCache) GetFace(name string, sizePt float64, bold bool) font.Face {
	fc.ensureScanned()

	key := fontKey{name: strings.ToLower(name), size: sizePt, bold: bold}

	fc.mu.RLock()
	if face, ok := fc.faces[key]; ok {
		fc.mu.RUnlock()
		return face
	}
	fc.mu.RUnlock()

	f := fc.findFont(name, bold)
	if f == nil {
		return nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}

	fc.mu.Lock()
	fc.faces[key] = face
	fc.mu.Unlock()
	return face
}

// Measure returns the extent of text at the given font size, in the same
// units the size is given in. Glyph advances come from an unhinted face at
// measureRefSize and are scaled down, so tiny sizes stay precise. ok is
// false when no matching font file is available.
func (fc *FontCache) Measure(name string, size float64, text string) (w, h float64, ok bool) {
	face := fc.measureFace(name)
	if face == nil {
		return 0, 0, false
	}
	scale := size / measureRefSize
	w = float64(font.MeasureString(face, text).Round()) * scale
	h = float64(face.Metrics().CapHeight.Round()) * scale
	return w, h, true
}

func (fc *FontCache) measureFace(name string) font.Face {
	fc.ensureScanned()

	key := fontKey{name: strings.ToLower(name), size: measureRefSize}

	fc.mu.RLock()
	if face, ok := fc.measureFaces[key]; ok {
		fc.mu.RUnlock()
		return face
	}
	fc.mu.RUnlock()

	f := fc.findFont(name, false)
	if f == nil {
		return nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    measureRefSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}

	fc.mu.Lock()
	fc.measureFaces[key] = face
	fc.mu.Unlock()
	return face
}

// findFont looks up a parsed font by name, trying weight-specific variants
// first: Windows font files use names like "arialbd" for Arial Bold.
func (fc *FontCache) findFont(name string, bold bool) *opentype.Font {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	lower := strings.ToLower(name)
	if bold {
		for _, suffix := range []string{" bold", "bd", "b"} {
			if f, ok := fc.fonts[lower+suffix]; ok {
				return f
			}
		}
	}
	if f, ok := fc.fonts[lower]; ok {
		return f
	}
	return nil
}

// LoadFont loads a TrueType/OpenType font file and registers it under the
// given name. Returns an error if the file exceeds maxFontFileSize.
func (fc *FontCache) LoadFont(name string, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxFontFileSize {
		return fmt.Errorf("font file too large: %d bytes (max %d)", info.Size(), maxFontFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return fc.LoadFontData(name, data)
}

// LoadFontData registers a TrueType/OpenType font from raw bytes.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return err
	}
	fc.mu.Lock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerByFamilyName(f)
	fc.mu.Unlock()
	return nil
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true

	for _, dir := range fc.dirs {
		fc.scanDir(dir, 0)
	}
}

func (fc *FontCache) scanDir(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			fc.scanDir(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		fc.fonts[strings.TrimSuffix(lower, filepath.Ext(lower))] = f
		fc.registerByFamilyName(f)
	}
}

// registerByFamilyName extracts the family name from the font's name table
// and registers the font under it as well.
func (fc *FontCache) registerByFamilyName(f *opentype.Font) {
	if familyName, err := f.Name(nil, sfnt.NameIDFamily); err == nil && familyName != "" {
		fc.fonts[strings.ToLower(familyName)] = f
	}
	if fullName, err := f.Name(nil, sfnt.NameIDFull); err == nil && fullName != "" {
		fc.fonts[strings.ToLower(fullName)] = f
	}
}

// systemFontDirs returns OS-specific font directories.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		dirs := []string{filepath.Join(windir, "Fonts")}
		if localAppData != "" {
			dirs = append(dirs, filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		home, _ := os.UserHomeDir()
		dirs := []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default: // linux, freebsd, etc.
		home, _ := os.UserHomeDir()
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"))
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}
