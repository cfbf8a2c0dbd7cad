package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontKey is the cache key of the built-in Go Regular font.
const DefaultFontKey = "builtin:goregular"

// ResourceManager is responsible for centralized management of audio and font resources.
// It provides loading and caching mechanisms so each resource is decoded only once.
//
// The ResourceManager implements the following key features:
// - Audio loading and caching (MP3/OGG/WAV format support)
// - Registration of audio generated in memory (synthesized sound effects)
// - Font face creation from files or the built-in Go Regular font
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	player, err := rm.LoadAudio("music/loop.ogg")
//	if err != nil {
//	    log.Printf("Failed to load audio: %v", err)
//	}
type ResourceManager struct {
	audioCache    map[string]*audio.Player          // Cache for loaded audio players: path or ID -> Player
	audioContext  *audio.Context                    // Global audio context, may be nil when audio is unavailable
	fontSources   map[string]*text.GoTextFaceSource // Cache for parsed font sources: path -> source
	fontFaceCache map[string]*text.GoTextFace       // Cache for text faces: path:size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter may be nil; audio loading then returns an error
// and callers degrade to silent mode.
//
// Example:
//
//	audioContext := audio.NewContext(48000)
//	resourceManager := NewResourceManager(audioContext)
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontSources:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// AudioContext returns the audio context the manager decodes into.
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// decodedStream is the common shape of the ebiten audio decoders' streams.
type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio reads a file into memory and decodes it by extension,
// resampling to the context sample rate.
func (rm *ResourceManager) decodeAudio(path string) (decodedStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available")
	}

	// Read the entire file into memory to avoid file handle issues
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// LoadAudio loads a music file wrapped in an infinite loop and caches the player.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be read, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	// Wrap the stream in an infinite loop for background music
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// RegisterSound creates a one-shot player from raw PCM data and caches it under id.
// The data must be 16-bit little-endian stereo at the context sample rate.
//
// Returns:
//   - The player registered under id.
//   - An error if the audio context is unavailable.
func (rm *ResourceManager) RegisterSound(id string, pcm []byte) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available")
	}
	if old, exists := rm.audioCache[id]; exists {
		old.Close()
	}
	player := rm.audioContext.NewPlayerFromBytes(pcm)
	rm.audioCache[id] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
// If the audio has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates a text face with the given size.
// The font face is cached for future use with a cache key combining path and size.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be opened or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSources[path]
	if !exists {
		var fontData []byte
		var err error
		if path == DefaultFontKey {
			fontData = goregular.TTF
		} else {
			fontData, err = os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
			}
		}

		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		rm.fontSources[path] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// LoadDefaultFont returns a face of the built-in Go Regular font.
func (rm *ResourceManager) LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	return rm.LoadFont(DefaultFontKey, size)
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return rm.fontFaceCache[cacheKey]
}
