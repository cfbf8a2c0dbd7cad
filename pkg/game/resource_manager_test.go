package game

import (
	"encoding/binary"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/shaperave/pkg/config"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(config.AudioSampleRate)
	os.Exit(m.Run())
}

// writeTestWAV wraps PCM data in a minimal RIFF/WAVE header.
func writeTestWAV(path string, pcm []byte, sampleRate int) error {
	header := make([]byte, 44)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], uint32(36+len(pcm)))
	copy(header[8:], "WAVE")
	copy(header[12:], "fmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:], 2) // stereo
	binary.LittleEndian.PutUint32(header[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(sampleRate*4))
	binary.LittleEndian.PutUint16(header[32:], 4)
	binary.LittleEndian.PutUint16(header[34:], 16)
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], uint32(len(pcm)))

	return os.WriteFile(path, append(header, pcm...), 0644)
}

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if rm.audioCache == nil {
		t.Error("audioCache is nil")
	}
	if rm.fontFaceCache == nil {
		t.Error("fontFaceCache is nil")
	}
	if rm.AudioContext() != testAudioContext {
		t.Error("audioContext not set correctly")
	}
}

// TestLoadAudio_FileNotFound tests audio loading with non-existent file.
func TestLoadAudio_FileNotFound(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if _, err := rm.LoadAudio("nonexistent.mp3"); err == nil {
		t.Error("Expected error for non-existent audio file, got nil")
	}
}

// TestLoadAudio_UnsupportedFormat tests audio loading with unsupported format.
func TestLoadAudio_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.flac")
	if err := os.WriteFile(path, []byte("dummy data"), 0644); err != nil {
		t.Fatalf("Failed to create dummy file: %v", err)
	}

	rm := NewResourceManager(testAudioContext)
	if _, err := rm.LoadAudio(path); err == nil {
		t.Error("Expected error for unsupported audio format, got nil")
	}
}

// TestLoadAudio_WAV loads a synthesized WAV file and checks caching.
func TestLoadAudio_WAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.wav")
	pcm := SynthesizeNoise(config.AudioSampleRate, 0.05, 10, rand.New(rand.NewSource(1)))
	if err := writeTestWAV(path, pcm, config.AudioSampleRate); err != nil {
		t.Fatalf("Failed to write wav: %v", err)
	}

	rm := NewResourceManager(testAudioContext)
	player, err := rm.LoadAudio(path)
	if err != nil {
		t.Fatalf("LoadAudio failed: %v", err)
	}
	again, err := rm.LoadAudio(path)
	if err != nil {
		t.Fatalf("second LoadAudio failed: %v", err)
	}
	if player != again {
		t.Error("LoadAudio should return the cached player")
	}
	if rm.GetAudioPlayer(path) != player {
		t.Error("GetAudioPlayer should return the loaded player")
	}
}

// TestLoadAudio_NoContext degrades without an audio context.
func TestLoadAudio_NoContext(t *testing.T) {
	rm := NewResourceManager(nil)
	if _, err := rm.LoadAudio("song.ogg"); err == nil {
		t.Error("expected error without audio context")
	}
	if _, err := rm.RegisterSound("noise", []byte{0, 0, 0, 0}); err == nil {
		t.Error("expected error without audio context")
	}
}

func TestRegisterSound(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	player, err := rm.RegisterSound("noise", make([]byte, 400))
	if err != nil {
		t.Fatalf("RegisterSound failed: %v", err)
	}
	if rm.GetAudioPlayer("noise") != player {
		t.Error("registered sound should be retrievable by id")
	}
}

// TestLoadDefaultFont tests the built-in font face cache.
func TestLoadDefaultFont(t *testing.T) {
	rm := NewResourceManager(nil)

	face, err := rm.LoadDefaultFont(14)
	if err != nil {
		t.Fatalf("LoadDefaultFont failed: %v", err)
	}
	if face.Size != 14 {
		t.Errorf("expected size 14, got %f", face.Size)
	}
	if rm.GetFont(DefaultFontKey, 14) != face {
		t.Error("GetFont should return the cached face")
	}

	bigger, err := rm.LoadDefaultFont(20)
	if err != nil {
		t.Fatalf("LoadDefaultFont(20) failed: %v", err)
	}
	if bigger.Source != face.Source {
		t.Error("faces of the same font should share one source")
	}
}

func TestLoadFont_FileNotFound(t *testing.T) {
	rm := NewResourceManager(nil)
	if _, err := rm.LoadFont("missing.ttf", 12); err == nil {
		t.Error("expected error for missing font file")
	}
}
