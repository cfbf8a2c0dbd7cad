package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

// MusicPicker 背景音乐文件选择器
//
// 系统文件对话框会阻塞调用线程，因此对话框在独立 goroutine 中打开，
// 结果通过 channel 交回游戏循环，由场景每帧 Poll 取走。
// 同一时间只允许一个对话框。
type MusicPicker struct {
	selectFile func() (string, error)
	results    chan string
	busy       chan struct{}
}

// NewMusicPicker 创建使用系统文件对话框的选择器
func NewMusicPicker() *MusicPicker {
	return NewMusicPickerWithDialog(selectAudioFile)
}

// NewMusicPickerWithDialog 创建使用自定义对话框函数的选择器（用于测试）
func NewMusicPickerWithDialog(selectFile func() (string, error)) *MusicPicker {
	return &MusicPicker{
		selectFile: selectFile,
		results:    make(chan string, 1),
		busy:       make(chan struct{}, 1),
	}
}

// Open 打开文件对话框
//
// 返回:
//   - bool: 已有对话框打开时返回 false
func (p *MusicPicker) Open() bool {
	select {
	case p.busy <- struct{}{}:
	default:
		return false
	}

	go func() {
		defer func() { <-p.busy }()

		path, err := p.selectFile()
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				log.Printf("[MusicPicker] Warning: File dialog failed: %v", err)
			}
			return
		}
		log.Printf("[MusicPicker] Selected: %s", path)
		p.results <- path
	}()
	return true
}

// Poll 取走已选择的文件（非阻塞）
func (p *MusicPicker) Poll() (string, bool) {
	select {
	case path := <-p.results:
		return path, true
	default:
		return "", false
	}
}

func selectAudioFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Choose Background Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.mp3", "*.ogg", "*.wav"},
		}},
	)
}
