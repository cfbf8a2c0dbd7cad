package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/shaperave/pkg/app"
	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "场景配置文件路径（默认使用内置的 data/scene.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置文件或当前时间）")
	count      = flag.Int("count", 0, "圆形数量（0 表示使用配置文件）")
	music      = flag.String("music", "", "背景音乐文件（mp3/ogg/wav）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Count:      *count,
		Music:      *music,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.SceneWidth, config.SceneHeight)
	ebiten.SetWindowTitle("Shape Rave")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
