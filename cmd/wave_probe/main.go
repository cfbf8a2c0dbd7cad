// wave_probe 无窗口地运行一次传播波次并打印每批释放的圆形
//
// 用法:
//
//	go run ./cmd/wave_probe -seed 7 -count 20 -quantity 4 -origin 0
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/entities"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/systems"
	"github.com/gonewx/shaperave/pkg/types"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	seed     = flag.Int64("seed", 1, "布局随机种子")
	count    = flag.Int("count", 20, "圆形数量")
	quantity = flag.Int("quantity", 5, "每批释放数量")
	origin   = flag.Int("origin", 0, "起点圆形下标（创建顺序）")
	blend    = flag.String("blend", "Screen", "混合模式名称")
	maxTicks = flag.Int("ticks", 600, "最多运行的帧数")
)

const tick = 1.0 / 60

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	mode, err := types.ParseBlendMode(*blend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(2)
	}

	params := game.NewParameterStore()
	params.SetMaxCircles(*count)
	params.SetPropagationQuantity(*quantity)
	params.SetBlendMode(mode)

	em := ecs.NewEntityManager()
	scheduler := game.NewScheduler()
	circles := entities.CreateCircles(em, rand.New(rand.NewSource(*seed)), params)
	if *origin < 0 || *origin >= len(circles) {
		fmt.Fprintf(os.Stderr, "错误: origin 超出范围 [0, %d)\n", len(circles))
		os.Exit(2)
	}

	orbit := systems.NewOrbitSystem(em)
	actions := systems.NewActionSystem(em)
	propagation := systems.NewPropagationSystem(em, scheduler, params)
	unbind := systems.BindParameters(em, params, orbit)
	defer unbind()

	index := make(map[ecs.EntityID]int, len(circles))
	for i, id := range circles {
		index[id] = i
	}

	originID := circles[*origin]
	originPos, _ := ecs.GetComponent[*components.PositionComponent](em, originID)
	ox, oy := originPos.X, originPos.Y

	fmt.Printf("seed=%d circles=%d quantity=%d blend=%v origin=#%d (%.1f, %.1f)\n",
		*seed, len(circles), params.PropagationQuantity(), params.BlendMode(), *origin, ox, oy)

	frame := 0
	propagation.SetReleaseObserver(func(_ ecs.EntityID, batch int, targets []ecs.EntityID) {
		fmt.Printf("frame %3d  batch %2d:", frame, batch)
		for _, id := range targets {
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			fmt.Printf("  #%d(d=%.1f)", index[id], math.Hypot(pos.X-ox, pos.Y-oy))
		}
		fmt.Println()
	})

	propagation.Propagate(originID)
	for frame = 1; frame <= *maxTicks && scheduler.Pending() > 0; frame++ {
		scheduler.Update(tick)
		orbit.Update(tick)
		actions.Update(tick)
	}

	displaced := 0
	for _, id := range circles {
		if kb, ok := ecs.GetComponent[*components.KnockbackComponent](em, id); ok && kb.Displaced() {
			displaced++
		}
	}
	fmt.Printf("settled after %d frames, still displaced: %d\n", frame-1, displaced)
}
