// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/log"
	"go-arena-shooter/internal/state"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		dev        = flag.Bool("dev", false, "человекочитаемые логи")
		enemyDefs  = flag.String("enemies", "", "файл определений врагов (json/yaml)")
		weaponDefs = flag.String("weapons", "", "файл определений оружия (json/yaml)")
		spawnTable = flag.String("spawn-table", "", "файл таблицы весов спавна (json/yaml)")
	)
	flag.Parse()

	logger, err := log.Init(*dev)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *enemyDefs != "" {
		if err := defs.LoadEnemyDefinitions(*enemyDefs); err != nil {
			logger.Fatal("enemy definitions", zap.Error(err))
		}
	}
	if *weaponDefs != "" {
		if err := defs.LoadWeaponDefinitions(*weaponDefs); err != nil {
			logger.Fatal("weapon definitions", zap.Error(err))
		}
	}
	if *spawnTable != "" {
		if err := defs.LoadSpawnTable(*spawnTable); err != nil {
			logger.Fatal("spawn table", zap.Error(err))
		}
	}

	go func() {
		logger.Info("pprof", zap.Error(http.ListenAndServe("localhost:6060", nil)))
	}()

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Shooter")
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
