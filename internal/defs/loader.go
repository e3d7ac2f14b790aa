// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/log"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type enemyDefEntry struct {
	ID              string `json:"id" yaml:"id"`
	EnemyDefinition `json:",inline" yaml:",inline"`
}

type weaponDefEntry struct {
	ID               string `json:"id" yaml:"id"`
	WeaponDefinition `json:",inline" yaml:",inline"`
}

// LoadEnemyDefinitions переопределяет записи EnemyLibrary из файла
// (JSON или YAML по расширению). Неизвестные id — ошибка.
func LoadEnemyDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var entries []enemyDefEntry
	if err := unmarshalByExt(path, raw, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, e := range entries {
		variant, err := ParseBehaviorVariant(e.ID)
		if err != nil {
			return err
		}
		EnemyLibrary[variant] = e.EnemyDefinition
	}

	log.L().Info("loaded enemy definitions", zap.Int("count", len(entries)), zap.String("path", path))
	return nil
}

// LoadWeaponDefinitions переопределяет записи WeaponLibrary из файла.
func LoadWeaponDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var entries []weaponDefEntry
	if err := unmarshalByExt(path, raw, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	for _, e := range entries {
		asset, err := ParseWeaponAsset(e.ID)
		if err != nil {
			return err
		}
		WeaponLibrary[asset] = e.WeaponDefinition
	}

	log.L().Info("loaded weapon definitions", zap.Int("count", len(entries)), zap.String("path", path))
	return nil
}

// LoadSpawnTable переопределяет таблицу весов спавна: файл содержит
// ровно 12 id вариантов.
func LoadSpawnTable(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read spawn table file: %w", err)
	}

	var ids []string
	if err := unmarshalByExt(path, raw, &ids); err != nil {
		return fmt.Errorf("failed to unmarshal spawn table: %w", err)
	}
	if len(ids) != len(SpawnWeights) {
		return fmt.Errorf("spawn table must have %d entries, got %d", len(SpawnWeights), len(ids))
	}

	var table [12]component.BehaviorVariant
	for i, id := range ids {
		variant, err := ParseBehaviorVariant(id)
		if err != nil {
			return err
		}
		table[i] = variant
	}
	SpawnWeights = table

	log.L().Info("loaded spawn table", zap.String("path", path))
	return nil
}

// ParseBehaviorVariant — обратное отображение id в вариант поведения.
func ParseBehaviorVariant(id string) (component.BehaviorVariant, error) {
	switch strings.ToLower(id) {
	case "walker":
		return component.BehaviorWalker, nil
	case "jumper":
		return component.BehaviorJumper, nil
	case "shooter":
		return component.BehaviorShooter, nil
	case "burst_shooter":
		return component.BehaviorBurstShooter, nil
	}
	return 0, fmt.Errorf("unknown behavior variant: %q", id)
}

// ParseWeaponAsset — обратное отображение id в вид оружия.
func ParseWeaponAsset(id string) (component.WeaponAsset, error) {
	switch strings.ToLower(id) {
	case "base":
		return component.WeaponBase, nil
	case "rocket":
		return component.WeaponRocket, nil
	case "sniper":
		return component.WeaponSniper, nil
	case "shotgun":
		return component.WeaponShotgun, nil
	case "rock":
		return component.WeaponRock, nil
	case "airplane":
		return component.WeaponAirplane, nil
	}
	return 0, fmt.Errorf("unknown weapon asset: %q", id)
}

func unmarshalByExt(path string, raw []byte, v interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, v)
	default:
		return json.Unmarshal(raw, v)
	}
}
