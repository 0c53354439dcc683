package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/enemies.json data/bosses.yaml
var defaultData embed.FS

var (
	ErrUnknownEnemy          = errors.New("unknown enemy definition")
	ErrInvalidBossDefinition = errors.New("invalid boss definition")
)

// LoadEnemyDefinitions reads the enemy configuration file.
func LoadEnemyDefinitions(path string) ([]EnemyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return ParseEnemyDefinitions(file)
}

// ParseEnemyDefinitions decodes a JSON array of enemy definitions.
func ParseEnemyDefinitions(data []byte) ([]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	for i, def := range enemyDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition %d has no id", i)
		}
		if def.Health <= 0 {
			return nil, fmt.Errorf("enemy %q: health must be positive", def.ID)
		}
	}
	return enemyDefs, nil
}

// LoadBossDefinitions reads the boss configuration file.
func LoadBossDefinitions(path string) ([]BossDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boss definitions file: %w", err)
	}
	return ParseBossDefinitions(file)
}

// ParseBossDefinitions decodes a YAML list of bosses and validates each one.
func ParseBossDefinitions(data []byte) ([]BossDefinition, error) {
	var bossDefs []BossDefinition
	if err := yaml.Unmarshal(data, &bossDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal boss definitions: %w", err)
	}
	for i := range bossDefs {
		if err := ValidateBoss(&bossDefs[i]); err != nil {
			return nil, err
		}
	}
	return bossDefs, nil
}

// ValidateBoss checks the data constraints the runtime relies on: phase
// thresholds in (0, 1] and strictly descending, chances inside [0, 1].
func ValidateBoss(def *BossDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidBossDefinition)
	}
	if def.BaseStats.Health <= 0 {
		return fmt.Errorf("%w: %s: health must be positive", ErrInvalidBossDefinition, def.ID)
	}
	req := def.SpawnRequirements
	if req.MinWave < 1 {
		return fmt.Errorf("%w: %s: min_wave must be >= 1", ErrInvalidBossDefinition, def.ID)
	}
	if req.MaxWave != 0 && req.MaxWave < req.MinWave {
		return fmt.Errorf("%w: %s: max_wave below min_wave", ErrInvalidBossDefinition, def.ID)
	}
	if req.SpawnChance < 0 || req.SpawnChance > 1 {
		return fmt.Errorf("%w: %s: spawn_chance outside [0,1]", ErrInvalidBossDefinition, def.ID)
	}
	if len(def.Phases) == 0 {
		return fmt.Errorf("%w: %s: at least one phase required", ErrInvalidBossDefinition, def.ID)
	}
	prev := 1.0 + 1e-9
	for i, p := range def.Phases {
		if p.HealthThreshold <= 0 || p.HealthThreshold > 1 {
			return fmt.Errorf("%w: %s: phase %d threshold %.2f outside (0,1]", ErrInvalidBossDefinition, def.ID, i+1, p.HealthThreshold)
		}
		if p.HealthThreshold >= prev {
			return fmt.Errorf("%w: %s: phase %d threshold %.2f is not below the previous one", ErrInvalidBossDefinition, def.ID, i+1, p.HealthThreshold)
		}
		prev = p.HealthThreshold
	}
	m := def.Mechanics
	if m.CanFlee && (m.FleeThreshold <= 0 || m.FleeThreshold >= 1) {
		return fmt.Errorf("%w: %s: flee_threshold outside (0,1)", ErrInvalidBossDefinition, def.ID)
	}
	for _, entry := range def.LootTable {
		if entry.DropChance < 0 || entry.DropChance > 1 {
			return fmt.Errorf("%w: %s: loot %s drop_chance outside [0,1]", ErrInvalidBossDefinition, def.ID, entry.Kind)
		}
	}
	return nil
}

// LoadDefaultCatalog builds the catalog from the embedded data files.
func LoadDefaultCatalog() (*Catalog, error) {
	enemyData, err := defaultData.ReadFile("data/enemies.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded enemies: %w", err)
	}
	bossData, err := defaultData.ReadFile("data/bosses.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded bosses: %w", err)
	}
	enemies, err := ParseEnemyDefinitions(enemyData)
	if err != nil {
		return nil, err
	}
	bosses, err := ParseBossDefinitions(bossData)
	if err != nil {
		return nil, err
	}
	return NewCatalog(enemies, bosses)
}

// LoadCatalog builds the catalog from files, falling back to the embedded
// data for any empty path.
func LoadCatalog(enemiesPath, bossesPath string) (*Catalog, error) {
	base, err := LoadDefaultCatalog()
	if err != nil {
		return nil, err
	}
	enemies := base.EnemyList()
	bosses := base.BossList()
	if enemiesPath != "" {
		if enemies, err = LoadEnemyDefinitions(enemiesPath); err != nil {
			return nil, err
		}
	}
	if bossesPath != "" {
		if bosses, err = LoadBossDefinitions(bossesPath); err != nil {
			return nil, err
		}
	}
	c, err := NewCatalog(enemies, bosses)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d enemy definitions, %d boss definitions", len(c.enemies), len(c.bossOrder))
	return c, nil
}
