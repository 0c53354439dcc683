package defs

import "fmt"

// Catalog is the read-only lookup of enemy and boss templates.
type Catalog struct {
	enemies    map[string]EnemyDefinition
	enemyOrder []string
	bosses     map[string]*BossDefinition
	bossOrder  []string
}

// NewCatalog indexes the definitions. Boss prerequisites must name bosses
// present in the same catalog.
func NewCatalog(enemies []EnemyDefinition, bosses []BossDefinition) (*Catalog, error) {
	c := &Catalog{
		enemies: make(map[string]EnemyDefinition, len(enemies)),
		bosses:  make(map[string]*BossDefinition, len(bosses)),
	}
	for _, def := range enemies {
		if _, dup := c.enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		c.enemies[def.ID] = def
		c.enemyOrder = append(c.enemyOrder, def.ID)
	}
	for i := range bosses {
		def := bosses[i]
		if _, dup := c.bosses[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate boss %q", ErrInvalidBossDefinition, def.ID)
		}
		c.bosses[def.ID] = &def
		c.bossOrder = append(c.bossOrder, def.ID)
	}
	for _, id := range c.bossOrder {
		for _, pre := range c.bosses[id].SpawnRequirements.PrerequisiteBosses {
			if _, ok := c.bosses[pre]; !ok {
				return nil, fmt.Errorf("%w: %s: unknown prerequisite %q", ErrInvalidBossDefinition, id, pre)
			}
		}
	}
	return c, nil
}

// Enemy looks up an enemy template by type id.
func (c *Catalog) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := c.enemies[id]
	return def, ok
}

// LookupEnemy is Enemy with an ErrUnknownEnemy error for a missing id.
func (c *Catalog) LookupEnemy(id string) (EnemyDefinition, error) {
	def, ok := c.enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return def, nil
}

// Boss looks up a boss template by id.
func (c *Catalog) Boss(id string) (*BossDefinition, bool) {
	def, ok := c.bosses[id]
	return def, ok
}

// IsBoss reports whether the id names a boss template.
func (c *Catalog) IsBoss(id string) bool {
	_, ok := c.bosses[id]
	return ok
}

// Bosses returns the boss templates in catalog order.
func (c *Catalog) Bosses() []*BossDefinition {
	out := make([]*BossDefinition, 0, len(c.bossOrder))
	for _, id := range c.bossOrder {
		out = append(out, c.bosses[id])
	}
	return out
}

// EnemyList returns copies of the enemy templates in catalog order.
func (c *Catalog) EnemyList() []EnemyDefinition {
	out := make([]EnemyDefinition, 0, len(c.enemyOrder))
	for _, id := range c.enemyOrder {
		out = append(out, c.enemies[id])
	}
	return out
}

// BossList returns copies of the boss templates in catalog order.
func (c *Catalog) BossList() []BossDefinition {
	out := make([]BossDefinition, 0, len(c.bossOrder))
	for _, id := range c.bossOrder {
		out = append(out, *c.bosses[id])
	}
	return out
}

// BossTypeForWave picks the boss whose bracket covers the wave. Past every
// bracket the last boss that has started (min_wave <= wave) is used.
func (c *Catalog) BossTypeForWave(wave int) string {
	fallback := ""
	for _, id := range c.bossOrder {
		req := c.bosses[id].SpawnRequirements
		if req.AllowsWave(wave) {
			return id
		}
		if wave >= req.MinWave {
			fallback = id
		}
	}
	if fallback == "" && len(c.bossOrder) > 0 {
		fallback = c.bossOrder[0]
	}
	return fallback
}
