package defs

import (
	"errors"
	"testing"
)

func bossDef(id string, minWave, maxWave int, pre ...string) BossDefinition {
	return BossDefinition{
		ID:                id,
		BaseStats:         BossStats{Health: 100},
		SpawnRequirements: SpawnRequirements{MinWave: minWave, MaxWave: maxWave, SpawnChance: 1, PrerequisiteBosses: pre},
		Phases:            []Phase{{Phase: 1, HealthThreshold: 1}},
	}
}

func TestNewCatalogRejectsUnknownPrerequisite(t *testing.T) {
	_, err := NewCatalog(nil, []BossDefinition{bossDef("a", 1, 0, "ghost_boss")})
	if !errors.Is(err, ErrInvalidBossDefinition) {
		t.Fatalf("err = %v, want ErrInvalidBossDefinition", err)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	if _, err := NewCatalog([]EnemyDefinition{{ID: "x", Health: 1}, {ID: "x", Health: 1}}, nil); err == nil {
		t.Error("duplicate enemy accepted")
	}
	if _, err := NewCatalog(nil, []BossDefinition{bossDef("a", 1, 0), bossDef("a", 1, 0)}); err == nil {
		t.Error("duplicate boss accepted")
	}
}

func TestLookupEnemy(t *testing.T) {
	c, err := NewCatalog([]EnemyDefinition{{ID: "x", Health: 1}}, nil)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if def, err := c.LookupEnemy("x"); err != nil || def.ID != "x" {
		t.Errorf("LookupEnemy(x) = %+v, %v", def, err)
	}
	if _, err := c.LookupEnemy("dragon"); !errors.Is(err, ErrUnknownEnemy) {
		t.Errorf("err = %v, want ErrUnknownEnemy", err)
	}
}

func TestBossTypeForWave(t *testing.T) {
	c, err := NewCatalog(nil, []BossDefinition{
		bossDef("first", 10, 29),
		bossDef("second", 30, 59, "first"),
		bossDef("third", 60, 0, "second"),
	})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		wave int
		want string
	}{
		{5, "first"},
		{10, "first"},
		{29, "first"},
		{30, "second"},
		{59, "second"},
		{60, "third"},
		{200, "third"},
	}
	for _, tc := range cases {
		if got := c.BossTypeForWave(tc.wave); got != tc.want {
			t.Errorf("BossTypeForWave(%d) = %q, want %q", tc.wave, got, tc.want)
		}
	}
}

func TestBossTypeForWaveGap(t *testing.T) {
	c, err := NewCatalog(nil, []BossDefinition{bossDef("early", 1, 20), bossDef("late", 50, 60)})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.BossTypeForWave(30); got != "early" {
		t.Errorf("gap wave = %q, want early", got)
	}
	if got := c.BossTypeForWave(80); got != "late" {
		t.Errorf("past brackets = %q, want late", got)
	}
}

func TestTierForWave(t *testing.T) {
	if w := TierForWave(1); len(w) != 3 {
		t.Errorf("wave 1 tier size = %d, want 3", len(w))
	}
	if w := TierForWave(26); w[len(w)-1].Type != EnemyElite {
		t.Errorf("wave 26 tier = %v", w)
	}
	if w := TierForWave(500); w[len(w)-1].Type != EnemySwarm {
		t.Errorf("wave 500 tier = %v", w)
	}
}

func TestParseNames(t *testing.T) {
	if a, ok := ParseAbility("ground_slam"); !ok || a != AbilityGroundSlam {
		t.Errorf("ParseAbility(ground_slam) = %v, %v", a, ok)
	}
	if _, ok := ParseAbility("teleport"); ok {
		t.Error("unknown ability parsed")
	}
	if AbilityID(42).String() != "unknown" {
		t.Error("out-of-range ability name")
	}
	if m, ok := ParseTargetingMode("threat"); !ok || m != ModeThreat {
		t.Errorf("ParseTargetingMode(threat) = %v, %v", m, ok)
	}
	if ModeLastSeen.String() != "last_seen" {
		t.Errorf("ModeLastSeen = %q", ModeLastSeen.String())
	}
}
