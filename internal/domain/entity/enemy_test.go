package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evince05/EternalCombat/internal/domain/anim"
)

func TestEnemy_Stats(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	sheets := testSheets()

	tests := []struct {
		name   string
		enemy  *Enemy
		kind   Kind
		health int
		damage int
		score  int
	}{
		{"skeleton", NewSkeleton(0, 0, p, 0, sheets, DefaultSkeletonStats()), KindSkeleton, 100, 10, 10},
		{"archer", NewArcher(0, 0, p, 0, sheets, DefaultArcherStats(), DefaultArrowStats()), KindArcher, 150, 10, 25},
		{"knight", NewKnight(0, 0, p, 0, sheets, DefaultKnightStats()), KindKnight, 250, 32, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.enemy.Kind())
			assert.True(t, tt.enemy.Kind().IsEnemy())
			assert.Equal(t, tt.health, tt.enemy.Vitals().Health)
			assert.Equal(t, tt.damage, tt.enemy.Stats().Damage)
			assert.Equal(t, tt.score, tt.enemy.Stats().BaseScore)
			assert.Equal(t, 64, tt.enemy.Body().W)
		})
	}
}

func TestEnemy_Chase(t *testing.T) {
	tests := []struct {
		name   string
		tx, ty int
		wx, wy int
		facing anim.Direction
	}{
		{"same row moves along x", 300, 100, 101, 100, anim.Right},
		{"same column moves along y", 100, 20, 100, 99, anim.Up},
		{"larger x gap closes y first", 300, 140, 100, 101, anim.Down},
		{"larger y gap closes x first", 40, 300, 99, 100, anim.Left},
		{"tie moves along x", 150, 150, 101, 100, anim.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeEnv()
			p := newTestPlayer(f)
			p.Body().X, p.Body().Y = tt.tx, tt.ty

			s := NewSkeleton(100, 100, p, 0, testSheets(), DefaultSkeletonStats())
			s.Update(f, tick)

			assert.Equal(t, tt.wx, s.Body().X)
			assert.Equal(t, tt.wy, s.Body().Y)
			assert.Equal(t, tt.facing, s.Facing())
		})
	}
}

func TestSkeleton_MeleeRespectsHitCooldown(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	s := NewSkeleton(600, 600, p, 0, testSheets(), DefaultSkeletonStats())

	// A blow landed at t=0.
	p.TakeHit(s.Stats().Damage, 0)
	require.Equal(t, 90, p.Vitals().Health)

	s.Update(f, 300*time.Millisecond)
	assert.False(t, s.Attacking(), "cooldown still running")
	assert.Equal(t, 90, p.Vitals().Health)

	now := 600 * time.Millisecond
	s.Update(f, now)
	require.True(t, s.Attacking())
	assert.Contains(t, f.cues, CueSword)

	runUntil(f, s, now, 300, func() bool { return p.Vitals().Health < 90 })
	assert.Equal(t, 80, p.Vitals().Health)
	assert.False(t, s.Attacking(), "attack ends after the blow")
}

func TestSkeleton_StrikesOncePerSwing(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	s := NewSkeleton(610, 590, p, 0, testSheets(), DefaultSkeletonStats())

	now := tick
	s.Update(f, now)
	require.True(t, s.Attacking())

	runUntil(f, s, now, 120, func() bool { return false })
	// 2s of swinging with a 0.5s cooldown gives at most 4 blows.
	hits := (100 - p.Vitals().Health) / 10
	assert.GreaterOrEqual(t, hits, 1)
	assert.LessOrEqual(t, hits, 4)
}

func TestSkeleton_LeavesAttackWhenTargetMoves(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	s := NewSkeleton(600, 600, p, 0, testSheets(), DefaultSkeletonStats())

	s.Update(f, tick)
	require.True(t, s.Attacking())

	p.Body().X = 900
	s.Update(f, 2*tick)
	assert.False(t, s.Attacking())
	assert.Equal(t, 601, s.Body().X)
}

func TestArcher_ShootsWhenAligned(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	a := NewArcher(600, 300, p, 0, testSheets(), DefaultArcherStats(), DefaultArrowStats())
	f.actors = append(f.actors, a)

	now := tick
	a.Update(f, now)
	require.True(t, a.Attacking())
	assert.Equal(t, anim.Down, a.Facing())
	assert.Equal(t, 300, a.Body().Y, "does not move while shooting")

	runUntil(f, a, now, 300, func() bool { return len(f.arrows()) > 0 })
	arrows := f.arrows()
	require.Len(t, arrows, 1)
	assert.Equal(t, 628, arrows[0].Body().X)
	assert.Equal(t, 310, arrows[0].Body().Y)
	assert.Equal(t, DefaultArrowStats().Damage, arrows[0].Damage, "arrow damage, not the archer's")
	assert.Same(t, a, arrows[0].Source())
}

func TestArcher_OutOfWindowChases(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	a := NewArcher(600, 200, p, 0, testSheets(), DefaultArcherStats(), DefaultArrowStats())

	a.Update(f, tick)
	assert.False(t, a.Attacking())
	assert.Equal(t, 201, a.Body().Y)
}

func TestArcher_WaitsForCooldown(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	p.TakeHit(1, 0)
	a := NewArcher(400, 600, p, 0, testSheets(), DefaultArcherStats(), DefaultArrowStats())

	a.Update(f, 100*time.Millisecond)
	assert.False(t, a.Attacking())
	assert.Equal(t, 401, a.Body().X, "keeps walking")
}

func TestEnemy_KillScore(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	sheets := testSheets()

	tests := []struct {
		name  string
		enemy *Enemy
		alive time.Duration
		want  int
	}{
		{"fresh skeleton", NewSkeleton(0, 0, p, 0, sheets, DefaultSkeletonStats()), 10 * time.Second, 10},
		{"skeleton at 30s", NewSkeleton(0, 0, p, 0, sheets, DefaultSkeletonStats()), 30 * time.Second, 9},
		{"old skeleton", NewSkeleton(0, 0, p, 0, sheets, DefaultSkeletonStats()), 400 * time.Second, 0},
		{"knight at 95s", NewKnight(0, 0, p, 0, sheets, DefaultKnightStats()), 95 * time.Second, 47},
		{"archer at 59s", NewArcher(0, 0, p, 0, sheets, DefaultArcherStats(), DefaultArrowStats()), 59 * time.Second, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.enemy.KillScore(tt.alive))
		})
	}
}

func TestEnemy_DropTables(t *testing.T) {
	sheets := testSheets()

	tests := []struct {
		name string
		make func(p *Player) *Enemy
		roll int
		want []PowerupType
	}{
		{"skeleton haste", func(p *Player) *Enemy { return NewSkeleton(0, 0, p, 0, sheets, DefaultSkeletonStats()) }, 10, []PowerupType{PowerupHaste}},
		{"skeleton max health", func(p *Player) *Enemy { return NewSkeleton(0, 0, p, 0, sheets, DefaultSkeletonStats()) }, 20, []PowerupType{PowerupMaxHealth}},
		{"skeleton nothing", func(p *Player) *Enemy { return NewSkeleton(0, 0, p, 0, sheets, DefaultSkeletonStats()) }, 21, nil},
		{"archer ammo", func(p *Player) *Enemy {
			return NewArcher(0, 0, p, 0, sheets, DefaultArcherStats(), DefaultArrowStats())
		}, 50, []PowerupType{PowerupMaxAmmo}},
		{"archer nothing", func(p *Player) *Enemy {
			return NewArcher(0, 0, p, 0, sheets, DefaultArcherStats(), DefaultArrowStats())
		}, 51, nil},
		{"knight nothing", func(p *Player) *Enemy { return NewKnight(0, 0, p, 0, sheets, DefaultKnightStats()) }, 51, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeEnv()
			p := newTestPlayer(f)
			e := tt.make(p)
			f.rolls = []int{tt.roll}

			e.TakeHit(1000, 0)
			e.Update(f, tick)

			var got []PowerupType
			for _, pu := range f.powerups {
				got = append(got, pu.Type)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKnight_DropIsAlwaysStrength(t *testing.T) {
	sheets := testSheets()

	for i := 0; i < 10000; i++ {
		f := newFakeEnv()
		p := NewPlayer(600, 600, sheets, DefaultPlayerStats(), DefaultArrowStats())
		f.player = p
		k := NewKnight(900, 900, p, 0, sheets, DefaultKnightStats())
		f.rolls = []int{i%50 + 1}

		k.TakeHit(k.Vitals().Health, 0)
		k.Update(f, tick)

		require.Len(t, f.powerups, 1)
		require.Equal(t, PowerupStrength, f.powerups[0].Type)
	}
}

func TestEnemy_DropPosition(t *testing.T) {
	f := newFakeEnv()
	p := newTestPlayer(f)
	s := NewSkeleton(1000, 800, p, 0, testSheets(), DefaultSkeletonStats())
	f.rolls = []int{1}

	s.TakeHit(100, 0)
	s.Update(f, tick)

	require.Len(t, f.powerups, 1)
	assert.Equal(t, 1032, f.powerups[0].Body().X)
	assert.Equal(t, 848, f.powerups[0].Body().Y)
}
