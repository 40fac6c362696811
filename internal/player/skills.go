package player

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/hearthvale/forgecore/internal/domain"
)

// XPPerLevel is the flat experience cost of each skill level
const XPPerLevel = 100.0

// SkillState is a player's standing in one skill
type SkillState struct {
	SkillName  string  `json:"skill_name"`
	Level      int     `json:"level"`
	Experience float64 `json:"experience"`
}

// MemorySkills is a mutex-guarded in-memory skills collaborator. Levels
// derive from cumulative experience on a flat 100 XP per level curve.
type MemorySkills struct {
	mu sync.RWMutex
	xp map[string]map[string]float64
}

// NewMemorySkills creates a new MemorySkills
func NewMemorySkills() *MemorySkills {
	return &MemorySkills{xp: make(map[string]map[string]float64)}
}

// AddSkillExperience grants experience to a player's skill
func (s *MemorySkills) AddSkillExperience(_ context.Context, playerID string, skillName string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: experience amount must be non-negative", domain.ErrInvalidInput)
	}
	if skillName == "" {
		return fmt.Errorf("%w: skill name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.xp[playerID] == nil {
		s.xp[playerID] = make(map[string]float64)
	}
	s.xp[playerID][skillName] += amount
	return nil
}

// GetSkillLevel returns the player's level in a skill, zero when untrained
func (s *MemorySkills) GetSkillLevel(_ context.Context, playerID string, skillName string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return levelFor(s.xp[playerID][skillName]), nil
}

// Snapshot returns all of the player's skill levels, the shape
// CraftContext.Skills expects
func (s *MemorySkills) Snapshot(_ context.Context, playerID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]int)
	for skill, xp := range s.xp[playerID] {
		snapshot[skill] = levelFor(xp)
	}
	return snapshot, nil
}

// ListSkills returns the player's full skill standings
func (s *MemorySkills) ListSkills(_ context.Context, playerID string) ([]SkillState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var states []SkillState
	for skill, xp := range s.xp[playerID] {
		states = append(states, SkillState{SkillName: skill, Level: levelFor(xp), Experience: xp})
	}
	return states, nil
}

func levelFor(xp float64) int {
	if xp <= 0 {
		return 0
	}
	return int(math.Floor(xp / XPPerLevel))
}
