package simulation

import "fmt"

// Level is the progression state. It only ever advances.
type Level int

const (
	Level1 Level = iota
	Level2
	Level3
	Level4
	Level5
	Victory
)

var levelNames = [...]string{"Level1", "Level2", "Level3", "Level4", "Level5", "Victory"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel is the inverse of Level.String.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// ThresholdMode selects how a score is matched against the next threshold.
type ThresholdMode string

const (
	// ThresholdAtLeast advances once per threshold the score has reached.
	ThresholdAtLeast ThresholdMode = "at_least"
	// ThresholdExact advances only when the score equals the threshold. A
	// score that jumps over a threshold never advances again.
	ThresholdExact ThresholdMode = "exact"
)

// Hook runs when its level is entered.
type Hook func(entered Level)

// Progression is the level state machine. thresholds[i] is the score that
// moves Level(i) to Level(i+1); Victory is terminal.
type Progression struct {
	level      Level
	thresholds []int
	mode       ThresholdMode
	onEnter    map[Level][]Hook
}

func NewProgression(thresholds []int, mode ThresholdMode) *Progression {
	return &Progression{
		level:      Level1,
		thresholds: append([]int(nil), thresholds...),
		mode:       mode,
		onEnter:    make(map[Level][]Hook),
	}
}

func (p *Progression) Level() Level { return p.level }

// NextThreshold returns the score needed for the next level, false at Victory.
func (p *Progression) NextThreshold() (int, bool) {
	if p.level >= Victory || int(p.level) >= len(p.thresholds) {
		return 0, false
	}
	return p.thresholds[p.level], true
}

// OnEnter registers hook to run once when level is entered.
func (p *Progression) OnEnter(level Level, hook Hook) {
	p.onEnter[level] = append(p.onEnter[level], hook)
}

// Observe feeds a new score and returns the levels entered, in order. Every
// entered level runs its hooks exactly once.
func (p *Progression) Observe(score int) []Level {
	var entered []Level
	for {
		next, ok := p.NextThreshold()
		if !ok {
			return entered
		}
		switch p.mode {
		case ThresholdExact:
			if score != next {
				return entered
			}
		default:
			if score < next {
				return entered
			}
		}
		p.level++
		entered = append(entered, p.level)
		for _, hook := range p.onEnter[p.level] {
			hook(p.level)
		}
		if p.mode == ThresholdExact {
			return entered
		}
	}
}

// Restart returns to Level1 without touching the hooks.
func (p *Progression) Restart() {
	p.level = Level1
}
