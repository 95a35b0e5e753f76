package engine

// Badge is a milestone the player can earn.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// BadgeChecker calculates which badges the player has earned.
type BadgeChecker struct {
	player *PlayerData
}

func NewBadgeChecker(player *PlayerData) *BadgeChecker {
	return &BadgeChecker{player: player}
}

// Badges returns all badges with their earned status.
func (c *BadgeChecker) Badges() []Badge {
	return []Badge{
		// Streak milestones use the best streak so a broken run keeps its badges.
		c.streakBadge("spark", "Spark", "Check in 3 days in a row", "🔥", 3),
		c.streakBadge("week_warrior", "Week Warrior", "Check in 7 days in a row", "📅", 7),
		c.streakBadge("fortnight", "Fortnight", "Check in 14 days in a row", "🗓️", 14),
		c.streakBadge("iron_habit", "Iron Habit", "Check in 30 days in a row", "⛓️", 30),
		c.streakBadge("unbroken", "Unbroken", "Check in 100 days in a row", "💎", 100),

		// Level milestones
		c.levelBadge("awakened", "Awakened", "Reach level 5", "🌱", 5),
		c.levelBadge("adept", "Adept", "Reach level 10", "⭐", 10),
		c.levelBadge("veteran", "Veteran", "Reach level 20", "🌟", 20),
		c.levelBadge("legend", "Legend", "Reach level 50", "👑", 50),

		// Check-in count milestones
		c.countBadge("first_log", "First Log", "Submit your first check-in", "✓", 1),
		c.countBadge("regular", "Regular", "Submit 30 check-ins", "📋", 30),
		c.countBadge("centurion", "Centurion", "Submit 100 check-ins", "🏆", 100),

		c.gradeBadge("monarch_day", "Monarch Day", "Score an S-rank day", "⚡", RankS),
	}
}

// CountEarned returns how many of badges have been earned.
func CountEarned(badges []Badge) int {
	count := 0
	for _, b := range badges {
		if b.Earned {
			count++
		}
	}
	return count
}

func (c *BadgeChecker) streakBadge(id, name, desc, icon string, days int) Badge {
	best := c.player.LongestStreak
	if c.player.CurrentStreak > best {
		best = c.player.CurrentStreak
	}
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: best >= days}
}

func (c *BadgeChecker) levelBadge(id, name, desc, icon string, level int) Badge {
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.player.Progress.Level >= level}
}

func (c *BadgeChecker) countBadge(id, name, desc, icon string, count int) Badge {
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: len(c.player.CheckIns) >= count}
}

func (c *BadgeChecker) gradeBadge(id, name, desc, icon string, rank Rank) Badge {
	earned := false
	for _, ci := range c.player.CheckIns {
		if LetterGrade(ci.Score()).Rank == rank {
			earned = true
			break
		}
	}
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}
