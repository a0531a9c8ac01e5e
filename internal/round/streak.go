package round

import "fmt"

// BaseStreakThreshold is the first streak length that counts as a milestone.
const BaseStreakThreshold = 5

// NextStreakThreshold returns the next streak milestone above current.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}

// StreakBanner describes the streak badge shown next to the score.
type StreakBanner struct {
	Visible bool
	Mega    bool
	Count   int
}

// BannerFor returns the badge for a streak: shown from 2 in a row,
// highlighted from 5.
func BannerFor(streak int) StreakBanner {
	return StreakBanner{
		Visible: streak >= 2,
		Mega:    streak >= BaseStreakThreshold,
		Count:   streak,
	}
}

// CorrectMessage is the feedback line after a correct answer.
func CorrectMessage(streak int) string {
	if streak >= 3 {
		return fmt.Sprintf("🔥 Correct! %d in a row!", streak)
	}
	return "✅ Correct!"
}

// MilestoneMessage is the toast shown when a streak milestone is reached.
func MilestoneMessage(streak int) string {
	return fmt.Sprintf("On fire! 🔥 %d in a row!", streak)
}
