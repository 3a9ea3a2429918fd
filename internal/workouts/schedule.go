// Package workouts holds the fixed weekly schedules shown for each fitness goal.
package workouts

import (
	"fmt"

	"github.com/dmitrijs2005/gymkeeper/internal/members"
)

// Schedule is a weekly training plan for one goal.
type Schedule struct {
	Goal members.Goal
	Days []string
	Rest string
}

var schedules = map[members.Goal]Schedule{
	members.GoalMuscleGain: {
		Goal: members.GoalMuscleGain,
		Days: []string{
			"Chest & Triceps - Bench Press, Triceps Dips",
			"Back & Biceps - Deadlifts, Pull-ups",
			"Legs & Abs - Squats, Leg Press",
			"Shoulders - Military Press, Shrugs",
			"Full Body Compound Lifts",
		},
		Rest: "Rest on Weekends",
	},
	members.GoalWeightLoss: {
		Goal: members.GoalWeightLoss,
		Days: []string{
			"Cardio + Full Body HIIT",
			"Upper Body Strength + Core",
			"Cardio + Lower Body",
			"Active Recovery (Yoga, Light Jogging)",
			"High-Intensity Interval Training (HIIT)",
			"Strength Training + Core",
		},
		Rest: "Rest on Sunday",
	},
}

// ForGoal returns the schedule for g. The second result is false for
// GoalNone and for unknown goals.
func ForGoal(g members.Goal) (Schedule, bool) {
	s, ok := schedules[g]
	if !ok {
		return Schedule{}, false
	}
	s.Days = append([]string(nil), s.Days...)
	return s, true
}

func (s Schedule) Title() string {
	return fmt.Sprintf("--- %s Workout Plan ---", s.Goal)
}

// Lines renders the schedule the way the console prints it: the title, one
// "Day N: ..." line per training day and the rest-day note.
func (s Schedule) Lines() []string {
	lines := make([]string, 0, len(s.Days)+2)
	lines = append(lines, s.Title())
	for i, d := range s.Days {
		lines = append(lines, fmt.Sprintf("Day %d: %s", i+1, d))
	}
	return append(lines, s.Rest)
}
