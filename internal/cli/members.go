package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
	"github.com/dmitrijs2005/gymkeeper/internal/members"
	"github.com/dmitrijs2005/gymkeeper/internal/workouts"
)

// AddMember asks for name, tier and optional measurements and registers the
// new member. The assigned Gym ID is printed.
func (a *App) AddMember(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	if err := members.ValidateName(name); err != nil {
		fmt.Fprintln(a.out, "Invalid name: it must not be empty or contain '|'.")
		return err
	}

	tier, err := GetTier(a.reader, a.out)
	if err != nil {
		return err
	}

	height, err := GetMeasurement(a.reader, "Enter height in meters", true, members.ValidateHeight, a.out)
	if err != nil {
		return err
	}
	weight, err := GetMeasurement(a.reader, "Enter weight in kilograms", true, members.ValidateWeight, a.out)
	if err != nil {
		return err
	}

	m, err := a.store.Add(ctx, name, tier, height, weight)
	if err != nil {
		return a.reportFailure(ctx, "add member", err)
	}

	a.log.Debug(ctx, "member added", "id", m.ID, "tier", m.Tier)
	fmt.Fprintf(a.out, "\nMember Added! Your Gym ID: %d\n", m.ID)
	return nil
}

// RemoveMember deletes a member by Gym ID.
func (a *App) RemoveMember(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter Gym ID to remove", a.out)
	if err != nil {
		return err
	}

	removed, err := a.store.Remove(ctx, id)
	if err != nil {
		return a.reportFailure(ctx, "remove member", err)
	}
	if !removed {
		fmt.Fprintln(a.out, "\nUser not found!")
		return nil
	}

	a.log.Debug(ctx, "member removed", "id", id)
	fmt.Fprintln(a.out, "\nMember removed successfully!")
	return nil
}

// DisplayMembers prints every member, in registration order.
func (a *App) DisplayMembers(ctx context.Context) error {
	list := a.store.List()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "\nNo registered members yet.")
		return nil
	}

	sep := rule()
	for _, m := range list {
		fmt.Fprintln(a.out, sep)
		fmt.Fprintf(a.out, "Name: %s\n", m.Name)
		fmt.Fprintf(a.out, "ID: %d\n", m.ID)
		fmt.Fprintf(a.out, "Membership: %s\n", m.Tier)
		fmt.Fprintf(a.out, "Workout Plan: %s\n", planLabel(m))
		fmt.Fprintf(a.out, "Height: %s\n", measurementLabel(m.Height, "%.2f m"))
		fmt.Fprintf(a.out, "Weight: %s\n", measurementLabel(m.Weight, "%.1f kg"))
	}
	fmt.Fprintln(a.out, sep)
	return nil
}

// CreateWorkoutPlan assigns one of the fixed fitness goals to a member.
func (a *App) CreateWorkoutPlan(ctx context.Context) error {
	m, err := a.lookup(ctx, "Enter your Gym ID")
	if err != nil {
		return err
	}

	goal, err := GetSimpleText(a.reader, "Enter fitness goal (Weight Loss/Muscle Gain)", a.out)
	if err != nil {
		return err
	}

	if err := a.store.SetWorkoutPlan(ctx, m.ID, members.Goal(goal)); err != nil {
		if errors.Is(err, members.ErrInvalidGoal) {
			fmt.Fprintln(a.out, "\nInvalid goal. Please enter 'Weight Loss' or 'Muscle Gain'.")
			return err
		}
		return a.reportFailure(ctx, "set workout plan", err)
	}

	m, _ = a.store.Get(m.ID)
	fmt.Fprintf(a.out, "\nWorkout Plan Created for %s!\n", m.Plan)
	return nil
}

// DisplayWorkoutPlan prints the weekly schedule for a member's goal.
func (a *App) DisplayWorkoutPlan(ctx context.Context) error {
	m, err := a.lookup(ctx, "Enter your Gym ID to view workout plan")
	if err != nil {
		return err
	}

	schedule, ok := workouts.ForGoal(m.Plan)
	if !ok {
		fmt.Fprintln(a.out, "\nNo workout plan found!")
		return nil
	}

	fmt.Fprintf(a.out, "\nYour Workout Plan: %s\n\n", m.Plan)
	for _, line := range schedule.Lines() {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// CalculateBMI prints a member's body-mass index. Members without recorded
// height and weight are asked for them first, and the values are saved.
func (a *App) CalculateBMI(ctx context.Context) error {
	m, err := a.lookup(ctx, "Enter your Gym ID")
	if err != nil {
		return err
	}

	if !m.HasMeasurements() {
		fmt.Fprintf(a.out, "\nNo height and weight on record for %s.\n", m.Name)
		height, err := GetMeasurement(a.reader, "Enter height in meters", false, members.ValidateHeight, a.out)
		if err != nil {
			return err
		}
		weight, err := GetMeasurement(a.reader, "Enter weight in kilograms", false, members.ValidateWeight, a.out)
		if err != nil {
			return err
		}
		if err := a.store.SetMeasurements(ctx, m.ID, height, weight); err != nil {
			return a.reportFailure(ctx, "save measurements", err)
		}
	}

	bmi, err := a.store.ComputeBMI(m.ID)
	if err != nil {
		return a.reportFailure(ctx, "calculate BMI", err)
	}

	fmt.Fprintf(a.out, "\nBMI for %s: %s\n", m.Name, bmi)
	return nil
}

// lookup reads a Gym ID and resolves it, printing "User not found!" on a miss.
func (a *App) lookup(ctx context.Context, prompt string) (members.Member, error) {
	id, err := GetID(a.reader, prompt, a.out)
	if err != nil {
		return members.Member{}, err
	}
	m, err := a.store.Get(id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "\nUser not found!")
		}
		return members.Member{}, err
	}
	return m, nil
}

func (a *App) reportFailure(ctx context.Context, op string, err error) error {
	a.log.Error(ctx, "operation failed", "op", op, "err", err)
	fmt.Fprintf(a.out, "\nCould not %s: %v\n", op, err)
	return err
}

func planLabel(m members.Member) string {
	if !m.HasPlan() {
		return "None"
	}
	return string(m.Plan)
}

func measurementLabel(v float64, format string) string {
	if v <= 0 {
		return "not recorded"
	}
	return fmt.Sprintf(format, v)
}
