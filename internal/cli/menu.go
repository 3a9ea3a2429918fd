package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// execIface defines the command surface the menu needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	AddMember(ctx context.Context) error
	RemoveMember(ctx context.Context) error
	DisplayMembers(ctx context.Context) error
	CreateWorkoutPlan(ctx context.Context) error
	DisplayWorkoutPlan(ctx context.Context) error
	CalculateBMI(ctx context.Context) error
}

const menuText = `
Gym Management System
1. Add Member
2. Remove Member
3. Display Members
4. Create Workout Plan
5. Display Workout Plan
6. Calculate BMI
7. Exit
Enter your choice`

// runMenu prints the numbered menu, reads a choice and dispatches to 'a'
// until the user picks Exit, input reaches EOF or ctx is done.
//
// Handlers report their own problems to the user; their errors are ignored
// here except io.EOF, which ends the loop.
func runMenu(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		choice, err := GetSimpleText(r, menuText, w)
		if err != nil {
			fmt.Fprintln(w, "\nExiting...")
			return
		}

		switch choice {
		case "1":
			err = a.AddMember(ctx)
		case "2":
			err = a.RemoveMember(ctx)
		case "3":
			err = a.DisplayMembers(ctx)
		case "4":
			err = a.CreateWorkoutPlan(ctx)
		case "5":
			err = a.DisplayWorkoutPlan(ctx)
		case "6":
			err = a.CalculateBMI(ctx)
		case "7":
			fmt.Fprintln(w, "Exiting...")
			return
		default:
			fmt.Fprintln(w, "Invalid choice!")
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w, "\nExiting...")
			return
		}
	}
}
