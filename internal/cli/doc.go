// Package cli provides the interactive gym console.
//
// It wires configuration, the text-file member store and a numbered menu
// loop. Every command that changes a member is written to the data file
// before control returns to the menu.
//
// Menu:
//   - Add / Remove members
//   - Display all members
//   - Create / Display a workout plan
//   - Calculate BMI
//
// The menu is started via App.Run(ctx), which blocks until the user exits.
// See App and runMenu for details.
package cli
