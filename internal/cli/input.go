package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
	"github.com/dmitrijs2005/gymkeeper/internal/members"
)

var errInvalidID = fmt.Errorf("%w: gym id must be a number", common.ErrorValidation)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetID reads a gym id. Non-numeric input is reported to w and returned as a
// validation error; the caller aborts the current operation.
func GetID(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintln(w, "Invalid input! Enter a valid Gym ID.")
		return 0, errInvalidID
	}
	return id, nil
}

// GetTier keeps asking until one of the membership tiers is entered.
func GetTier(reader *bufio.Reader, w io.Writer) (members.Tier, error) {
	for {
		s, err := GetSimpleText(reader, "Select Membership (Basic/Premium/VIP)", w)
		if err != nil {
			return "", err
		}
		tier, err := members.ParseTier(s)
		if err == nil {
			return tier, nil
		}
		fmt.Fprintln(w, "Invalid input. Please enter Basic, Premium, or VIP.")
	}
}

// GetMeasurement keeps asking until a number accepted by validate is entered.
// When optional is set an empty line is accepted and yields 0 (not recorded);
// otherwise the value must be positive.
func GetMeasurement(reader *bufio.Reader, prompt string, optional bool, validate func(float64) error, w io.Writer) (float64, error) {
	if optional {
		prompt += " (leave empty to skip)"
	}
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		if s == "" && optional {
			return 0, nil
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil || (v == 0 && !optional) {
			fmt.Fprintln(w, "Invalid number. Please enter a positive value.")
			continue
		}
		if validate(v) != nil {
			fmt.Fprintln(w, "Invalid number. That value is outside the realistic range.")
			continue
		}
		return v, nil
	}
}
